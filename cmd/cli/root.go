package cli

import (
	"fmt"
	"os"

	"github.com/nodecanvas/nodecanvas/internal/version"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nodecanvas",
		Short: "NodeCanvas workflow engine CLI",
		Long: `NodeCanvas runs visual node-graph workflows headlessly: it loads a
workflow file, validates it against the registered node types, and drains
the execution frontier until the run completes or is stopped.`,
		Version:       version.GetShortVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewNodesCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
