package cli

import (
	"fmt"
	"strings"

	"github.com/nodecanvas/nodecanvas/pkg/nodes"

	"github.com/spf13/cobra"
)

func NewNodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List registered node types and their ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listNodes(cmd)
		},
	}
}

func listNodes(cmd *cobra.Command) error {
	registry := nodes.NewRegistry(nodes.Deps{
		GenerationDispatcher: newDelayedDispatcher(0),
	})

	out := cmd.OutOrStdout()

	for _, definition := range registry.Definitions() {
		inputs := make([]string, 0, len(definition.DataInputs))
		for _, input := range definition.DataInputs {
			inputs = append(inputs, input.Name)
		}

		fmt.Fprintf(out, "%s\t%s\n", definition.Type, definition.Description)
		fmt.Fprintf(out, "\tdata in: [%s]  data out: [%s]\n",
			strings.Join(inputs, ", "), strings.Join(definition.DataOutputs, ", "))

		execInput := "-"
		if definition.ExecInput {
			execInput = "exec"
		}

		fmt.Fprintf(out, "\texec in: %s  exec out: [%s]\n",
			execInput, strings.Join(definition.ExecOutputs, ", "))
	}

	return nil
}
