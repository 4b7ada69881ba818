package cli

import (
	"errors"
	"fmt"

	"github.com/nodecanvas/nodecanvas/internal/loader"
	"github.com/nodecanvas/nodecanvas/pkg/domain"
	"github.com/nodecanvas/nodecanvas/pkg/domain/executor"
	"github.com/nodecanvas/nodecanvas/pkg/nodes"

	"github.com/spf13/cobra"
)

func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <workflow.json>",
		Short: "Validate a workflow file without executing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateWorkflow(cmd, args[0])
		},
	}
}

func validateWorkflow(cmd *cobra.Command, path string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	workflow, err := loader.LoadWorkflow(path)
	if err != nil {
		return err
	}

	registry := nodes.NewRegistry(nodes.Deps{
		GenerationDispatcher: newDelayedDispatcher(0),
	})

	if err := executor.ValidateWorkflow(workflow, registry); err != nil {
		var validationErr *domain.GraphValidationError
		if errors.As(err, &validationErr) {
			for _, issue := range validationErr.Issues {
				fmt.Fprintln(cmd.OutOrStdout(), issue.String())
			}
		}

		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "workflow %s is valid (%d nodes, %d connections)\n",
		workflow.Name, len(workflow.Nodes), len(workflow.Connections))

	return nil
}
