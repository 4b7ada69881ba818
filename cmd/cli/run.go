package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/nodecanvas/nodecanvas/internal/loader"
	"github.com/nodecanvas/nodecanvas/pkg/domain"
	"github.com/nodecanvas/nodecanvas/pkg/domain/executor"
	"github.com/nodecanvas/nodecanvas/pkg/nodes"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <workflow.json>",
		Short: "Execute a workflow file",
		Long: `Run loads a workflow file, seeds the frontier with its entry nodes, and
drains it until the run completes, a node stays pending past the timeout,
or an interrupt stops it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkflow(cmd, args[0])
		},
	}

	cmd.Flags().StringArray("input", []string{}, "Initial input as key=value (repeatable)")

	return cmd
}

func runWorkflow(cmd *cobra.Command, path string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	workflow, err := loader.LoadWorkflow(path)
	if err != nil {
		return err
	}

	initialInputs, err := parseInitialInputs(cmd)
	if err != nil {
		return err
	}

	dispatcher := newDelayedDispatcher(config.GenerationDelay)

	registry := nodes.NewRegistry(nodes.Deps{
		GenerationDispatcher: dispatcher,
	})

	execution := executor.NewWorkflowExecution(executor.WorkflowExecutionDeps{
		Workflow:          workflow,
		Registry:          registry,
		MaxNodeExecutions: config.MaxNodeExecutions,
	})

	dispatcher.SetCompleter(execution.NotifyCompletion)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := execution.Start(ctx, initialInputs); err != nil {
		return err
	}

	select {
	case <-execution.Done():
	case <-time.After(config.RunTimeout):
		log.Warn().Dur("run_timeout", config.RunTimeout).Msg("Run timed out, stopping")
		execution.Stop()
		<-execution.Done()
	}

	printHistory(cmd, execution.HistoryEntries())

	if state := execution.State(); state != domain.RunStateIdle {
		return fmt.Errorf("workflow run ended in state %s", state)
	}

	return nil
}

func parseInitialInputs(cmd *cobra.Command) (map[string]any, error) {
	pairs, err := cmd.Flags().GetStringArray("input")
	if err != nil {
		return nil, err
	}

	inputs := map[string]any{}

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid input %q, expected key=value", pair)
		}

		inputs[key] = value
	}

	return inputs, nil
}

func printHistory(cmd *cobra.Command, entries []domain.NodeExecutionEntry) {
	out := cmd.OutOrStdout()

	for _, entry := range entries {
		if entry.Error != "" {
			fmt.Fprintf(out, "%d  %s (%s)  FAILED: %s\n", entry.ExecutionOrder, entry.NodeID, entry.NodeType, entry.Error)
			continue
		}

		fmt.Fprintf(out, "%d  %s (%s)  trigger=%s  outputs=%v\n", entry.ExecutionOrder, entry.NodeID, entry.NodeType, entry.ExecTrigger, entry.Outputs)
	}
}

// delayedDispatcher stands in for a real generation subsystem: it completes
// every request out of band after a fixed delay, exercising the completion
// bridge end to end.
type delayedDispatcher struct {
	delay time.Duration

	mutex     sync.Mutex
	completer func(domain.CompletionNotification) bool
}

func newDelayedDispatcher(delay time.Duration) *delayedDispatcher {
	return &delayedDispatcher{
		delay: delay,
	}
}

// SetCompleter wires the dispatcher to an execution's completion bridge.
// The registry needs the dispatcher before the execution exists, so this is
// set after construction.
func (d *delayedDispatcher) SetCompleter(completer func(domain.CompletionNotification) bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.completer = completer
}

func (d *delayedDispatcher) Dispatch(ctx context.Context, request domain.GenerationRequest) error {
	go func() {
		time.Sleep(d.delay)

		d.mutex.Lock()
		completer := d.completer
		d.mutex.Unlock()

		if completer == nil {
			return
		}

		completer(domain.CompletionNotification{
			NodeID:        request.NodeID,
			CorrelationID: request.CorrelationID,
			Payload: map[string]any{
				"result": fmt.Sprintf("generated(%s)", request.Prompt),
			},
		})
	}()

	return nil
}
