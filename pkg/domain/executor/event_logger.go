package executor

import (
	"context"

	"github.com/nodecanvas/nodecanvas/pkg/domain"

	"github.com/rs/zerolog/log"
)

// EventLogger mirrors lifecycle events into the structured log so headless
// hosts get progress output without subscribing their own handler.
type EventLogger struct {
	workflowID  string
	executionID string
}

func NewEventLogger(workflowID, executionID string) *EventLogger {
	return &EventLogger{
		workflowID:  workflowID,
		executionID: executionID,
	}
}

func (l *EventLogger) HandleEvent(ctx context.Context, event domain.ExecutionEvent) error {
	logger := log.With().
		Str("workflow_id", l.workflowID).
		Str("execution_id", l.executionID).
		Logger()

	switch e := event.(type) {
	case NodeExecutionStartedEvent:
		logger.Debug().
			Str("node_id", e.NodeID).
			Str("node_type", string(e.NodeType)).
			Msg("Node execution started")
	case NodeExecutionCompletedEvent:
		logger.Info().
			Str("node_id", e.NodeID).
			Str("node_type", string(e.NodeType)).
			Str("exec_trigger", e.ExecTrigger).
			Int64("execution_order", e.ExecutionOrder).
			Msg("Node execution completed")
	case NodeExecutionFailedEvent:
		logger.Error().
			Err(e.Error).
			Str("node_id", e.NodeID).
			Str("node_type", string(e.NodeType)).
			Msg("Node execution failed")
	case NodeParkedEvent:
		logger.Info().
			Str("node_id", e.NodeID).
			Str("correlation_id", e.CorrelationID).
			Msg("Node parked awaiting completion")
	case WorkflowExecutionCompletedEvent:
		logger.Info().Msg("Workflow execution completed")
	case WorkflowExecutionStoppedEvent:
		logger.Info().
			Str("reason", e.Reason).
			Msg("Workflow execution stopped")
	}

	return nil
}
