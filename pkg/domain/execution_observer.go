package domain

import "context"

// ExecutionObserver fans lifecycle events out to subscribed handlers. Events
// are one-way notifications for the hosting application; they are never
// commands back into the run.
type ExecutionObserver interface {
	Subscribe(handler ExecutionEventHandler)
	Notify(ctx context.Context, event ExecutionEvent) error
}

type ExecutionEventHandler interface {
	HandleEvent(ctx context.Context, event ExecutionEvent) error
}

type ExecutionEventType string

const (
	ExecutionEventTypeNodeExecutionStarted       ExecutionEventType = "node_execution_started"
	ExecutionEventTypeNodeExecutionCompleted     ExecutionEventType = "node_execution_completed"
	ExecutionEventTypeNodeExecutionFailed        ExecutionEventType = "node_execution_failed"
	ExecutionEventTypeNodeParked                 ExecutionEventType = "node_parked"
	ExecutionEventTypeWorkflowExecutionCompleted ExecutionEventType = "workflow_execution_completed"
	ExecutionEventTypeWorkflowExecutionStopped   ExecutionEventType = "workflow_execution_stopped"
)

type ExecutionEvent interface {
	GetEventType() ExecutionEventType
}
