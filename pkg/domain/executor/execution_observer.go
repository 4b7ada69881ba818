package executor

import (
	"context"
	"time"

	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

type NodeExecutionStartedEvent struct {
	NodeID    string
	NodeType  domain.NodeType
	Timestamp time.Time
}

func (NodeExecutionStartedEvent) GetEventType() domain.ExecutionEventType {
	return domain.ExecutionEventTypeNodeExecutionStarted
}

type NodeExecutionCompletedEvent struct {
	NodeID         string
	NodeType       domain.NodeType
	Inputs         map[string]any
	Outputs        map[string]any
	ExecTrigger    string
	ExecutionOrder int64
	StartedAt      time.Time
	EndedAt        time.Time
	Timestamp      time.Time
}

func (NodeExecutionCompletedEvent) GetEventType() domain.ExecutionEventType {
	return domain.ExecutionEventTypeNodeExecutionCompleted
}

type NodeExecutionFailedEvent struct {
	NodeID    string
	NodeType  domain.NodeType
	Inputs    map[string]any
	Error     error
	Timestamp time.Time
}

func (NodeExecutionFailedEvent) GetEventType() domain.ExecutionEventType {
	return domain.ExecutionEventTypeNodeExecutionFailed
}

// NodeParkedEvent is emitted when a node starts external work and suspends
// itself until the matching completion notification arrives.
type NodeParkedEvent struct {
	NodeID        string
	NodeType      domain.NodeType
	CorrelationID string
	Timestamp     time.Time
}

func (NodeParkedEvent) GetEventType() domain.ExecutionEventType {
	return domain.ExecutionEventTypeNodeParked
}

type WorkflowExecutionCompletedEvent struct {
	Timestamp time.Time
}

func (WorkflowExecutionCompletedEvent) GetEventType() domain.ExecutionEventType {
	return domain.ExecutionEventTypeWorkflowExecutionCompleted
}

type WorkflowExecutionStoppedEvent struct {
	Reason    string
	Timestamp time.Time
}

func (WorkflowExecutionStoppedEvent) GetEventType() domain.ExecutionEventType {
	return domain.ExecutionEventTypeWorkflowExecutionStopped
}

type ExecutionObserver struct {
	handlers []domain.ExecutionEventHandler
}

func NewExecutionObserver() *ExecutionObserver {
	return &ExecutionObserver{
		handlers: []domain.ExecutionEventHandler{},
	}
}

func (o *ExecutionObserver) Subscribe(handler domain.ExecutionEventHandler) {
	o.handlers = append(o.handlers, handler)
}

func (o *ExecutionObserver) Notify(ctx context.Context, event domain.ExecutionEvent) error {
	for _, handler := range o.handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			return err
		}
	}

	return nil
}
