package domain

import "context"

// GenerationRequest describes one unit of long-running generation work
// handed to the external subsystem. The correlation id is minted by the
// dispatching node and must come back on the completion notification.
type GenerationRequest struct {
	WorkflowID    string
	NodeID        string
	CorrelationID string
	Prompt        string
	Settings      map[string]any
}

// GenerationDispatcher is the seam to the subsystem that performs generation
// work out of band. Dispatch must return promptly; the work completes later
// and is reported through the execution's completion bridge. The engine
// never cancels dispatched work on stop; a dispatcher that needs
// cancellation exposes its own hook.
type GenerationDispatcher interface {
	Dispatch(ctx context.Context, request GenerationRequest) error
}
