package domain

import "time"

// RunState is the lifecycle state of a single workflow run. Stopped is
// terminal; a new run requires a fresh execution instance.
type RunState string

const (
	RunStateIdle    RunState = "idle"
	RunStateRunning RunState = "running"
	RunStatePaused  RunState = "paused"
	RunStateStopped RunState = "stopped"
)

// CompletionNotification is the inbound event delivered by whatever external
// subsystem a parked node was waiting on. The correlation id must match the
// one the node recorded when it parked itself, otherwise the notification is
// stale and dropped.
type CompletionNotification struct {
	NodeID        string
	CorrelationID string
	Payload       map[string]any
}

// NodeExecutionEntry is one row of a run's execution history, recorded per
// behavior invocation in frontier order.
type NodeExecutionEntry struct {
	NodeID         string
	NodeType       NodeType
	Inputs         map[string]any
	Outputs        map[string]any
	ExecTrigger    string
	Error          string
	ExecutionOrder int64
	StartedAt      time.Time
	EndedAt        time.Time
}
