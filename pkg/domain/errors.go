package domain

import (
	"fmt"
	"strings"
)

// NodeExecutionError wraps a behavior failure with the node it came from.
// Failures are node-scoped: propagation stops down that node's branch, the
// rest of the frontier keeps draining.
type NodeExecutionError struct {
	NodeID string
	Err    error
}

func (e *NodeExecutionError) Error() string {
	return fmt.Sprintf("node %s execution failed: %v", e.NodeID, e.Err)
}

func (e *NodeExecutionError) Unwrap() error {
	return e.Err
}

// ValidationIssue describes one offending node or connection found while
// validating a workflow before a run.
type ValidationIssue struct {
	NodeID  string
	Port    string
	Message string
}

func (i ValidationIssue) String() string {
	if i.Port != "" {
		return fmt.Sprintf("node %s port %s: %s", i.NodeID, i.Port, i.Message)
	}

	if i.NodeID != "" {
		return fmt.Sprintf("node %s: %s", i.NodeID, i.Message)
	}

	return i.Message
}

// GraphValidationError rejects a workflow at start time, before any node
// executes. It enumerates every offending connection rather than stopping at
// the first.
type GraphValidationError struct {
	Issues []ValidationIssue
}

func (e *GraphValidationError) Error() string {
	messages := make([]string, 0, len(e.Issues))

	for _, issue := range e.Issues {
		messages = append(messages, issue.String())
	}

	return fmt.Sprintf("workflow validation failed: %s", strings.Join(messages, "; "))
}
