package domain

import (
	"context"
)

// NodeType identifies a node behavior in the registry. Graph descriptors
// carry the string id, never an in-process reference.
type NodeType string

const (
	NodeType_Entry        NodeType = "entry"
	NodeType_Branch       NodeType = "branch"
	NodeType_WhileLoop    NodeType = "while_loop"
	NodeType_Math         NodeType = "math"
	NodeType_StringFormat NodeType = "string_format"
	NodeType_Script       NodeType = "script"
	NodeType_Log          NodeType = "log"
	NodeType_Generation   NodeType = "generation"
)

// PortSpec declares a data input port and the value substituted when the
// port is connected but its upstream has not produced a value yet.
type PortSpec struct {
	Name    string
	Default any
}

// NodeDefinition declares the port surface of a node type. Definitions live
// in the registry; workflow nodes reference them by type id.
type NodeDefinition struct {
	Type        NodeType
	Name        string
	Description string

	DataInputs  []PortSpec
	DataOutputs []string

	ExecInput   bool
	ExecOutputs []string
}

func (d NodeDefinition) GetDataInput(name string) (PortSpec, bool) {
	for _, input := range d.DataInputs {
		if input.Name == name {
			return input, true
		}
	}

	return PortSpec{}, false
}

func (d NodeDefinition) HasDataOutput(name string) bool {
	for _, output := range d.DataOutputs {
		if output == name {
			return true
		}
	}

	return false
}

func (d NodeDefinition) HasExecOutput(name string) bool {
	for _, output := range d.ExecOutputs {
		if output == name {
			return true
		}
	}

	return false
}

// NodeInput carries everything a behavior may read: resolved data-port
// values, the node's authored properties, and the node's identity.
type NodeInput struct {
	NodeID     string
	WorkflowID string
	Inputs     map[string]any
	Properties map[string]any
}

func (i NodeInput) InputString(name string) string {
	value, ok := i.Inputs[name].(string)
	if !ok {
		return ""
	}

	return value
}

func (i NodeInput) PropertyString(name string) string {
	value, ok := i.Properties[name].(string)
	if !ok {
		return ""
	}

	return value
}

// NodeResult is the outcome of one behavior invocation.
//
// ExecTrigger names the single exec output port to follow next; empty means
// "do not propagate control flow this cycle". A node that has exec output
// ports and returns an empty trigger is treated as parked awaiting an
// external completion, and must set CorrelationID so the completion bridge
// can match the notification that resumes it.
type NodeResult struct {
	Outputs       map[string]any
	ExecTrigger   string
	CorrelationID string
}

// NodeBehavior is the single operation every node type implements. A
// behavior must be a pure function of its input and properties except where
// it explicitly owns asynchronous side effects; in that case it must handle
// being invoked twice for the same logical step.
type NodeBehavior interface {
	Execute(ctx context.Context, input NodeInput) (NodeResult, error)
}

type CreateNodeParams struct {
	WorkflowID string
	NodeID     string
}

// NodeCreator builds a behavior instance scoped to one node of one run, so
// behaviors can hold per-run state such as the dispatch/consume phase of an
// async node.
type NodeCreator interface {
	CreateNode(ctx context.Context, p CreateNodeParams) (NodeBehavior, error)
}
