package domain

import (
	"errors"
)

var (
	ErrWorkflowNotFound = errors.New("workflow not found")
	ErrNodeNotFound     = errors.New("node not found in workflow")
)

// PortKind distinguishes data ports from control-flow (exec) ports. A
// connection between exec ports means "may run next", not a data dependency.
type PortKind string

const (
	PortKindData PortKind = "data"
	PortKindExec PortKind = "exec"
)

// ExecInputPort is the well-known name of a node's control input port.
// A node has at most one; exec connections always target it.
const ExecInputPort = "exec"

type Workflow struct {
	ID          string
	Name        string
	Description string
	Nodes       []WorkflowNode
	Connections []Connection
}

func (w Workflow) GetNodeByID(nodeID string) (WorkflowNode, bool) {
	for _, node := range w.Nodes {
		if node.ID == nodeID {
			return node, true
		}
	}

	return WorkflowNode{}, false
}

// ConnectionsFrom returns every connection whose source is the given node
// and port, in declaration order.
func (w Workflow) ConnectionsFrom(nodeID, port string) []Connection {
	connections := []Connection{}

	for _, connection := range w.Connections {
		if connection.SourceNodeID == nodeID && connection.SourcePort == port {
			connections = append(connections, connection)
		}
	}

	return connections
}

// ConnectionsTo returns every connection whose target is the given node and
// port, in declaration order.
func (w Workflow) ConnectionsTo(nodeID, port string) []Connection {
	connections := []Connection{}

	for _, connection := range w.Connections {
		if connection.TargetNodeID == nodeID && connection.TargetPort == port {
			connections = append(connections, connection)
		}
	}

	return connections
}

func (w Workflow) HasIncomingExecConnection(nodeID string) bool {
	for _, connection := range w.Connections {
		if connection.Kind == PortKindExec && connection.TargetNodeID == nodeID {
			return true
		}
	}

	return false
}

// WorkflowNode is the authored description of one node instance: behavior is
// looked up by Type in the node registry, never referenced directly.
// Properties hold node-local configuration set at authoring time.
type WorkflowNode struct {
	ID         string
	WorkflowID string
	Name       string
	Type       NodeType
	Properties map[string]any
	Positions  NodePositions
}

// NodePositions is canvas placement, carried through for the host
// application; the engine never reads it.
type NodePositions struct {
	XPosition float64
	YPosition float64
}

// Connection is a directed edge between two ports of the same kind.
type Connection struct {
	SourceNodeID string
	SourcePort   string
	TargetNodeID string
	TargetPort   string
	Kind         PortKind
}
