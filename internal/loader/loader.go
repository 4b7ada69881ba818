// Package loader reads workflow files for the CLI harness. The engine
// itself consumes the in-memory model; storage formats stay at this edge.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nodecanvas/nodecanvas/pkg/domain"

	"github.com/google/uuid"
)

type workflowFile struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Nodes       []workflowFileNode       `json:"nodes"`
	Connections []workflowFileConnection `json:"connections"`
}

type workflowFileNode struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

type workflowFileConnection struct {
	SourceNodeID string `json:"source_node"`
	SourcePort   string `json:"source_port"`
	TargetNodeID string `json:"target_node"`
	TargetPort   string `json:"target_port"`
	Kind         string `json:"kind"`
}

// LoadWorkflow parses a workflow JSON file into the domain model. Connection
// kind defaults to exec when the target port is the control input, data
// otherwise, so hand-written files can omit it.
func LoadWorkflow(path string) (domain.Workflow, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return domain.Workflow{}, fmt.Errorf("failed to read workflow file: %w", err)
	}

	file := workflowFile{}

	if err := json.Unmarshal(contents, &file); err != nil {
		return domain.Workflow{}, fmt.Errorf("failed to parse workflow file: %w", err)
	}

	workflowID := file.ID
	if workflowID == "" {
		workflowID = uuid.NewString()
	}

	workflow := domain.Workflow{
		ID:          workflowID,
		Name:        file.Name,
		Description: file.Description,
		Nodes:       make([]domain.WorkflowNode, 0, len(file.Nodes)),
		Connections: make([]domain.Connection, 0, len(file.Connections)),
	}

	for _, node := range file.Nodes {
		if node.ID == "" {
			return domain.Workflow{}, fmt.Errorf("workflow file contains a node without an id")
		}

		properties := node.Properties
		if properties == nil {
			properties = map[string]any{}
		}

		workflow.Nodes = append(workflow.Nodes, domain.WorkflowNode{
			ID:         node.ID,
			WorkflowID: workflowID,
			Name:       node.Name,
			Type:       domain.NodeType(node.Type),
			Properties: properties,
		})
	}

	for _, connection := range file.Connections {
		kind := domain.PortKind(connection.Kind)

		if connection.Kind == "" {
			kind = domain.PortKindData
			if connection.TargetPort == domain.ExecInputPort {
				kind = domain.PortKindExec
			}
		}

		workflow.Connections = append(workflow.Connections, domain.Connection{
			SourceNodeID: connection.SourceNodeID,
			SourcePort:   connection.SourcePort,
			TargetNodeID: connection.TargetNodeID,
			TargetPort:   connection.TargetPort,
			Kind:         kind,
		})
	}

	return workflow, nil
}
