package executor

import (
	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

// ValidateWorkflow checks a workflow against the registry's port
// declarations before any node executes: every node type must be
// registered, and every connection must reference existing nodes and ports
// of matching kind. All issues are collected so the host can surface them
// at once.
func ValidateWorkflow(workflow domain.Workflow, registry domain.NodeRegistry) error {
	issues := []domain.ValidationIssue{}

	definitionsByNodeID := map[string]domain.NodeDefinition{}

	for _, node := range workflow.Nodes {
		definition, ok := registry.GetDefinition(node.Type)
		if !ok {
			issues = append(issues, domain.ValidationIssue{
				NodeID:  node.ID,
				Message: "unknown node type " + string(node.Type),
			})

			continue
		}

		definitionsByNodeID[node.ID] = definition
	}

	for _, connection := range workflow.Connections {
		sourceDefinition, sourceKnown := definitionsByNodeID[connection.SourceNodeID]
		if _, exists := workflow.GetNodeByID(connection.SourceNodeID); !exists {
			issues = append(issues, domain.ValidationIssue{
				NodeID:  connection.SourceNodeID,
				Port:    connection.SourcePort,
				Message: "connection references nonexistent source node",
			})

			continue
		}

		targetDefinition, targetKnown := definitionsByNodeID[connection.TargetNodeID]
		if _, exists := workflow.GetNodeByID(connection.TargetNodeID); !exists {
			issues = append(issues, domain.ValidationIssue{
				NodeID:  connection.TargetNodeID,
				Port:    connection.TargetPort,
				Message: "connection references nonexistent target node",
			})

			continue
		}

		// Unknown node types are already reported above; port checks need
		// the definitions.
		if !sourceKnown || !targetKnown {
			continue
		}

		switch connection.Kind {
		case domain.PortKindExec:
			if !sourceDefinition.HasExecOutput(connection.SourcePort) {
				issues = append(issues, domain.ValidationIssue{
					NodeID:  connection.SourceNodeID,
					Port:    connection.SourcePort,
					Message: "exec connection from undeclared exec output port",
				})
			}

			if !targetDefinition.ExecInput || connection.TargetPort != domain.ExecInputPort {
				issues = append(issues, domain.ValidationIssue{
					NodeID:  connection.TargetNodeID,
					Port:    connection.TargetPort,
					Message: "exec connection into node without a control input port",
				})
			}
		case domain.PortKindData:
			if !sourceDefinition.HasDataOutput(connection.SourcePort) {
				issues = append(issues, domain.ValidationIssue{
					NodeID:  connection.SourceNodeID,
					Port:    connection.SourcePort,
					Message: "data connection from undeclared output port",
				})
			}

			if _, ok := targetDefinition.GetDataInput(connection.TargetPort); !ok {
				issues = append(issues, domain.ValidationIssue{
					NodeID:  connection.TargetNodeID,
					Port:    connection.TargetPort,
					Message: "data connection into undeclared input port",
				})
			}
		default:
			issues = append(issues, domain.ValidationIssue{
				NodeID:  connection.SourceNodeID,
				Port:    connection.SourcePort,
				Message: "connection with unknown port kind " + string(connection.Kind),
			})
		}
	}

	if len(issues) > 0 {
		return &domain.GraphValidationError{Issues: issues}
	}

	return nil
}
