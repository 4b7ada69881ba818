package nodes

import (
	"context"

	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

const EntryOutputOut = "out"

var EntryDefinition = domain.NodeDefinition{
	Type:        domain.NodeType_Entry,
	Name:        "Entry",
	Description: "Starts control flow and exposes the run's initial inputs.",
	DataOutputs: []string{"payload"},
	ExecOutputs: []string{EntryOutputOut},
}

type EntryNodeCreator struct{}

func NewEntryNodeCreator(deps Deps) domain.NodeCreator {
	return &EntryNodeCreator{}
}

func (c *EntryNodeCreator) CreateNode(ctx context.Context, p domain.CreateNodeParams) (domain.NodeBehavior, error) {
	return &EntryNode{}, nil
}

type EntryNode struct{}

func (n *EntryNode) Execute(ctx context.Context, input domain.NodeInput) (domain.NodeResult, error) {
	return domain.NodeResult{
		Outputs: map[string]any{
			"payload": input.Inputs,
		},
		ExecTrigger: EntryOutputOut,
	}, nil
}
