package nodes

import (
	"context"

	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

const (
	BranchInputCondition = "condition"
	BranchOutputTrue     = "true"
	BranchOutputFalse    = "false"
)

var BranchDefinition = domain.NodeDefinition{
	Type:        domain.NodeType_Branch,
	Name:        "Branch",
	Description: "Routes control flow to exactly one of two outputs based on a condition.",
	DataInputs: []domain.PortSpec{
		{Name: BranchInputCondition, Default: false},
	},
	DataOutputs: []string{"condition"},
	ExecInput:   true,
	ExecOutputs: []string{BranchOutputTrue, BranchOutputFalse},
}

type BranchNodeCreator struct{}

func NewBranchNodeCreator(deps Deps) domain.NodeCreator {
	return &BranchNodeCreator{}
}

func (c *BranchNodeCreator) CreateNode(ctx context.Context, p domain.CreateNodeParams) (domain.NodeBehavior, error) {
	return &BranchNode{}, nil
}

type BranchNode struct{}

// Execute triggers exactly one of true/false, never both, never neither.
func (n *BranchNode) Execute(ctx context.Context, input domain.NodeInput) (domain.NodeResult, error) {
	condition := CoerceBool(input.Inputs[BranchInputCondition])

	trigger := BranchOutputFalse
	if condition {
		trigger = BranchOutputTrue
	}

	return domain.NodeResult{
		Outputs: map[string]any{
			"condition": condition,
		},
		ExecTrigger: trigger,
	}, nil
}
