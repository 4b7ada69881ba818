package nodes

import (
	"context"

	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

const (
	WhileLoopInputCondition  = "condition"
	WhileLoopOutputLoopBody  = "loop_body"
	WhileLoopOutputCompleted = "completed"
)

var WhileLoopDefinition = domain.NodeDefinition{
	Type:        domain.NodeType_WhileLoop,
	Name:        "While Loop",
	Description: "Re-evaluates a condition each invocation; triggers the loop body while true, completed once false.",
	DataInputs: []domain.PortSpec{
		{Name: WhileLoopInputCondition, Default: false},
	},
	DataOutputs: []string{"condition", "iterations"},
	ExecInput:   true,
	ExecOutputs: []string{WhileLoopOutputLoopBody, WhileLoopOutputCompleted},
}

type WhileLoopNodeCreator struct{}

func NewWhileLoopNodeCreator(deps Deps) domain.NodeCreator {
	return &WhileLoopNodeCreator{}
}

func (c *WhileLoopNodeCreator) CreateNode(ctx context.Context, p domain.CreateNodeParams) (domain.NodeBehavior, error) {
	return &WhileLoopNode{}, nil
}

// WhileLoopNode triggers loop_body while its condition holds. The loop body
// chain is authored as a graph cycle routing back into this node's control
// input; each iteration is a fresh scheduler dequeue, and the scheduler's
// re-entrancy guard absorbs a body that re-enters before the current
// invocation finished. Outputs are overwritten per iteration, so after the
// run they reflect only the final one.
type WhileLoopNode struct {
	iterations int
}

func (n *WhileLoopNode) Execute(ctx context.Context, input domain.NodeInput) (domain.NodeResult, error) {
	condition := CoerceBool(input.Inputs[WhileLoopInputCondition])

	trigger := WhileLoopOutputCompleted
	if condition {
		trigger = WhileLoopOutputLoopBody
		n.iterations++
	}

	return domain.NodeResult{
		Outputs: map[string]any{
			"condition":  condition,
			"iterations": n.iterations,
		},
		ExecTrigger: trigger,
	}, nil
}
