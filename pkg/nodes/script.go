package nodes

import (
	"context"
	"fmt"

	"github.com/nodecanvas/nodecanvas/pkg/domain"

	"github.com/dop251/goja"
)

const (
	ScriptPropertyExpression = "expression"
	ScriptOutputOut          = "out"
	ScriptOutputValue        = "value"
)

var ScriptDefinition = domain.NodeDefinition{
	Type:        domain.NodeType_Script,
	Name:        "Script",
	Description: "Evaluates a JavaScript expression against the node's inputs and properties.",
	DataInputs: []domain.PortSpec{
		{Name: "a", Default: nil},
		{Name: "b", Default: nil},
		{Name: "value", Default: nil},
	},
	DataOutputs: []string{ScriptOutputValue},
	ExecInput:   true,
	ExecOutputs: []string{ScriptOutputOut},
}

type ScriptNodeCreator struct{}

func NewScriptNodeCreator(deps Deps) domain.NodeCreator {
	return &ScriptNodeCreator{}
}

func (c *ScriptNodeCreator) CreateNode(ctx context.Context, p domain.CreateNodeParams) (domain.NodeBehavior, error) {
	return &ScriptNode{}, nil
}

// ScriptNode runs its expression on a fresh goja runtime per invocation, so
// scripts cannot leak state across iterations of a loop body.
type ScriptNode struct{}

func (n *ScriptNode) Execute(ctx context.Context, input domain.NodeInput) (domain.NodeResult, error) {
	expression := input.PropertyString(ScriptPropertyExpression)
	if expression == "" {
		return domain.NodeResult{}, fmt.Errorf("script node requires an %q property", ScriptPropertyExpression)
	}

	vm := goja.New()

	if err := vm.Set("inputs", input.Inputs); err != nil {
		return domain.NodeResult{}, fmt.Errorf("failed to bind inputs: %w", err)
	}

	if err := vm.Set("properties", input.Properties); err != nil {
		return domain.NodeResult{}, fmt.Errorf("failed to bind properties: %w", err)
	}

	value, err := vm.RunString(expression)
	if err != nil {
		return domain.NodeResult{}, fmt.Errorf("script evaluation failed: %w", err)
	}

	return domain.NodeResult{
		Outputs: map[string]any{
			ScriptOutputValue: value.Export(),
		},
		ExecTrigger: ScriptOutputOut,
	}, nil
}
