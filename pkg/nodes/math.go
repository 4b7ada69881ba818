package nodes

import (
	"context"
	"errors"
	"fmt"

	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

const (
	MathInputA      = "a"
	MathInputB      = "b"
	MathOutputOut   = "out"
	MathPropertyOp  = "operation"
	MathOutputValue = "result"
)

var ErrDivisionByZero = errors.New("division by zero")

var MathDefinition = domain.NodeDefinition{
	Type:        domain.NodeType_Math,
	Name:        "Math",
	Description: "Applies a binary arithmetic operation to two numeric inputs.",
	DataInputs: []domain.PortSpec{
		{Name: MathInputA, Default: float64(0)},
		{Name: MathInputB, Default: float64(0)},
	},
	DataOutputs: []string{MathOutputValue},
	ExecInput:   true,
	ExecOutputs: []string{MathOutputOut},
}

type MathNodeCreator struct{}

func NewMathNodeCreator(deps Deps) domain.NodeCreator {
	return &MathNodeCreator{}
}

func (c *MathNodeCreator) CreateNode(ctx context.Context, p domain.CreateNodeParams) (domain.NodeBehavior, error) {
	return &MathNode{}, nil
}

type MathNode struct{}

func (n *MathNode) Execute(ctx context.Context, input domain.NodeInput) (domain.NodeResult, error) {
	a, err := coerceNumber(input.Inputs[MathInputA])
	if err != nil {
		return domain.NodeResult{}, fmt.Errorf("input %s: %w", MathInputA, err)
	}

	b, err := coerceNumber(input.Inputs[MathInputB])
	if err != nil {
		return domain.NodeResult{}, fmt.Errorf("input %s: %w", MathInputB, err)
	}

	operation := input.PropertyString(MathPropertyOp)

	var result float64

	switch operation {
	case "", "add":
		result = a + b
	case "subtract":
		result = a - b
	case "multiply":
		result = a * b
	case "divide":
		if b == 0 {
			return domain.NodeResult{}, ErrDivisionByZero
		}

		result = a / b
	default:
		return domain.NodeResult{}, fmt.Errorf("unknown operation %q", operation)
	}

	return domain.NodeResult{
		Outputs: map[string]any{
			MathOutputValue: result,
		},
		ExecTrigger: MathOutputOut,
	}, nil
}

func coerceNumber(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("value %v is not numeric", value)
	}
}
