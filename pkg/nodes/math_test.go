package nodes

import (
	"context"
	"errors"
	"testing"

	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

func TestMathNode(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		a         any
		b         any
		expected  float64
		wantErr   bool
	}{
		{name: "add", operation: "add", a: 2.0, b: 3.0, expected: 5},
		{name: "default operation is add", operation: "", a: 2.0, b: 3.0, expected: 5},
		{name: "subtract", operation: "subtract", a: 5.0, b: 3.0, expected: 2},
		{name: "multiply", operation: "multiply", a: 4.0, b: 2.5, expected: 10},
		{name: "divide", operation: "divide", a: 9.0, b: 3.0, expected: 3},
		{name: "integer inputs", operation: "add", a: 2, b: 3, expected: 5},
		{name: "missing inputs default to zero", operation: "add", a: nil, b: nil, expected: 0},
		{name: "divide by zero", operation: "divide", a: 1.0, b: 0.0, wantErr: true},
		{name: "unknown operation", operation: "modulo", a: 1.0, b: 2.0, wantErr: true},
		{name: "non-numeric input", operation: "add", a: "two", b: 3.0, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node := &MathNode{}

			result, err := node.Execute(context.Background(), domain.NodeInput{
				NodeID: "math-1",
				Inputs: map[string]any{
					MathInputA: test.a,
					MathInputB: test.b,
				},
				Properties: map[string]any{
					MathPropertyOp: test.operation,
				},
			})

			if test.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Outputs[MathOutputValue] != test.expected {
				t.Errorf("result = %v, want %v", result.Outputs[MathOutputValue], test.expected)
			}

			if result.ExecTrigger != MathOutputOut {
				t.Errorf("trigger = %q, want %q", result.ExecTrigger, MathOutputOut)
			}
		})
	}
}

func TestMathNodeDivideByZeroSentinel(t *testing.T) {
	node := &MathNode{}

	_, err := node.Execute(context.Background(), domain.NodeInput{
		Inputs: map[string]any{MathInputA: 1.0, MathInputB: 0.0},
		Properties: map[string]any{
			MathPropertyOp: "divide",
		},
	})

	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("err = %v, want ErrDivisionByZero", err)
	}
}
