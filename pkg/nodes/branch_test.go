package nodes

import (
	"context"
	"testing"

	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

func TestBranchNodeTriggersExactlyOneOutput(t *testing.T) {
	tests := []struct {
		name      string
		condition any
		expected  string
	}{
		{name: "bool true", condition: true, expected: BranchOutputTrue},
		{name: "bool false", condition: false, expected: BranchOutputFalse},
		{name: "nonzero number", condition: 42.0, expected: BranchOutputTrue},
		{name: "zero number", condition: 0, expected: BranchOutputFalse},
		{name: "truthy string", condition: "yes", expected: BranchOutputTrue},
		{name: "other string", condition: "nope", expected: BranchOutputFalse},
		{name: "missing condition", condition: nil, expected: BranchOutputFalse},
		{name: "non-coercible value", condition: []any{"x"}, expected: BranchOutputFalse},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node := &BranchNode{}

			result, err := node.Execute(context.Background(), domain.NodeInput{
				NodeID: "branch-1",
				Inputs: map[string]any{BranchInputCondition: test.condition},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.ExecTrigger != test.expected {
				t.Errorf("trigger = %q, want %q", result.ExecTrigger, test.expected)
			}

			if !BranchDefinition.HasExecOutput(result.ExecTrigger) {
				t.Errorf("trigger %q is not a declared exec output", result.ExecTrigger)
			}
		})
	}
}
