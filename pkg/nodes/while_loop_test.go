package nodes

import (
	"context"
	"testing"

	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

func TestWhileLoopNodeCompletesIffConditionFalse(t *testing.T) {
	node := &WhileLoopNode{}
	ctx := context.Background()

	conditions := []any{true, "yes", 1, false}
	expectedTriggers := []string{
		WhileLoopOutputLoopBody,
		WhileLoopOutputLoopBody,
		WhileLoopOutputLoopBody,
		WhileLoopOutputCompleted,
	}

	for i, condition := range conditions {
		result, err := node.Execute(ctx, domain.NodeInput{
			NodeID: "while-1",
			Inputs: map[string]any{WhileLoopInputCondition: condition},
		})
		if err != nil {
			t.Fatalf("invocation %d: unexpected error: %v", i, err)
		}

		if result.ExecTrigger != expectedTriggers[i] {
			t.Errorf("invocation %d: trigger = %q, want %q", i, result.ExecTrigger, expectedTriggers[i])
		}
	}

	// Outputs reflect the final invocation only.
	result, err := node.Execute(ctx, domain.NodeInput{
		NodeID: "while-1",
		Inputs: map[string]any{WhileLoopInputCondition: false},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Outputs["condition"] != false {
		t.Errorf("final condition output = %v, want false", result.Outputs["condition"])
	}

	if result.Outputs["iterations"] != 3 {
		t.Errorf("iterations output = %v, want 3", result.Outputs["iterations"])
	}
}
