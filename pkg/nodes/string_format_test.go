package nodes

import (
	"context"
	"testing"

	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

func TestStringFormatNode(t *testing.T) {
	tests := []struct {
		name     string
		template string
		inputs   map[string]any
		expected string
	}{
		{
			name:     "single placeholder",
			template: "value is {value}",
			inputs:   map[string]any{"value": "blue"},
			expected: "value is blue",
		},
		{
			name:     "multiple placeholders",
			template: "{a} + {b}",
			inputs:   map[string]any{"a": 1.0, "b": 2.0},
			expected: "1 + 2",
		},
		{
			name:     "unreferenced inputs are ignored",
			template: "just text",
			inputs:   map[string]any{"value": "x"},
			expected: "just text",
		},
		{
			name:     "repeated placeholder",
			template: "{value} and {value}",
			inputs:   map[string]any{"value": "again"},
			expected: "again and again",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node := &StringFormatNode{}

			result, err := node.Execute(context.Background(), domain.NodeInput{
				NodeID: "fmt-1",
				Inputs: test.inputs,
				Properties: map[string]any{
					StringFormatPropertyTemplate: test.template,
				},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Outputs[StringFormatOutputText] != test.expected {
				t.Errorf("text = %q, want %q", result.Outputs[StringFormatOutputText], test.expected)
			}
		})
	}
}
