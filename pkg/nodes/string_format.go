package nodes

import (
	"context"
	"fmt"
	"strings"

	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

const (
	StringFormatPropertyTemplate = "template"
	StringFormatOutputOut        = "out"
	StringFormatOutputText       = "text"
)

var StringFormatDefinition = domain.NodeDefinition{
	Type:        domain.NodeType_StringFormat,
	Name:        "String Format",
	Description: "Substitutes {input} placeholders in a template with the node's resolved input values.",
	DataInputs: []domain.PortSpec{
		{Name: "value", Default: ""},
		{Name: "a", Default: ""},
		{Name: "b", Default: ""},
	},
	DataOutputs: []string{StringFormatOutputText},
	ExecInput:   true,
	ExecOutputs: []string{StringFormatOutputOut},
}

type StringFormatNodeCreator struct{}

func NewStringFormatNodeCreator(deps Deps) domain.NodeCreator {
	return &StringFormatNodeCreator{}
}

func (c *StringFormatNodeCreator) CreateNode(ctx context.Context, p domain.CreateNodeParams) (domain.NodeBehavior, error) {
	return &StringFormatNode{}, nil
}

type StringFormatNode struct{}

func (n *StringFormatNode) Execute(ctx context.Context, input domain.NodeInput) (domain.NodeResult, error) {
	template := input.PropertyString(StringFormatPropertyTemplate)

	text := template

	for name, value := range input.Inputs {
		placeholder := "{" + name + "}"

		if !strings.Contains(text, placeholder) {
			continue
		}

		text = strings.ReplaceAll(text, placeholder, fmt.Sprintf("%v", value))
	}

	return domain.NodeResult{
		Outputs: map[string]any{
			StringFormatOutputText: text,
		},
		ExecTrigger: StringFormatOutputOut,
	}, nil
}
