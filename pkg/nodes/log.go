package nodes

import (
	"context"

	"github.com/nodecanvas/nodecanvas/pkg/domain"

	"github.com/rs/zerolog/log"
)

const (
	LogInputMessage = "message"
	LogOutputOut    = "out"
)

var LogDefinition = domain.NodeDefinition{
	Type:        domain.NodeType_Log,
	Name:        "Log",
	Description: "Writes its message input to the structured log and passes control through.",
	DataInputs: []domain.PortSpec{
		{Name: LogInputMessage, Default: ""},
	},
	ExecInput:   true,
	ExecOutputs: []string{LogOutputOut},
}

type LogNodeCreator struct{}

func NewLogNodeCreator(deps Deps) domain.NodeCreator {
	return &LogNodeCreator{}
}

func (c *LogNodeCreator) CreateNode(ctx context.Context, p domain.CreateNodeParams) (domain.NodeBehavior, error) {
	return &LogNode{}, nil
}

type LogNode struct{}

func (n *LogNode) Execute(ctx context.Context, input domain.NodeInput) (domain.NodeResult, error) {
	log.Info().
		Str("node_id", input.NodeID).
		Interface("message", input.Inputs[LogInputMessage]).
		Msg("Workflow log node")

	return domain.NodeResult{
		Outputs:     map[string]any{},
		ExecTrigger: LogOutputOut,
	}, nil
}
