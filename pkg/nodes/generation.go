package nodes

import (
	"context"
	"errors"

	"github.com/nodecanvas/nodecanvas/pkg/domain"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
)

const (
	GenerationInputPrompt  = "prompt"
	GenerationOutputDone   = "done"
	GenerationOutputResult = "result"
)

var ErrNoGenerationDispatcher = errors.New("no generation dispatcher configured")

var GenerationDefinition = domain.NodeDefinition{
	Type:        domain.NodeType_Generation,
	Name:        "Generation",
	Description: "Dispatches a long-running generation request and suspends until its completion arrives.",
	DataInputs: []domain.PortSpec{
		{Name: GenerationInputPrompt, Default: ""},
	},
	DataOutputs: []string{GenerationOutputResult, "correlation_id"},
	ExecInput:   true,
	ExecOutputs: []string{GenerationOutputDone},
}

type GenerationNodeCreator struct {
	dispatcher domain.GenerationDispatcher
}

func NewGenerationNodeCreator(deps Deps) domain.NodeCreator {
	return &GenerationNodeCreator{
		dispatcher: deps.GenerationDispatcher,
	}
}

func (c *GenerationNodeCreator) CreateNode(ctx context.Context, p domain.CreateNodeParams) (domain.NodeBehavior, error) {
	if c.dispatcher == nil {
		return nil, ErrNoGenerationDispatcher
	}

	return &GenerationNode{
		dispatcher: c.dispatcher,
		phase:      generationPhaseAwaitingDispatch,
	}, nil
}

type generationPhase string

const (
	generationPhaseAwaitingDispatch generationPhase = "awaiting_dispatch"
	generationPhaseAwaitingResult   generationPhase = "awaiting_result"
)

// GenerationNode spans two scheduler cycles: the first invocation dispatches
// the external request and parks itself by returning no exec trigger; the
// second, reached only through the completion bridge, consumes the staged
// payload and resumes downstream propagation. The phase is a per-run state
// machine held on the behavior instance, keyed by the correlation id minted
// at dispatch time.
type GenerationNode struct {
	dispatcher domain.GenerationDispatcher

	phase         generationPhase
	correlationID string
}

func (n *GenerationNode) Execute(ctx context.Context, input domain.NodeInput) (domain.NodeResult, error) {
	if n.phase == generationPhaseAwaitingResult {
		return n.consumeResult(input), nil
	}

	return n.dispatch(ctx, input)
}

func (n *GenerationNode) dispatch(ctx context.Context, input domain.NodeInput) (domain.NodeResult, error) {
	correlationID := xid.New().String()

	request := domain.GenerationRequest{
		WorkflowID:    input.WorkflowID,
		NodeID:        input.NodeID,
		CorrelationID: correlationID,
		Prompt:        input.InputString(GenerationInputPrompt),
		Settings:      input.Properties,
	}

	if err := n.dispatcher.Dispatch(ctx, request); err != nil {
		return domain.NodeResult{}, err
	}

	n.phase = generationPhaseAwaitingResult
	n.correlationID = correlationID

	log.Debug().
		Str("node_id", input.NodeID).
		Str("correlation_id", correlationID).
		Msg("Generation request dispatched")

	// No exec trigger: the node parks itself until the completion
	// notification carrying this correlation id arrives.
	return domain.NodeResult{
		Outputs: map[string]any{
			"correlation_id": correlationID,
		},
		CorrelationID: correlationID,
	}, nil
}

func (n *GenerationNode) consumeResult(input domain.NodeInput) domain.NodeResult {
	correlationID := n.correlationID

	n.phase = generationPhaseAwaitingDispatch
	n.correlationID = ""

	return domain.NodeResult{
		Outputs: map[string]any{
			GenerationOutputResult: input.Inputs[GenerationOutputResult],
			"correlation_id":       correlationID,
		},
		ExecTrigger: GenerationOutputDone,
	}
}
