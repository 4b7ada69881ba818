// Package nodes provides the built-in node behaviors and populates a node
// registry with them. Hosts that define their own node types register them
// on the same registry before handing it to an execution.
package nodes

import (
	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

// Deps carries the external collaborators built-in behaviors need. Leaf
// behaviors with real side effects (generation) receive their subsystem
// through here instead of reaching for globals.
type Deps struct {
	GenerationDispatcher domain.GenerationDispatcher
}

type registerParams struct {
	Definition domain.NodeDefinition
	NewCreator func(deps Deps) domain.NodeCreator
}

var registerParamsList = []registerParams{
	{
		Definition: EntryDefinition,
		NewCreator: NewEntryNodeCreator,
	},
	{
		Definition: BranchDefinition,
		NewCreator: NewBranchNodeCreator,
	},
	{
		Definition: WhileLoopDefinition,
		NewCreator: NewWhileLoopNodeCreator,
	},
	{
		Definition: MathDefinition,
		NewCreator: NewMathNodeCreator,
	},
	{
		Definition: StringFormatDefinition,
		NewCreator: NewStringFormatNodeCreator,
	},
	{
		Definition: ScriptDefinition,
		NewCreator: NewScriptNodeCreator,
	},
	{
		Definition: LogDefinition,
		NewCreator: NewLogNodeCreator,
	},
	{
		Definition: GenerationDefinition,
		NewCreator: NewGenerationNodeCreator,
	},
}

// NewRegistry builds a registry holding every built-in node type.
func NewRegistry(deps Deps) domain.NodeRegistry {
	registry := domain.NewNodeRegistry()

	for _, params := range registerParamsList {
		registry.RegisterDefinition(params.Definition)
		registry.RegisterCreator(params.Definition.Type, params.NewCreator(deps))
	}

	return registry
}
