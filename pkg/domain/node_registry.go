package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNodeTypeNotFound = errors.New("node type not found")
)

type SelectNodeParams struct {
	NodeType NodeType
}

// NodeRegistry maps node type identifiers to behavior creators and port
// declarations. It is populated at startup by whichever part of the system
// defines node types and passed into the executor at construction time;
// there is no process-wide registry.
type NodeRegistry interface {
	RegisterCreator(nodeType NodeType, creator NodeCreator)
	RegisterDefinition(definition NodeDefinition)
	SelectCreator(ctx context.Context, params SelectNodeParams) (NodeCreator, error)
	GetDefinition(nodeType NodeType) (NodeDefinition, bool)
	Definitions() []NodeDefinition
}

type nodeRegistry struct {
	creatorsByType    map[NodeType]NodeCreator
	definitionsByType map[NodeType]NodeDefinition
	orderedTypes      []NodeType
}

func NewNodeRegistry() NodeRegistry {
	return &nodeRegistry{
		creatorsByType:    make(map[NodeType]NodeCreator),
		definitionsByType: make(map[NodeType]NodeDefinition),
	}
}

func (r *nodeRegistry) RegisterCreator(nodeType NodeType, creator NodeCreator) {
	r.creatorsByType[nodeType] = creator
}

func (r *nodeRegistry) RegisterDefinition(definition NodeDefinition) {
	if _, exists := r.definitionsByType[definition.Type]; !exists {
		r.orderedTypes = append(r.orderedTypes, definition.Type)
	}

	r.definitionsByType[definition.Type] = definition
}

func (r *nodeRegistry) SelectCreator(ctx context.Context, params SelectNodeParams) (NodeCreator, error) {
	creator, ok := r.creatorsByType[params.NodeType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeTypeNotFound, params.NodeType)
	}

	return creator, nil
}

func (r *nodeRegistry) GetDefinition(nodeType NodeType) (NodeDefinition, bool) {
	definition, ok := r.definitionsByType[nodeType]

	return definition, ok
}

func (r *nodeRegistry) Definitions() []NodeDefinition {
	definitions := make([]NodeDefinition, 0, len(r.orderedTypes))

	for _, nodeType := range r.orderedTypes {
		definitions = append(definitions, r.definitionsByType[nodeType])
	}

	return definitions
}
