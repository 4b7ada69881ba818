package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nodecanvas/nodecanvas/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWorkflowFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "workflow.json")

	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestLoadWorkflow(t *testing.T) {
	path := writeWorkflowFile(t, `{
		"id": "wf-1",
		"name": "Demo",
		"nodes": [
			{"id": "start", "type": "entry"},
			{"id": "sum", "type": "math", "properties": {"operation": "add", "a": 1, "b": 2}}
		],
		"connections": [
			{"source_node": "start", "source_port": "out", "target_node": "sum", "target_port": "exec", "kind": "exec"},
			{"source_node": "start", "source_port": "payload", "target_node": "sum", "target_port": "a", "kind": "data"}
		]
	}`)

	workflow, err := LoadWorkflow(path)
	require.NoError(t, err)

	assert.Equal(t, "wf-1", workflow.ID)
	assert.Equal(t, "Demo", workflow.Name)

	require.Len(t, workflow.Nodes, 2)
	assert.Equal(t, domain.NodeType_Entry, workflow.Nodes[0].Type)
	assert.Equal(t, "wf-1", workflow.Nodes[0].WorkflowID)
	assert.NotNil(t, workflow.Nodes[0].Properties)
	assert.Equal(t, "add", workflow.Nodes[1].Properties["operation"])

	require.Len(t, workflow.Connections, 2)
	assert.Equal(t, domain.PortKindExec, workflow.Connections[0].Kind)
	assert.Equal(t, domain.PortKindData, workflow.Connections[1].Kind)
}

func TestLoadWorkflowInfersConnectionKind(t *testing.T) {
	path := writeWorkflowFile(t, `{
		"nodes": [
			{"id": "a", "type": "entry"},
			{"id": "b", "type": "log"}
		],
		"connections": [
			{"source_node": "a", "source_port": "out", "target_node": "b", "target_port": "exec"},
			{"source_node": "a", "source_port": "payload", "target_node": "b", "target_port": "message"}
		]
	}`)

	workflow, err := LoadWorkflow(path)
	require.NoError(t, err)

	require.Len(t, workflow.Connections, 2)
	assert.Equal(t, domain.PortKindExec, workflow.Connections[0].Kind)
	assert.Equal(t, domain.PortKindData, workflow.Connections[1].Kind)

	// A file without an id gets one assigned.
	assert.NotEmpty(t, workflow.ID)
}

func TestLoadWorkflowErrors(t *testing.T) {
	_, err := LoadWorkflow(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadWorkflow(writeWorkflowFile(t, `{not json`))
	assert.Error(t, err)

	_, err = LoadWorkflow(writeWorkflowFile(t, `{"nodes": [{"type": "entry"}]}`))
	assert.Error(t, err)
}
