package toolregistry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolRegistryRegisterAndGet(t *testing.T) {
	r := NewToolRegistry()
	r.RegisterTool(EchoTool{})
	r.RegisterTool(FileTool{})

	tool, ok := r.Get("echo")
	require.True(t, ok)
	assert.Equal(t, "echo", tool.Name())

	_, ok = r.Get("missing")
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"echo", "FileTool"}, r.All())
}

func TestEchoToolRun(t *testing.T) {
	tool := EchoTool{}
	ret := tool.Run(json.RawMessage(`"hello"`))
	assert.Equal(t, ToolSuccess, ret.Status)
	assert.JSONEq(t, `{"echoed":"hello"}`, string(ret.Result))
}

func TestFileToolReadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	tool := FileTool{}

	writeInput, _ := json.Marshal(map[string]string{"action": "write", "path": path, "content": "hi"})
	ret := tool.Run(writeInput)
	require.Equal(t, ToolSuccess, ret.Status)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))

	readInput, _ := json.Marshal(map[string]string{"action": "read", "path": path})
	ret = tool.Run(readInput)
	require.Equal(t, ToolSuccess, ret.Status)
	assert.JSONEq(t, `{"content":"hi"}`, string(ret.Result))
}

func TestFileToolMissingPath(t *testing.T) {
	tool := FileTool{}
	ret := tool.Run(json.RawMessage(`{"action":"read"}`))
	assert.Equal(t, ToolFailed, ret.Status)
}

func TestFileToolUnsupportedAction(t *testing.T) {
	tool := FileTool{}
	ret := tool.Run(json.RawMessage(`{"action":"delete","path":"x"}`))
	assert.Equal(t, ToolFailed, ret.Status)
}
