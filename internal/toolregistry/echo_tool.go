package toolregistry

import "encoding/json"

// EchoTool repeats whatever input it is given; used by the demo CLI
// harness and by tests that need a trivial, deterministic tool.
type EchoTool struct{}

func (EchoTool) Name() string        { return "echo" }
func (EchoTool) Description() string { return "Repeats whatever input is given" }

func (EchoTool) Run(input json.RawMessage) ToolReturn {
	wrapped, err := json.Marshal(map[string]json.RawMessage{"echoed": input})
	if err != nil {
		return ToolReturn{Status: ToolFailed, Trace: []string{"EchoTool.Run: marshal failed"}}
	}
	return ToolReturn{
		Result: wrapped,
		Status: ToolSuccess,
		Trace:  []string{"EchoTool.Run"},
	}
}
