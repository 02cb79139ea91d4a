package toolregistry

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileTool reads from and writes to the local file system. Path and
// action are taken from the input payload; agents decide what paths
// are safe to touch.
type FileTool struct{}

func (FileTool) Name() string        { return "FileTool" }
func (FileTool) Description() string { return "Reads from and writes to the file system" }

type fileToolInput struct {
	Action  string `json:"action"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

func (FileTool) Run(input json.RawMessage) ToolReturn {
	var in fileToolInput
	if err := json.Unmarshal(input, &in); err != nil {
		return ToolReturn{Status: ToolFailed, Trace: []string{"FileTool.Run: invalid input"}}
	}
	if in.Action == "" {
		in.Action = "read"
	}
	if in.Path == "" {
		return ToolReturn{Status: ToolFailed, Trace: []string{"FileTool.Run: missing path"}}
	}

	switch in.Action {
	case "read":
		content, err := os.ReadFile(in.Path)
		if err != nil {
			return ToolReturn{Status: ToolFailed, Trace: []string{err.Error()}}
		}
		result, _ := json.Marshal(map[string]string{"content": string(content)})
		return ToolReturn{Result: result, Status: ToolSuccess, Trace: []string{fmt.Sprintf("Read from file: %s", in.Path)}}

	case "write":
		if err := os.WriteFile(in.Path, []byte(in.Content), 0o644); err != nil {
			return ToolReturn{Status: ToolFailed, Trace: []string{err.Error()}}
		}
		result, _ := json.Marshal(map[string]string{"message": "File written successfully"})
		return ToolReturn{Result: result, Status: ToolSuccess, Trace: []string{fmt.Sprintf("Wrote to file: %s", in.Path)}}

	default:
		return ToolReturn{Status: ToolFailed, Trace: []string{"FileTool.Run: unsupported action"}}
	}
}
