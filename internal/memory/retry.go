package memory

import (
	"encoding/json"

	"github.com/wintertask/orchestrator/internal/models"
)

// RetryDepth walks a task's RetryOf chain through previously persisted
// task snapshots in mem (each stored as JSON, keyed by task ID), and
// returns how many retries deep it sits. A task with no RetryOf has
// depth zero.
func RetryDepth(task models.AgentTask, mem TaskMemory) int {
	depth := 0
	current := task.Context.RetryOf
	for current != nil {
		depth++
		raw, ok := mem.Load(*current)
		if !ok {
			break
		}
		var prev models.AgentTask
		if err := json.Unmarshal([]byte(raw), &prev); err != nil {
			break
		}
		current = prev.Context.RetryOf
	}
	return depth
}
