package persistence

import (
	"encoding/json"

	"github.com/wintertask/orchestrator/internal/filelock"
	"github.com/wintertask/orchestrator/internal/models"
)

// TaskLogEntry is the full record of one task's invocation and
// outcome, written to logs/tasks/<task_id>.json.
type TaskLogEntry struct {
	Timestamp uint64               `json:"timestamp"`
	Task      models.AgentTask     `json:"task"`
	Response  models.AgentResponse `json:"response"`
}

// WriteTaskLog persists a task and its response under the task's own
// ID. Each task ID is globally unique, so a plain atomic write
// (rather than a read-merge-write) is sufficient: no two writers ever
// target the same file concurrently.
func (p Paths) WriteTaskLog(task models.AgentTask, response models.AgentResponse, timestamp uint64) error {
	entry := TaskLogEntry{Timestamp: timestamp, Task: task, Response: response}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	return filelock.LockAndWrite(p.TaskLogPath(task.TaskID), data)
}
