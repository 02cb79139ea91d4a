package persistence

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wintertask/orchestrator/internal/filelock"
	"github.com/wintertask/orchestrator/internal/models"
)

// AppendToTaskIndex reads the current task index, appends entry, and
// atomically writes the result back, all under a single exclusive
// lock so a concurrent writer can never interleave between the read
// and the write.
func (p Paths) AppendToTaskIndex(entry models.TaskIndexEntry) error {
	return filelock.LockAndModify(p.TaskIndexPath(), func(current []byte) ([]byte, error) {
		var entries []models.TaskIndexEntry
		if len(current) > 0 {
			if err := json.Unmarshal(current, &entries); err != nil {
				return nil, err
			}
		}
		entries = append(entries, entry)
		return json.MarshalIndent(entries, "", "  ")
	})
}

// ReadTaskIndex returns every recorded index entry, or an empty slice
// if the index does not exist yet.
func (p Paths) ReadTaskIndex() ([]models.TaskIndexEntry, error) {
	data, err := os.ReadFile(p.TaskIndexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read task index: %w", err)
	}
	var entries []models.TaskIndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse task index: %w", err)
	}
	return entries, nil
}

// FailedTasks returns the subset of the task index whose status is
// Failed, preserving the original file layout's query for inspecting
// which tasks need attention without reopening every per-task log.
func (p Paths) FailedTasks() ([]models.TaskIndexEntry, error) {
	entries, err := p.ReadTaskIndex()
	if err != nil {
		return nil, err
	}
	var failed []models.TaskIndexEntry
	for _, e := range entries {
		if e.Status == string(models.StatusFailed) {
			failed = append(failed, e)
		}
	}
	return failed, nil
}
