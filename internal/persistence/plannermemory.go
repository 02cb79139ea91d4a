package persistence

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/wintertask/orchestrator/internal/filelock"
	"github.com/wintertask/orchestrator/internal/models"
)

// AppendPlannerMemoryEntry appends one line to the append-only
// planner-memory JSONL log, durable proof of every planning attempt
// independent of the in-process memory.PlannerMemory history.
func (p Paths) AppendPlannerMemoryEntry(entry models.PlannerMemoryEntry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return filelock.LockAndAppendLine(p.PlannerMemoryLogPath(), line)
}

// ReadPlannerMemoryLog replays the entire JSONL log into memory. Used
// by tooling and tests; the kernel itself relies on
// memory.PlannerMemory for in-process lookups.
func (p Paths) ReadPlannerMemoryLog() ([]models.PlannerMemoryEntry, error) {
	f, err := os.Open(p.PlannerMemoryLogPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []models.PlannerMemoryEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry models.PlannerMemoryEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
