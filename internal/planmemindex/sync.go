package planmemindex

import (
	"context"
	"fmt"

	"github.com/wintertask/orchestrator/internal/persistence"
)

// Sync rebuilds the derived tables from the JSON/JSONL files under
// paths. It is additive — callers that want a clean rebuild should
// point NewStore at a fresh dbPath first — and safe to run repeatedly
// against a freshly opened store.
func Sync(ctx context.Context, store *Store, paths persistence.Paths) error {
	entries, err := paths.ReadPlannerMemoryLog()
	if err != nil {
		return fmt.Errorf("read planner memory log: %w", err)
	}
	for _, entry := range entries {
		if err := store.RecordPlannerMemoryEntry(ctx, entry); err != nil {
			return err
		}
	}

	indexEntries, err := paths.ReadTaskIndex()
	if err != nil {
		return fmt.Errorf("read task index: %w", err)
	}
	for _, entry := range indexEntries {
		if err := store.RecordTaskIndexEntry(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}
