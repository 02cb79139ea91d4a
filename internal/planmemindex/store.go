// Package planmemindex is a SQLite-backed derived query mirror of the
// append-only planner-memory log and the task index. Neither JSON/JSONL
// file supports indexed lookups by goal or status at scale; this store
// ingests them and answers those queries without reparsing the files
// on every call.
//
// The JSON/JSONL files remain the source of truth — this store can
// always be rebuilt from them via Sync. It is derived state, not a
// second place to write from.
package planmemindex

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/wintertask/orchestrator/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// Store wraps a SQLite database holding the derived planner-memory and
// task-index tables.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if necessary) the SQLite database at
// dbPath and ensures its schema is current. dbPath may be ":memory:"
// for ephemeral use in tests.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return store, nil
}

func (s *Store) initSchema() error {
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordPlannerMemoryEntry inserts one planner-memory row.
func (s *Store) RecordPlannerMemoryEntry(ctx context.Context, entry models.PlannerMemoryEntry) error {
	var tagsJSON []byte
	if len(entry.FeedbackTags) > 0 {
		var err error
		tagsJSON, err = json.Marshal(entry.FeedbackTags)
		if err != nil {
			return fmt.Errorf("marshal feedback tags: %w", err)
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO planner_memory_entries
			(plan_id, goal_id, score, status, feedback_tags, revision_id, plan_hash, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.PlanID, entry.GoalID, nullableUint8(entry.Score), entry.Status,
		string(tagsJSON), nullableUint32(entry.RevisionID), entry.PlanHash, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert planner memory entry: %w", err)
	}
	return nil
}

// PlannerHistoryForGoal returns every recorded planner-memory entry for
// a goal, ordered oldest first.
func (s *Store) PlannerHistoryForGoal(ctx context.Context, goalID string) ([]models.PlannerMemoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT plan_id, goal_id, score, status, feedback_tags, revision_id, plan_hash, timestamp
		FROM planner_memory_entries WHERE goal_id = ? ORDER BY id ASC`, goalID)
	if err != nil {
		return nil, fmt.Errorf("query planner history: %w", err)
	}
	defer rows.Close()

	var entries []models.PlannerMemoryEntry
	for rows.Next() {
		var entry models.PlannerMemoryEntry
		var score, revisionID sql.NullInt64
		var tagsJSON sql.NullString
		if err := rows.Scan(&entry.PlanID, &entry.GoalID, &score, &entry.Status, &tagsJSON, &revisionID, &entry.PlanHash, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scan planner memory row: %w", err)
		}
		if score.Valid {
			v := uint8(score.Int64)
			entry.Score = &v
		}
		if revisionID.Valid {
			v := uint32(revisionID.Int64)
			entry.RevisionID = &v
		}
		if tagsJSON.Valid && tagsJSON.String != "" {
			if err := json.Unmarshal([]byte(tagsJSON.String), &entry.FeedbackTags); err != nil {
				return nil, fmt.Errorf("unmarshal feedback tags: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// RecordTaskIndexEntry inserts one task-index row.
func (s *Store) RecordTaskIndexEntry(ctx context.Context, entry models.TaskIndexEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO task_index_entries
			(task_id, agent_id, task_type, status, goal_id, timestamp, revision_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.TaskID, entry.AgentID, entry.TaskType, entry.Status, entry.GoalID,
		entry.Timestamp, nullableUint32(entry.RevisionID),
	)
	if err != nil {
		return fmt.Errorf("insert task index entry: %w", err)
	}
	return nil
}

// TasksByStatus returns every recorded task-index row with the given
// status, most recent first.
func (s *Store) TasksByStatus(ctx context.Context, status string) ([]models.TaskIndexEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT task_id, agent_id, task_type, status, goal_id, timestamp, revision_id
		FROM task_index_entries WHERE status = ? ORDER BY id DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("query task index by status: %w", err)
	}
	defer rows.Close()

	var entries []models.TaskIndexEntry
	for rows.Next() {
		var entry models.TaskIndexEntry
		var revisionID sql.NullInt64
		if err := rows.Scan(&entry.TaskID, &entry.AgentID, &entry.TaskType, &entry.Status, &entry.GoalID, &entry.Timestamp, &revisionID); err != nil {
			return nil, fmt.Errorf("scan task index row: %w", err)
		}
		if revisionID.Valid {
			v := uint32(revisionID.Int64)
			entry.RevisionID = &v
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func nullableUint8(v *uint8) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableUint32(v *uint32) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
