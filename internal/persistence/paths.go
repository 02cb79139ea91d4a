// Package persistence writes the orchestrator's durable state: one
// JSON file per completed task, a read-merge-write task index for
// fast search, append-only feedback queues, per-goal timelines, and
// an append-only planner-memory log. Every write goes through
// internal/filelock so concurrent goroutines and processes never
// observe a torn file.
//
// All of this is best-effort: a failed persistence write is logged
// and swallowed by the kernel rather than failing the task it
// describes (see internal/executor).
package persistence

import "path/filepath"

// Paths resolves every on-disk location under a single data root
// (typically ~/WinterData, see internal/config).
type Paths struct {
	Root string
}

func NewPaths(root string) Paths { return Paths{Root: root} }

func (p Paths) TaskLogPath(taskID string) string {
	return filepath.Join(p.Root, "logs", "tasks", taskID+".json")
}

func (p Paths) TaskIndexPath() string {
	return filepath.Join(p.Root, "logs", "task_index.json")
}

func (p Paths) FeedbackQueuePath() string {
	return filepath.Join(p.Root, "feedback_queue.json")
}

func (p Paths) PlanFeedbackQueuePath() string {
	return filepath.Join(p.Root, "plan_feedback_queue.json")
}

func (p Paths) ProjectDir(goalID string) string {
	return filepath.Join(p.Root, "projects", goalID)
}

func (p Paths) TimelinePath(goalID string) string {
	return filepath.Join(p.ProjectDir(goalID), "timeline.json")
}

func (p Paths) PlannerMemoryLogPath() string {
	return filepath.Join(p.Root, "memory", "planner_memory.jsonl")
}
