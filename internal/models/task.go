package models

// TaskContext threads goal/lineage identifiers through a task's life.
// GoalID identifies the root user goal; ParentTaskID chains subtasks;
// RetryOf points at a failed prior attempt; RevisionID counts planner
// revisions for the same goal.
type TaskContext struct {
	Origin       string  `json:"origin"`
	GoalID       *string `json:"goal_id,omitempty"`
	ParentTaskID *string `json:"parent_task_id,omitempty"`
	RetryOf      *string `json:"retry_of,omitempty"`
	RevisionID   *uint32 `json:"revision_id,omitempty"`
}

// Clone returns a deep copy of the context so callers can mutate the
// copy without affecting the original (agents must not mutate the
// task they are given).
func (c TaskContext) Clone() TaskContext {
	out := TaskContext{Origin: c.Origin}
	if c.GoalID != nil {
		v := *c.GoalID
		out.GoalID = &v
	}
	if c.ParentTaskID != nil {
		v := *c.ParentTaskID
		out.ParentTaskID = &v
	}
	if c.RetryOf != nil {
		v := *c.RetryOf
		out.RetryOf = &v
	}
	if c.RevisionID != nil {
		v := *c.RevisionID
		out.RevisionID = &v
	}
	return out
}

// StatusKind is the closed set of states a task can occupy. Status
// advances monotonically along Pending -> Running -> (Succeeded |
// Failed | Retried); it never moves backward.
type StatusKind string

const (
	StatusPending   StatusKind = "Pending"
	StatusRunning   StatusKind = "Running"
	StatusSucceeded StatusKind = "Succeeded"
	StatusFailed    StatusKind = "Failed"
	// StatusRetried is a bookkeeping marker kept for API completeness;
	// the kernel never assigns it to a parent task — see DESIGN.md
	// Open Question resolution #2. A future executor that tracks retry
	// lineage explicitly on the parent can construct it.
	StatusRetried StatusKind = "Retried"
)

// TaskStatus carries the discriminated-union payload for Failed and
// Retried alongside the kind.
type TaskStatus struct {
	Kind        StatusKind `json:"kind"`
	Reason      string     `json:"reason,omitempty"`       // set when Kind == StatusFailed
	PreviousID  string     `json:"previous_id,omitempty"`   // set when Kind == StatusRetried
}

func Pending() TaskStatus   { return TaskStatus{Kind: StatusPending} }
func Running() TaskStatus   { return TaskStatus{Kind: StatusRunning} }
func Succeeded() TaskStatus { return TaskStatus{Kind: StatusSucceeded} }
func Failed(reason string) TaskStatus {
	return TaskStatus{Kind: StatusFailed, Reason: reason}
}
func Retried(previousID string) TaskStatus {
	return TaskStatus{Kind: StatusRetried, PreviousID: previousID}
}

// AgentTask is a unit of work routed through the kernel. TaskID must
// be globally unique across the process lifetime (any RFC-4122 v4
// source is acceptable).
type AgentTask struct {
	TaskID   string      `json:"task_id"`
	TaskType string      `json:"task_type"`
	Payload  string      `json:"payload"`
	Context  TaskContext `json:"context"`
	Status   TaskStatus  `json:"status"`
}

// Clone returns a deep copy suitable for handing to an agent handler,
// which must not mutate the task it receives.
func (t AgentTask) Clone() AgentTask {
	return AgentTask{
		TaskID:   t.TaskID,
		TaskType: t.TaskType,
		Payload:  t.Payload,
		Context:  t.Context.Clone(),
		Status:   t.Status,
	}
}
