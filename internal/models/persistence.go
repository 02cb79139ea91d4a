package models

// PlannerMemoryEntry is one row in a goal's planner-memory history.
// PlanHash is the hex-encoded SHA-256 of the task graph's JSON
// serialization (see internal/planhash); identical task graphs yield
// identical hashes, enabling dedup and reuse lookup.
type PlannerMemoryEntry struct {
	PlanID        string   `json:"plan_id"`
	GoalID        string   `json:"goal_id,omitempty"`
	Score         *uint8   `json:"score,omitempty"`
	Status        string   `json:"status"`
	FeedbackTags  []string `json:"feedback_tags,omitempty"`
	RevisionID    *uint32  `json:"revision_id,omitempty"`
	PlanHash      string   `json:"plan_hash,omitempty"`
	Timestamp     uint64   `json:"timestamp"`
}

// TaskIndexEntry is one row in the global, read-merge-write task index.
// It allows a timeline viewer fast search/filter by task and metadata
// without opening the full per-task logs.
type TaskIndexEntry struct {
	TaskID     string  `json:"task_id"`
	AgentID    string  `json:"agent_id"`
	TaskType   string  `json:"task_type"`
	Status     string  `json:"status"`
	GoalID     string  `json:"goal_id,omitempty"`
	Timestamp  uint64  `json:"timestamp"`
	RevisionID *uint32 `json:"revision_id,omitempty"`
}

// TimelineEventKind discriminates the TimelineEvent union.
type TimelineEventKind string

const (
	TimelineEventTask     TimelineEventKind = "Task"
	TimelineEventDecision TimelineEventKind = "Decision"
)

// TimelineEvent is one entry in a goal's append-only execution
// timeline. Exactly the fields relevant to Kind are populated.
type TimelineEvent struct {
	Type TimelineEventKind `json:"type"`

	// Task fields
	TaskID   string `json:"task_id,omitempty"`
	TaskType string `json:"task_type,omitempty"`
	Status   string `json:"status,omitempty"`
	AgentID  string `json:"agent_id,omitempty"`

	// Decision fields
	ID        string `json:"id,omitempty"`
	Summary   string `json:"summary,omitempty"`
	MadeBy    string `json:"made_by,omitempty"`
	Rationale string `json:"rationale,omitempty"`

	Timestamp uint64 `json:"timestamp"`
}

// DesignDecision records a strategic choice made during plan
// execution, summarized for project memory and the timeline.
//
// Timestamp is deliberately an RFC3339-ish string rather than an
// epoch integer, matching the asymmetry in the original source this
// spec was distilled from (see SPEC_FULL.md §11.5) rather than
// silently normalizing it away.
type DesignDecision struct {
	ID        string `json:"id"`
	Summary   string `json:"summary"`
	MadeBy    string `json:"made_by"`
	Rationale string `json:"rationale"`
	Timestamp string `json:"timestamp"`
}
