package models

// FeedbackItem is task-level feedback that may recommend a retry.
type FeedbackItem struct {
	TaskID            string    `json:"task_id"`
	OriginalTask      AgentTask `json:"original_task"`
	EvaluationNotes   string    `json:"evaluation_notes"`
	Score             *uint8    `json:"score,omitempty"`
	RetryRecommended  bool      `json:"retry_recommended"`
}

// PlanFeedbackAction is the critic's disposition on a rejected plan.
type PlanFeedbackAction string

const (
	PlanActionRevise  PlanFeedbackAction = "Revise"
	PlanActionReplan  PlanFeedbackAction = "Replan"
	PlanActionReject  PlanFeedbackAction = "Reject"
)

// PlanFeedbackItem is appended by the critic when it rejects a plan.
type PlanFeedbackItem struct {
	PlanID string             `json:"plan_id"`
	GoalID string             `json:"goal_id"`
	Notes  []EvaluationNote   `json:"notes"`
	Score  *uint8             `json:"score,omitempty"`
	Action PlanFeedbackAction `json:"action"`
}
