package models

// StrategyKind is the closed set of planning strategies the
// meta-planner can recommend; the planner may override the
// recommendation.
type StrategyKind string

const (
	StrategyReusePlan    StrategyKind = "ReusePlan"
	StrategyReviseLast   StrategyKind = "ReviseLast"
	StrategyGenerateFresh StrategyKind = "GenerateFresh"
)

// PlanningStrategy carries the plan_id payload for ReusePlan/ReviseLast.
type PlanningStrategy struct {
	Kind   StrategyKind `json:"kind"`
	PlanID string       `json:"plan_id,omitempty"`
}

func ReusePlan(planID string) PlanningStrategy {
	return PlanningStrategy{Kind: StrategyReusePlan, PlanID: planID}
}

func ReviseLast(planID string) PlanningStrategy {
	return PlanningStrategy{Kind: StrategyReviseLast, PlanID: planID}
}

func GenerateFresh() PlanningStrategy {
	return PlanningStrategy{Kind: StrategyGenerateFresh}
}

// PlannerOutput is carried inside AgentOutput.Content when the
// producer is the planner.
type PlannerOutput struct {
	PlanID         string           `json:"plan_id"`
	TaskGraph      []AgentTask      `json:"task_graph"`
	Score          *uint8           `json:"score,omitempty"`
	FeedbackNotes  string           `json:"feedback_notes,omitempty"`
	RevisionID     *uint32          `json:"revision_id,omitempty"`
	StrategyUsed   PlanningStrategy `json:"strategy_used"`
}
