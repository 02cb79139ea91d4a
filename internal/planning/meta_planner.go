// Package planning implements the meta-planner: the pure decision
// function that recommends whether the kernel should reuse the last
// accepted plan, revise it, or generate a fresh one for a goal.
package planning

import "github.com/wintertask/orchestrator/internal/models"

// MetaPlanner recommends a PlanningStrategy for a goal given its
// prior planning history. Implementations must be pure: no I/O, no
// mutation of history.
type MetaPlanner interface {
	RecommendStrategy(goalID string, history []models.PlannerMemoryEntry) models.PlanningStrategy
}

// HeuristicMetaPlanner is the orchestrator's default meta-planner. It
// looks only at the most recent entry for the goal: a high-scoring
// last plan is reused outright; a low-scoring one is revised as long
// as the revision budget has room; otherwise planning starts fresh.
type HeuristicMetaPlanner struct{}

const reuseScoreThreshold = 7
const maxRevisionsBeforeFresh = 3

func (HeuristicMetaPlanner) RecommendStrategy(goalID string, history []models.PlannerMemoryEntry) models.PlanningStrategy {
	if len(history) == 0 {
		return models.GenerateFresh()
	}
	last := history[len(history)-1]

	score := uint8(0)
	if last.Score != nil {
		score = *last.Score
	}
	if score >= reuseScoreThreshold {
		return models.ReusePlan(last.PlanID)
	}

	revision := uint32(0)
	if last.RevisionID != nil {
		revision = *last.RevisionID
	}
	if revision < maxRevisionsBeforeFresh {
		return models.ReviseLast(last.PlanID)
	}

	return models.GenerateFresh()
}
