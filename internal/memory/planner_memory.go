package memory

import (
	"sync"

	"github.com/wintertask/orchestrator/internal/models"
)

// PlannerMemory keeps the in-process history of planning attempts per
// goal, consulted by the meta-planner to decide between ReusePlan,
// ReviseLast and GenerateFresh. Durable persistence of each entry to
// the append-only planner_memory.jsonl log is handled separately: the
// kernel writes it through the persistence package right after adding
// the entry here.
type PlannerMemory struct {
	mu      *sync.Mutex
	history *map[string][]models.PlannerMemoryEntry
}

func NewPlannerMemory() PlannerMemory {
	h := make(map[string][]models.PlannerMemoryEntry)
	return PlannerMemory{mu: &sync.Mutex{}, history: &h}
}

func (p PlannerMemory) AddEntry(goalID string, entry models.PlannerMemoryEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	(*p.history)[goalID] = append((*p.history)[goalID], entry)
}

// GetHistory returns the recorded planning attempts for a goal, in
// the order they were added. The ok result is false if the goal has
// no recorded history yet.
func (p PlannerMemory) GetHistory(goalID string) ([]models.PlannerMemoryEntry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	entries, ok := (*p.history)[goalID]
	if !ok {
		return nil, false
	}
	out := make([]models.PlannerMemoryEntry, len(entries))
	copy(out, entries)
	return out, true
}

func (p PlannerMemory) Clone() PlannerMemory { return p }
