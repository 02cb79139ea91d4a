package memory

import (
	"sync"

	"github.com/wintertask/orchestrator/internal/models"
)

// GlobalMemory is an append-only, tag-searchable store of facts that
// outlive any single goal or session. Entries are never mutated or
// removed in-process. The store lives in memory only; nothing in this
// module writes it to disk.
type GlobalMemory struct {
	mu      *sync.Mutex
	entries *[]models.GlobalMemoryEntry
}

func NewGlobalMemory() GlobalMemory {
	entries := make([]models.GlobalMemoryEntry, 0)
	return GlobalMemory{mu: &sync.Mutex{}, entries: &entries}
}

func (g GlobalMemory) Insert(entry models.GlobalMemoryEntry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	*g.entries = append(*g.entries, entry)
}

// SearchByTag returns every entry carrying the given tag, in
// insertion order.
func (g GlobalMemory) SearchByTag(tag string) []models.GlobalMemoryEntry {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []models.GlobalMemoryEntry
	for _, e := range *g.entries {
		for _, t := range e.Tags {
			if t == tag {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

func (g GlobalMemory) All() []models.GlobalMemoryEntry {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.GlobalMemoryEntry, len(*g.entries))
	copy(out, *g.entries)
	return out
}

func (g GlobalMemory) Clone() GlobalMemory { return g }
