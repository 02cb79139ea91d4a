// Package planhash computes a stable content hash over a task graph,
// used to dedup and reuse plans with identical structure.
package planhash

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/wintertask/orchestrator/internal/models"
)

// Calculate returns the SHA-256 hex digest of the task graph's JSON
// serialization. Go's encoding/json marshals struct fields in their
// declared order, so identical task graphs always serialize
// identically and hash identically, regardless of which goroutine
// produced them. A nil graph hashes the same as an empty one.
func Calculate(taskGraph []models.AgentTask) string {
	if taskGraph == nil {
		taskGraph = []models.AgentTask{}
	}
	serialized, err := json.Marshal(taskGraph)
	if err != nil {
		serialized = nil
	}
	sum := sha256.Sum256(serialized)
	return hex.EncodeToString(sum[:])
}
