// Package registry holds the agent registry: the ordered list of
// agents the kernel can route a task to, matched deterministically by
// capability.
package registry

import (
	"github.com/wintertask/orchestrator/internal/agentcontext"
	"github.com/wintertask/orchestrator/internal/models"
)

// Handler is implemented by every agent that can accept a routed
// task. Implementations must be safe for concurrent use, since the
// kernel may invoke the same agent for unrelated tasks concurrently.
type Handler interface {
	HandleTask(task models.AgentTask, ctx agentcontext.AgentContext) models.AgentResponse
}

// AgentMetadata pairs an agent's advertised card with its handler.
type AgentMetadata struct {
	Card    models.AgentCard
	Handler Handler
}

// AgentRegistry is the ordered set of agents the kernel can route to.
// Registration order matters: FindAgentForTask returns the first
// match, so more specific agents should register before general ones
// that could also claim the same capability.
type AgentRegistry struct {
	agents []AgentMetadata
}

func NewAgentRegistry() *AgentRegistry {
	return &AgentRegistry{}
}

func (r *AgentRegistry) Register(card models.AgentCard, handler Handler) {
	r.agents = append(r.agents, AgentMetadata{Card: card, Handler: handler})
}

// FindAgentForTask returns the first registered agent whose skill
// graph matches cap, or false if none does.
func (r *AgentRegistry) FindAgentForTask(cap models.Capability) (AgentMetadata, bool) {
	for _, a := range r.agents {
		if a.Card.Skills.Matches(cap) {
			return a, true
		}
	}
	return AgentMetadata{}, false
}

// AllCards returns every registered agent's card, in registration
// order.
func (r *AgentRegistry) AllCards() []models.AgentCard {
	out := make([]models.AgentCard, len(r.agents))
	for i, a := range r.agents {
		out[i] = a.Card
	}
	return out
}
