// Package models defines the typed records that flow through the
// orchestrator kernel: tasks, plans, responses, feedback, and the
// capability taxonomy that routes tasks to agents.
package models

import "fmt"

// Capability is the closed set of task kinds the orchestrator can route.
// An unknown string never becomes a Capability; ParseCapability returns
// an error instead of a zero value so routing failures are explicit.
type Capability string

const (
	CapabilityPlanning      Capability = "planning"
	CapabilityEvaluation    Capability = "evaluation"
	CapabilityCodeGen       Capability = "codegen"
	CapabilityTesting       Capability = "testing"
	CapabilityDocumentation Capability = "documentation"
	CapabilityRefactoring   Capability = "refactoring"
	CapabilityScaffolding   Capability = "scaffolding"
	CapabilityDeployment    Capability = "deployment"
	CapabilitySecurity      Capability = "security"
	CapabilityRepoAnalysis  Capability = "repo_analysis"
	CapabilityRequirements  Capability = "requirements"
	CapabilityArchitecture  Capability = "architecture"
	CapabilityFileAccess    Capability = "file_access"
	CapabilityGitOps        Capability = "git_ops"
	CapabilitySearch        Capability = "search"
	CapabilityResearch      Capability = "research"
	CapabilityReasoning     Capability = "reasoning"
	CapabilityClarification Capability = "clarification"
	CapabilityGreeting      Capability = "greeting"
)

var validCapabilities = map[Capability]bool{
	CapabilityPlanning:      true,
	CapabilityEvaluation:    true,
	CapabilityCodeGen:       true,
	CapabilityTesting:       true,
	CapabilityDocumentation: true,
	CapabilityRefactoring:   true,
	CapabilityScaffolding:   true,
	CapabilityDeployment:    true,
	CapabilitySecurity:      true,
	CapabilityRepoAnalysis:  true,
	CapabilityRequirements:  true,
	CapabilityArchitecture:  true,
	CapabilityFileAccess:    true,
	CapabilityGitOps:        true,
	CapabilitySearch:        true,
	CapabilityResearch:      true,
	CapabilityReasoning:     true,
	CapabilityClarification: true,
	CapabilityGreeting:      true,
}

// ParseCapability parses a task_type string into a Capability. An
// unrecognized string is a hard routing failure, not a default.
func ParseCapability(taskType string) (Capability, error) {
	cap := Capability(taskType)
	if !validCapabilities[cap] {
		return "", fmt.Errorf("unknown task type or capability: %q", taskType)
	}
	return cap, nil
}

// ExecutionMode is advisory: the kernel forwards it in the agent card
// without branching on it.
type ExecutionMode string

const (
	ExecutionSimulate ExecutionMode = "simulate"
	ExecutionDryRun   ExecutionMode = "dry_run"
	ExecutionExecute  ExecutionMode = "execute"
)

// SkillGraph is a single-layer capability claim: a handler claims a
// task iff Root matches or the task's capability is in Subskills.
//
// NOTE: a future phase may promote this to a HashMap-based graph for
// subskill matching and agent chaining introspection; this flat form
// keeps capability matching simple while the kernel runs single-layer.
type SkillGraph struct {
	Root      Capability   `json:"root"`
	Subskills []Capability `json:"subskills,omitempty"`
}

// Matches reports whether the graph claims the given capability.
func (g SkillGraph) Matches(cap Capability) bool {
	if g.Root == cap {
		return true
	}
	for _, sub := range g.Subskills {
		if sub == cap {
			return true
		}
	}
	return false
}

// AgentCard is the immutable-after-registration metadata an agent
// publishes to the registry.
type AgentCard struct {
	ID               string        `json:"id"`
	Description      string        `json:"description"`
	Skills           SkillGraph    `json:"skills"`
	InputSchema      string        `json:"input_schema,omitempty"`
	OutputSchema     string        `json:"output_schema,omitempty"`
	DefaultExecution ExecutionMode `json:"default_execution"`
}
