// Package agentcontext defines AgentContext, the bundle of memory
// handles and the tool registry threaded through every task
// invocation. It is factored into its own package so both the agent
// registry (which declares the Handler interface in terms of it) and
// the executor kernel (which constructs and mutates it) can depend on
// it without an import cycle.
package agentcontext

import (
	"github.com/wintertask/orchestrator/internal/memory"
	"github.com/wintertask/orchestrator/internal/toolregistry"
)

// AgentContext is handed to every agent invocation. It is a value
// type: copying it shares the underlying memory stores (each memory
// handle is itself cheap to clone) while allowing per-call fields —
// none yet, but this keeps the door open — to vary independently.
type AgentContext struct {
	Task          memory.TaskMemory
	Session       memory.SessionMemory
	Project       memory.ProjectMemory
	Global        memory.GlobalMemory
	PlannerMemory memory.PlannerMemory
	Tools         *toolregistry.ToolRegistry
}

// Clone returns a context sharing the same underlying stores. Safe to
// pass to subtask invocations: writes from a subtask are visible to
// the parent's continuation, matching the behavior of the recursive
// kernel's shared task memory.
func (c AgentContext) Clone() AgentContext {
	return AgentContext{
		Task:          c.Task.Clone(),
		Session:       c.Session.Clone(),
		Project:       c.Project,
		Global:        c.Global.Clone(),
		PlannerMemory: c.PlannerMemory.Clone(),
		Tools:         c.Tools,
	}
}
