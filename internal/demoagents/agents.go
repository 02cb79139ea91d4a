// Package demoagents provides a minimal set of agent handlers used by
// the CLI harness and as worked examples of the registry.Handler
// contract: a greeter, a planner, a critic, a code-generation agent
// that exercises the tool registry, and a documentation agent.
package demoagents

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wintertask/orchestrator/internal/agentcontext"
	"github.com/wintertask/orchestrator/internal/models"
	"github.com/wintertask/orchestrator/internal/registry"
	"github.com/wintertask/orchestrator/internal/toolregistry"
)

// Greeter responds to greeting-capability tasks with a fixed message.
// It is the simplest possible handler: no memory reads, no tools, no
// subtasks.
type Greeter struct{}

func (Greeter) HandleTask(task models.AgentTask, ctx agentcontext.AgentContext) models.AgentResponse {
	content, _ := json.Marshal(map[string]string{"message": "Hello, " + task.Payload})
	return models.Success(models.AgentOutput{ProducedBy: "greeter-agent", Content: content})
}

func GreeterCard() models.AgentCard {
	return models.AgentCard{
		ID:          "greeter-agent",
		Description: "Responds to greeting tasks.",
		Skills:      models.SkillGraph{Root: models.CapabilityGreeting},
	}
}

// Planner produces a two-step task graph: a code-generation task
// followed by a documentation task, wrapped in a PlannerOutput for the
// kernel's plan-interception step to pick up.
type Planner struct{}

func (Planner) HandleTask(task models.AgentTask, ctx agentcontext.AgentContext) models.AgentResponse {
	goalCtx := task.Context.Clone()
	graph := []models.AgentTask{
		{TaskID: uuid.NewString(), TaskType: string(models.CapabilityCodeGen), Payload: task.Payload, Context: goalCtx, Status: models.Pending()},
		{TaskID: uuid.NewString(), TaskType: string(models.CapabilityDocumentation), Payload: task.Payload, Context: goalCtx, Status: models.Pending()},
	}
	plan := models.PlannerOutput{
		PlanID:       uuid.NewString(),
		TaskGraph:    graph,
		StrategyUsed: models.GenerateFresh(),
	}
	content, err := json.Marshal(plan)
	if err != nil {
		return models.ErrorResponse("failed to encode plan: "+err.Error(), false)
	}
	return models.Success(models.AgentOutput{ProducedBy: "planner-agent", Content: content})
}

func PlannerCard() models.AgentCard {
	return models.AgentCard{
		ID:          "planner-agent",
		Description: "Decomposes a goal into a codegen + documentation plan.",
		Skills:      models.SkillGraph{Root: models.CapabilityPlanning},
	}
}

// Critic scores any plan handed to it at a fixed passing score. A real
// critic would inspect the plan's task graph and prior feedback; this
// one exists so the demo harness can exercise the full planner/critic
// loop end to end.
type Critic struct {
	PassingScore uint8
}

func (c Critic) HandleTask(task models.AgentTask, ctx agentcontext.AgentContext) models.AgentResponse {
	score := c.PassingScore
	return models.Success(models.AgentOutput{ProducedBy: "critic-agent", Score: &score})
}

func CriticCard() models.AgentCard {
	return models.AgentCard{
		ID:          "critic-agent",
		Description: "Scores planner output before execution.",
		Skills:      models.SkillGraph{Root: models.CapabilityEvaluation},
	}
}

// CodeGen writes the task's payload to a file under the calling
// context's project root via the FileTool, demonstrating a handler
// that exercises the tool registry rather than producing output
// directly.
type CodeGen struct{}

func (CodeGen) HandleTask(task models.AgentTask, ctx agentcontext.AgentContext) models.AgentResponse {
	tool, ok := ctx.Tools.Get("FileTool")
	if !ok {
		return models.ErrorResponse("FileTool not registered", false)
	}

	input, _ := json.Marshal(map[string]string{
		"action":  "write",
		"path":    ctx.Project.Root + "/" + task.TaskID + ".txt",
		"content": task.Payload,
	})
	result := tool.Run(input)
	if result.Status == toolregistry.ToolFailed {
		return models.ErrorResponse(fmt.Sprintf("file tool failed: %v", result.Trace), true)
	}

	return models.Success(models.AgentOutput{ProducedBy: "codegen-agent", Content: result.Result})
}

func CodeGenCard() models.AgentCard {
	return models.AgentCard{
		ID:          "codegen-agent",
		Description: "Writes generated content to disk via the file tool.",
		Skills:      models.SkillGraph{Root: models.CapabilityCodeGen},
	}
}

// Documentation produces a heading-bearing Markdown stub, satisfying
// report.ValidateDocumentation's minimal structural bar.
type Documentation struct{}

func (Documentation) HandleTask(task models.AgentTask, ctx agentcontext.AgentContext) models.AgentResponse {
	content := "# Notes\n\n" + task.Payload + "\n"
	encoded, _ := json.Marshal(content)
	return models.Success(models.AgentOutput{ProducedBy: "documentation-agent", Content: encoded})
}

func DocumentationCard() models.AgentCard {
	return models.AgentCard{
		ID:          "documentation-agent",
		Description: "Produces Markdown documentation for a completed task.",
		Skills:      models.SkillGraph{Root: models.CapabilityDocumentation},
	}
}

// RegisterAll wires every demo agent into an orchestrator-shaped
// registry. registry.AgentRegistry is not referenced directly so this
// package stays usable against anything exposing RegisterAgent.
type Registrar interface {
	RegisterAgent(card models.AgentCard, handler registry.Handler)
}

func RegisterAll(r Registrar) {
	r.RegisterAgent(GreeterCard(), Greeter{})
	r.RegisterAgent(PlannerCard(), Planner{})
	r.RegisterAgent(CriticCard(), Critic{PassingScore: 9})
	r.RegisterAgent(CodeGenCard(), CodeGen{})
	r.RegisterAgent(DocumentationCard(), Documentation{})
}
