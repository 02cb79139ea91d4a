// Package executor implements the orchestrator kernel: the recursive
// admit/route/invoke/intercept/persist loop that drives every task and
// goal through the system. Everything else in this module (agents,
// tools, memory, persistence) exists to be called by, or to call back
// into, this package.
package executor

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wintertask/orchestrator/internal/agentcontext"
	"github.com/wintertask/orchestrator/internal/config"
	"github.com/wintertask/orchestrator/internal/logger"
	"github.com/wintertask/orchestrator/internal/models"
	"github.com/wintertask/orchestrator/internal/persistence"
	"github.com/wintertask/orchestrator/internal/planhash"
	"github.com/wintertask/orchestrator/internal/registry"
)

// Orchestrator owns the agent registry and drives task execution. It
// holds no mutable per-goal state itself; all durable state lives in
// the AgentContext's memory handles and on disk via Paths.
type Orchestrator struct {
	registry *registry.AgentRegistry
	paths    persistence.Paths
	log      logger.Logger
	cfg      config.Config
}

// NewOrchestrator wires an orchestrator against a data root and
// config. A nil logger falls back to logger.NullLogger{}.
func NewOrchestrator(cfg config.Config, log logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.NullLogger{}
	}
	return &Orchestrator{
		registry: registry.NewAgentRegistry(),
		paths:    persistence.NewPaths(cfg.DataRoot),
		log:      log,
		cfg:      cfg,
	}
}

// RegisterAgent adds an agent's card and handler to the routing table.
func (o *Orchestrator) RegisterAgent(card models.AgentCard, handler registry.Handler) {
	o.registry.Register(card, handler)
}

// Handle is the kernel's single recursive step: admit the task, route
// it to a handler by capability, invoke the handler, intercept planner
// output through the critic loop, expand any emitted subtasks,
// finalize the task's status, and persist a best-effort trail. Every
// other entry point (ExecuteTaskGraph, goal submission) bottoms out
// here.
func (o *Orchestrator) Handle(task models.AgentTask, ctx agentcontext.AgentContext) models.AgentResponse {
	task.Status = models.Running()

	capability, err := models.ParseCapability(task.TaskType)
	if err != nil {
		return o.fail(task, ctx, &RoutingError{TaskType: task.TaskType}, "")
	}

	agent, ok := o.registry.FindAgentForTask(capability)
	if !ok {
		return o.fail(task, ctx, &RoutingError{TaskType: task.TaskType}, "")
	}

	response := o.invoke(agent.Handler, task.Clone(), ctx)

	if response.Output != nil && capability == models.CapabilityPlanning {
		response = o.interceptPlan(task, ctx, response)
	}

	if response.Output != nil {
		for _, subtask := range response.Output.Subtasks {
			enriched := subtask.Clone()
			parent := task.TaskID
			enriched.Context.ParentTaskID = &parent
			if enriched.Context.GoalID == nil {
				enriched.Context.GoalID = task.Context.GoalID
			}
			subResult := o.Handle(enriched, ctx)
			o.log.Debug("subtask " + enriched.TaskID + " finished")
			_ = subResult
		}
	}

	o.finalize(task, ctx, response, agent.Card.ID)
	return response
}

// interceptPlan routes a freshly produced plan to the evaluation
// capability (the critic). A high enough score executes the plan's
// task graph; a low score below the revision bound retries the
// planner with an incremented revision counter; exhausting the bound
// or an outright critic rejection fails the task.
func (o *Orchestrator) interceptPlan(task models.AgentTask, ctx agentcontext.AgentContext, response models.AgentResponse) models.AgentResponse {
	var plan models.PlannerOutput
	if err := json.Unmarshal(response.Output.Content, &plan); err != nil {
		return o.fail(task, ctx, &InvalidPlanError{Reason: err.Error(), Cause: err}, "")
	}

	payload, _ := json.Marshal(plan)
	critiqueTask := models.AgentTask{
		TaskID:   uuid.NewString(),
		TaskType: string(models.CapabilityEvaluation),
		Payload:  string(payload),
		Context:  task.Context.Clone(),
		Status:   models.Pending(),
	}

	critiqueResponse := o.Handle(critiqueTask, ctx)

	if critiqueResponse.Err != nil {
		return o.fail(task, ctx, &PlanRejectedError{Reason: critiqueResponse.Err.Reason, Cause: critiqueResponse.Err}, "")
	}

	evalOutput := critiqueResponse.Output
	score := uint8(10)
	if evalOutput.Score != nil {
		score = *evalOutput.Score
	}
	revision := uint32(0)
	if task.Context.RevisionID != nil {
		revision = *task.Context.RevisionID
	}

	if score < o.cfg.PlannerRetryThreshold {
		if revision >= o.cfg.MaxPlannerRevisions {
			return o.fail(task, ctx, &RevisionExhaustedError{Revisions: revision}, "")
		}

		retryTask := task.Clone()
		retryTask.TaskID = uuid.NewString()
		origTaskID := task.TaskID
		retryTask.Context.RetryOf = &origTaskID
		nextRevision := revision + 1
		retryTask.Context.RevisionID = &nextRevision
		retryTask.Status = models.Pending()
		return o.Handle(retryTask, ctx)
	}

	goalID := "unknown"
	if task.Context.GoalID != nil {
		goalID = *task.Context.GoalID
	}
	entry := models.PlannerMemoryEntry{
		PlanID:     plan.PlanID,
		GoalID:     goalID,
		Score:      evalOutput.Score,
		Status:     string(models.StatusSucceeded),
		RevisionID: plan.RevisionID,
		PlanHash:   planhash.Calculate(plan.TaskGraph),
		Timestamp:  models.NowTimestamp(),
	}
	ctx.PlannerMemory.AddEntry(goalID, entry)
	if err := o.paths.AppendPlannerMemoryEntry(entry); err != nil {
		o.log.Warn("failed to persist planner memory entry: " + err.Error())
	}

	rationale := plan.FeedbackNotes
	if rationale == "" {
		rationale = "N/A"
	}
	ctx.Project.AddDecision(models.DesignDecision{
		ID:        "plan-" + plan.PlanID,
		Summary:   fmt.Sprintf("Planner used %s strategy with score %d", plan.StrategyUsed.Kind, score),
		MadeBy:    "PlannerAgent",
		Rationale: rationale,
		Timestamp: time.Now().Format(time.RFC3339),
	})

	return o.ExecuteTaskGraph(plan.TaskGraph, ctx)
}

// ExecuteTaskGraph runs an ordered task graph sequentially, halting on
// the first failure. It is used both by the planner-interception path
// and directly when a caller already holds an approved plan.
func (o *Orchestrator) ExecuteTaskGraph(taskGraph []models.AgentTask, ctx agentcontext.AgentContext) models.AgentResponse {
	for _, task := range taskGraph {
		result := o.Handle(task.Clone(), ctx)
		if result.Err != nil {
			return result
		}
	}
	return models.Success(models.AgentOutput{ProducedBy: "orchestrator"})
}

// invoke calls a handler and converts any panic into a non-retryable
// Error response, isolating the kernel from a crashing agent so the
// failure affects only this handle call.
func (o *Orchestrator) invoke(handler registry.Handler, task models.AgentTask, ctx agentcontext.AgentContext) (response models.AgentResponse) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error(fmt.Sprintf("handler crashed: %v", r))
			response = models.ErrorResponse("handler crashed", false)
		}
	}()
	return handler.HandleTask(task, ctx)
}

func (o *Orchestrator) fail(task models.AgentTask, ctx agentcontext.AgentContext, cause error, agentID string) models.AgentResponse {
	task.Status = models.Failed(cause.Error())
	response := models.ErrorResponse(cause.Error(), false)
	o.finalize(task, ctx, response, agentID)
	return response
}

// finalize records the task's resolved status to task memory (a
// human-readable audit line), session memory, the per-task disk log,
// the task index, and the goal timeline. All of this is best-effort:
// a persistence failure is logged but never overrides the response
// the caller already has.
func (o *Orchestrator) finalize(task models.AgentTask, ctx agentcontext.AgentContext, response models.AgentResponse, agentID string) {
	if response.Output != nil {
		task.Status = models.Succeeded()
	} else if response.Err != nil {
		task.Status = models.Failed(response.Err.Reason)
	}

	ctx.Task.Save(task.TaskID, auditLine(task, response))

	if response.Output != nil {
		if encoded, err := json.Marshal(response.Output); err == nil {
			ctx.Session.Save(task.TaskID, string(encoded))
		}
	}

	timestamp := models.NowTimestamp()

	if err := o.paths.WriteTaskLog(task, response, timestamp); err != nil {
		o.log.Warn("failed to write task log for " + task.TaskID + ": " + err.Error())
	}

	goalID := ""
	if task.Context.GoalID != nil {
		goalID = *task.Context.GoalID
	}

	indexEntry := models.TaskIndexEntry{
		TaskID:     task.TaskID,
		AgentID:    agentID,
		TaskType:   task.TaskType,
		Status:     string(task.Status.Kind),
		GoalID:     goalID,
		Timestamp:  timestamp,
		RevisionID: task.Context.RevisionID,
	}
	if err := o.paths.AppendToTaskIndex(indexEntry); err != nil {
		o.log.Warn("failed to append task index entry for " + task.TaskID + ": " + err.Error())
	}

	timelineGoal := goalID
	if timelineGoal == "" {
		timelineGoal = "unknown"
	}
	event := models.TimelineEvent{
		Type:      models.TimelineEventTask,
		TaskID:    task.TaskID,
		TaskType:  task.TaskType,
		Status:    string(task.Status.Kind),
		AgentID:   agentID,
		Timestamp: timestamp,
	}
	if err := o.paths.AppendTimelineEvent(timelineGoal, event); err != nil {
		o.log.Warn("failed to append timeline event for goal " + timelineGoal + ": " + err.Error())
	}
}

// auditLine formats the human-readable summary finalize writes to
// task memory under task.TaskID, mirroring the original's
// log_task_result.
func auditLine(task models.AgentTask, response models.AgentResponse) string {
	if response.Output != nil {
		out := response.Output
		return fmt.Sprintf(
			"Task Succeeded\nType: %s\nOutput: %s\nTime: %dms\nTools: %v\nTrace: %v\nNotes: %v",
			task.TaskType, out.Content, out.ExecutionTimeMS, out.ToolInvocations, out.Trace, out.EvaluationNotes,
		)
	}
	err := response.Err
	return fmt.Sprintf(
		"Task Failed\nType: %s\nReason: %s\nRetryable: %t\nTrace: %v",
		task.TaskType, err.Reason, err.Retryable, err.LogTrace,
	)
}
