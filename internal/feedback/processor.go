// Package feedback drains the persisted task-feedback queue and
// retries tasks the critic flagged for another attempt, bounded by a
// per-task retry counter kept in task memory.
package feedback

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/wintertask/orchestrator/internal/agentcontext"
	"github.com/wintertask/orchestrator/internal/logger"
	"github.com/wintertask/orchestrator/internal/memory"
	"github.com/wintertask/orchestrator/internal/models"
	"github.com/wintertask/orchestrator/internal/persistence"
)

// Orchestrator is the minimal surface the feedback processor needs
// from the kernel: the ability to run a single task back through
// admit/route/invoke. Declared locally so this package never imports
// internal/executor — the dependency runs the other way when the
// kernel wants to trigger a feedback drain.
type Orchestrator interface {
	Handle(task models.AgentTask, ctx agentcontext.AgentContext) models.AgentResponse
}

// Processor drains the feedback queue against a fixed retry bound.
type Processor struct {
	orch       Orchestrator
	paths      persistence.Paths
	log        logger.Logger
	maxRetries uint32
}

// NewProcessor builds a feedback processor. A nil logger falls back
// to logger.NullLogger{}.
func NewProcessor(orch Orchestrator, paths persistence.Paths, log logger.Logger, maxRetries uint32) *Processor {
	if log == nil {
		log = logger.NullLogger{}
	}
	return &Processor{orch: orch, paths: paths, log: log, maxRetries: maxRetries}
}

// retryKey and skippedKey name the task-memory entries that track a
// given feedback item's retry count and terminal skip reason.
func retryKey(taskID string) string   { return "retries_for:" + taskID }
func skippedKey(taskID string) string { return "retry_skipped:" + taskID }

// Drain loads the persisted feedback queue and, for every item the
// critic recommended retrying, either re-submits a fresh retry task
// through the kernel or — once the per-task retry bound is exceeded —
// records a RetrySkipped task-index entry and gives up on that task.
func (p *Processor) Drain(ctx agentcontext.AgentContext) error {
	queue, err := p.paths.LoadFeedbackQueue()
	if err != nil {
		return fmt.Errorf("load feedback queue: %w", err)
	}

	for _, item := range queue {
		if !item.RetryRecommended {
			continue
		}

		count := p.retryCount(ctx, item.TaskID)

		if count >= p.maxRetries {
			p.skip(ctx, item)
			continue
		}

		p.retry(ctx, item, count)
	}

	return nil
}

func (p *Processor) retryCount(ctx agentcontext.AgentContext, taskID string) uint32 {
	raw, ok := ctx.Task.Load(retryKey(taskID))
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

func (p *Processor) skip(ctx agentcontext.AgentContext, item models.FeedbackItem) {
	msg := fmt.Sprintf("retry limit reached (%d). task aborted.", p.maxRetries)
	p.log.Warn(msg + ": " + item.TaskID)
	ctx.Task.Save(skippedKey(item.TaskID), msg)

	goalID := ""
	if item.OriginalTask.Context.GoalID != nil {
		goalID = *item.OriginalTask.Context.GoalID
	}
	entry := models.TaskIndexEntry{
		TaskID:    item.TaskID,
		AgentID:   "Unknown",
		Status:    "RetrySkipped",
		GoalID:    goalID,
		Timestamp: models.NowTimestamp(),
	}
	if err := p.paths.AppendToTaskIndex(entry); err != nil {
		p.log.Warn("failed to append RetrySkipped index entry for " + item.TaskID + ": " + err.Error())
	}
}

func (p *Processor) retry(ctx agentcontext.AgentContext, item models.FeedbackItem, count uint32) {
	retryTask := item.OriginalTask.Clone()
	retryTask.TaskID = uuid.NewString()
	originalID := item.TaskID
	retryTask.Context.RetryOf = &originalID
	retryTask.Status = models.Pending()

	ctx.Task.Save(retryKey(item.TaskID), strconv.FormatUint(uint64(count+1), 10))
	depth := memory.RetryDepth(retryTask, ctx.Task)
	p.log.Info(fmt.Sprintf("retrying task %s (attempt #%d, retry depth %d)", retryTask.TaskID, count+1, depth))

	p.orch.Handle(retryTask, ctx)
}
