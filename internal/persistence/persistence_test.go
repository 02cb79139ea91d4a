package persistence

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wintertask/orchestrator/internal/models"
)

func u8p(v uint8) *uint8 { return &v }

func TestWriteAndReadTaskLog(t *testing.T) {
	p := NewPaths(t.TempDir())
	task := models.AgentTask{TaskID: "t1", TaskType: "codegen", Payload: "do x"}
	resp := models.Success(models.AgentOutput{ProducedBy: "codegen-agent"})

	require.NoError(t, p.WriteTaskLog(task, resp, 1000))

	data, err := os.ReadFile(p.TaskLogPath("t1"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "codegen-agent")
}

func TestTaskIndexAppendAndRead(t *testing.T) {
	p := NewPaths(t.TempDir())

	require.NoError(t, p.AppendToTaskIndex(models.TaskIndexEntry{TaskID: "t1", Status: "Succeeded"}))
	require.NoError(t, p.AppendToTaskIndex(models.TaskIndexEntry{TaskID: "t2", Status: "Failed"}))

	entries, err := p.ReadTaskIndex()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	failed, err := p.FailedTasks()
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "t2", failed[0].TaskID)
}

func TestTaskIndexMissingFileReturnsEmpty(t *testing.T) {
	p := NewPaths(t.TempDir())
	entries, err := p.ReadTaskIndex()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFeedbackQueueRoundTrip(t *testing.T) {
	p := NewPaths(t.TempDir())

	item := models.FeedbackItem{
		TaskID:           "t1",
		OriginalTask:     models.AgentTask{TaskID: "t1"},
		EvaluationNotes:  "needs work",
		Score:            u8p(3),
		RetryRecommended: true,
	}
	require.NoError(t, p.WriteFeedbackItem(item))

	queue, err := p.LoadFeedbackQueue()
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "t1", queue[0].TaskID)

	require.NoError(t, p.ReplaceFeedbackQueue(nil))
	queue, err = p.LoadFeedbackQueue()
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestPlanFeedbackQueueRoundTrip(t *testing.T) {
	p := NewPaths(t.TempDir())

	item := models.PlanFeedbackItem{
		PlanID: "p1",
		GoalID: "g1",
		Action: models.PlanActionRevise,
		Score:  u8p(4),
	}
	require.NoError(t, p.WritePlanFeedbackItem(item))

	queue, err := p.LoadPlanFeedbackQueue()
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, models.PlanActionRevise, queue[0].Action)
}

func TestTimelineAppendAndRead(t *testing.T) {
	p := NewPaths(t.TempDir())

	require.NoError(t, p.AppendTimelineEvent("goal-1", models.TimelineEvent{
		Type: models.TimelineEventTask, TaskID: "t1", Status: "Succeeded", Timestamp: 1,
	}))
	require.NoError(t, p.AppendTimelineEvent("goal-1", models.TimelineEvent{
		Type: models.TimelineEventDecision, ID: "d1", Summary: "chose reuse", Timestamp: 2,
	}))

	events, err := p.ReadTimeline("goal-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.TimelineEventDecision, events[1].Type)
}

func TestPlannerMemoryLogAppendAndReplay(t *testing.T) {
	p := NewPaths(t.TempDir())

	require.NoError(t, p.AppendPlannerMemoryEntry(models.PlannerMemoryEntry{PlanID: "p1", Status: "accepted", Timestamp: 1}))
	require.NoError(t, p.AppendPlannerMemoryEntry(models.PlannerMemoryEntry{PlanID: "p2", Status: "revised", Timestamp: 2}))

	entries, err := p.ReadPlannerMemoryLog()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "p1", entries[0].PlanID)
	assert.Equal(t, "p2", entries[1].PlanID)
}
