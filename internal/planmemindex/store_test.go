package planmemindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wintertask/orchestrator/internal/models"
	"github.com/wintertask/orchestrator/internal/persistence"
)

func u8(v uint8) *uint8   { return &v }
func u32(v uint32) *uint32 { return &v }

func TestRecordAndQueryPlannerMemory(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.RecordPlannerMemoryEntry(ctx, models.PlannerMemoryEntry{
		PlanID: "p1", GoalID: "g1", Score: u8(9), Status: "Succeeded",
		FeedbackTags: []string{"reuse"}, RevisionID: u32(0), PlanHash: "abc", Timestamp: 1,
	}))
	require.NoError(t, store.RecordPlannerMemoryEntry(ctx, models.PlannerMemoryEntry{
		PlanID: "p2", GoalID: "g1", Status: "Revised", Timestamp: 2,
	}))
	require.NoError(t, store.RecordPlannerMemoryEntry(ctx, models.PlannerMemoryEntry{
		PlanID: "p3", GoalID: "g2", Status: "Succeeded", Timestamp: 3,
	}))

	history, err := store.PlannerHistoryForGoal(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "p1", history[0].PlanID)
	require.NotNil(t, history[0].Score)
	assert.Equal(t, uint8(9), *history[0].Score)
	assert.Equal(t, []string{"reuse"}, history[0].FeedbackTags)
}

func TestRecordAndQueryTaskIndex(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.RecordTaskIndexEntry(ctx, models.TaskIndexEntry{TaskID: "t1", Status: "Succeeded", Timestamp: 1}))
	require.NoError(t, store.RecordTaskIndexEntry(ctx, models.TaskIndexEntry{TaskID: "t2", Status: "Failed", Timestamp: 2}))

	failed, err := store.TasksByStatus(ctx, "Failed")
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "t2", failed[0].TaskID)
}

func TestSyncIngestsPersistedFiles(t *testing.T) {
	paths := persistence.NewPaths(t.TempDir())
	require.NoError(t, paths.AppendPlannerMemoryEntry(models.PlannerMemoryEntry{PlanID: "p1", GoalID: "g1", Status: "Succeeded", Timestamp: 1}))
	require.NoError(t, paths.AppendToTaskIndex(models.TaskIndexEntry{TaskID: "t1", Status: "Succeeded", Timestamp: 1}))

	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, Sync(ctx, store, paths))

	history, err := store.PlannerHistoryForGoal(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, history, 1)

	tasks, err := store.TasksByStatus(ctx, "Succeeded")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}
