package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wintertask/orchestrator/internal/models"
)

func TestTaskMemorySaveLoad(t *testing.T) {
	m := NewTaskMemory()
	_, ok := m.Load("missing")
	assert.False(t, ok)

	m.Save("k", "v")
	v, ok := m.Load("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestTaskMemoryCloneSharesStore(t *testing.T) {
	m := NewTaskMemory()
	clone := m.Clone()
	clone.Save("k", "v")

	v, ok := m.Load("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestTaskMemoryConcurrentAccess(t *testing.T) {
	m := NewTaskMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			m.Save("key", "value")
			m.Load("key")
		}(i)
	}
	wg.Wait()
}

func TestSessionMemoryAll(t *testing.T) {
	s := NewSessionMemory()
	s.Save("a", "1")
	s.Save("b", "2")
	all := s.All()
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, all)
}

func TestGlobalMemorySearchByTag(t *testing.T) {
	g := NewGlobalMemory()
	g.Insert(models.GlobalMemoryEntry{Tags: []string{"goal:1", "decision"}, Source: "planner", Content: "chose x"})
	g.Insert(models.GlobalMemoryEntry{Tags: []string{"goal:2"}, Source: "planner", Content: "chose y"})

	found := g.SearchByTag("goal:1")
	assert.Len(t, found, 1)
	assert.Equal(t, "chose x", found[0].Content)

	assert.Empty(t, g.SearchByTag("goal:3"))
}

func TestGlobalMemoryCloneSharesEntries(t *testing.T) {
	g := NewGlobalMemory()
	clone := g.Clone()
	clone.Insert(models.GlobalMemoryEntry{Tags: []string{"x"}, Content: "hi"})
	assert.Len(t, g.All(), 1)
}

func TestPlannerMemoryHistory(t *testing.T) {
	p := NewPlannerMemory()
	_, ok := p.GetHistory("goal-1")
	assert.False(t, ok)

	score := uint8(8)
	p.AddEntry("goal-1", models.PlannerMemoryEntry{PlanID: "plan-a", Status: "accepted", Score: &score})
	hist, ok := p.GetHistory("goal-1")
	assert.True(t, ok)
	assert.Len(t, hist, 1)
	assert.Equal(t, "plan-a", hist[0].PlanID)
}

func TestProjectMemoryReadSummarizeChunk(t *testing.T) {
	dir := t.TempDir()
	content := "line1\nline2\nline3\nline4\n"
	err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(content), 0o644)
	assert.NoError(t, err)

	pm := NewProjectMemory(dir)

	read, err := pm.Read("notes.txt")
	assert.NoError(t, err)
	assert.Equal(t, content, read)

	summary, err := pm.Summarize("notes.txt", "ignored")
	assert.NoError(t, err)
	assert.Contains(t, summary, "(Stub Summary)")

	chunks, err := pm.Chunk("notes.txt", 2)
	assert.NoError(t, err)
	assert.Len(t, chunks, 3)
}

func TestProjectMemoryRuntimeState(t *testing.T) {
	pm := NewProjectMemory(t.TempDir())

	assert.Nil(t, pm.GoalID())
	pm.SetGoalID("goal-1")
	require.NotNil(t, pm.GoalID())
	assert.Equal(t, "goal-1", *pm.GoalID())

	assert.Nil(t, pm.Architecture())
	pm.SetArchitecture("layered")
	require.NotNil(t, pm.Architecture())
	assert.Equal(t, "layered", *pm.Architecture())

	pm.AddDecision(models.DesignDecision{ID: "d1", Summary: "chose strategy X", MadeBy: "PlannerAgent"})
	pm.AddDecision(models.DesignDecision{ID: "d2", Summary: "chose strategy Y", MadeBy: "PlannerAgent"})
	decisions := pm.Decisions()
	require.Len(t, decisions, 2)
	assert.Equal(t, "d1", decisions[0].ID)
	assert.Equal(t, "d2", decisions[1].ID)

	pm.SetFileSummary("main.go", "entry point")
	summaries := pm.FileSummaries()
	assert.Equal(t, "entry point", summaries["main.go"])

	// A clone shares the runtime store: mutations via one handle are
	// visible through another, matching the recursive kernel's shared
	// memory semantics.
	clone := pm
	clone.AddDecision(models.DesignDecision{ID: "d3"})
	assert.Len(t, pm.Decisions(), 3)
}

func TestRetryDepth(t *testing.T) {
	mem := NewTaskMemory()

	root := models.AgentTask{TaskID: "t0", Context: models.TaskContext{Origin: "user"}}
	storeTask(mem, root)

	retryOfRoot := "t0"
	attempt1 := models.AgentTask{TaskID: "t1", Context: models.TaskContext{Origin: "retry", RetryOf: &retryOfRoot}}
	storeTask(mem, attempt1)

	retryOf1 := "t1"
	attempt2 := models.AgentTask{TaskID: "t2", Context: models.TaskContext{Origin: "retry", RetryOf: &retryOf1}}

	assert.Equal(t, 0, RetryDepth(root, mem))
	assert.Equal(t, 1, RetryDepth(attempt1, mem))
	assert.Equal(t, 2, RetryDepth(attempt2, mem))
}

func storeTask(mem TaskMemory, task models.AgentTask) {
	raw, _ := json.Marshal(task)
	mem.Save(task.TaskID, string(raw))
}
