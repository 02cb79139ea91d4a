package planhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wintertask/orchestrator/internal/models"
)

func TestCalculateIsStableForIdenticalGraphs(t *testing.T) {
	graph := []models.AgentTask{
		{TaskID: "t1", TaskType: "codegen", Payload: "do x"},
		{TaskID: "t2", TaskType: "testing", Payload: "test x"},
	}
	a := Calculate(graph)
	b := Calculate(graph)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestCalculateDiffersForDifferentGraphs(t *testing.T) {
	g1 := []models.AgentTask{{TaskID: "t1", TaskType: "codegen", Payload: "do x"}}
	g2 := []models.AgentTask{{TaskID: "t1", TaskType: "codegen", Payload: "do y"}}
	assert.NotEqual(t, Calculate(g1), Calculate(g2))
}

func TestCalculateEmptyGraph(t *testing.T) {
	assert.Equal(t, Calculate(nil), Calculate([]models.AgentTask{}))
}
