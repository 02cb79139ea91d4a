package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/wintertask/orchestrator/internal/models"
)

// ProjectMemory combines two things the original source kept as
// separate types: a file accessor rooted at <DataRoot>/projects/<goal_id>/
// (Read/Summarize/Chunk read straight from disk, so that data survives
// a process restart without a separate persistence pass) and an
// in-process, mutex-guarded runtime store — goal_id, architecture,
// accumulated design decisions, file summaries — that the kernel
// writes to directly during plan execution. Cloning shares the
// runtime store (a pointer); the Root field is copied by value since
// file reads need no synchronization.
type ProjectMemory struct {
	Root  string
	state *projectState
}

type projectState struct {
	mu            sync.Mutex
	goalID        *string
	architecture  *string
	decisions     []models.DesignDecision
	fileSummaries map[string]string
}

func NewProjectMemory(root string) ProjectMemory {
	return ProjectMemory{Root: root, state: &projectState{fileSummaries: make(map[string]string)}}
}

// SetGoalID records the goal this project memory's runtime state
// belongs to.
func (p ProjectMemory) SetGoalID(goalID string) {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	p.state.goalID = &goalID
}

// GoalID returns the recorded goal ID, or nil if unset.
func (p ProjectMemory) GoalID() *string {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	if p.state.goalID == nil {
		return nil
	}
	v := *p.state.goalID
	return &v
}

// SetArchitecture records the current architecture summary for the
// project, overwriting any prior value.
func (p ProjectMemory) SetArchitecture(architecture string) {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	p.state.architecture = &architecture
}

// Architecture returns the recorded architecture summary, or nil if
// none has been set yet.
func (p ProjectMemory) Architecture() *string {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	if p.state.architecture == nil {
		return nil
	}
	v := *p.state.architecture
	return &v
}

// AddDecision appends a design decision to the project's running
// history — the kernel calls this after a plan clears the critic, to
// record which strategy and score produced the executed task graph.
func (p ProjectMemory) AddDecision(decision models.DesignDecision) {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	p.state.decisions = append(p.state.decisions, decision)
}

// Decisions returns a snapshot of every decision recorded so far, in
// the order they were added.
func (p ProjectMemory) Decisions() []models.DesignDecision {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	out := make([]models.DesignDecision, len(p.state.decisions))
	copy(out, p.state.decisions)
	return out
}

// SetFileSummary records a summary for a path under the project.
func (p ProjectMemory) SetFileSummary(path, summary string) {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	p.state.fileSummaries[path] = summary
}

// FileSummaries returns a snapshot copy of every recorded file
// summary.
func (p ProjectMemory) FileSummaries() map[string]string {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	out := make(map[string]string, len(p.state.fileSummaries))
	for k, v := range p.state.fileSummaries {
		out[k] = v
	}
	return out
}

// Read loads a memory file verbatim.
func (p ProjectMemory) Read(relativePath string) (string, error) {
	full := filepath.Join(p.Root, relativePath)
	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("read memory file %s: %w", full, err)
	}
	return string(data), nil
}

// Summarize returns a stubbed summary of a memory file: its first ten
// lines, prefixed to make clear this is not a model-generated digest.
// scope is accepted for forward compatibility with a future
// summarization tool and is currently unused.
func (p ProjectMemory) Summarize(relativePath string, scope string) (string, error) {
	content, err := p.Read(relativePath)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	return "(Stub Summary)\n" + strings.Join(lines, "\n"), nil
}

// Chunk splits a memory file into parts of roughly linesPerChunk
// lines each, preserving order.
func (p ProjectMemory) Chunk(relativePath string, linesPerChunk int) ([]string, error) {
	content, err := p.Read(relativePath)
	if err != nil {
		return nil, fmt.Errorf("chunk: %w", err)
	}
	lines := strings.Split(content, "\n")
	var chunks []string
	for i := 0; i < len(lines); i += linesPerChunk {
		end := i + linesPerChunk
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, strings.Join(lines[i:end], "\n"))
	}
	return chunks, nil
}
