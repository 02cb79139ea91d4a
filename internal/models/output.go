package models

import "encoding/json"

// NoteLevel classifies an EvaluationNote's severity.
type NoteLevel string

const (
	NoteInfo     NoteLevel = "Info"
	NoteWarn     NoteLevel = "Warn"
	NoteCritical NoteLevel = "Critical"
)

// EvaluationNote is one remark attached to a critic's evaluation.
type EvaluationNote struct {
	Note  string    `json:"note"`
	Level NoteLevel `json:"level"`
}

// AgentOutput is the payload of a successful AgentResponse.
type AgentOutput struct {
	Content           json.RawMessage  `json:"content"`
	ExecutionTimeMS   int64            `json:"execution_time_ms"`
	ToolInvocations   []string         `json:"tool_invocations,omitempty"`
	Trace             []string         `json:"trace,omitempty"`
	EvaluationNotes   []EvaluationNote `json:"evaluation_notes,omitempty"`
	Score             *uint8           `json:"score,omitempty"`
	ProducedBy        string           `json:"produced_by"`
	PlannedBy         string           `json:"planned_by,omitempty"`
	Subtasks          []AgentTask      `json:"subtasks,omitempty"`
}

// AgentError is the payload of a failed AgentResponse.
type AgentError struct {
	Reason    string   `json:"reason"`
	Retryable bool     `json:"retryable"`
	LogTrace  []string `json:"log_trace,omitempty"`
}

func (e *AgentError) Error() string { return e.Reason }

// AgentResponse is the discriminated union Success(AgentOutput) |
// Error(AgentError). Exactly one of Output/Err is non-nil.
type AgentResponse struct {
	Output *AgentOutput `json:"output,omitempty"`
	Err    *AgentError  `json:"error,omitempty"`
}

// Success builds a Success response.
func Success(out AgentOutput) AgentResponse {
	return AgentResponse{Output: &out}
}

// ErrorResponse builds an Error response.
func ErrorResponse(reason string, retryable bool) AgentResponse {
	return AgentResponse{Err: &AgentError{Reason: reason, Retryable: retryable}}
}

// ErrorResponseTrace builds an Error response carrying a log trace.
func ErrorResponseTrace(reason string, retryable bool, trace []string) AgentResponse {
	return AgentResponse{Err: &AgentError{Reason: reason, Retryable: retryable, LogTrace: trace}}
}

// IsSuccess reports whether the response is the Success variant.
func (r AgentResponse) IsSuccess() bool { return r.Output != nil }

// IsError reports whether the response is the Error variant.
func (r AgentResponse) IsError() bool { return r.Err != nil }
