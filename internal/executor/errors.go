package executor

import "fmt"

// RoutingError indicates a task's type did not parse into a known
// capability, or no registered agent claims that capability.
type RoutingError struct {
	TaskType string
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("no agent available for task type %q", e.TaskType)
}

// Unwrap reports no underlying cause: a routing failure originates at
// the kernel itself, not from an error handed up by a collaborator.
func (e *RoutingError) Unwrap() error { return nil }

// HandlerError wraps the reason an agent handler reported failure.
type HandlerError struct {
	AgentID string
	Reason  string
	Cause   error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("agent %q failed: %s", e.AgentID, e.Reason)
}

// Unwrap returns the handler's underlying error, if any, so callers
// can errors.As/errors.Is through to it.
func (e *HandlerError) Unwrap() error { return e.Cause }

// InvalidPlanError indicates a planner's output could not be decoded
// into a PlannerOutput task graph.
type InvalidPlanError struct {
	Reason string
	Cause  error
}

func (e *InvalidPlanError) Error() string {
	return fmt.Sprintf("planner returned invalid task graph: %s", e.Reason)
}

// Unwrap returns the json.Unmarshal error that produced this failure.
func (e *InvalidPlanError) Unwrap() error { return e.Cause }

// PlanRejectedError wraps the critic's reason for rejecting a plan
// outright (as opposed to recommending revision).
type PlanRejectedError struct {
	Reason string
	Cause  error
}

func (e *PlanRejectedError) Error() string {
	return fmt.Sprintf("plan rejected: %s", e.Reason)
}

// Unwrap returns the critic's AgentError, carried through verbatim.
func (e *PlanRejectedError) Unwrap() error { return e.Cause }

// RevisionExhaustedError indicates the planner/critic loop reached the
// configured revision bound without the critic's score clearing the
// retry threshold.
type RevisionExhaustedError struct {
	Revisions uint32
}

func (e *RevisionExhaustedError) Error() string {
	return fmt.Sprintf("planner exhausted %d revisions without reaching the approval threshold", e.Revisions)
}

// Unwrap reports no underlying cause: exhausting the revision bound is
// a kernel-level decision, not a failure propagated from elsewhere.
func (e *RevisionExhaustedError) Unwrap() error { return nil }
