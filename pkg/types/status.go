package types

// OperationStatus represents the state of a single operation in the
// migration plan.
type OperationStatus string

const (
	// StatusPending indicates the operation has not started yet. The
	// orchestrator reports only terminal statuses in its results; the
	// non-terminal statuses exist for callers that track or render
	// operations in flight.
	StatusPending OperationStatus = "pending"

	// StatusRunning indicates the operation is currently executing.
	StatusRunning OperationStatus = "running"

	// StatusSucceeded indicates the operation completed successfully.
	StatusSucceeded OperationStatus = "succeeded"

	// StatusFailed indicates the operation reported a failure.
	StatusFailed OperationStatus = "failed"

	// StatusSkipped indicates the operation was not executed, either
	// because a critical operation aborted the plan before it, or
	// because a destructive operation was gated by an earlier failure.
	StatusSkipped OperationStatus = "skipped"
)

// Terminal reports whether the status is a final one.
func (s OperationStatus) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusSkipped:
		return true
	}
	return false
}

// RunState represents the overall state of a migration run.
type RunState string

const (
	// RunNotStarted is the state before the orchestrator runs the plan.
	RunNotStarted RunState = "not_started"

	// RunInProgress is the state while operations are executing. Run
	// returns only RunCompleted or RunAborted; RunNotStarted and
	// RunInProgress are for callers observing a run from outside.
	RunInProgress RunState = "in_progress"

	// RunCompleted means every operation reached a terminal state
	// without a critical failure. Individual operations may still have
	// failed; completion is not the same as success.
	RunCompleted RunState = "completed"

	// RunAborted means a critical operation failed and the remaining
	// plan was skipped.
	RunAborted RunState = "aborted"
)
