package migrate

import (
	"time"

	"github.com/Nexriel/DsoMiti/pkg/config"
	"github.com/Nexriel/DsoMiti/pkg/types"
)

// Env carries everything operations need to execute. It is built once
// per run; operations read from it and never modify it.
type Env struct {
	FS     types.FS
	Paths  types.InstallPaths
	Config *config.Config
	Log    *types.RunLog
	DryRun bool
}

// Operation is a single named unit of work in the migration plan.
// Operations are immutable once built; the orchestrator owns their
// execution order and result collection.
type Operation interface {
	// Name is the human-readable label, e.g. "copy game data".
	Name() string

	// Critical operations abort the remaining plan when they fail.
	Critical() bool

	// Destructive operations delete data. They only run when every
	// operation before them succeeded.
	Destructive() bool

	// Describe returns what the operation would do, for plan preview
	// and dry-run output.
	Describe(env *Env) string

	// Execute performs the work.
	Execute(env *Env) error
}

// OperationResult captures the outcome of one operation.
type OperationResult struct {
	Name     string
	Status   types.OperationStatus
	Message  string
	Err      error
	Duration time.Duration
}

// RunResult is the outcome of a whole migration run.
type RunResult struct {
	State   types.RunState
	Results []OperationResult

	// Entries is the full run log, in order.
	Entries []types.LogEntry

	// Success is true only when the run completed and no operation
	// failed. A failed cleanup does not abort the run, but it does
	// prevent declaring success.
	Success bool
}

// Failed returns the results of operations that failed.
func (r RunResult) Failed() []OperationResult {
	var failed []OperationResult
	for _, res := range r.Results {
		if res.Status == types.StatusFailed {
			failed = append(failed, res)
		}
	}
	return failed
}
