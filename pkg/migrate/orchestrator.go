package migrate

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Nexriel/DsoMiti/pkg/errors"
	"github.com/Nexriel/DsoMiti/pkg/logging"
	"github.com/Nexriel/DsoMiti/pkg/types"
)

// Orchestrator executes a plan's operations strictly in order,
// collecting per-operation results and the run log.
type Orchestrator struct {
	logger zerolog.Logger
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		logger: logging.GetLogger("migrate.orchestrator"),
	}
}

// Run executes the plan. It returns an error only when the plan itself
// is invalid; operation failures are reported through the RunResult.
func (o *Orchestrator) Run(plan *Plan, env *Env) (RunResult, error) {
	if err := plan.Validate(); err != nil {
		return RunResult{State: types.RunNotStarted}, err
	}

	o.logger.Info().
		Int("operations", len(plan.Operations)).
		Bool("dry_run", env.DryRun).
		Msg("Migration run starting")

	results := make([]OperationResult, 0, len(plan.Operations))
	aborted := false
	anyFailed := false

	for _, op := range plan.Operations {
		if aborted {
			env.Log.Warnf(op.Name(), "skipped: plan aborted by earlier critical failure")
			results = append(results, OperationResult{
				Name:    op.Name(),
				Status:  types.StatusSkipped,
				Message: "plan aborted by earlier critical failure",
			})
			continue
		}

		if op.Destructive() && anyFailed {
			// The safety rule: nothing is deleted unless everything
			// before it went cleanly.
			env.Log.Warnf(op.Name(), "skipped: an earlier operation failed, leaving source untouched")
			results = append(results, OperationResult{
				Name:    op.Name(),
				Status:  types.StatusSkipped,
				Message: "an earlier operation failed",
			})
			continue
		}

		results = append(results, o.runOne(op, env))
		last := &results[len(results)-1]

		if last.Status == types.StatusFailed {
			anyFailed = true
			if op.Critical() {
				env.Log.Errorf(op.Name(), "critical operation failed, aborting remaining plan")
				aborted = true
			}
		}
	}

	state := types.RunCompleted
	if aborted {
		state = types.RunAborted
	}

	result := RunResult{
		State:   state,
		Results: results,
		Entries: env.Log.Entries(),
		Success: state == types.RunCompleted && !anyFailed,
	}

	o.logger.Info().
		Str("state", string(state)).
		Bool("success", result.Success).
		Int("failed", len(result.Failed())).
		Msg("Migration run finished")

	return result, nil
}

// Err maps an unsuccessful run to its representative error: a critical
// abort for aborted runs, the first failure otherwise.
func (r RunResult) Err() error {
	if r.Success {
		return nil
	}
	failed := r.Failed()
	if len(failed) == 0 {
		return errors.New(errors.ErrUnknown, "run did not succeed")
	}
	if r.State == types.RunAborted {
		return errors.Wrapf(failed[0].Err, errors.ErrCriticalOperation,
			"critical operation %q failed", failed[0].Name)
	}
	return failed[0].Err
}

func (o *Orchestrator) runOne(op Operation, env *Env) OperationResult {
	done := logging.LogOperationStart(o.logger, op.Name())
	defer done()

	start := time.Now()
	env.Log.Infof(op.Name(), "starting")

	if env.DryRun {
		message := "would " + op.Describe(env)
		env.Log.Infof(op.Name(), "%s", message)
		return OperationResult{
			Name:     op.Name(),
			Status:   types.StatusSucceeded,
			Message:  message,
			Duration: time.Since(start),
		}
	}

	err := op.Execute(env)
	duration := time.Since(start)

	if err != nil {
		env.Log.Errorf(op.Name(), "failed after %s: %v", duration.Round(time.Millisecond), err)
		return OperationResult{
			Name:     op.Name(),
			Status:   types.StatusFailed,
			Err:      err,
			Duration: duration,
		}
	}

	env.Log.Infof(op.Name(), "completed in %s", duration.Round(time.Millisecond))
	return OperationResult{
		Name:     op.Name(),
		Status:   types.StatusSucceeded,
		Duration: duration,
	}
}
