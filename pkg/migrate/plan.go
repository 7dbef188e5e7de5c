package migrate

import (
	"github.com/Nexriel/DsoMiti/pkg/config"
	"github.com/Nexriel/DsoMiti/pkg/errors"
	"github.com/Nexriel/DsoMiti/pkg/process"
)

// Plan is an ordered sequence of operations. Insertion order is
// execution order is dependency order: copies must come before deletes.
type Plan struct {
	Operations []Operation
}

// Validate enforces the copy-before-delete ordering: once a destructive
// operation appears, every later operation must be destructive too.
func (p *Plan) Validate() error {
	if len(p.Operations) == 0 {
		return errors.New(errors.ErrPlanInvalid, "plan has no operations")
	}

	destructiveSeen := false
	for _, op := range p.Operations {
		if op.Destructive() {
			destructiveSeen = true
			continue
		}
		if destructiveSeen {
			return errors.Newf(errors.ErrPlanInvalid,
				"operation %q is ordered after a destructive operation", op.Name())
		}
	}
	return nil
}

// BuildPlan assembles the standard migration plan from configuration:
// preflight check, one copy operation per configured copy set, then
// shortcut removal and deletion of the standalone installation.
func BuildPlan(cfg *config.Config, checker *process.Checker) *Plan {
	var ops []Operation

	if cfg.Preflight.CheckRunning {
		ops = append(ops, &CheckGameClosedOperation{Checker: checker})
	}

	for _, set := range cfg.CopySets {
		ops = append(ops, &CopySetOperation{Set: set})
	}

	ops = append(ops,
		&RemoveShortcutsOperation{},
		&RemoveInstallOperation{},
	)

	return &Plan{Operations: ops}
}
