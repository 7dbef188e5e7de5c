package migrate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Nexriel/DsoMiti/pkg/cleanup"
	"github.com/Nexriel/DsoMiti/pkg/config"
	"github.com/Nexriel/DsoMiti/pkg/copier"
	"github.com/Nexriel/DsoMiti/pkg/errors"
	"github.com/Nexriel/DsoMiti/pkg/process"
)

// CheckGameClosedOperation refuses to migrate while the game client is
// running. A running client holds locks on the files being copied.
type CheckGameClosedOperation struct {
	Checker *process.Checker
}

func (o *CheckGameClosedOperation) Name() string      { return "check game closed" }
func (o *CheckGameClosedOperation) Critical() bool    { return true }
func (o *CheckGameClosedOperation) Destructive() bool { return false }

func (o *CheckGameClosedOperation) Describe(env *Env) string {
	return fmt.Sprintf("verify none of %s are running",
		strings.Join(env.Config.Preflight.Processes, ", "))
}

func (o *CheckGameClosedOperation) Execute(env *Env) error {
	running, err := o.Checker.FindRunning(env.Config.Preflight.Processes)
	if err != nil {
		// Best effort: an unreadable process table must not block the
		// migration on its own.
		env.Log.Warnf(o.Name(), "process check unavailable: %v", err)
		return nil
	}
	if len(running) > 0 {
		return errors.Newf(errors.ErrGameRunning,
			"close the game before migrating, found running: %s",
			strings.Join(running, ", "))
	}
	env.Log.Infof(o.Name(), "no game client running")
	return nil
}

// CopySetOperation copies one configured subtree from the standalone
// installation into the Steam installation.
type CopySetOperation struct {
	Set config.CopySet
}

func (o *CopySetOperation) Name() string      { return "copy " + o.Set.Name }
func (o *CopySetOperation) Critical() bool    { return true }
func (o *CopySetOperation) Destructive() bool { return false }

func (o *CopySetOperation) src(env *Env) string {
	return filepath.Join(env.Paths.StandaloneRoot, filepath.FromSlash(o.Set.Path))
}

func (o *CopySetOperation) dst(env *Env) string {
	return filepath.Join(env.Paths.SteamRoot, filepath.FromSlash(o.Set.Path))
}

func (o *CopySetOperation) Describe(env *Env) string {
	return fmt.Sprintf("copy %s -> %s", o.src(env), o.dst(env))
}

func (o *CopySetOperation) Execute(env *Env) error {
	result, err := copier.New(env.FS).CopyTree(o.src(env), o.dst(env))
	if err != nil {
		return err
	}

	for _, failure := range result.Failures {
		env.Log.Errorf(o.Name(), "failed to copy %s: %v", failure.Path, failure.Err)
	}
	if result.SkippedLinks > 0 {
		env.Log.Warnf(o.Name(), "skipped %d symlinks", result.SkippedLinks)
	}
	env.Log.Infof(o.Name(), "copied %d files", result.Copied)

	return result.Err()
}

// RemoveShortcutsOperation deletes the shortcut artifacts the
// standalone installer left behind. Already-absent shortcuts are
// logged as no-ops.
type RemoveShortcutsOperation struct{}

func (o *RemoveShortcutsOperation) Name() string      { return "remove shortcuts" }
func (o *RemoveShortcutsOperation) Critical() bool    { return false }
func (o *RemoveShortcutsOperation) Destructive() bool { return true }

func (o *RemoveShortcutsOperation) Describe(env *Env) string {
	return fmt.Sprintf("remove %d shortcut candidates", len(env.Paths.Shortcuts))
}

func (o *RemoveShortcutsOperation) Execute(env *Env) error {
	remover := cleanup.New(env.FS)

	removed := 0
	var failed []string
	for _, shortcut := range env.Paths.Shortcuts {
		ok, err := remover.RemoveShortcut(shortcut)
		if err != nil {
			env.Log.Errorf(o.Name(), "failed to remove %s: %v", shortcut, err)
			failed = append(failed, shortcut)
			continue
		}
		if ok {
			env.Log.Infof(o.Name(), "removed %s", shortcut)
			removed++
		} else {
			env.Log.Infof(o.Name(), "already absent: %s", shortcut)
		}
	}

	if len(failed) > 0 {
		return errors.Newf(errors.ErrCleanupFailed,
			"%d shortcuts could not be removed", len(failed)).
			WithDetail("paths", failed)
	}
	env.Log.Infof(o.Name(), "removed %d shortcuts", removed)
	return nil
}

// RemoveInstallOperation deletes the standalone installation tree.
// This is irreversible, which is why the orchestrator gates it on a
// clean run.
type RemoveInstallOperation struct{}

func (o *RemoveInstallOperation) Name() string      { return "remove old installation" }
func (o *RemoveInstallOperation) Critical() bool    { return false }
func (o *RemoveInstallOperation) Destructive() bool { return true }

func (o *RemoveInstallOperation) Describe(env *Env) string {
	return fmt.Sprintf("delete %s", env.Paths.StandaloneRoot)
}

func (o *RemoveInstallOperation) Execute(env *Env) error {
	removed, err := cleanup.New(env.FS).RemoveTree(env.Paths.StandaloneRoot)
	if err != nil {
		return err
	}
	if removed {
		env.Log.Infof(o.Name(), "deleted %s", env.Paths.StandaloneRoot)
	} else {
		env.Log.Infof(o.Name(), "already absent: %s", env.Paths.StandaloneRoot)
	}
	return nil
}
