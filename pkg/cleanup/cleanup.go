package cleanup

import (
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/Nexriel/DsoMiti/pkg/errors"
	"github.com/Nexriel/DsoMiti/pkg/logging"
	"github.com/Nexriel/DsoMiti/pkg/types"
)

// Remover deletes installation directories and shortcut files.
type Remover struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a remover operating on the given filesystem.
func New(fsys types.FS) *Remover {
	return &Remover{
		fs:     fsys,
		logger: logging.GetLogger("cleanup"),
	}
}

// RemoveTree deletes a directory tree. It returns whether anything was
// actually removed. An absent path is a no-op success; a symlinked root
// is skipped rather than followed.
func (r *Remover) RemoveTree(path string) (bool, error) {
	info, err := r.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Info().Str("path", path).Msg("Already absent, nothing to remove")
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrCleanupFailed, "failed to inspect %s", path)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		r.logger.Warn().Str("path", path).Msg("Skipping symlink, refusing to delete through it")
		return false, nil
	}

	if err := r.fs.RemoveAll(path); err != nil {
		return false, errors.Wrapf(err, errors.ErrCleanupFailed, "failed to delete %s", path)
	}

	r.logger.Info().Str("path", path).Msg("Deleted directory tree")
	return true, nil
}

// RemoveShortcut deletes a shortcut artifact, which may be a file
// (.lnk/.url) or a Start Menu folder. Absent shortcuts are a no-op
// success.
func (r *Remover) RemoveShortcut(path string) (bool, error) {
	info, err := r.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrCleanupFailed, "failed to inspect %s", path)
	}

	if info.IsDir() {
		if err := r.fs.RemoveAll(path); err != nil {
			return false, errors.Wrapf(err, errors.ErrCleanupFailed, "failed to delete shortcut folder %s", path)
		}
	} else {
		if err := r.fs.Remove(path); err != nil {
			return false, errors.Wrapf(err, errors.ErrCleanupFailed, "failed to delete shortcut %s", path)
		}
	}

	r.logger.Info().Str("path", path).Msg("Deleted shortcut")
	return true, nil
}
