package copier

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Nexriel/DsoMiti/pkg/errors"
	"github.com/Nexriel/DsoMiti/pkg/logging"
	"github.com/Nexriel/DsoMiti/pkg/types"
)

// FileFailure records a single file that could not be copied.
type FileFailure struct {
	Path string
	Err  error
}

// Result summarizes a tree copy.
type Result struct {
	Copied       int
	Failed       int
	SkippedLinks int
	Failures     []FileFailure
}

// Err returns nil for a clean copy, or a COPY_FAILED error carrying the
// per-file failures when anything went wrong.
func (r Result) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return errors.Newf(errors.ErrCopyFailed,
		"%d of %d files failed to copy", r.Failed, r.Failed+r.Copied).
		WithDetail("failures", r.Failures)
}

// Copier copies directory trees through a types.FS.
type Copier struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a copier operating on the given filesystem.
func New(fsys types.FS) *Copier {
	return &Copier{
		fs:     fsys,
		logger: logging.GetLogger("copier"),
	}
}

// CopyTree recursively copies everything under src into dst. A missing
// source is a fatal error; a failure on an individual file is recorded
// in the result and the batch continues. Files already present at the
// destination are overwritten.
func (c *Copier) CopyTree(src, dst string) (Result, error) {
	info, err := c.fs.Stat(src)
	if err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrPathNotFound,
			"source path not found: %s", src)
	}
	if !info.IsDir() {
		return Result{}, errors.Newf(errors.ErrInvalidInput,
			"source is not a directory: %s", src)
	}

	var result Result
	c.copyDir(src, dst, &result)

	c.logger.Info().
		Str("src", src).
		Str("dst", dst).
		Int("copied", result.Copied).
		Int("failed", result.Failed).
		Int("skipped_links", result.SkippedLinks).
		Msg("Tree copy finished")

	return result, nil
}

func (c *Copier) copyDir(src, dst string, result *Result) {
	entries, err := c.fs.ReadDir(src)
	if err != nil {
		c.recordFailure(result, src, errors.Wrap(err, errors.ErrFileAccess, "failed to list directory"))
		return
	}

	if err := c.fs.MkdirAll(dst, 0755); err != nil {
		c.recordFailure(result, dst, errors.Wrap(err, errors.ErrDirCreate, "failed to create directory"))
		return
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.Type()&fs.ModeSymlink != 0 {
			// Never follow links out of the source tree.
			c.logger.Warn().Str("path", srcPath).Msg("Skipping symlink")
			result.SkippedLinks++
			continue
		}

		if entry.IsDir() {
			c.copyDir(srcPath, dstPath, result)
			continue
		}

		if err := c.copyFile(srcPath, dstPath); err != nil {
			c.recordFailure(result, srcPath, err)
			continue
		}
		result.Copied++
	}
}

func (c *Copier) copyFile(src, dst string) error {
	in, err := c.fs.Open(src)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to open source file")
	}
	defer func() { _ = in.Close() }()

	out, err := c.fs.Create(dst)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to create destination file")
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrap(err, errors.ErrFileAccess, "failed to copy file contents")
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to finalize destination file")
	}
	return nil
}

func (c *Copier) recordFailure(result *Result, path string, err error) {
	c.logger.Error().Err(err).Str("path", path).Msg("Copy failure")
	result.Failed++
	result.Failures = append(result.Failures, FileFailure{Path: path, Err: err})
}
