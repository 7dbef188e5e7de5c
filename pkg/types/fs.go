package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for migration operations.
// Every read or mutation the tool performs goes through this interface,
// which is what makes the copier and cleanup testable against an
// in-memory filesystem with injected per-path failures.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Streaming operations, used by the copier so game assets of
	// arbitrary size are never buffered whole.
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Removal and rename
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error

	// Symlink operations. Implementations without symlink support may
	// emulate these; Lstat can fall back to Stat.
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
}
