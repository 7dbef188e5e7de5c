// Package copier recursively copies a directory tree, tolerating
// per-file failures: a locked or unreadable file is recorded and the
// batch continues. Re-running over an already-populated destination is
// idempotent; existing files are overwritten.
package copier
