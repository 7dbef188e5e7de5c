// Package testutil provides test helpers for dsomiti, most importantly
// MemoryFS: an in-memory types.FS with per-path error injection, used to
// simulate locked or unreadable files without touching the real
// filesystem.
package testutil
