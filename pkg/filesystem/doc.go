// Package filesystem provides types.FS implementations: one backed by
// the real OS filesystem, and one backed by afero for tests that want a
// ready-made in-memory filesystem.
package filesystem
