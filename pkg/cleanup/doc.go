// Package cleanup removes the obsolete standalone installation and its
// shortcut artifacts. Every removal is idempotent: deleting something
// that is already gone is a logged no-op, not an error.
package cleanup
