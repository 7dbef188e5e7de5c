// Package types defines the shared types used across dsomiti: the
// filesystem interface all mutating code goes through, the resolved
// installation paths, operation and run states, and the run log that
// collects every entry produced during a migration.
package types
