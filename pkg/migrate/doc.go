// Package migrate contains the migration plan and its orchestrator.
//
// A plan is an ordered list of named operations. The orchestrator runs
// them strictly in order, records an outcome and log entries for each,
// aborts the remaining plan when a critical operation fails, and never
// executes a destructive operation after any earlier failure. That last
// rule is the tool's central safety property: the standalone
// installation is only deleted after every copy reported a clean
// result.
package migrate
