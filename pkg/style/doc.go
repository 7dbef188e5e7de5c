// Package style renders the migration plan and the final run report
// for the terminal, falling back to plain text when output is piped or
// the terminal has no color support.
package style
