package types

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Severity is the level of a run log entry.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// LogEntry is a single, immutable record produced during a migration
// run: when it happened, how bad it was, which operation produced it,
// and what it says.
type LogEntry struct {
	Time      time.Time
	Level     Severity
	Operation string
	Message   string
}

func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] %s: %s",
		e.Time.Format("15:04:05"), e.Level, e.Operation, e.Message)
}

// RunLog is the append-only sink for a single run's log entries. It is
// owned by the orchestrator, created at run start and discarded with the
// process. Every entry is also forwarded to the structured logger so the
// console and log file see it as it happens.
//
// Execution is strictly sequential, so RunLog does no locking.
type RunLog struct {
	logger  zerolog.Logger
	entries []LogEntry
	now     func() time.Time
}

// NewRunLog creates a run log that mirrors entries to the given logger.
func NewRunLog(logger zerolog.Logger) *RunLog {
	return &RunLog{logger: logger, now: time.Now}
}

// Infof records an info-level entry for the named operation.
func (l *RunLog) Infof(operation, format string, args ...interface{}) {
	l.append(SeverityInfo, operation, fmt.Sprintf(format, args...))
}

// Warnf records a warning-level entry for the named operation.
func (l *RunLog) Warnf(operation, format string, args ...interface{}) {
	l.append(SeverityWarning, operation, fmt.Sprintf(format, args...))
}

// Errorf records an error-level entry for the named operation.
func (l *RunLog) Errorf(operation, format string, args ...interface{}) {
	l.append(SeverityError, operation, fmt.Sprintf(format, args...))
}

func (l *RunLog) append(level Severity, operation, message string) {
	entry := LogEntry{
		Time:      l.now(),
		Level:     level,
		Operation: operation,
		Message:   message,
	}
	l.entries = append(l.entries, entry)

	event := l.logger.Info()
	switch level {
	case SeverityWarning:
		event = l.logger.Warn()
	case SeverityError:
		event = l.logger.Error()
	}
	event.Str("operation", operation).Msg(message)
}

// Entries returns a copy of all entries recorded so far, in order.
func (l *RunLog) Entries() []LogEntry {
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
