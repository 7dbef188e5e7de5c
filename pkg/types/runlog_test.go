package types

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLogRecordsEntriesInOrder(t *testing.T) {
	log := NewRunLog(zerolog.Nop())

	log.Infof("copy game data", "starting")
	log.Warnf("copy game data", "skipped %d symlinks", 1)
	log.Errorf("copy game data", "failed to copy %s", "settings.ini")

	entries := log.Entries()
	require.Len(t, entries, 3)

	assert.Equal(t, SeverityInfo, entries[0].Level)
	assert.Equal(t, "starting", entries[0].Message)
	assert.Equal(t, SeverityWarning, entries[1].Level)
	assert.Equal(t, "skipped 1 symlinks", entries[1].Message)
	assert.Equal(t, SeverityError, entries[2].Level)
	assert.Equal(t, "failed to copy settings.ini", entries[2].Message)

	for _, entry := range entries {
		assert.Equal(t, "copy game data", entry.Operation)
		assert.False(t, entry.Time.IsZero())
	}
}

func TestRunLogEntriesReturnsCopy(t *testing.T) {
	log := NewRunLog(zerolog.Nop())
	log.Infof("op", "one")

	entries := log.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "one", log.Entries()[0].Message)
}

func TestLogEntryString(t *testing.T) {
	entry := LogEntry{
		Time:      time.Date(2024, 3, 1, 14, 30, 5, 0, time.UTC),
		Level:     SeverityError,
		Operation: "remove shortcuts",
		Message:   "file in use",
	}

	assert.Equal(t, "[14:30:05] [error] remove shortcuts: file in use", entry.String())
}

func TestOperationStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusRunning.Terminal())
	assert.True(t, StatusSucceeded.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusSkipped.Terminal())
}
