package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "copy game data")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "copy game data")
	assert.Contains(t, out, "duration")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := GetLogger("copier").Output(&buf)
	logger.Warn().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"copier"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()
	assert.Equal(t, "dsomiti.log", filepath.Base(path))
	assert.Contains(t, path, "dsomiti")
}
