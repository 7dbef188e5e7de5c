package process

import (
	"strings"

	ps "github.com/mitchellh/go-ps"
	"github.com/rs/zerolog"

	"github.com/Nexriel/DsoMiti/pkg/logging"
)

// ListFunc enumerates running processes. The default is ps.Processes;
// tests substitute their own.
type ListFunc func() ([]ps.Process, error)

// Checker looks for running game client processes.
type Checker struct {
	list   ListFunc
	logger zerolog.Logger
}

// NewChecker creates a checker backed by the real process table.
func NewChecker() *Checker {
	return NewCheckerWithList(ps.Processes)
}

// NewCheckerWithList creates a checker with a custom process source.
func NewCheckerWithList(list ListFunc) *Checker {
	return &Checker{
		list:   list,
		logger: logging.GetLogger("process"),
	}
}

// FindRunning returns the executable names from names that are
// currently running. Matching is case-insensitive on the executable
// basename.
func (c *Checker) FindRunning(names []string) ([]string, error) {
	procs, err := c.list()
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]string, len(names))
	for _, name := range names {
		wanted[strings.ToLower(name)] = name
	}

	seen := make(map[string]bool)
	var running []string
	for _, proc := range procs {
		exe := strings.ToLower(proc.Executable())
		if name, ok := wanted[exe]; ok && !seen[name] {
			seen[name] = true
			running = append(running, name)
			c.logger.Debug().Str("executable", name).Int("pid", proc.Pid()).Msg("Game process found")
		}
	}

	return running, nil
}
