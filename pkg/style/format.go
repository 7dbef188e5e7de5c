package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto automatically detects the appropriate format
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors
	FormatTerminal
	// FormatText renders plain text output without styling
	FormatText
)

// DetectFormat determines the output format based on environment and
// terminal capabilities.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Piped or redirected output gets plain text
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// Resolve turns FormatAuto into a concrete format for stdout.
func (f Format) Resolve() Format {
	if f == FormatAuto {
		return DetectFormat(os.Stdout)
	}
	return f
}
