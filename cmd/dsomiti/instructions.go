package dsomiti

import (
	_ "embed"

	"github.com/charmbracelet/glamour"

	"github.com/Nexriel/DsoMiti/pkg/style"
)

//go:embed instructions.md
var instructionsMarkdown string

// renderInstructions converts the embedded instructions to terminal
// output. Falls back to the raw markdown when rendering is not possible
// or output is not a terminal.
func renderInstructions(format style.Format) string {
	if format.Resolve() != style.FormatTerminal {
		return instructionsMarkdown
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return instructionsMarkdown
	}

	rendered, err := renderer.Render(instructionsMarkdown)
	if err != nil {
		return instructionsMarkdown
	}
	return rendered
}
