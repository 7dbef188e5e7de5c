package style

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/Nexriel/DsoMiti/pkg/migrate"
	"github.com/Nexriel/DsoMiti/pkg/types"
)

// Renderer renders plans and run reports as strings.
type Renderer struct {
	format Format
}

// NewRenderer creates a renderer for the given format. FormatAuto is
// resolved against stdout.
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format.Resolve()}
}

func (r *Renderer) styled() bool {
	return r.format == FormatTerminal
}

// RenderPlan renders the migration plan before execution.
func (r *Renderer) RenderPlan(plan *migrate.Plan, env *migrate.Env) string {
	var b strings.Builder

	b.WriteString(r.title("Migration plan") + "\n\n")
	for i, op := range plan.Operations {
		line := fmt.Sprintf("%d. %s", i+1, op.Name())
		if op.Destructive() {
			line += r.warning(" (destructive)")
		}
		b.WriteString(line + "\n")
		b.WriteString(r.muted("   "+op.Describe(env)) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderReport renders the final run report: one line per operation,
// failure details, and a summary.
func (r *Renderer) RenderReport(result migrate.RunResult) string {
	var b strings.Builder

	b.WriteString(r.title("Migration report") + "\n\n")

	for _, res := range result.Results {
		b.WriteString(r.operationLine(res) + "\n")
		if res.Err != nil {
			b.WriteString(r.muted("     "+res.Err.Error()) + "\n")
		}
	}

	b.WriteString("\n" + r.summary(result) + "\n")
	return b.String()
}

func (r *Renderer) operationLine(res migrate.OperationResult) string {
	glyph, style := r.statusGlyph(res.Status)

	line := fmt.Sprintf("  %s %s", glyph, res.Name)
	if res.Duration > 0 {
		line += " " + r.muted(fmt.Sprintf("(%s)", res.Duration.Round(time.Millisecond)))
	}
	if res.Message != "" {
		line += " " + r.muted("- "+res.Message)
	}

	if r.styled() {
		return style.Render(line)
	}
	return line
}

func (r *Renderer) statusGlyph(status types.OperationStatus) (string, interface{ Render(...string) string }) {
	switch status {
	case types.StatusSucceeded:
		return "✓", SuccessStyle
	case types.StatusFailed:
		return "✗", ErrorStyle
	case types.StatusSkipped:
		return "-", WarningStyle
	default:
		return "?", MutedStyle
	}
}

func (r *Renderer) summary(result migrate.RunResult) string {
	failed := len(result.Failed())

	switch {
	case result.Success:
		return r.success("Migration completed successfully.")
	case result.State == types.RunAborted:
		return r.errorf("Migration aborted: a critical operation failed. Nothing was deleted; fix the issue and re-run.")
	case failed > 0:
		return r.errorf("Migration finished with %d failed operation(s). The standalone installation was left in place.", failed)
	default:
		return r.errorf("Migration did not succeed.")
	}
}

// RenderEntries renders the run log the way the original tool printed
// it: timestamp, severity label, message.
func (r *Renderer) RenderEntries(entries []types.LogEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		line := entry.String()
		if r.styled() {
			switch entry.Level {
			case types.SeverityError:
				line = pterm.FgRed.Sprint(line)
			case types.SeverityWarning:
				line = pterm.FgYellow.Sprint(line)
			}
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) title(s string) string {
	if r.styled() {
		return TitleStyle.Render(s)
	}
	return s
}

func (r *Renderer) muted(s string) string {
	if r.styled() {
		return MutedStyle.Render(s)
	}
	return s
}

func (r *Renderer) warning(s string) string {
	if r.styled() {
		return WarningStyle.Render(s)
	}
	return s
}

func (r *Renderer) success(s string) string {
	if r.styled() {
		return SuccessStyle.Render(s)
	}
	return s
}

func (r *Renderer) errorf(format string, args ...interface{}) string {
	s := fmt.Sprintf(format, args...)
	if r.styled() {
		return ErrorStyle.Render(s)
	}
	return s
}
