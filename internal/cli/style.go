package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/commonspace/commonspace/internal/domain"
)

// Colors shared by styled output.
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorError   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
)

// PrintError writes err to w in the "Error: ..." form, followed by a usage
// hint for argument and command-name errors.
func PrintError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Foreground(colorError).Render("Error:")
	_, _ = fmt.Fprintf(w, "%s %v\n", label, err)
	if domain.IsUsageError(err) {
		hint := r.NewStyle().Foreground(colorMuted).Render("Run 'commonspace --help' for usage.")
		_, _ = fmt.Fprintln(w, hint)
	}
}

// ExitCode maps an error returned by the root command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var engineErr *domain.EngineError
	if errors.As(err, &engineErr) && engineErr.ExitCode > 0 {
		return engineErr.ExitCode
	}
	if domain.IsUsageError(err) {
		return 2
	}
	return 1
}
