package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/commonspace/commonspace/internal/app"
	"github.com/commonspace/commonspace/internal/domain"
	"github.com/spf13/cobra"
)

// newCommandsCommand creates the commands subcommand listing the engine operations.
func newCommandsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List routing operations and their arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeCommandList(cmd.OutOrStdout(), c.Registry.Commands())
			return nil
		},
	}
}

func writeCommandList(w io.Writer, specs []domain.CommandSpec) {
	r := lipgloss.NewRenderer(w)
	nameStyle := r.NewStyle().Bold(true).Foreground(colorPrimary)
	argStyle := r.NewStyle().Foreground(colorMuted)

	width := 0
	for _, s := range specs {
		width = max(width, len(s.Name))
	}

	for _, s := range specs {
		names := make([]string, len(s.Args))
		for i, a := range s.Args {
			names[i] = a.Name
		}
		padding := strings.Repeat(" ", width-len(s.Name))
		_, _ = fmt.Fprintf(w, "%s%s  %s\n", nameStyle.Render(s.Name), padding, s.Short)
		if len(names) > 0 {
			_, _ = fmt.Fprintf(w, "%s  %s\n", strings.Repeat(" ", width), argStyle.Render(strings.Join(names, " ")))
		}
	}
}
