package cli

import (
	"fmt"
	"io"

	"github.com/commonspace/commonspace/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dry-run output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatTOML = "toml"
)

type planDocument struct {
	Steps []*domain.ExecCommand `yaml:"steps" toml:"steps"`
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatYAML, formatTOML:
		return nil
	}
	return fmt.Errorf("%w: unknown output format %q (choose from text, yaml, toml)", domain.ErrInvalidArgument, format)
}

// writePlan prints the commands a dry run would execute.
func writePlan(w io.Writer, plan []*domain.ExecCommand, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(planDocument{Steps: plan}); err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		return enc.Close()
	case formatTOML:
		if err := toml.NewEncoder(w).Encode(planDocument{Steps: plan}); err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		return nil
	default:
		for _, cmd := range plan {
			_, _ = fmt.Fprintln(w, cmd.String())
		}
		return nil
	}
}

// writeWarnings prints configuration warnings to stderr.
func writeWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
	}
}
