package domain

import (
	"strings"
)

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Step    string   `yaml:"step" toml:"step"`
	Program string   `yaml:"program" toml:"program"`
	Dir     string   `yaml:"dir,omitempty" toml:"dir,omitempty"`
	Args    []string `yaml:"args" toml:"args"`
}

// NewCommand creates an ExecCommand for program with args, run in dir.
func NewCommand(step, program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Step:    step,
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// Tokens returns the full argument vector, program first.
func (c *ExecCommand) Tokens() []string {
	return append([]string{c.Program}, c.Args...)
}

// String renders the command line with POSIX shell quoting for display.
// It is never passed to a shell.
func (c *ExecCommand) String() string {
	tokens := c.Tokens()
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = shellQuote(t)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./,:=+@%", r)) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
