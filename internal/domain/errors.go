package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrEngineInvocation    = errors.New("engine invocation failed")
	ErrEngineNotConfigured = errors.New("engine not configured")
	ErrConfigExists        = errors.New("config file already exists")
)

// IsUsageError reports whether err was caused by bad command-line input.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrUnknownCommand)
}

// EngineError describes an engine process that could not be started or
// exited with a non-zero status.
// Fields are ordered to minimize memory padding.
type EngineError struct {
	Err      error    // Underlying os/exec error
	Step     string   // Plan step name (e.g. "run", "build")
	Program  string   // Program that was executed
	Output   string   // Captured tail of the combined output
	Args     []string // Arguments passed to Program
	ExitCode int      // Process exit status, -1 if it never started
}

func (e *EngineError) Error() string {
	cmdline := strings.Join(append([]string{e.Program}, e.Args...), " ")
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s: %s step: could not start %q: %v", ErrEngineInvocation, e.Step, cmdline, e.Err)
	}
	return fmt.Sprintf("%s: %s step: %q exited with status %d", ErrEngineInvocation, e.Step, cmdline, e.ExitCode)
}

// Unwrap exposes both ErrEngineInvocation and the underlying cause.
func (e *EngineError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEngineInvocation}
	}
	return []error{ErrEngineInvocation, e.Err}
}
