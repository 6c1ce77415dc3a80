package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/commonspace/commonspace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsCommand_ListsRegistry(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("commands")

	require.NoError(t, err)
	out := env.stdout.String()
	for _, spec := range domain.DefaultRegistry().Commands() {
		assert.Contains(t, out, spec.Name)
		assert.Contains(t, out, spec.Short)
	}
	assert.Contains(t, out, "LATLONG LATLONG STARTTIME DURATION")
	assert.NotContains(t, out, "\x1b[", "non-terminal output should not be styled")
}

func TestCommandsCommand_RejectsArgs(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("commands", "extra")

	assert.Error(t, err)
}

func TestPrintError(t *testing.T) {
	t.Run("usage error adds hint", func(t *testing.T) {
		var buf bytes.Buffer
		PrintError(&buf, domain.ErrInvalidArgument)
		assert.Equal(t, "Error: invalid argument\nRun 'commonspace --help' for usage.\n", buf.String())
	})

	t.Run("other error", func(t *testing.T) {
		var buf bytes.Buffer
		PrintError(&buf, errors.New("boom"))
		assert.Equal(t, "Error: boom\n", buf.String())
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"invalid argument", domain.ErrInvalidArgument, 2},
		{"unknown command", domain.ErrUnknownCommand, 2},
		{"engine exit status", &domain.EngineError{ExitCode: 42}, 42},
		{"engine start failure", &domain.EngineError{ExitCode: -1, Err: errors.New("not found")}, 1},
		{"other", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
