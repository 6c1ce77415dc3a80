package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/commonspace/commonspace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sh(script string) *domain.ExecCommand {
	return domain.NewCommand(domain.StepRun, "sh", []string{"-c", script}, "")
}

func TestClient_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()

	t.Run("streams stdout and stderr", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := client.Run(context.Background(), sh("echo hello; echo oops >&2"), domain.Streams{
			Stdin:  strings.NewReader(""),
			Stdout: &stdout,
			Stderr: &stderr,
		})
		require.NoError(t, err)
		assert.Equal(t, "hello\n", stdout.String())
		assert.Equal(t, "oops\n", stderr.String())
	})

	t.Run("passes arguments without shell interpretation", func(t *testing.T) {
		var stdout bytes.Buffer
		cmd := domain.NewCommand(domain.StepRun, "printf", []string{"%s|", "a b", "$(echo injected)", ";ls"}, "")
		err := client.Run(context.Background(), cmd, domain.Streams{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &bytes.Buffer{}})
		require.NoError(t, err)
		assert.Equal(t, "a b|$(echo injected)|;ls|", stdout.String())
	})

	t.Run("runs in specified directory", func(t *testing.T) {
		dir := t.TempDir()
		var stdout bytes.Buffer
		cmd := domain.NewCommand(domain.StepRun, "pwd", nil, dir)
		err := client.Run(context.Background(), cmd, domain.Streams{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &bytes.Buffer{}})
		require.NoError(t, err)
		resolved, _ := filepath.EvalSymlinks(dir)
		assert.Contains(t, []string{dir, resolved}, strings.TrimSpace(stdout.String()))
	})

	t.Run("inherits stdin", func(t *testing.T) {
		var stdout bytes.Buffer
		err := client.Run(context.Background(), sh("cat"), domain.Streams{Stdin: strings.NewReader("piped"), Stdout: &stdout, Stderr: &bytes.Buffer{}})
		require.NoError(t, err)
		assert.Equal(t, "piped", stdout.String())
	})

	t.Run("non-zero exit returns engine error with output", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := client.Run(context.Background(), sh("echo partial; echo broken >&2; exit 3"), domain.Streams{
			Stdin:  strings.NewReader(""),
			Stdout: &stdout,
			Stderr: &stderr,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEngineInvocation)

		var engineErr *domain.EngineError
		require.True(t, errors.As(err, &engineErr))
		assert.Equal(t, 3, engineErr.ExitCode)
		assert.Equal(t, domain.StepRun, engineErr.Step)
		assert.Contains(t, engineErr.Output, "partial")
		assert.Contains(t, engineErr.Output, "broken")
		assert.Equal(t, "partial\n", stdout.String())
	})

	t.Run("missing program returns start failure", func(t *testing.T) {
		cmd := domain.NewCommand(domain.StepBuild, "nonexistent-command-xyz", nil, "")
		err := client.Run(context.Background(), cmd, domain.Streams{Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
		require.Error(t, err)

		var engineErr *domain.EngineError
		require.True(t, errors.As(err, &engineErr))
		assert.Equal(t, -1, engineErr.ExitCode)
		assert.Equal(t, domain.StepBuild, engineErr.Step)
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})
}

func TestClient_Run_CaptureLimit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClientWithCaptureLimit(4)
	var stdout bytes.Buffer
	err := client.Run(context.Background(), sh("printf abcdefgh; exit 1"), domain.Streams{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &bytes.Buffer{}})

	var engineErr *domain.EngineError
	require.True(t, errors.As(err, &engineErr))
	assert.Equal(t, "efgh", engineErr.Output)
	assert.Equal(t, "abcdefgh", stdout.String())
}

func TestTailBuffer(t *testing.T) {
	b := newTailBuffer(5)
	n, err := b.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, _ = b.Write([]byte("defg"))
	assert.Equal(t, "cdefg", b.String())

	disabled := newTailBuffer(0)
	_, _ = disabled.Write([]byte("abc"))
	assert.Empty(t, disabled.String())
}

func TestNewClient(t *testing.T) {
	client := NewClient()
	assert.NotNil(t, client)
	assert.Equal(t, DefaultCaptureLimit, client.captureLimit)
}
