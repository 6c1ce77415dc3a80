// Package executor runs engine processes.
package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/commonspace/commonspace/internal/domain"
)

// DefaultCaptureLimit is the number of trailing output bytes kept for error reports.
const DefaultCaptureLimit = 16 * 1024

// Client implements domain.CommandExecutor interface.
type Client struct {
	captureLimit int
}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{captureLimit: DefaultCaptureLimit}
}

// NewClientWithCaptureLimit creates a client that keeps at most limit bytes of output.
func NewClientWithCaptureLimit(limit int) *Client {
	return &Client{captureLimit: limit}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Run executes cmd synchronously with the given streams attached. Nil streams
// fall back to the process's own stdin, stdout and stderr. Output is streamed
// through unchanged while a bounded copy is kept for the returned error.
func (c *Client) Run(ctx context.Context, cmd *domain.ExecCommand, streams domain.Streams) error {
	if streams.Stdin == nil {
		streams.Stdin = os.Stdin
	}
	if streams.Stdout == nil {
		streams.Stdout = os.Stdout
	}
	if streams.Stderr == nil {
		streams.Stderr = os.Stderr
	}

	capture := newTailBuffer(c.captureLimit)

	// #nosec G204 - Program comes from configuration, arguments are passed as a vector, never through a shell
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdin = streams.Stdin
	execCmd.Stdout = io.MultiWriter(streams.Stdout, capture)
	execCmd.Stderr = io.MultiWriter(streams.Stderr, capture)

	err := execCmd.Run()
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
		if exitCode < 0 {
			// Killed by a signal.
			exitCode = 1
		}
	}
	return &domain.EngineError{
		Step:     cmd.Step,
		Program:  cmd.Program,
		Args:     cmd.Args,
		ExitCode: exitCode,
		Output:   capture.String(),
		Err:      err,
	}
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	buf   []byte
	limit int
	mu    sync.Mutex
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.limit <= 0 {
		return len(p), nil
	}
	b.buf = append(b.buf, p...)
	if over := len(b.buf) - b.limit; over > 0 {
		b.buf = append(b.buf[:0], b.buf[over:]...)
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}
