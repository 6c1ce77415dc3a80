package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "version",
			args:       []string{"--version"},
			wantCode:   0,
			wantStdout: "dev",
		},
		{
			name:       "help",
			args:       []string{"--help"},
			wantCode:   0,
			wantStdout: "Routing Commands:",
		},
		{
			name:       "unknown command",
			args:       []string{"foo"},
			wantCode:   2,
			wantStderr: `Error: unknown command "foo"`,
		},
		{
			name:       "invalid coordinate",
			args:       []string{"nearest", "91,0"},
			wantCode:   2,
			wantStderr: "Run 'commonspace --help' for usage.",
		},
		{
			name:       "dry run",
			args:       []string{"--dry-run", "nearest", "-33.86,151.21"},
			wantCode:   0,
			wantStdout: "'run nearest -33.86 151.21'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Keep the user's config files out of the run.
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			wd, err := os.Getwd()
			if err != nil {
				t.Fatal(err)
			}
			if err := os.Chdir(t.TempDir()); err != nil {
				t.Fatal(err)
			}
			t.Cleanup(func() { _ = os.Chdir(wd) })

			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stdout.String(), tt.wantStdout)
			assert.Contains(t, stderr.String(), tt.wantStderr)
		})
	}
}
