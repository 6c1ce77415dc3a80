package cli

import (
	"bytes"
	"testing"

	"github.com/commonspace/commonspace/internal/app"
	"github.com/commonspace/commonspace/internal/domain"
	"github.com/commonspace/commonspace/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	executor *testutil.MockExecutor
	loader   *testutil.MockConfigLoader
	manager  *testutil.MockConfigManager
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	root     *cobra.Command
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		executor: testutil.NewMockExecutor(),
		loader:   testutil.NewMockConfigLoader(),
		manager:  &testutil.MockConfigManager{},
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
	}
	c := app.NewWithDeps(app.Config{WorkDir: t.TempDir()}, env.executor, env.loader, env.manager, nil)
	env.root = NewRootCommand(c, "test-version")
	env.root.SetOut(env.stdout)
	env.root.SetErr(env.stderr)
	return env
}

func (e *testEnv) run(args ...string) error {
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}
	e.root.SetArgs(args)
	return e.root.Execute()
}

func TestNewRootCommand_NoArgs_ShowsHelp(t *testing.T) {
	env := newTestEnv(t)

	err := env.run()

	require.NoError(t, err)
	assert.Contains(t, env.stdout.String(), "Routing Commands:")
	assert.Contains(t, env.stdout.String(), "Setup Commands:")
	assert.Empty(t, env.executor.Commands)
}

func TestNewRootCommand_RegistersEveryRegistryCommand(t *testing.T) {
	env := newTestEnv(t)

	for _, name := range domain.DefaultRegistry().Names() {
		cmd, _, err := env.root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
		assert.Equal(t, groupRouting, cmd.GroupID)
	}
}

func TestNewRootCommand_Version(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("--version")

	require.NoError(t, err)
	assert.Contains(t, env.stdout.String(), "test-version")
}

func TestNewRootCommand_UnknownCommand(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("foo", "1,2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"foo"`)
	assert.Contains(t, err.Error(), "nearest")
	assert.Equal(t, 2, ExitCode(err))
	assert.Empty(t, env.executor.Commands)
}

func TestNewRootCommand_NoCompletionCommand(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("completion")

	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
}

func TestNewRootCommand_UnknownCommandWithNegativeCoordinate(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("foo", "-1,2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"foo"`)
	assert.Equal(t, 2, ExitCode(err))
}

func TestNewRootCommand_RootFlagsBeforeUnknownCommand(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("--dry-run", "foo", "-1,2")

	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
	assert.Empty(t, env.stdout.String())
}

func TestNewRootCommand_Help(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		t.Run(arg, func(t *testing.T) {
			env := newTestEnv(t)

			err := env.run(arg)

			require.NoError(t, err)
			assert.Contains(t, env.stdout.String(), "Routing Commands:")
		})
	}
}

func TestNewRootCommand_UnknownRootFlag(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("--bogus")

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, 2, ExitCode(err))
}
