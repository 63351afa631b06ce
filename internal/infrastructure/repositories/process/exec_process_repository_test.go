//go:build unit

package process_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/infrastructure/repositories/process"
)

func TestExecProcessRepositoryRun(t *testing.T) {
	t.Parallel()

	t.Run("should capture output of a successful command", func(t *testing.T) {
		t.Parallel()

		// given
		repo := process.NewExecProcessRepository()
		dir := t.TempDir()

		// when
		result := repo.Run(context.Background(), dir, "sh", "-c", "pwd; echo oops >&2")

		// then
		require.NoError(t, result.Err())
		assert.Contains(t, result.Stdout, dir)
		assert.Equal(t, "oops\n", result.Stderr)
		assert.Equal(t, []string{"sh", "-c", "pwd; echo oops >&2"}, result.Command)
	})

	t.Run("should report the exit code of a failing command", func(t *testing.T) {
		t.Parallel()

		// given
		repo := process.NewExecProcessRepository()

		// when
		result := repo.Run(context.Background(), t.TempDir(), "sh", "-c", "exit 3")

		// then
		assert.Equal(t, 3, result.ExitCode)
		require.ErrorIs(t, result.Err(), entities.ErrCommandFailed)
		assert.Contains(t, result.Err().Error(), "exited with code 3")
	})

	t.Run("should carry stderr into the failure", func(t *testing.T) {
		t.Parallel()

		// given
		repo := process.NewExecProcessRepository()

		// when
		result := repo.Run(context.Background(), t.TempDir(), "sh", "-c", "echo 'npm ERR! code ERESOLVE' >&2; exit 1")

		// then
		require.ErrorIs(t, result.Err(), entities.ErrCommandFailed)
		assert.Contains(t, result.Err().Error(), "exited with code 1")
		assert.Contains(t, result.Err().Error(), "npm ERR! code ERESOLVE")
	})

	t.Run("should report the signal that killed a command", func(t *testing.T) {
		t.Parallel()

		// given
		repo := process.NewExecProcessRepository()

		// when
		result := repo.Run(context.Background(), t.TempDir(), "sh", "-c", "kill -TERM $$")

		// then
		assert.Equal(t, "terminated", result.Signal)
		require.ErrorIs(t, result.Err(), entities.ErrCommandFailed)
	})

	t.Run("should report a command that cannot be spawned", func(t *testing.T) {
		t.Parallel()

		// given
		repo := process.NewExecProcessRepository()

		// when
		result := repo.Run(context.Background(), t.TempDir(), "scp-cli-no-such-binary")

		// then
		require.Error(t, result.SpawnErr)
		assert.True(t, result.Failed())
	})
}
