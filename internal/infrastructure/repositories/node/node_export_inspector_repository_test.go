//go:build unit

package node_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/infrastructure/repositories/node"
)

func TestExportInspectorRepositoryExports(t *testing.T) {
	t.Parallel()

	t.Run("should return the names printed by node", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		process := &recordingProcess{stdout: `["Button","default"]`}
		repo := node.NewExportInspectorRepository(process)

		// when
		exports, err := repo.Exports(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.True(t, exports.Has("Button"))
		assert.True(t, exports.Has("default"))
		assert.False(t, exports.Has("Missing"))
		assert.True(t, strings.HasPrefix(process.command, "node -e "))
		assert.True(t, strings.HasSuffix(process.command, " "+dir))
	})

	t.Run("should make relative package directories absolute", func(t *testing.T) {
		t.Parallel()

		// given
		process := &recordingProcess{stdout: `[]`}
		repo := node.NewExportInspectorRepository(process)
		abs, err := filepath.Abs("pkg")
		require.NoError(t, err)

		// when
		_, err = repo.Exports(context.Background(), "pkg")

		// then
		require.NoError(t, err)
		assert.Equal(t, abs, process.dir)
	})

	t.Run("should report an unloadable package as unavailable", func(t *testing.T) {
		t.Parallel()

		// given
		process := &recordingProcess{exitCode: 1, stderr: "SyntaxError: Cannot use import statement outside a module"}
		repo := node.NewExportInspectorRepository(process)

		// when
		exports, err := repo.Exports(context.Background(), t.TempDir())

		// then
		require.ErrorIs(t, err, entities.ErrExportsUnavailable)
		assert.Nil(t, exports)
		assert.Contains(t, err.Error(), "exited with code 1")
		assert.Contains(t, err.Error(), "Cannot use import statement outside a module")
	})

	t.Run("should report unexpected output as unavailable", func(t *testing.T) {
		t.Parallel()

		// given
		repo := node.NewExportInspectorRepository(&recordingProcess{stdout: "not json"})

		// when
		_, err := repo.Exports(context.Background(), t.TempDir())

		// then
		require.ErrorIs(t, err, entities.ErrExportsUnavailable)
	})
}

type recordingProcess struct {
	stdout   string
	stderr   string
	exitCode int
	dir      string
	command  string
}

func (p *recordingProcess) Run(_ context.Context, dir, name string, args ...string) entities.ProcessResult {
	p.dir = dir
	p.command = strings.Join(append([]string{name}, args...), " ")
	return entities.ProcessResult{
		Command:  append([]string{name}, args...),
		ExitCode: p.exitCode,
		Stdout:   p.stdout,
		Stderr:   p.stderr,
	}
}
