//go:build unit

package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

func TestVerificationErrorList(t *testing.T) {
	t.Parallel()

	t.Run("should succeed while empty", func(t *testing.T) {
		t.Parallel()

		// given
		errs := &entities.VerificationErrorList{}

		// when
		err := errs.Err()

		// then
		require.NoError(t, err)
		assert.Zero(t, errs.Len())
	})

	t.Run("should treat a nil list as empty", func(t *testing.T) {
		t.Parallel()

		// given
		var errs *entities.VerificationErrorList

		// when
		err := errs.Err()

		// then
		require.NoError(t, err)
		assert.Zero(t, errs.Len())
		assert.Empty(t, errs.Items())
	})

	t.Run("should keep errors in the order they were appended", func(t *testing.T) {
		t.Parallel()

		// given
		errs := &entities.VerificationErrorList{}

		// when
		errs.Append(entities.NewVerificationError("first %d", 1))
		errs.Append(entities.NewVerificationError("second"), entities.NewVerificationError("third"))

		// then
		assert.Equal(t, []entities.VerificationError{{Text: "first 1"}, {Text: "second"}, {Text: "third"}}, errs.Items())
		require.ErrorIs(t, errs.Err(), entities.ErrVerificationFailed)
		assert.Contains(t, errs.Err().Error(), "found 3 errors")
	})

	t.Run("should not expose its backing slice", func(t *testing.T) {
		t.Parallel()

		// given
		errs := &entities.VerificationErrorList{}
		errs.Append(entities.NewVerificationError("kept"))

		// when
		items := errs.Items()
		items[0].Text = "changed"

		// then
		assert.Equal(t, "kept", errs.Items()[0].Text)
	})
}

func TestProcessResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   entities.ProcessResult
		expected string
	}{
		{
			name:     "should describe a spawn failure",
			result:   entities.ProcessResult{Command: []string{"npm", "install"}, SpawnErr: errors.New("not found")},
			expected: "external command failed: npm install: not found",
		},
		{
			name:     "should describe a signal",
			result:   entities.ProcessResult{Command: []string{"npm", "install"}, Signal: "killed", ExitCode: -1},
			expected: "external command failed: npm install was killed by signal killed",
		},
		{
			name:     "should describe an exit code",
			result:   entities.ProcessResult{Command: []string{"npm", "install"}, ExitCode: 2},
			expected: "external command failed: npm install exited with code 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			err := tt.result.Err()

			// then
			require.ErrorIs(t, err, entities.ErrCommandFailed)
			assert.Equal(t, tt.expected, err.Error())
			assert.True(t, tt.result.Failed())
		})
	}

	t.Run("should append stderr to the failure", func(t *testing.T) {
		t.Parallel()

		// given
		result := entities.ProcessResult{
			Command:  []string{"npm", "install"},
			ExitCode: 1,
			Stdout:   "added 0 packages",
			Stderr:   "npm ERR! code ERESOLVE\n",
		}

		// when
		err := result.Err()

		// then
		require.ErrorIs(t, err, entities.ErrCommandFailed)
		assert.Equal(t, "external command failed: npm install exited with code 1\nOutput:\nnpm ERR! code ERESOLVE", err.Error())
	})

	t.Run("should fall back to stdout when stderr is empty", func(t *testing.T) {
		t.Parallel()

		// given
		result := entities.ProcessResult{Command: []string{"npx", "eslint", "."}, ExitCode: 1, Stdout: "  1 problem  \n"}

		// when
		err := result.Err()

		// then
		assert.Equal(t, "external command failed: npx eslint . exited with code 1\nOutput:\n1 problem", err.Error())
	})

	t.Run("should succeed on exit code zero", func(t *testing.T) {
		t.Parallel()

		// given
		result := entities.ProcessResult{Command: []string{"true"}}

		// then
		assert.False(t, result.Failed())
		require.NoError(t, result.Err())
	})
}
