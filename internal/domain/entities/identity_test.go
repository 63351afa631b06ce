//go:build unit

package entities_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

func TestValidatePackageName(t *testing.T) {
	t.Parallel()

	t.Run("should accept valid names", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{
			"scp-component-test-library",
			"@dhis2/ui",
			"some_package.js",
			"a",
			strings.Repeat("a", 214),
		} {
			// when
			violations := entities.ValidatePackageName(name)

			// then
			assert.Empty(t, violations, name)
		}
	})

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "should reject an empty name",
			input:    "",
			expected: []string{"name length must be greater than zero"},
		},
		{
			name:     "should reject a leading period",
			input:    ".hidden",
			expected: []string{"name cannot start with a period"},
		},
		{
			name:     "should reject a leading underscore",
			input:    "_private",
			expected: []string{"name cannot start with an underscore"},
		},
		{
			name:  "should reject surrounding spaces",
			input: " padded ",
			expected: []string{
				"name cannot contain leading or trailing spaces",
				"name can only contain URL-friendly characters",
			},
		},
		{
			name:     "should reject blacklisted names",
			input:    "node_modules",
			expected: []string{"node_modules is a blacklisted name"},
		},
		{
			name:     "should reject core module names",
			input:    "http",
			expected: []string{"http is a core module name"},
		},
		{
			name:     "should reject long names",
			input:    strings.Repeat("a", 215),
			expected: []string{"name can no longer contain more than 214 characters"},
		},
		{
			name:     "should reject capital letters",
			input:    "MyPackage",
			expected: []string{"name can no longer contain capital letters"},
		},
		{
			name:     "should reject special characters",
			input:    "wow!",
			expected: []string{`name can no longer contain special characters ("~'!()*")`},
		},
		{
			name:  "should list every violation of a name",
			input: "_Bad Name",
			expected: []string{
				"name cannot start with an underscore",
				"name can no longer contain capital letters",
				"name can only contain URL-friendly characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			violations := entities.ValidatePackageName(tt.input)

			// then
			assert.Equal(t, tt.expected, violations)
		})
	}
}

func TestValidateVersion(t *testing.T) {
	t.Parallel()

	t.Run("should accept strict semantic versions", func(t *testing.T) {
		t.Parallel()

		for _, version := range []string{"1.0.0", "0.0.1", "2.1.3-beta.1", "1.0.0+build.5", "10.20.30-rc.1+meta"} {
			// when
			err := entities.ValidateVersion(version)

			// then
			require.NoError(t, err, version)
		}
	})

	t.Run("should reject loose versions and echo them", func(t *testing.T) {
		t.Parallel()

		for _, version := range []string{"1.0", "v1.0.0", "1", "latest", "", "01.0.0"} {
			// when
			err := entities.ValidateVersion(version)

			// then
			require.Error(t, err, version)
			assert.Contains(t, err.Error(), `"`+version+`"`)
		}
	})
}

func TestWhitelistEntryValidate(t *testing.T) {
	t.Parallel()

	t.Run("should accept a valid identity", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entities.WhitelistEntry{Identifier: "scp-component-test-library", Version: "1.0.2"}

		// when
		err := entry.Validate()

		// then
		require.NoError(t, err)
	})

	t.Run("should report every name violation and one version error", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entities.WhitelistEntry{Identifier: "_Bad", Version: "1.0"}

		// when
		err := entry.Validate()

		// then
		require.ErrorIs(t, err, entities.ErrInvalidIdentity)
		var identityErr *entities.IdentityError
		require.True(t, errors.As(err, &identityErr))
		assert.Equal(t, entry, identityErr.Entry)
		require.Len(t, identityErr.Violations, 3)
		assert.Equal(t, "name cannot start with an underscore", identityErr.Violations[0])
		assert.Equal(t, "name can no longer contain capital letters", identityErr.Violations[1])
		assert.Contains(t, identityErr.Violations[2], `invalid version "1.0"`)
		assert.Contains(t, err.Error(), `"_Bad,1.0"`)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entities.WhitelistEntry{Identifier: "Bad Name", Version: "x.y.z"}

		// when
		first := entry.Validate()
		second := entry.Validate()

		// then
		require.Error(t, first)
		assert.Equal(t, first, second)
		assert.Equal(t, first.Error(), second.Error())
	})
}
