//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

func TestRemotePackageManifestSourceRepository(t *testing.T) {
	t.Parallel()

	t.Run("should return a git repository", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := &entities.RemotePackageManifest{
			Name:       "pkg",
			Version:    "1.0.0",
			Repository: []byte(`{"type":"git","url":"git+https://github.com/o/r.git","directory":"packages/x"}`),
		}

		// when
		repository, err := manifest.SourceRepository()

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ManifestRepository{Type: "git", URL: "git+https://github.com/o/r.git"}, repository)
	})

	tests := []struct {
		name       string
		repository string
		expected   error
	}{
		{name: "should fail without a repository", repository: "", expected: entities.ErrMissingRepository},
		{name: "should fail with a null repository", repository: "null", expected: entities.ErrMissingRepository},
		{name: "should fail with a shorthand string repository", repository: `"github:o/r"`, expected: entities.ErrRepositoryMissingType},
		{name: "should fail without a type", repository: `{"url":"https://github.com/o/r"}`, expected: entities.ErrRepositoryMissingType},
		{name: "should fail with a non-git type", repository: `{"type":"svn","url":"svn://o/r"}`, expected: entities.ErrWrongRepositoryType},
		{name: "should fail without a url", repository: `{"type":"git"}`, expected: entities.ErrMissingRepositoryURL},
		{name: "should fail with an empty url", repository: `{"type":"git","url":""}`, expected: entities.ErrMissingRepositoryURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			manifest := &entities.RemotePackageManifest{Name: "pkg", Version: "1.0.0"}
			if tt.repository != "" {
				manifest.Repository = []byte(tt.repository)
			}

			// when
			_, err := manifest.SourceRepository()

			// then
			require.ErrorIs(t, err, tt.expected)
			assert.Contains(t, err.Error(), "pkg@1.0.0")
		})
	}
}

func TestRemotePackageManifestMatchesEntry(t *testing.T) {
	t.Parallel()

	t.Run("should accept the requested package", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := &entities.RemotePackageManifest{Name: "pkg", Version: "1.0.0"}

		// when
		err := manifest.MatchesEntry(entities.WhitelistEntry{Identifier: "pkg", Version: "1.0.0"})

		// then
		require.NoError(t, err)
	})

	t.Run("should reject another name or version", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := &entities.RemotePackageManifest{Name: "pkg", Version: "1.0.1"}

		// when
		err := manifest.MatchesEntry(entities.WhitelistEntry{Identifier: "pkg", Version: "1.0.0"})

		// then
		require.ErrorIs(t, err, entities.ErrManifestMismatch)
		assert.Contains(t, err.Error(), "requested pkg@1.0.0, got pkg@1.0.1")
	})
}

func TestNormalizeRepositoryURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "git+https://github.com/o/r.git", expected: "https://github.com/o/r.git"},
		{input: "https://github.com/o/r.git", expected: "https://github.com/o/r.git"},
		{input: "git://github.com/o/r.git", expected: "git://github.com/o/r.git"},
	}

	for _, tt := range tests {
		t.Run("should normalize "+tt.input, func(t *testing.T) {
			t.Parallel()

			// when
			result := entities.NormalizeRepositoryURL(tt.input)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}
