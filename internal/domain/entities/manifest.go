package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

const gitRepositoryType = "git"

// RemotePackageManifest is the registry-published copy of a package.json.
type RemotePackageManifest struct {
	Name       string          `json:"name"`
	Version    string          `json:"version"`
	Repository json.RawMessage `json:"repository,omitempty"`
}

// ManifestRepository is the `repository` object of a package.json.
type ManifestRepository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

func (m *RemotePackageManifest) describe() string {
	return m.Name + "@" + m.Version
}

// MatchesEntry fails when the registry served a manifest for another package or version.
func (m *RemotePackageManifest) MatchesEntry(entry WhitelistEntry) error {
	if m.Name != entry.Identifier || m.Version != entry.Version {
		return fmt.Errorf("%w: requested %s@%s, got %s",
			ErrManifestMismatch, entry.Identifier, entry.Version, m.describe())
	}
	return nil
}

// SourceRepository returns the declared git repository, failing with a distinct
// error for each missing or wrong field.
func (m *RemotePackageManifest) SourceRepository() (ManifestRepository, error) {
	raw := strings.TrimSpace(string(m.Repository))
	if raw == "" || raw == "null" {
		return ManifestRepository{}, fmt.Errorf("%w: no repository defined for %s", ErrMissingRepository, m.describe())
	}

	var fields map[string]any
	if err := json.Unmarshal(m.Repository, &fields); err != nil {
		return ManifestRepository{}, fmt.Errorf("%w: package.json/repository of %s must be an object with a type",
			ErrRepositoryMissingType, m.describe())
	}

	repoType, ok := fields["type"]
	if !ok {
		return ManifestRepository{}, fmt.Errorf("%w: package.json/repository of %s must have type",
			ErrRepositoryMissingType, m.describe())
	}
	if repoType != gitRepositoryType {
		return ManifestRepository{}, fmt.Errorf("%w: package.json/repository of %s must have git type, not %v",
			ErrWrongRepositoryType, m.describe(), repoType)
	}

	url, _ := fields["url"].(string)
	if url == "" {
		return ManifestRepository{}, fmt.Errorf("%w: package.json/repository of %s must have url",
			ErrMissingRepositoryURL, m.describe())
	}

	return ManifestRepository{Type: gitRepositoryType, URL: url}, nil
}

// NormalizeRepositoryURL rewrites the npm `git+https` scheme to plain https.
func NormalizeRepositoryURL(url string) string {
	return strings.Replace(url, "git+https", "https", 1)
}
