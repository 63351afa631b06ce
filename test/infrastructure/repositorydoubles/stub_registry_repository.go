//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"time"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// StubRegistryRepository implements repositories.RegistryRepository with a canned manifest.
type StubRegistryRepository struct {
	Manifest  *entities.RemotePackageManifest
	FetchErr  error
	Requested []entities.WhitelistEntry

	// Filled by Factory.
	BaseURL string
	Timeout time.Duration
}

var _ repositories.RegistryRepository = (*StubRegistryRepository)(nil)

func (s *StubRegistryRepository) FetchManifest(
	_ context.Context, entry entities.WhitelistEntry,
) (*entities.RemotePackageManifest, error) {
	s.Requested = append(s.Requested, entry)
	return s.Manifest, s.FetchErr
}

// Factory returns a RegistryRepositoryFactory yielding this stub.
func (s *StubRegistryRepository) Factory() repositories.RegistryRepositoryFactory {
	return func(baseURL string, timeout time.Duration) repositories.RegistryRepository {
		s.BaseURL = baseURL
		s.Timeout = timeout
		return s
	}
}

// NewGitManifest returns a manifest for entry declaring a git repository at url.
func NewGitManifest(entry entities.WhitelistEntry, url string) *entities.RemotePackageManifest {
	return &entities.RemotePackageManifest{
		Name:       entry.Identifier,
		Version:    entry.Version,
		Repository: []byte(`{"type":"git","url":"` + url + `"}`),
	}
}
