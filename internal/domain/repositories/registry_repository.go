package repositories

import (
	"context"
	"time"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

// RegistryRepository fetches published package manifests.
type RegistryRepository interface {
	// FetchManifest returns the published package.json of entry. A missing package
	// fails with entities.ErrPackageNotFound, other non-2xx answers with
	// entities.ErrManifestFetch.
	FetchManifest(ctx context.Context, entry entities.WhitelistEntry) (*entities.RemotePackageManifest, error)
}

// RegistryRepositoryFactory builds a RegistryRepository for a registry base URL.
type RegistryRepositoryFactory func(baseURL string, timeout time.Duration) RegistryRepository
