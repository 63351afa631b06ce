package unpkg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// RegistryRepository fetches published package.json files from an unpkg-style CDN,
// which serves `<base>/<name>@<version>/package.json`.
type RegistryRepository struct {
	baseURL string
	client  *http.Client
}

// NewRegistryRepository creates a registry client. Each fetch is a single attempt
// bounded by timeout.
func NewRegistryRepository(baseURL string, timeout time.Duration) repositories.RegistryRepository {
	return &RegistryRepository{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// ManifestURL returns the URL the manifest of entry is fetched from.
func (r *RegistryRepository) ManifestURL(entry entities.WhitelistEntry) string {
	return fmt.Sprintf("%s/%s@%s/package.json", r.baseURL, entry.Identifier, entry.Version)
}

func (r *RegistryRepository) FetchManifest(
	ctx context.Context,
	entry entities.WhitelistEntry,
) (*entities.RemotePackageManifest, error) {
	manifestURL := r.ManifestURL(entry)
	logger.Debugf("Fetching %s", manifestURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrManifestFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", entities.ErrPackageNotFound, entry)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d/%s", entities.ErrManifestFetch, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var manifest entities.RemotePackageManifest
	if decodeErr := json.NewDecoder(resp.Body).Decode(&manifest); decodeErr != nil {
		return nil, fmt.Errorf("%w: invalid package.json for %s: %w", entities.ErrManifestFetch, entry, decodeErr)
	}
	return &manifest, nil
}
