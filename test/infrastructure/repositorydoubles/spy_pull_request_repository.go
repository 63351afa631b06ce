//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// SpyPullRequestRepository implements repositories.PullRequestRepository as a configurable spy.
type SpyPullRequestRepository struct {
	// --- GetPullRequest ---
	PullRequest       json.RawMessage
	GetPullRequestErr error
	FetchedPRs        []string

	// --- ListChangedFiles ---
	Files        []entities.ChangedFile
	ListFilesErr error
	ListedRefs   []*entities.PullRequestRef

	// --- GetFileContent ---
	Contents           map[string]string // keyed by revision SHA
	FileContentErr     error
	RequestedRevisions []entities.Revision
}

var _ repositories.PullRequestRepository = (*SpyPullRequestRepository)(nil)

func (s *SpyPullRequestRepository) GetPullRequest(
	_ context.Context, owner, repo string, number int,
) (json.RawMessage, error) {
	s.FetchedPRs = append(s.FetchedPRs, fmt.Sprintf("%s/%s#%d", owner, repo, number))
	return s.PullRequest, s.GetPullRequestErr
}

func (s *SpyPullRequestRepository) ListChangedFiles(
	_ context.Context, ref *entities.PullRequestRef,
) ([]entities.ChangedFile, error) {
	s.ListedRefs = append(s.ListedRefs, ref)
	return s.Files, s.ListFilesErr
}

func (s *SpyPullRequestRepository) GetFileContent(
	_ context.Context, revision entities.Revision, path string,
) (string, error) {
	s.RequestedRevisions = append(s.RequestedRevisions, revision)
	if s.FileContentErr != nil {
		return "", s.FileContentErr
	}
	content, ok := s.Contents[revision.SHA]
	if !ok {
		return "", fmt.Errorf("no content for %s at %s", path, revision.SHA)
	}
	return content, nil
}

// Factory returns a PullRequestRepositoryFactory that always yields this spy and
// records the arguments it was called with.
func (s *SpyPullRequestRepository) Factory(calls *[]string) repositories.PullRequestRepositoryFactory {
	return func(apiURL, token string) (repositories.PullRequestRepository, error) {
		if calls != nil {
			*calls = append(*calls, apiURL+"|"+token)
		}
		return s, nil
	}
}
