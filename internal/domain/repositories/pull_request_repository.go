package repositories

import (
	"context"
	"encoding/json"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

// PullRequestRepository abstracts the Git hosting API a whitelist pull request lives on.
type PullRequestRepository interface {
	// GetPullRequest returns the raw pull_request object, shaped like a webhook payload.
	GetPullRequest(ctx context.Context, owner, repo string, number int) (json.RawMessage, error)

	// ListChangedFiles returns the files listing of the pull request.
	ListChangedFiles(ctx context.Context, ref *entities.PullRequestRef) ([]entities.ChangedFile, error)

	// GetFileContent returns the content of path at the given revision.
	GetFileContent(ctx context.Context, revision entities.Revision, path string) (string, error)
}

// PullRequestRepositoryFactory builds a PullRequestRepository for an API base URL and token.
type PullRequestRepositoryFactory func(apiURL, token string) (PullRequestRepository, error)
