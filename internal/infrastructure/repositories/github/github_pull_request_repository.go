package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

const perPage = 100

// PullRequestRepository implements repositories.PullRequestRepository for GitHub.
type PullRequestRepository struct {
	client *gh.Client
}

// NewPullRequestRepository creates a GitHub client for the given API base URL.
// An empty token makes unauthenticated requests.
func NewPullRequestRepository(apiURL, token string) (repositories.PullRequestRepository, error) {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	if apiURL != "" {
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
		}
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		client.BaseURL = baseURL
	}

	return &PullRequestRepository{client: client}, nil
}

// GetPullRequest returns the pull request encoded the way webhook payloads carry it.
func (r *PullRequestRepository) GetPullRequest(
	ctx context.Context,
	owner, repo string,
	number int,
) (json.RawMessage, error) {
	pr, _, err := r.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request %s/%s#%d: %w", owner, repo, number, err)
	}

	raw, err := json.Marshal(pr)
	if err != nil {
		return nil, fmt.Errorf("failed to encode pull request: %w", err)
	}
	return raw, nil
}

// ListChangedFiles pages through the files listing of the pull request.
func (r *PullRequestRepository) ListChangedFiles(
	ctx context.Context,
	ref *entities.PullRequestRef,
) ([]entities.ChangedFile, error) {
	var allFiles []entities.ChangedFile
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		files, resp, err := r.client.PullRequests.ListFiles(ctx, ref.Base.Owner, ref.Base.Repo, ref.Number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list files of pull request #%d: %w", ref.Number, err)
		}

		for _, f := range files {
			allFiles = append(allFiles, entities.ChangedFile{
				Filename: f.GetFilename(),
				Status:   f.GetStatus(),
				RawURL:   f.GetRawURL(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allFiles, nil
}

// GetFileContent reads path at the revision's commit in the revision's repository,
// which is the fork for the head of a cross-repository pull request.
func (r *PullRequestRepository) GetFileContent(
	ctx context.Context,
	revision entities.Revision,
	path string,
) (string, error) {
	fileContent, _, _, err := r.client.Repositories.GetContents(
		ctx, revision.Owner, revision.Repo, path,
		&gh.RepositoryContentGetOptions{Ref: revision.SHA},
	)
	if err != nil {
		return "", fmt.Errorf("failed to get %s at %s: %w", path, revision.SHA, err)
	}
	if fileContent == nil {
		return "", fmt.Errorf("path %q is a directory, not a file", path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode file content: %w", err)
	}
	return content, nil
}
