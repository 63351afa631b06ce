package commands

import (
	"context"
	"encoding/json"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// PullRequestVerify is the interface for the pr-verify command.
type PullRequestVerify interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		event []byte,
		opts PackageVerifyOptions,
	) (*entities.VerificationErrorList, error)
	ExecuteURL(
		ctx context.Context,
		settings *entities.Settings,
		pullRequestURL string,
		opts PackageVerifyOptions,
	) (*entities.VerificationErrorList, error)
}

// PullRequestVerifyCommand gates a whitelist pull request:
// event -> single changed file -> whitelist diff -> package verification.
type PullRequestVerifyCommand struct {
	pullRequestFactory repositories.PullRequestRepositoryFactory
	packageVerify      PackageVerify
}

// NewPullRequestVerifyCommand creates a new PullRequestVerifyCommand.
func NewPullRequestVerifyCommand(
	pullRequestFactory repositories.PullRequestRepositoryFactory,
	packageVerify PackageVerify,
) *PullRequestVerifyCommand {
	return &PullRequestVerifyCommand{
		pullRequestFactory: pullRequestFactory,
		packageVerify:      packageVerify,
	}
}

// Execute verifies the pull request carried by a webhook event payload. Every
// gate failure ends the run with its own error.
func (it *PullRequestVerifyCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	event []byte,
	opts PackageVerifyOptions,
) (*entities.VerificationErrorList, error) {
	raw, err := entities.DecodePullRequestEvent(event)
	if err != nil {
		return nil, err
	}
	logger.Info("OK: event is a pull request")

	ref, err := entities.ParsePullRequest(raw)
	if err != nil {
		return nil, err
	}
	logger.Info("OK: pull request only changes one file")

	client, err := it.pullRequestFactory(settings.GitHub.APIURL, settings.GitHub.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	entry, err := it.extractEntry(ctx, client, settings.WhitelistFile, ref)
	if err != nil {
		return nil, err
	}
	return it.packageVerify.Execute(ctx, settings, entry, opts)
}

// ExecuteURL fetches the pull request behind a github.com or API URL and
// verifies it like an event payload.
func (it *PullRequestVerifyCommand) ExecuteURL(
	ctx context.Context,
	settings *entities.Settings,
	pullRequestURL string,
	opts PackageVerifyOptions,
) (*entities.VerificationErrorList, error) {
	owner, repo, number, err := entities.ParsePullRequestURL(pullRequestURL)
	if err != nil {
		return nil, err
	}

	client, err := it.pullRequestFactory(settings.GitHub.APIURL, settings.GitHub.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	logger.Infof("Fetching pull request %s/%s#%d", owner, repo, number)
	raw, err := client.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		return nil, err
	}

	event, err := json.Marshal(map[string]json.RawMessage{"pull_request": raw})
	if err != nil {
		return nil, fmt.Errorf("failed to build event payload: %w", err)
	}
	return it.Execute(ctx, settings, event, opts)
}

func (it *PullRequestVerifyCommand) extractEntry(
	ctx context.Context,
	client repositories.PullRequestRepository,
	whitelistFile string,
	ref *entities.PullRequestRef,
) (entities.WhitelistEntry, error) {
	logger.Debugf("Listing files of %s", ref.FilesURL)
	files, err := client.ListChangedFiles(ctx, ref)
	if err != nil {
		return entities.WhitelistEntry{}, err
	}
	if err = entities.VerifyChangedFile(files, whitelistFile); err != nil {
		return entities.WhitelistEntry{}, err
	}
	logger.Infof("OK: pull request changes %s", whitelistFile)

	logger.Debugf("Old whitelist: %s", ref.BaseRevisionURL(whitelistFile))
	oldContent, err := client.GetFileContent(ctx, ref.Base, whitelistFile)
	if err != nil {
		return entities.WhitelistEntry{}, err
	}
	logger.Debugf("New whitelist: %s", ref.HeadFileURL(whitelistFile))
	newContent, err := client.GetFileContent(ctx, ref.Head, whitelistFile)
	if err != nil {
		return entities.WhitelistEntry{}, err
	}

	packages, err := entities.ExtractPackages(oldContent, newContent)
	if err != nil {
		return entities.WhitelistEntry{}, err
	}
	logger.Infof("OK: pull request adds %s", packages[0])
	return packages[0], nil
}
