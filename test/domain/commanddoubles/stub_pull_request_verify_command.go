//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/dhis2designlab/scp-cli/internal/domain/commands"
	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

// StubPullRequestVerifyCommand is a stub implementation of commands.PullRequestVerify.
type StubPullRequestVerifyCommand struct {
	ExecuteCallCount    int
	ExecuteURLCallCount int
	Errors              []entities.VerificationError
	ExecuteErr          error
	LastSettings        *entities.Settings
	LastEvent           []byte
	LastURL             string
	LastOpts            commands.PackageVerifyOptions
}

var _ commands.PullRequestVerify = (*StubPullRequestVerifyCommand)(nil)

func (s *StubPullRequestVerifyCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	event []byte,
	opts commands.PackageVerifyOptions,
) (*entities.VerificationErrorList, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastEvent = event
	s.LastOpts = opts
	return s.result()
}

func (s *StubPullRequestVerifyCommand) ExecuteURL(
	_ context.Context,
	settings *entities.Settings,
	pullRequestURL string,
	opts commands.PackageVerifyOptions,
) (*entities.VerificationErrorList, error) {
	s.ExecuteURLCallCount++
	s.LastSettings = settings
	s.LastURL = pullRequestURL
	s.LastOpts = opts
	return s.result()
}

func (s *StubPullRequestVerifyCommand) result() (*entities.VerificationErrorList, error) {
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	errs := &entities.VerificationErrorList{}
	errs.Append(s.Errors...)
	return errs, nil
}
