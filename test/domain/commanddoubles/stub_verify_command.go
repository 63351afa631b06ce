//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/dhis2designlab/scp-cli/internal/domain/commands"
	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

// StubVerifyCommand is a stub implementation of commands.Verify.
type StubVerifyCommand struct {
	ExecuteCallCount int
	Errors           []entities.VerificationError
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.VerifyOptions
}

var _ commands.Verify = (*StubVerifyCommand)(nil)

func (s *StubVerifyCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.VerifyOptions,
) (*entities.VerificationErrorList, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	errs := &entities.VerificationErrorList{}
	errs.Append(s.Errors...)
	return errs, nil
}
