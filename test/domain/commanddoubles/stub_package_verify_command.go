//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/dhis2designlab/scp-cli/internal/domain/commands"
	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

// StubPackageVerifyCommand is a stub implementation of commands.PackageVerify.
type StubPackageVerifyCommand struct {
	ExecuteCallCount int
	Errors           []entities.VerificationError
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastEntry        entities.WhitelistEntry
	LastOpts         commands.PackageVerifyOptions
}

var _ commands.PackageVerify = (*StubPackageVerifyCommand)(nil)

func (s *StubPackageVerifyCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	entry entities.WhitelistEntry,
	opts commands.PackageVerifyOptions,
) (*entities.VerificationErrorList, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastEntry = entry
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	errs := &entities.VerificationErrorList{}
	errs.Append(s.Errors...)
	return errs, nil
}
