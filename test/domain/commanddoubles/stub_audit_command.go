//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/dhis2designlab/scp-cli/internal/domain/commands"
	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

// StubAuditCommand is a stub implementation of commands.Audit.
type StubAuditCommand struct {
	AuditCallCount int
	Errors         []entities.VerificationError
	AuditErr       error
	LastURL        string
	LastTag        string
}

var _ commands.Audit = (*StubAuditCommand)(nil)

func (s *StubAuditCommand) Audit(
	_ context.Context,
	_ *entities.Settings,
	url, tag string,
) (*entities.VerificationErrorList, error) {
	s.AuditCallCount++
	s.LastURL = url
	s.LastTag = tag
	if s.AuditErr != nil {
		return nil, s.AuditErr
	}
	errs := &entities.VerificationErrorList{}
	errs.Append(s.Errors...)
	return errs, nil
}
