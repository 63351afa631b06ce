//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// StubExportInspectorRepository implements repositories.ExportInspectorRepository.
type StubExportInspectorRepository struct {
	ExportSet   entities.ExportSet
	ExportsErr  error
	InspectDirs []string
}

var _ repositories.ExportInspectorRepository = (*StubExportInspectorRepository)(nil)

func (s *StubExportInspectorRepository) Exports(_ context.Context, packageDir string) (entities.ExportSet, error) {
	s.InspectDirs = append(s.InspectDirs, packageDir)
	return s.ExportSet, s.ExportsErr
}
