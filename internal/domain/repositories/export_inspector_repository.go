package repositories

import (
	"context"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

// ExportInspectorRepository lists the names a package exports when its module
// format can be introspected. Otherwise it fails with entities.ErrExportsUnavailable.
type ExportInspectorRepository interface {
	Exports(ctx context.Context, packageDir string) (entities.ExportSet, error)
}
