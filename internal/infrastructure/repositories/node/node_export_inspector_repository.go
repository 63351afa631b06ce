package node

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// exportsScript loads the package as a CommonJS module and prints its export names.
const exportsScript = `process.stdout.write(JSON.stringify(Object.keys(require(process.argv[1]))))`

// ExportInspectorRepository asks Node.js for the exports of a package.
type ExportInspectorRepository struct {
	process repositories.ProcessRepository
}

// NewExportInspectorRepository creates a new ExportInspectorRepository.
func NewExportInspectorRepository(process repositories.ProcessRepository) repositories.ExportInspectorRepository {
	return &ExportInspectorRepository{process: process}
}

func (r *ExportInspectorRepository) Exports(ctx context.Context, packageDir string) (entities.ExportSet, error) {
	absDir, err := filepath.Abs(packageDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrExportsUnavailable, err)
	}

	result := r.process.Run(ctx, absDir, "node", "-e", exportsScript, absDir)
	if runErr := result.Err(); runErr != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrExportsUnavailable, runErr)
	}

	var names []string
	if unmarshalErr := json.Unmarshal([]byte(result.Stdout), &names); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: unexpected output %q: %w", entities.ErrExportsUnavailable, result.Stdout, unmarshalErr)
	}
	return entities.NewExportSet(names...), nil
}
