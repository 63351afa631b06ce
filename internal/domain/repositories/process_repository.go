package repositories

import (
	"context"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

// ProcessRepository runs external commands (package installers, linters, auditors).
type ProcessRepository interface {
	// Run executes name with args inside dir. It never returns an error: spawn
	// failures are reported in ProcessResult.SpawnErr.
	Run(ctx context.Context, dir, name string, args ...string) entities.ProcessResult
}
