package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

const packageJSONFile = "package.json"

// Verify is the interface for the verify command (manifest conformance).
type Verify interface {
	Execute(ctx context.Context, settings *entities.Settings, opts VerifyOptions) (*entities.VerificationErrorList, error)
}

// VerifyOptions holds runtime options for a single verify run.
type VerifyOptions struct {
	PackageDir string
	Lint       bool
}

// VerifyCommand checks a package directory's package.json for a conformant
// component manifest and the required keyword.
type VerifyCommand struct {
	inspector repositories.ExportInspectorRepository
	process   repositories.ProcessRepository
}

// NewVerifyCommand creates a new VerifyCommand.
func NewVerifyCommand(
	inspector repositories.ExportInspectorRepository,
	process repositories.ProcessRepository,
) *VerifyCommand {
	return &VerifyCommand{
		inspector: inspector,
		process:   process,
	}
}

// Execute returns the collected manifest problems. The error return is reserved
// for failures that prevent checking at all, like an unreadable package.json.
func (it *VerifyCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts VerifyOptions,
) (*entities.VerificationErrorList, error) {
	packageDir := opts.PackageDir
	if packageDir == "" {
		packageDir = "."
	}

	pkg, err := readPackageJSON(packageDir)
	if err != nil {
		return nil, err
	}

	exports, inspectErr := it.inspector.Exports(ctx, packageDir)
	if inspectErr != nil {
		logger.Warnf("Skipping export checks for %s: %v", packageDir, inspectErr)
		exports = nil
	}

	errs := &entities.VerificationErrorList{}
	report := entities.CheckComponentManifest(pkg, settings.VendorKey, exports)
	errs.Append(report.Errors...)
	errs.Append(entities.CheckKeywords(pkg, settings.Keyword)...)

	for export, component := range report.Components {
		logger.Debugf("Found export %q: name=%q description=%q dhis2Version=%v",
			export, component.Name, component.Description, component.DHIS2Version)
	}

	if opts.Lint {
		runAdvisory(ctx, it.process, packageDir, "npx", "eslint", ".")
	}

	return errs, nil
}

func readPackageJSON(packageDir string) (entities.PackageJSON, error) {
	path := filepath.Join(packageDir, packageJSONFile)
	logger.Debugf("packageJsonFile = %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pkg entities.PackageJSON
	if unmarshalErr := json.Unmarshal(data, &pkg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, unmarshalErr)
	}
	if pkg == nil {
		return nil, errors.New(path + " does not contain a JSON object")
	}
	return pkg, nil
}

// runAdvisory runs a lint or audit tool whose failure is only a warning.
func runAdvisory(ctx context.Context, process repositories.ProcessRepository, dir, name string, args ...string) {
	result := process.Run(ctx, dir, name, args...)
	if err := result.Err(); err != nil {
		logger.Warnf("%v", err)
		return
	}
	logger.Infof("OK: %s passed", name)
}
