package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// Audit is the interface for the clone-and-audit step.
type Audit interface {
	Audit(ctx context.Context, settings *entities.Settings, url, tag string) (*entities.VerificationErrorList, error)
}

// SourceAuditor clones a package repository at a release tag into the configured
// working directory, installs it and checks its manifest. The working directory
// is removed before and after every run, so one directory serves one run at a time.
type SourceAuditor struct {
	source  repositories.SourceRepository
	process repositories.ProcessRepository
	verify  Verify
}

// NewSourceAuditor creates a new SourceAuditor.
func NewSourceAuditor(
	source repositories.SourceRepository,
	process repositories.ProcessRepository,
	verify Verify,
) *SourceAuditor {
	return &SourceAuditor{
		source:  source,
		process: process,
		verify:  verify,
	}
}

// Audit returns an error when the clone or the install fails, and otherwise the
// manifest problems found in the clone. Lint and audit tools only warn.
func (it *SourceAuditor) Audit(
	ctx context.Context,
	settings *entities.Settings,
	url, tag string,
) (*entities.VerificationErrorList, error) {
	if !semver.IsValid(tag) {
		return nil, fmt.Errorf("refusing to clone %s: %q is not a semantic version tag", url, tag)
	}

	dir := settings.RepoDir
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("failed to clean %s: %w", dir, err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.Warnf("Failed to remove %s: %v", dir, err)
		}
	}()

	logger.Infof("Cloning %s at %s into %s", url, tag, dir)
	if err := it.source.Clone(ctx, url, tag, dir); err != nil {
		return nil, err
	}
	logger.Info("OK: cloned repository")

	if settings.Audit.Install {
		if err := it.process.Run(ctx, dir, "npm", "install").Err(); err != nil {
			return nil, err
		}
		logger.Info("OK: installed dependencies")
	}
	if settings.Audit.Lint {
		runAdvisory(ctx, it.process, dir, "npx", "eslint", ".")
	}
	if settings.Audit.NPMAudit {
		runAdvisory(ctx, it.process, dir, "npm", "audit")
	}

	return it.verify.Execute(ctx, settings, VerifyOptions{PackageDir: dir})
}
