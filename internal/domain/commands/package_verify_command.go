package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
)

// PackageVerify is the interface for verifying one whitelist entry.
type PackageVerify interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		entry entities.WhitelistEntry,
		opts PackageVerifyOptions,
	) (*entities.VerificationErrorList, error)
}

// PackageVerifyOptions holds runtime options for a single package verification.
type PackageVerifyOptions struct {
	SkipClone bool // Stop after the registry checks
}

// PackageVerifyCommand runs identity validation -> registry manifest -> clone-and-audit.
type PackageVerifyCommand struct {
	registryFactory repositories.RegistryRepositoryFactory
	auditor         Audit
}

// NewPackageVerifyCommand creates a new PackageVerifyCommand.
func NewPackageVerifyCommand(
	registryFactory repositories.RegistryRepositoryFactory,
	auditor Audit,
) *PackageVerifyCommand {
	return &PackageVerifyCommand{
		registryFactory: registryFactory,
		auditor:         auditor,
	}
}

// Execute stops at the first failing stage. The returned list holds the manifest
// problems of the cloned source, and is empty when the clone is skipped.
func (it *PackageVerifyCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	entry entities.WhitelistEntry,
	opts PackageVerifyOptions,
) (*entities.VerificationErrorList, error) {
	logger.Infof("Verifying package %s", entry)
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	logger.Info("OK: package identifier and version are valid")

	registry := it.registryFactory(settings.Registry.URL, settings.Registry.Timeout)
	manifest, err := registry.FetchManifest(ctx, entry)
	if err != nil {
		return nil, err
	}
	logger.Info("OK: got package.json")

	if err = manifest.MatchesEntry(entry); err != nil {
		return nil, err
	}

	repository, err := manifest.SourceRepository()
	if err != nil {
		return nil, err
	}
	url := entities.NormalizeRepositoryURL(repository.URL)
	logger.Infof("OK: package declares git repository %s", url)

	if opts.SkipClone {
		logger.Warn("Skipping clone and audit of the package source")
		return &entities.VerificationErrorList{}, nil
	}
	return it.auditor.Audit(ctx, settings, url, entry.Tag())
}
