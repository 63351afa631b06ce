package repositories

import (
	"go.uber.org/dig"

	"github.com/dhis2designlab/scp-cli/internal/domain/repositories"
	ghRepo "github.com/dhis2designlab/scp-cli/internal/infrastructure/repositories/github"
	gitRepo "github.com/dhis2designlab/scp-cli/internal/infrastructure/repositories/gitclone"
	nodeRepo "github.com/dhis2designlab/scp-cli/internal/infrastructure/repositories/node"
	procRepo "github.com/dhis2designlab/scp-cli/internal/infrastructure/repositories/process"
	unpkgRepo "github.com/dhis2designlab/scp-cli/internal/infrastructure/repositories/unpkg"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Factories: the API and registry URLs are only known once settings are loaded
	if err := container.Provide(func() repositories.PullRequestRepositoryFactory {
		return ghRepo.NewPullRequestRepository
	}); err != nil {
		return err
	}
	if err := container.Provide(func() repositories.RegistryRepositoryFactory {
		return unpkgRepo.NewRegistryRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(procRepo.NewExecProcessRepository); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewSourceRepository); err != nil {
		return err
	}
	if err := container.Provide(nodeRepo.NewExportInspectorRepository); err != nil {
		return err
	}

	return nil
}
