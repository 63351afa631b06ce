package controllers

import (
	"go.uber.org/dig"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewVerifyController); err != nil {
		return err
	}
	if err := container.Provide(NewPullRequestVerifyController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	verifyController *VerifyController,
	pullRequestVerifyController *PullRequestVerifyController,
) *[]entities.Controller {
	return &[]entities.Controller{
		verifyController,
		pullRequestVerifyController,
	}
}
