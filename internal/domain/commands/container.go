package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewVerifyCommand); err != nil {
		return err
	}
	if err := container.Provide(NewSourceAuditor); err != nil {
		return err
	}
	if err := container.Provide(NewPackageVerifyCommand); err != nil {
		return err
	}
	if err := container.Provide(NewPullRequestVerifyCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *VerifyCommand) Verify {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *SourceAuditor) Audit {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *PackageVerifyCommand) PackageVerify {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *PullRequestVerifyCommand) PullRequestVerify {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
