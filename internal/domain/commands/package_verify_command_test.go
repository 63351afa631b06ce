//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhis2designlab/scp-cli/internal/domain/commands"
	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
	"github.com/dhis2designlab/scp-cli/test/domain/commanddoubles"
	doubles "github.com/dhis2designlab/scp-cli/test/infrastructure/repositorydoubles"
)

func TestPackageVerifyCommandExecute(t *testing.T) {
	t.Parallel()

	entry := entities.WhitelistEntry{Identifier: "test-component", Version: "1.2.3"}

	t.Run("should audit the normalized repository at the version tag", func(t *testing.T) {
		t.Parallel()

		// given
		registry := &doubles.StubRegistryRepository{
			Manifest: doubles.NewGitManifest(entry, "git+https://github.com/dhis2designlab/test-component.git"),
		}
		auditor := &commanddoubles.StubAuditCommand{}
		cmd := commands.NewPackageVerifyCommand(registry.Factory(), auditor)
		settings := entities.DefaultSettings()
		settings.Registry.URL = "http://registry.local"

		// when
		errs, err := cmd.Execute(context.Background(), settings, entry, commands.PackageVerifyOptions{})

		// then
		require.NoError(t, err)
		assert.Zero(t, errs.Len())
		assert.Equal(t, "http://registry.local", registry.BaseURL)
		assert.Equal(t, entities.DefaultRegistryTimeout, registry.Timeout)
		assert.Equal(t, []entities.WhitelistEntry{entry}, registry.Requested)
		assert.Equal(t, "https://github.com/dhis2designlab/test-component.git", auditor.LastURL)
		assert.Equal(t, "v1.2.3", auditor.LastTag)
	})

	t.Run("should reject an invalid identity before any fetch", func(t *testing.T) {
		t.Parallel()

		// given
		registry := &doubles.StubRegistryRepository{}
		auditor := &commanddoubles.StubAuditCommand{}
		cmd := commands.NewPackageVerifyCommand(registry.Factory(), auditor)
		bad := entities.WhitelistEntry{Identifier: "Bad_Name", Version: "1.0"}

		// when
		_, err := cmd.Execute(context.Background(), entities.DefaultSettings(), bad, commands.PackageVerifyOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidIdentity)
		assert.Empty(t, registry.Requested)
		assert.Zero(t, auditor.AuditCallCount)
	})

	t.Run("should propagate a missing package", func(t *testing.T) {
		t.Parallel()

		// given
		registry := &doubles.StubRegistryRepository{FetchErr: entities.ErrPackageNotFound}
		auditor := &commanddoubles.StubAuditCommand{}
		cmd := commands.NewPackageVerifyCommand(registry.Factory(), auditor)

		// when
		_, err := cmd.Execute(context.Background(), entities.DefaultSettings(), entry, commands.PackageVerifyOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrPackageNotFound)
		assert.Zero(t, auditor.AuditCallCount)
	})

	t.Run("should reject a manifest published for another version", func(t *testing.T) {
		t.Parallel()

		// given
		other := entities.WhitelistEntry{Identifier: entry.Identifier, Version: "9.9.9"}
		registry := &doubles.StubRegistryRepository{
			Manifest: doubles.NewGitManifest(other, "https://github.com/dhis2designlab/test-component.git"),
		}
		auditor := &commanddoubles.StubAuditCommand{}
		cmd := commands.NewPackageVerifyCommand(registry.Factory(), auditor)

		// when
		_, err := cmd.Execute(context.Background(), entities.DefaultSettings(), entry, commands.PackageVerifyOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrManifestMismatch)
		assert.Zero(t, auditor.AuditCallCount)
	})

	t.Run("should reject a manifest without a git repository", func(t *testing.T) {
		t.Parallel()

		// given
		registry := &doubles.StubRegistryRepository{Manifest: &entities.RemotePackageManifest{
			Name:       entry.Identifier,
			Version:    entry.Version,
			Repository: []byte(`{"type":"svn","url":"svn://example.org/repo"}`),
		}}
		auditor := &commanddoubles.StubAuditCommand{}
		cmd := commands.NewPackageVerifyCommand(registry.Factory(), auditor)

		// when
		_, err := cmd.Execute(context.Background(), entities.DefaultSettings(), entry, commands.PackageVerifyOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrWrongRepositoryType)
		assert.Zero(t, auditor.AuditCallCount)
	})

	t.Run("should stop after the registry checks when the clone is skipped", func(t *testing.T) {
		t.Parallel()

		// given
		registry := &doubles.StubRegistryRepository{
			Manifest: doubles.NewGitManifest(entry, "https://github.com/dhis2designlab/test-component.git"),
		}
		auditor := &commanddoubles.StubAuditCommand{}
		cmd := commands.NewPackageVerifyCommand(registry.Factory(), auditor)

		// when
		errs, err := cmd.Execute(context.Background(), entities.DefaultSettings(), entry,
			commands.PackageVerifyOptions{SkipClone: true})

		// then
		require.NoError(t, err)
		assert.Zero(t, errs.Len())
		assert.Zero(t, auditor.AuditCallCount)
	})

	t.Run("should return the audit errors", func(t *testing.T) {
		t.Parallel()

		// given
		registry := &doubles.StubRegistryRepository{
			Manifest: doubles.NewGitManifest(entry, "https://github.com/dhis2designlab/test-component.git"),
		}
		auditor := &commanddoubles.StubAuditCommand{
			Errors: []entities.VerificationError{{Text: "package.json does not include dhis2ComponentSearch field"}},
		}
		cmd := commands.NewPackageVerifyCommand(registry.Factory(), auditor)

		// when
		errs, err := cmd.Execute(context.Background(), entities.DefaultSettings(), entry, commands.PackageVerifyOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"package.json does not include dhis2ComponentSearch field"}, errorTexts(errs))
	})
}
