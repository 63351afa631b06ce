package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dhis2designlab/scp-cli/internal/domain/commands"
	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

// VerifyController handles the "verify" subcommand (manifest conformance).
type VerifyController struct {
	command commands.Verify
}

// NewVerifyController creates a new VerifyController.
func NewVerifyController(command commands.Verify) *VerifyController {
	return &VerifyController{command: command}
}

// GetBind returns the Cobra command metadata for the verify controller.
func (it *VerifyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "verify [package-dir]",
		Short: "Verify the component manifest of a package",
		Long: `Check the package.json of a package directory (default: the current
directory) for a conformant component manifest: the framework, a non-empty
components list where every entry has an export, a name and a description,
optional dhis2Version lists of semantic versions, and the search keyword.

Every problem found is reported; the command exits with status 1 if there is any.`,
	}
}

// AddFlags registers verify-specific flags on the given Cobra command.
func (it *VerifyController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("package-dir", "d", ".", "Directory containing the package.json to verify")
	cmd.Flags().Bool("lint", false, "Also run eslint in the package directory (failures are warnings)")
}

// Execute runs the manifest conformance check.
func (it *VerifyController) Execute(cmd *cobra.Command, args []string) error {
	settings, log, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	packageDir, _ := cmd.Flags().GetString("package-dir")
	if len(args) > 0 {
		packageDir = args[0]
	}
	lint, _ := cmd.Flags().GetBool("lint")

	log.Infof("Verifying package in %s", packageDir)
	errs, err := it.command.Execute(context.Background(), settings, commands.VerifyOptions{
		PackageDir: packageDir,
		Lint:       lint,
	})
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), packageDir, errs)
}
