package controllers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhis2designlab/scp-cli/internal/domain/commands"
	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

const eventPathEnv = "GITHUB_EVENT_PATH"

// PullRequestVerifyController handles the "pr-verify" subcommand.
type PullRequestVerifyController struct {
	pullRequestVerify commands.PullRequestVerify
	packageVerify     commands.PackageVerify
}

// NewPullRequestVerifyController creates a new PullRequestVerifyController.
func NewPullRequestVerifyController(
	pullRequestVerify commands.PullRequestVerify,
	packageVerify commands.PackageVerify,
) *PullRequestVerifyController {
	return &PullRequestVerifyController{
		pullRequestVerify: pullRequestVerify,
		packageVerify:     packageVerify,
	}
}

// GetBind returns the Cobra command metadata for the pr-verify controller.
func (it *PullRequestVerifyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "pr-verify [event-json]",
		Short: "Verify a pull request against the component whitelist",
		Long: `Verify a pull request to the whitelist repository. The pull request must
change only the whitelist file and only add one identifier,version line. The
added package must have a valid name and semantic version, be published on the
registry with a git repository, and its source tagged v<version> must carry a
conformant component manifest.

The pull request is read from the event-json file (default: $GITHUB_EVENT_PATH),
fetched with --pr-url, or skipped entirely with --package.`,
	}
}

// AddFlags registers pr-verify-specific flags on the given Cobra command.
func (it *PullRequestVerifyController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("pr-url", "", "Fetch the pull request from GitHub instead of reading an event file")
	cmd.Flags().String("package", "", "Verify <identifier>,<version> directly, skipping the pull request checks")
	cmd.Flags().StringP("repo-dir", "d", "", "Working directory the package source is cloned into")
	cmd.Flags().String("registry-url", "", "Base URL of the package registry")
	cmd.Flags().String("whitelist-file", "", "Path of the whitelist file in the whitelist repository")
	cmd.Flags().Bool("skip-clone", false, "Stop after the registry checks")
}

// Execute runs the pull request pipeline.
func (it *PullRequestVerifyController) Execute(cmd *cobra.Command, args []string) error {
	settings, log, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	applyOverrides(cmd, settings)
	if err = settings.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	skipClone, _ := cmd.Flags().GetBool("skip-clone")
	prURL, _ := cmd.Flags().GetString("pr-url")
	packageData, _ := cmd.Flags().GetString("package")
	opts := commands.PackageVerifyOptions{SkipClone: skipClone}
	ctx := context.Background()

	var (
		subject string
		errs    *entities.VerificationErrorList
	)
	switch {
	case packageData != "":
		entry, parseErr := entities.ParseWhitelistEntry(packageData)
		if parseErr != nil {
			return parseErr
		}
		subject = entry.String()
		log.Infof("Verifying package %s", subject)
		errs, err = it.packageVerify.Execute(ctx, settings, entry, opts)
	case prURL != "":
		subject = prURL
		log.Infof("Verifying pull request %s", subject)
		errs, err = it.pullRequestVerify.ExecuteURL(ctx, settings, prURL, opts)
	default:
		eventPath, pathErr := resolveEventPath(args)
		if pathErr != nil {
			return pathErr
		}
		event, readErr := os.ReadFile(eventPath)
		if readErr != nil {
			return fmt.Errorf("failed to read event file: %w", readErr)
		}
		subject = eventPath
		log.Infof("Verifying pull request event %s", subject)
		errs, err = it.pullRequestVerify.Execute(ctx, settings, event, opts)
	}
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), subject, errs)
}

func applyOverrides(cmd *cobra.Command, settings *entities.Settings) {
	if repoDir, _ := cmd.Flags().GetString("repo-dir"); repoDir != "" {
		settings.RepoDir = repoDir
	}
	if registryURL, _ := cmd.Flags().GetString("registry-url"); registryURL != "" {
		settings.Registry.URL = registryURL
	}
	if whitelistFile, _ := cmd.Flags().GetString("whitelist-file"); whitelistFile != "" {
		settings.WhitelistFile = whitelistFile
	}
}

func resolveEventPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if path := os.Getenv(eventPathEnv); path != "" {
		return path, nil
	}
	return "", errors.New("no event-json given: pass a path, set " + eventPathEnv + ", or use --pr-url or --package")
}
