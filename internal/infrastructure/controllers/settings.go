package controllers

import (
	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

// loadSettings applies the persistent flags shared by every subcommand and
// returns the settings plus a logger entry tagged with a fresh run ID.
func loadSettings(cmd *cobra.Command) (*entities.Settings, *logger.Entry, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return nil, nil, err
	}

	entry := logger.WithField("run_id", uuid.NewString())
	return settings, entry, nil
}
