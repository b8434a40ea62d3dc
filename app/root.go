// Package app implements the main application commands.
package app

import (
	"io/fs"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ticketgen/ticketgen/internal/config"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "directory containing main.toml")
}

var (
	configPath string // Path to the configuration directory

	rootCmd = &cobra.Command{
		Use:   "ticketgen",
		Short: "ticketgen generates randomized ticket strings",
		Long: `ticketgen generates randomized ticket strings for barcode payloads.
It offers four strategies (library, secure, sampling, ascii) on the command line
and as a small http service.`,
		Args:         cobra.OnlyValidArgs,
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads main.toml. Without an explicit --config a missing file falls back to
// config.Default.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.ReadConfig(configPath)
	if err == nil {
		return cfg, nil
	}

	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		log.Debug().Err(err).Msg("no config file found, using defaults")

		return config.Default(), nil
	}

	return config.Config{}, err
}
