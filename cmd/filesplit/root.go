package main

import (
	"errors"
	"fmt"

	"github.com/sgaunet/filesplit/pkg/app"
	"github.com/sgaunet/filesplit/pkg/config"
	"github.com/sgaunet/filesplit/pkg/progress"
	"github.com/spf13/cobra"
)

// ErrNoCommand is returned when filesplit is run without a command.
var ErrNoCommand = errors.New("no command specified")

var configFile string

var rootCmd = &cobra.Command{
	Use:   "filesplit",
	Short: "Split a file into verified chunks and join them back",
	Long: `filesplit cuts a large file into fixed-size chunk files plus a manifest
(<base>.split) holding a SHA-1 digest per chunk. join rebuilds the original
after checking every chunk, verify only checks them.

Configuration precedence: command-line arguments > config file > environment variables.`,
	Example: `  filesplit split movie.mkv /mnt/usb/movie 50
  filesplit join /mnt/usb/movie.split
  filesplit verify /mnt/usb/movie.split
  filesplit -c filesplit.yaml split backup.tar backup`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return ErrNoCommand
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file (YAML)")
}

// cliFlags holds command-line values overriding the configuration.
type cliFlags struct {
	chunkSizeMB int
}

func loadConfiguration(cfgFile string) (*config.Config, error) {
	if len(cfgFile) > 0 {
		return config.NewConfigFromFile(cfgFile)
	}
	return config.NewConfigFromEnv()
}

// applyCliOverrides applies command-line values to the configuration. Zero means not set.
func applyCliOverrides(cfg *config.Config, flags cliFlags) {
	if flags.chunkSizeMB != 0 {
		cfg.ChunkSizeMB = flags.chunkSizeMB
	}
}

// setupApp loads and validates the configuration, then builds an App logging to the command output.
func setupApp(cmd *cobra.Command, flags cliFlags) (*app.App, error) {
	cfg, err := loadConfiguration(configFile)
	if err != nil {
		return nil, err
	}
	applyCliOverrides(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	l := initTrace(cmd.OutOrStdout(), cfg.DebugLevel, cfg.NoLogTime)
	a := app.NewApp(cfg)
	a.SetLogger(l)
	a.SetReporter(progress.NewConsoleReporter(l))
	return a, nil
}
