package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sgaunet/filesplit/pkg/constants"
	"github.com/sgaunet/filesplit/pkg/errkind"
	"github.com/spf13/cobra"
)

// ErrInvalidChunkArg is returned when the chunk size argument is not an integer.
var ErrInvalidChunkArg = fmt.Errorf("%w: chunk size must be an integer number of MB", errkind.ErrConfig)

var splitCmd = &cobra.Command{
	Use:   "split <sourceFile> <basePath> [<chunkSizeMB>]",
	Short: fmt.Sprintf("Split a file into chunks of chunkSizeMB (default %d, maximum %d)",
		constants.DefaultChunkSizeMB, constants.MaxChunkSizeMB),
	Args:  cobra.RangeArgs(2, 3), //nolint:mnd // source, base and optional size
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		var flags cliFlags
		if len(args) == 3 { //nolint:mnd // optional size argument
			size, err := parseChunkSize(args[2])
			if err != nil {
				return err
			}
			flags.chunkSizeMB = size
		}
		a, err := setupApp(cmd, flags)
		if err != nil {
			return err
		}
		_, err = a.Split(cmd.Context(), args[0], args[1])
		return err
	},
}

var joinCmd = &cobra.Command{
	Use:   "join <manifestFile> [<outputFile>]",
	Short: "Verify every chunk listed in a manifest and rebuild the original file",
	Args:  cobra.RangeArgs(1, 2), //nolint:mnd // manifest and optional output
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		var output string
		if len(args) == 2 { //nolint:mnd // optional output argument
			output = args[1]
		}
		a, err := setupApp(cmd, cliFlags{})
		if err != nil {
			return err
		}
		_, err = a.Join(cmd.Context(), args[0], output)
		return err
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <manifestFile>",
	Short: "Verify every chunk listed in a manifest without writing anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		a, err := setupApp(cmd, cliFlags{})
		if err != nil {
			return err
		}
		_, err = a.Verify(cmd.Context(), args[0])
		return err
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration variables and the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true
		cfg, err := loadConfiguration(configFile)
		if err != nil {
			return err
		}
		cfg.Usage()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, strings.Repeat("-", constants.SeparatorWidth))
		fmt.Fprintln(out, "filesplit configuration:")
		fmt.Fprint(out, cfg.String())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "filesplit version %s\n", version)
	},
}

// parseChunkSize reads the optional split size argument. Zero is rejected here since
// applyCliOverrides treats it as unset.
func parseChunkSize(arg string) (int, error) {
	size, err := strconv.Atoi(arg)
	if err != nil || size == 0 {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidChunkArg, arg)
	}
	return size, nil
}

func init() {
	rootCmd.AddCommand(splitCmd, joinCmd, verifyCmd, configCmd, versionCmd)
}
