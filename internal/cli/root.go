package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

func Run() ExitCode {
	rootCmd := NewRootCmd(clockwork.NewRealClock())
	if err := rootCmd.Execute(); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

// NewRootCmd builds the ntpts command tree. clk backs the now subcommand.
func NewRootCmd(clk clockwork.Clock) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ntpts",
		Short:        "Inspect and convert 64-bit NTP timestamps.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cmd.Help()
			if err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "set debug logging level")
	rootCmd.PersistentFlags().StringP("output", "o", string(formatTable), "output format (table, json, yaml)")

	rootCmd.AddCommand(
		NewNowCmd(clk).Command(),
		NewDecodeCmd().Command(),
		NewFromUnixCmd().Command(),
		NewFieldsCmd().Command(),
	)

	return rootCmd
}

// commonFlags reads the persistent flags shared by every subcommand.
func commonFlags(cmd *cobra.Command) (*slog.Logger, outputFormat, error) {
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get verbose flag: %w", err)
	}
	output, err := cmd.Root().PersistentFlags().GetString("output")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get output flag: %w", err)
	}
	format, err := parseOutputFormat(output)
	if err != nil {
		return nil, "", err
	}
	return newLogger(verbose, cmd.ErrOrStderr()), format, nil
}

func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
