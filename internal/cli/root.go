package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every subcommand.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the tourneybot command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tourneybot",
		Short: "Discord tournament sign-up bot",
		Long: `tourneybot manages sign-ups for a fixed-capacity team tournament over
Discord: slots, team registration with rosters, confirmations and status.

State is kept in a single JSON document on disk; configuration comes from
environment variables (see DISCORD_BOT_TOKEN, COMMAND_PREFIX,
TOURNEY_DATA_FILE, LOG_LEVEL).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewStateCommand(opts))

	return cmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupLogging installs the process-wide JSON logger. The --verbose flag
// overrides the configured level with debug.
func setupLogging(level slog.Level, verbose bool) {
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
