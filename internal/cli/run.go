package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"

	"github.com/okrensky/tourneybot/internal/bot"
	"github.com/okrensky/tourneybot/internal/config"
	"github.com/okrensky/tourneybot/internal/service"
	"github.com/okrensky/tourneybot/internal/storage"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and serve sign-up commands",
		Long: `Start the bot: load the sign-up document, connect to the Discord
gateway and handle commands until interrupted.

Example:
  DISCORD_BOT_TOKEN=... tourneybot run
  DISCORD_BOT_TOKEN=... TOURNEY_DATA_FILE=/var/lib/tourneybot/state.json tourneybot run -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(rootOpts)
		},
	}
}

func runBot(opts *RootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.Log.SlogLevel()
	setupLogging(level, opts.Verbose)

	store := storage.NewFileStore(cfg.Storage.DataFile)
	svc, err := service.NewTournamentService(store)
	if err != nil {
		return err
	}
	slog.Info("tournament state loaded", slog.String("path", cfg.Storage.DataFile))

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}

	bot.New(svc, cfg.Discord.CommandPrefix).Attach(session)

	if err := session.Open(); err != nil {
		return fmt.Errorf("connect to discord: %w", err)
	}
	defer func() { _ = session.Close() }()

	slog.Info("bot running",
		slog.String("prefix", cfg.Discord.CommandPrefix),
	)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	return nil
}
