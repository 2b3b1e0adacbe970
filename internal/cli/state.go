package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okrensky/tourneybot/internal/config"
	"github.com/okrensky/tourneybot/internal/service"
	"github.com/okrensky/tourneybot/internal/storage"
)

// StateOptions holds flags for the state subcommands.
type StateOptions struct {
	*RootOptions
	File string
}

// NewStateCommand creates the state command group for offline inspection and
// maintenance of the persisted sign-up document. No Discord connection is
// made and no token is required.
func NewStateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or reset the persisted sign-up document",
	}

	cmd.PersistentFlags().StringVarP(&opts.File, "file", "f", "",
		"path of the sign-up document (default: TOURNEY_DATA_FILE)")

	cmd.AddCommand(newStateShowCommand(opts))
	cmd.AddCommand(newStateResetCommand(opts))

	return cmd
}

func newStateShowCommand(opts *StateOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print slot usage and the registered teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(opts)
			if err != nil {
				return err
			}

			status := svc.Status()
			fmt.Fprintf(cmd.OutOrStdout(), "Slots: %d/%d filled\n", status.Filled, status.Slots)
			fmt.Fprintf(cmd.OutOrStdout(), "Confirmed teams: %d/%d\n", status.Confirmed, status.Filled)

			teams := svc.ListTeams()
			if len(teams) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No teams registered.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Teams:")
			for i, team := range teams {
				state := "pending"
				if team.Confirmed {
					state = "confirmed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s (%s) captain=%s players=%s\n",
					i+1, team.Name, state, team.CaptainID, strings.Join(team.Players, ", "))
			}
			return nil
		},
	}
}

func newStateResetCommand(opts *StateOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard all sign-up data and persist an empty document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(opts)
			if err != nil {
				return err
			}
			if err := svc.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tournament data has been reset.")
			return nil
		},
	}
}

// openService builds an engine over the document named by --file, falling
// back to the configured data file.
func openService(opts *StateOptions) (*service.TournamentService, error) {
	path := opts.File
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		path = cfg.Storage.DataFile
	}

	level := slog.LevelWarn
	setupLogging(level, opts.Verbose)

	return service.NewTournamentService(storage.NewFileStore(path))
}
