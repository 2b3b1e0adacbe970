package bot

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// dispatch parses a prefixed message into a command invocation and routes it
// to the matching engine operation. Unknown commands are ignored.
func (b *Bot) dispatch(s session, m *discordgo.MessageCreate) {
	fields := splitArgs(strings.TrimPrefix(m.Content, b.prefix))
	if len(fields) == 0 {
		return
	}
	command, args := strings.ToLower(fields[0]), fields[1:]

	logger := b.logger.With(
		slog.String("command", command),
		slog.String("command_id", uuid.New().String()),
		slog.String("author_id", m.Author.ID),
	)

	switch command {
	case "setslots":
		b.handleSetSlots(s, m, args, logger)
	case "register":
		b.handleRegister(s, m, args, logger)
	case "confirm":
		b.handleConfirm(s, m, logger)
	case "slots":
		b.handleSlots(s, m, logger)
	case "teams":
		b.handleTeams(s, m, logger)
	case "reset":
		b.handleReset(s, m, logger)
	}
}

func (b *Bot) handleSetSlots(s session, m *discordgo.MessageCreate, args []string, logger *slog.Logger) {
	if !b.requireAdmin(s, m, logger) {
		return
	}
	if len(args) < 1 {
		b.reply(s, m, logger, "Missing required argument: number")
		return
	}
	number, err := strconv.Atoi(args[0])
	if err != nil {
		b.reply(s, m, logger, "Invalid argument provided.")
		return
	}

	slots, err := b.svc.SetCapacity(number)
	if err != nil {
		b.reply(s, m, logger, replyForError(err))
		return
	}
	logger.Info("slots updated", slog.Int("slots", slots))
	b.replyf(s, m, logger, "Tournament slots set to %d.", slots)
}

func (b *Bot) handleRegister(s session, m *discordgo.MessageCreate, args []string, logger *slog.Logger) {
	if len(args) < 1 {
		b.reply(s, m, logger, "Missing required argument: team_name")
		return
	}
	name, players := args[0], args[1:]

	team, remaining, err := b.svc.RegisterTeam(name, players, m.Author.ID)
	if err != nil {
		b.reply(s, m, logger, replyForError(err))
		return
	}
	logger.Info("team registered", slog.String("team", team.Name))
	b.replyf(s, m, logger,
		"Team '%s' registered successfully!\nPlayers: %s\nCaptain: <@%s>\nSlots remaining: %d",
		team.Name, strings.Join(team.Players, ", "), team.CaptainID, remaining)
}

func (b *Bot) handleConfirm(s session, m *discordgo.MessageCreate, logger *slog.Logger) {
	team, err := b.svc.ConfirmTeam(m.Author.ID)
	if err != nil {
		b.reply(s, m, logger, replyForError(err))
		return
	}
	logger.Info("team confirmed", slog.String("team", team.Name))
	b.replyf(s, m, logger, "Team '%s' has been confirmed.", team.Name)
}

func (b *Bot) handleSlots(s session, m *discordgo.MessageCreate, logger *slog.Logger) {
	status := b.svc.Status()
	b.replyf(s, m, logger,
		"Tournament Status:\nSlots: %d/%d filled\nConfirmed teams: %d/%d",
		status.Filled, status.Slots, status.Confirmed, status.Filled)
}

func (b *Bot) handleTeams(s session, m *discordgo.MessageCreate, logger *slog.Logger) {
	if !b.requireAdmin(s, m, logger) {
		return
	}
	teams := b.svc.ListTeams()
	if len(teams) == 0 {
		b.reply(s, m, logger, "No teams registered yet.")
		return
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, teamListEmbed(teams)); err != nil {
		logger.Error("failed to send team list", slog.String("error", err.Error()))
	}
}

func (b *Bot) handleReset(s session, m *discordgo.MessageCreate, logger *slog.Logger) {
	if !b.requireAdmin(s, m, logger) {
		return
	}
	if err := b.svc.Reset(); err != nil {
		b.reply(s, m, logger, replyForError(err))
		return
	}
	logger.Info("tournament reset")
	b.reply(s, m, logger, "Tournament data has been reset.")
}

// requireAdmin gates privileged commands on the invoking member's
// administrator permission. The engine itself never checks permissions.
func (b *Bot) requireAdmin(s session, m *discordgo.MessageCreate, logger *slog.Logger) bool {
	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		logger.Error("failed to resolve permissions", slog.String("error", err.Error()))
		b.reply(s, m, logger, "You don't have permission to use this command.")
		return false
	}
	if perms&discordgo.PermissionAdministrator == 0 {
		b.reply(s, m, logger, "You don't have permission to use this command.")
		return false
	}
	return true
}

// splitArgs splits a command line on whitespace, honoring double-quoted
// segments so multi-word team names survive: `register "Night Owls" alice`.
func splitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false
	flush := func() {
		if current.Len() > 0 {
			args = append(args, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '"':
			if inQuotes {
				flush()
			}
			inQuotes = !inQuotes
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n'):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return args
}
