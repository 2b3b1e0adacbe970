package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/okrensky/tourneybot/internal/model"
	"github.com/okrensky/tourneybot/internal/service"
	"github.com/okrensky/tourneybot/internal/storage"
)

// replyForError maps every engine error onto its user-facing reply. Engine
// errors are expected outcomes of user input; only a persistence failure is
// reported as an operational problem.
func replyForError(err error) string {
	var capErr *service.CapacityBelowRegisteredError
	var storeErr *storage.StoreError

	switch {
	case errors.Is(err, service.ErrNegativeCapacity):
		return "Please provide a positive number of slots."
	case errors.As(err, &capErr):
		return fmt.Sprintf(
			"Warning: Reducing slots to %d would remove %d teams. Use reset first if you want to start fresh.",
			capErr.Requested, capErr.Deficit())
	case errors.Is(err, service.ErrSlotsFull):
		return "All slots are full."
	case errors.Is(err, service.ErrDuplicateTeamName):
		return "This team name is already registered."
	case errors.Is(err, service.ErrEmptyRoster):
		return "Please provide at least one player name."
	case errors.Is(err, service.ErrNoTeamForCaptain):
		return "You don't have a registered team."
	case errors.Is(err, service.ErrAlreadyConfirmed):
		return "Your team is already confirmed."
	case errors.As(err, &storeErr):
		return "Your change was applied but could not be saved. Please try again."
	default:
		return fmt.Sprintf("An error occurred: %v", err)
	}
}

// teamListEmbed renders the registered teams as an embed, one field per team
// with its confirmation status.
func teamListEmbed(teams []model.TeamStatus) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Registered Teams",
		Color: 0x3498db,
	}
	for _, team := range teams {
		status := "⏳ Pending"
		if team.Confirmed {
			status = "✅ Confirmed"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s", team.Name, status),
			Value:  fmt.Sprintf("Captain: <@%s>\nPlayers: %s", team.CaptainID, strings.Join(team.Players, ", ")),
			Inline: false,
		})
	}
	return embed
}

func (b *Bot) reply(s session, m *discordgo.MessageCreate, logger *slog.Logger, content string) {
	if _, err := s.ChannelMessageSend(m.ChannelID, content); err != nil {
		logger.Error("failed to send reply", slog.String("error", err.Error()))
	}
}

func (b *Bot) replyf(s session, m *discordgo.MessageCreate, logger *slog.Logger, format string, args ...any) {
	b.reply(s, m, logger, fmt.Sprintf(format, args...))
}
