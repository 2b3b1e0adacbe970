package bot

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/okrensky/tourneybot/internal/service"
)

// session is the narrow slice of the Discord API the command handlers use.
// *discordgo.Session satisfies it; tests substitute a fake.
type session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	UserChannelPermissions(userID string, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
}

// Bot translates chat commands into engine operations and engine results into
// replies. It holds no sign-up rules of its own: every decision is made by
// the tournament service, and authorization for privileged commands is the
// transport-level administrator permission.
type Bot struct {
	svc    *service.TournamentService
	prefix string
	logger *slog.Logger
}

// New creates a bot over the given tournament service. prefix is the command
// prefix users type, e.g. "!".
func New(svc *service.TournamentService, prefix string) *Bot {
	return &Bot{
		svc:    svc,
		prefix: prefix,
		logger: slog.Default(),
	}
}

// Attach registers the bot's event handlers on a Discord session and
// restricts the gateway intents to what the handlers consume.
func (b *Bot) Attach(s *discordgo.Session) {
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	s.AddHandler(b.onReady)
	s.AddHandler(b.onMessageCreate)
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("bot logged in",
		slog.String("user", fmt.Sprintf("%s#%s", r.User.Username, r.User.Discriminator)),
		slog.Int("guilds", len(r.Guilds)),
	)
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, b.prefix) {
		return
	}
	b.dispatch(s, m)
}
