package events

import (
	"fmt"
	"strings"
	"time"

	"casinonight/internal/slots"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// Sender posts embeds to a channel. *discordgo.Session satisfies it.
type Sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer posts casino highlights to the log channel.
type Announcer struct {
	Session      Sender
	LogChannelID string
	logger       *log.Logger
	now          func() time.Time
}

func NewAnnouncer(s Sender, logChannelID string, logger *log.Logger) *Announcer {
	return &Announcer{
		Session:      s,
		LogChannelID: logChannelID,
		logger:       logger.WithPrefix("events"),
		now:          time.Now,
	}
}

func (a *Announcer) Jackpot(userID string, reels []slots.Symbol, win int) {
	names := make([]string, len(reels))
	for i, r := range reels {
		names[i] = r.Name
	}
	embed := &discordgo.MessageEmbed{
		Title:       "Jackpot!",
		Description: fmt.Sprintf("<@%s> lined up **%s** for %d coins.", userID, strings.Join(names, " "), win),
		Color:       0xFFD700, // Gold
		Timestamp:   a.now().Format(time.RFC3339),
	}
	a.send(embed)
	a.logger.Info("Jackpot", "user_id", userID, "win", win)
}

func (a *Announcer) SessionEnded(userID string, table string) {
	embed := &discordgo.MessageEmbed{
		Title:       "Out of Coins",
		Description: fmt.Sprintf("<@%s> went broke at the %s table.", userID, table),
		Color:       0xff0000, // Red
		Timestamp:   a.now().Format(time.RFC3339),
	}
	a.send(embed)
	a.logger.Info("Session ended", "user_id", userID, "table", table)
}

func (a *Announcer) send(embed *discordgo.MessageEmbed) {
	if a.LogChannelID == "" {
		return
	}
	if _, err := a.Session.ChannelMessageSendEmbed(a.LogChannelID, embed); err != nil {
		a.logger.Warn("Failed to post announcement", "channel", a.LogChannelID, "error", err)
	}
}
