package discord

import (
	"fmt"

	"casinonight/internal/config"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

type Bot struct {
	Session *discordgo.Session
	Config  *config.Config
	logger  *log.Logger
}

func New(cfg *config.Config, logger *log.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session: session,
		Config:  cfg,
		logger:  logger.WithPrefix("discord"),
	}, nil
}

func (b *Bot) Start() error {
	// Slash commands and buttons only need guild events.
	b.Session.Identify.Intents = discordgo.IntentsGuilds

	err := b.Session.Open()
	if err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	b.logger.Info("Bot is now running")
	return nil
}

func (b *Bot) Stop() error {
	b.logger.Info("Closing Discord session")
	return b.Session.Close()
}
