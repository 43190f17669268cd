package main

import (
	"os"
	"os/signal"
	"syscall"

	"casinonight/internal/commands"
	"casinonight/internal/config"
	"casinonight/internal/database"
	"casinonight/internal/discord"
	"casinonight/internal/events"
	"casinonight/internal/lobby"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Error loading config", "error", err)
	}
	logger.SetLevel(cfg.LogLevel)

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		logger.Fatal("Error loading rules", "error", err)
	}

	// 2. Initialize Database
	db, err := database.New(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Error initializing database", "error", err)
	}
	defer db.Close()

	// 3. Initialize Bot
	bot, err := discord.New(cfg, logger)
	if err != nil {
		logger.Fatal("Error initializing bot", "error", err)
	}

	// 4. Wire the casino
	factory := lobby.Factory{
		Rules:    rules,
		Store:    db,
		Recorder: db,
		Logger:   logger,
	}
	opts := []commands.Option{commands.WithLeaveDelay(rules.LeaveDelay)}
	if cfg.LogChannelID != "" {
		opts = append(opts, commands.WithAnnouncer(events.NewAnnouncer(bot.Session, cfg.LogChannelID, logger)))
	} else {
		logger.Warn("LOG_CHANNEL_ID not set. Announcements disabled.")
	}
	handler := commands.NewHandler(factory.Open, db, logger, opts...)

	// 5. Register Event Handlers
	bot.Session.AddHandler(handler.HandleInteraction)
	bot.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info("Logged in", "user", s.State.User.Username)
	})

	// 6. Start Bot
	if err := bot.Start(); err != nil {
		logger.Fatal("Error starting bot", "error", err)
	}
	defer bot.Stop()

	// 7. Register Commands
	handler.RegisterCommands(bot.Session, cfg.GuildID)

	// 8. Wait for Shutdown Signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	logger.Info("Bot is running. Press Ctrl+C to exit.")
	<-stop

	logger.Info("Gracefully shutting down...")
}
