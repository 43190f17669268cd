// Package config loads process settings from the environment and game rules
// from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken string
	GuildID      string
	LogChannelID string
	Database     string
	RulesPath    string
	LogLevel     log.Level
}

// Load reads the bot configuration from the environment, after loading a
// .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}

	level := log.InfoLevel
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := log.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		level = parsed
	}

	return &Config{
		DiscordToken: token,
		GuildID:      os.Getenv("GUILD_ID"),
		LogChannelID: os.Getenv("LOG_CHANNEL_ID"),
		Database:     getEnv("DATABASE", "casino.db"),
		RulesPath:    os.Getenv("RULES_PATH"),
		LogLevel:     level,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
