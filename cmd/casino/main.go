package main

import (
	"fmt"
	"os"

	"casinonight/internal/config"
	"casinonight/internal/database"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Globals are the flags every subcommand shares.
type Globals struct {
	Database string `help:"SQLite database path" default:"casino.db" env:"DATABASE"`
	Slot     string `help:"Ledger slot holding your balance" default:"coins"`
	Rules    string `help:"YAML rules file" env:"RULES_PATH"`
	LogLevel string `help:"Log level" default:"info" env:"LOG_LEVEL" enum:"debug,info,warn,error"`
}

type CLI struct {
	Globals

	Play    PlayCmd    `cmd:"" default:"1" help:"Play in the terminal"`
	Balance BalanceCmd `cmd:"" help:"Show the slot's balance"`
	History HistoryCmd `cmd:"" help:"Show recent plays"`
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("casino"),
		kong.Description("Blackjack and slots in your terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func (g *Globals) rules() (config.Rules, error) {
	return config.LoadRules(g.Rules)
}

func (g *Globals) logger(w *os.File) *log.Logger {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

func (g *Globals) open(logger *log.Logger) (*database.DB, error) {
	db, err := database.New(g.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", g.Database, err)
	}
	return db, nil
}
