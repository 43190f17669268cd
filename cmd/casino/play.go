package main

import (
	"fmt"
	"os"

	"casinonight/internal/ledger"
	"casinonight/internal/lobby"
	"casinonight/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

type PlayCmd struct {
	Seed      *int64 `help:"Random seed for reproducible deals"`
	Ephemeral bool   `help:"Keep the balance in memory instead of the database"`
	LogFile   string `help:"Where to write logs while the screen is in use" default:"casino.log"`
}

func (c *PlayCmd) Run(g *Globals) error {
	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger := g.logger(logFile)

	rules, err := g.rules()
	if err != nil {
		return err
	}

	factory := lobby.Factory{Rules: rules, Logger: logger}
	if c.Seed != nil {
		seed := *c.Seed
		factory.Seed = func() int64 { return seed }
	}
	if c.Ephemeral {
		factory.Store = ledger.NewMemoryStore()
	} else {
		db, err := g.open(logger)
		if err != nil {
			return err
		}
		defer db.Close()
		factory.Store = db
		factory.Recorder = db
	}

	session, err := factory.Open(g.Slot)
	if err != nil {
		return err
	}
	logger.Info("Starting session", "slot", g.Slot, "balance", session.Balance())

	program := tea.NewProgram(tui.New(session, logger, rules.LeaveDelay), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	logger.Info("Session closed", "slot", g.Slot, "balance", session.Balance())
	return nil
}
