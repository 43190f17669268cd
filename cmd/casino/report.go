package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"casinonight/internal/ledger"
)

type BalanceCmd struct{}

func (c *BalanceCmd) Run(g *Globals) error {
	logger := g.logger(os.Stderr)
	rules, err := g.rules()
	if err != nil {
		return err
	}
	db, err := g.open(logger)
	if err != nil {
		return err
	}
	defer db.Close()

	bal, err := ledger.New(db, g.Slot, rules.StartingBalance).Load()
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d coins\n", g.Slot, bal)
	return nil
}

type HistoryCmd struct {
	Limit int `short:"n" help:"How many plays to show" default:"20"`
}

func (c *HistoryCmd) Run(g *Globals) error {
	logger := g.logger(os.Stderr)
	db, err := g.open(logger)
	if err != nil {
		return err
	}
	defer db.Close()

	plays, err := db.RecentPlays(g.Slot, c.Limit)
	if err != nil {
		return err
	}
	totals, err := db.PlayTotals(g.Slot)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tGAME\tWAGER\tNET\tBALANCE\tDETAIL")
	for _, p := range plays {
		fmt.Fprintf(w, "%s\t%s\t%d\t%+d\t%d\t%s\n", p.PlayedAt.Local().Format("2006-01-02 15:04"), p.Game, p.Wager, p.Net, p.Balance, p.Detail)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d plays, %d won, net %+d\n", totals.Plays, totals.Wins, totals.Net)
	return nil
}
