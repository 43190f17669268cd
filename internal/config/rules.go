package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"casinonight/internal/blackjack"
	"casinonight/internal/ledger"
	"casinonight/internal/slots"

	"gopkg.in/yaml.v3"
)

// Rules are the table limits and machine settings players see.
type Rules struct {
	BetTiers        []int          `yaml:"bet_tiers"`
	PullCost        int            `yaml:"pull_cost"`
	StartingBalance int            `yaml:"starting_balance"`
	LeaveDelay      time.Duration  `yaml:"leave_delay"`
	Symbols         []slots.Symbol `yaml:"symbols"`
}

// DefaultRules are used for anything a rules file leaves out.
func DefaultRules() Rules {
	return Rules{
		BetTiers:        slices.Clone(blackjack.DefaultBetTiers),
		PullCost:        slots.DefaultPullCost,
		StartingBalance: ledger.DefaultBalance,
		LeaveDelay:      1500 * time.Millisecond,
		Symbols:         slices.Clone(slots.DefaultCatalog),
	}
}

// LoadRules reads a YAML rules file over the defaults. An empty path returns
// the defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules from %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules in %s: %w", path, err)
	}
	return rules, nil
}

// Validate reports the first setting that cannot be played with.
func (r Rules) Validate() error {
	if len(r.BetTiers) == 0 {
		return fmt.Errorf("bet_tiers must not be empty")
	}
	for _, tier := range r.BetTiers {
		if tier <= 0 {
			return fmt.Errorf("bet tier %d must be positive", tier)
		}
	}
	if r.PullCost <= 0 {
		return fmt.Errorf("pull_cost must be positive")
	}
	if r.StartingBalance <= 0 {
		return fmt.Errorf("starting_balance must be positive")
	}
	if r.LeaveDelay < 0 {
		return fmt.Errorf("leave_delay must not be negative")
	}
	return slots.ValidateCatalog(r.Symbols)
}
