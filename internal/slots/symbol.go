// Package slots runs a three-reel machine that pays out on a triple match.
package slots

import (
	"errors"
	"fmt"
)

// DefaultPullCost is what one pull of the lever costs.
const DefaultPullCost = 10

// Reels is the number of symbols drawn per pull.
const Reels = 3

// Symbol is a reel face. Weight is its relative draw probability and Payout
// the coins a triple match pays.
type Symbol struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
	Payout int    `yaml:"payout"`
}

func (s Symbol) DrawWeight() int {
	return s.Weight
}

func (s Symbol) String() string {
	return s.Name
}

// DefaultCatalog pays more for rarer symbols.
var DefaultCatalog = []Symbol{
	{Name: "seven", Weight: 1, Payout: 120},
	{Name: "star", Weight: 3, Payout: 90},
	{Name: "coin", Weight: 4, Payout: 50},
	{Name: "fish", Weight: 6, Payout: 25},
}

var ErrBadCatalog = errors.New("slots: invalid symbol catalog")

// ValidateCatalog checks that every symbol is named once with a positive
// weight and payout.
func ValidateCatalog(catalog []Symbol) error {
	if len(catalog) == 0 {
		return fmt.Errorf("%w: no symbols", ErrBadCatalog)
	}
	seen := make(map[string]bool, len(catalog))
	for _, s := range catalog {
		switch {
		case s.Name == "":
			return fmt.Errorf("%w: unnamed symbol", ErrBadCatalog)
		case seen[s.Name]:
			return fmt.Errorf("%w: duplicate symbol %q", ErrBadCatalog, s.Name)
		case s.Weight <= 0:
			return fmt.Errorf("%w: symbol %q weight must be positive", ErrBadCatalog, s.Name)
		case s.Payout <= 0:
			return fmt.Errorf("%w: symbol %q payout must be positive", ErrBadCatalog, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}
