// Package blackjack scores hands and runs a single-seat round against a
// dealer who draws to 17.
package blackjack

import "casinonight/internal/cards"

// Bust is the highest total a hand can hold without losing.
const Bust = 21

// DealerStandsOn is the total at which the dealer stops drawing, soft or hard.
const DealerStandsOn = 17

// CardValue returns the base value of a card: aces 11, faces 10, numerals face value.
func CardValue(c cards.Card) int {
	switch {
	case c.Rank == cards.Ace:
		return 11
	case c.Rank.Face():
		return 10
	default:
		return int(c.Rank)
	}
}

// HandValue totals a hand, counting each ace as 1 instead of 11 while that
// keeps the hand from busting.
func HandValue(hand cards.Hand) int {
	total, _ := score(hand)
	return total
}

// IsSoft reports whether the hand's total still counts an ace as 11.
func IsSoft(hand cards.Hand) bool {
	_, soft := score(hand)
	return soft
}

func score(hand cards.Hand) (int, bool) {
	total := 0
	aces := 0
	for _, c := range hand {
		total += CardValue(c)
		if c.Rank == cards.Ace {
			aces++
		}
	}
	for total > Bust && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}
