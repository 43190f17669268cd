package lobby

import (
	"errors"

	"casinonight/internal/casino"
)

// Describe turns an action error into text for the player.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, casino.ErrInsufficientFunds):
		return "Not enough coins."
	case errors.Is(err, casino.ErrInvalidBet):
		return "That bet is not on the table."
	case errors.Is(err, casino.ErrInvalidTransition):
		return "You can't do that right now."
	case errors.Is(err, casino.ErrEmptyDeck):
		return "The dealer ran out of cards."
	case errors.Is(err, ErrNotBroke):
		return "You still have coins to play with."
	}
	return "Something went wrong. Try again."
}
