// Package cards holds the playing-card primitives shared by the table games:
// cards, decks dealt from one end, and weighted random picks.
package cards

import "strings"

// Rank is a card rank, Ace through King.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Suit is a card suit.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var (
	Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
	Suits = []Suit{Clubs, Diamonds, Hearts, Spades}
)

var rankNames = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankNames[r]
}

// Face reports whether the rank is a Jack, Queen or King.
func (r Rank) Face() bool {
	return r >= Jack
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

// Red reports whether the suit is a red one.
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

// Card represents a playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Hand is the ordered set of cards one participant holds in a round.
type Hand []Card

func (h Hand) String() string {
	if len(h) == 0 {
		return "None"
	}
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.String()
	}
	return strings.Join(s, " ")
}
