package cards

import (
	"math/rand"

	"casinonight/internal/casino"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck is a sequence of cards dealt from the front. Drawing only reslices, so
// copies of a Deck value never observe each other's draws.
type Deck struct {
	cards []Card
}

// FreshDeck returns all 52 cards shuffled with Fisher-Yates over rng.
func FreshDeck(rng *rand.Rand) Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return Deck{cards: cards}
}

// NewDeck returns a deck that deals the given cards in order.
func NewDeck(cards ...Card) Deck {
	return Deck{cards: append([]Card(nil), cards...)}
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, casino.ErrEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// Remaining returns the number of cards left to draw.
func (d Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards in draw order.
func (d Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
