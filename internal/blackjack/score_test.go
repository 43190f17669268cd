package blackjack

import (
	"math/rand"
	"testing"

	"casinonight/internal/cards"

	"github.com/stretchr/testify/assert"
)

func card(r cards.Rank, s cards.Suit) cards.Card {
	return cards.Card{Rank: r, Suit: s}
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name     string
		hand     cards.Hand
		expected int
		soft     bool
	}{
		{name: "Empty hand", hand: nil, expected: 0},
		{name: "Two aces", hand: cards.Hand{card(cards.Ace, cards.Spades), card(cards.Ace, cards.Hearts)}, expected: 12, soft: true},
		{name: "Soft 17", hand: cards.Hand{card(cards.Ace, cards.Clubs), card(cards.Six, cards.Hearts)}, expected: 17, soft: true},
		{name: "Hard 17", hand: cards.Hand{card(cards.Ten, cards.Clubs), card(cards.Seven, cards.Hearts)}, expected: 17},
		{name: "Faces and ace", hand: cards.Hand{card(cards.King, cards.Clubs), card(cards.Queen, cards.Hearts), card(cards.Ace, cards.Spades)}, expected: 21},
		{name: "Blackjack", hand: cards.Hand{card(cards.Ace, cards.Clubs), card(cards.Jack, cards.Hearts)}, expected: 21, soft: true},
		{name: "Three aces and nine", hand: cards.Hand{card(cards.Ace, cards.Clubs), card(cards.Ace, cards.Hearts), card(cards.Ace, cards.Spades), card(cards.Nine, cards.Spades)}, expected: 12},
		{name: "Bust stays bust", hand: cards.Hand{card(cards.King, cards.Clubs), card(cards.Queen, cards.Hearts), card(cards.Two, cards.Spades)}, expected: 22},
		{name: "Numerals", hand: cards.Hand{card(cards.Two, cards.Clubs), card(cards.Ten, cards.Hearts)}, expected: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HandValue(tt.hand))
			assert.Equal(t, tt.soft, IsSoft(tt.hand))
		})
	}
}

func TestHandValueIgnoresOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 500; n++ {
		deck := cards.FreshDeck(rng)
		size := 2 + rng.Intn(5)
		hand := make(cards.Hand, 0, size)
		for i := 0; i < size; i++ {
			c, err := deck.Draw()
			if err != nil {
				t.Fatal(err)
			}
			hand = append(hand, c)
		}

		want := HandValue(hand)
		for p := 0; p < 5; p++ {
			shuffled := append(cards.Hand(nil), hand...)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			assert.Equal(t, want, HandValue(shuffled), "hand %s vs %s", hand, shuffled)
		}
	}
}

func TestCardValue(t *testing.T) {
	assert.Equal(t, 11, CardValue(card(cards.Ace, cards.Spades)))
	assert.Equal(t, 10, CardValue(card(cards.King, cards.Spades)))
	assert.Equal(t, 10, CardValue(card(cards.Ten, cards.Spades)))
	assert.Equal(t, 7, CardValue(card(cards.Seven, cards.Spades)))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, OutcomeLose, Resolve(22, 18))
	assert.Equal(t, OutcomeLose, Resolve(22, 25))
	assert.Equal(t, OutcomeWin, Resolve(12, 22))
	assert.Equal(t, OutcomeWin, Resolve(20, 19))
	assert.Equal(t, OutcomeLose, Resolve(18, 19))
	assert.Equal(t, OutcomePush, Resolve(19, 19))

	assert.Equal(t, 50, OutcomeWin.Delta(50))
	assert.Equal(t, -50, OutcomeLose.Delta(50))
	assert.Equal(t, 0, OutcomePush.Delta(50))
}
