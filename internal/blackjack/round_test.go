package blackjack

import (
	"math/rand"
	"testing"

	"casinonight/internal/cards"
	"casinonight/internal/casino"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stacked returns a table that always deals cs in order: two to the player,
// two to the dealer, then hits and dealer draws.
func stacked(cs ...cards.Card) *Table {
	return NewTable(nil, WithDeck(func() cards.Deck {
		return cards.NewDeck(cs...)
	}))
}

func TestStandDealerBusts(t *testing.T) {
	table := stacked(
		card(cards.Ace, cards.Spades), card(cards.Nine, cards.Hearts),
		card(cards.Seven, cards.Clubs), card(cards.Nine, cards.Diamonds),
		card(cards.King, cards.Spades),
	)

	r, err := table.PlaceBet(NewRound(150), 50)
	require.NoError(t, err)
	assert.Equal(t, PlayerTurn, r.Phase)
	assert.Equal(t, 20, HandValue(r.Player))
	assert.Equal(t, 150, r.Balance, "bet is not debited until the round resolves")

	v := table.View(r, casino.SignalNone)
	assert.Equal(t, cards.Hand{card(cards.Seven, cards.Clubs)}, v.Dealer)
	assert.Equal(t, 1, v.DealerHidden)
	assert.Equal(t, 7, v.DealerTotal)

	r, v, err = table.Step(r, Stand)
	require.NoError(t, err)
	assert.Equal(t, RoundResolved, r.Phase)
	assert.Equal(t, OutcomeWin, r.Outcome)
	assert.Equal(t, 200, r.Balance)
	assert.True(t, r.DealerRevealed)
	assert.Equal(t, 26, HandValue(r.Dealer))
	assert.Equal(t, "You win 50 coins.", v.Message)
	assert.Equal(t, casino.SignalNone, v.Signal)
	assert.Len(t, v.Dealer, 3)
	assert.Zero(t, v.DealerHidden)
}

func TestHitBustRevealsDealerWithoutPlaying(t *testing.T) {
	table := stacked(
		card(cards.Ten, cards.Spades), card(cards.Six, cards.Hearts),
		card(cards.Nine, cards.Clubs), card(cards.Two, cards.Diamonds),
		card(cards.Seven, cards.Spades),
		card(cards.Five, cards.Spades),
	)

	r, err := table.PlaceBet(NewRound(150), 50)
	require.NoError(t, err)

	r, v, err := table.Step(r, Hit)
	require.NoError(t, err)
	assert.Equal(t, 23, HandValue(r.Player))
	assert.Equal(t, RoundResolved, r.Phase)
	assert.Equal(t, OutcomeLose, r.Outcome)
	assert.True(t, r.Busted)
	assert.Equal(t, 100, r.Balance)
	assert.True(t, r.DealerRevealed)
	assert.Len(t, r.Dealer, 2, "dealer never draws after a player bust")
	assert.Equal(t, 11, v.DealerTotal)
	assert.Equal(t, "Bust! You lose 50 coins.", v.Message)
}

func TestHitStaysInPlayerTurn(t *testing.T) {
	table := stacked(
		card(cards.Two, cards.Spades), card(cards.Three, cards.Hearts),
		card(cards.Nine, cards.Clubs), card(cards.Eight, cards.Diamonds),
		card(cards.Four, cards.Spades),
	)

	r, err := table.PlaceBet(NewRound(150), 10)
	require.NoError(t, err)
	r, err = table.Hit(r)
	require.NoError(t, err)

	assert.Equal(t, PlayerTurn, r.Phase)
	assert.Equal(t, 9, HandValue(r.Player))
	assert.Equal(t, "Hit or stand.", r.Message)
}

func TestPlaceBetRejections(t *testing.T) {
	table := NewTable(rand.New(rand.NewSource(42)))

	t.Run("more than the balance", func(t *testing.T) {
		start := NewRound(100)
		r, err := table.PlaceBet(start, 150)
		assert.ErrorIs(t, err, casino.ErrInsufficientFunds)
		assert.Equal(t, start, r)
		assert.Equal(t, 100, r.Balance)
	})

	t.Run("tier above balance", func(t *testing.T) {
		r, err := table.PlaceBet(NewRound(40), 50)
		assert.ErrorIs(t, err, casino.ErrInsufficientFunds)
		assert.Equal(t, AwaitingBet, r.Phase)
	})

	t.Run("not a tier", func(t *testing.T) {
		start := NewRound(150)
		r, err := table.PlaceBet(start, 30)
		assert.ErrorIs(t, err, casino.ErrInvalidBet)
		assert.Equal(t, start, r)
	})

	t.Run("zero", func(t *testing.T) {
		_, err := table.PlaceBet(NewRound(150), 0)
		assert.ErrorIs(t, err, casino.ErrInvalidBet)
	})

	t.Run("during player turn", func(t *testing.T) {
		r, err := table.PlaceBet(NewRound(150), 10)
		require.NoError(t, err)
		_, err = table.PlaceBet(r, 10)
		assert.ErrorIs(t, err, casino.ErrInvalidTransition)
	})
}

func TestActionsOutsideTheirPhase(t *testing.T) {
	table := NewTable(rand.New(rand.NewSource(42)))
	start := NewRound(150)

	for _, a := range []Action{Hit, Stand, PlayAgain} {
		r, v, err := table.Step(start, a)
		assert.ErrorIs(t, err, casino.ErrInvalidTransition, a.Move.String())
		assert.Equal(t, start, r)
		assert.Equal(t, AwaitingBet, v.Phase)
	}

	_, _, err := table.Step(start, Action{Move: Move(99)})
	assert.ErrorIs(t, err, casino.ErrInvalidTransition)
}

func TestStandOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		deal    []cards.Card
		outcome Outcome
		balance int
		message string
	}{
		{
			name:    "push",
			deal:    []cards.Card{card(cards.King, cards.Spades), card(cards.Queen, cards.Hearts), card(cards.King, cards.Clubs), card(cards.Ten, cards.Diamonds)},
			outcome: OutcomePush,
			balance: 150,
			message: "Push. No coins won or lost.",
		},
		{
			name:    "dealer higher",
			deal:    []cards.Card{card(cards.Ten, cards.Spades), card(cards.Seven, cards.Hearts), card(cards.Ten, cards.Clubs), card(cards.Nine, cards.Diamonds)},
			outcome: OutcomeLose,
			balance: 130,
			message: "You lose 20 coins.",
		},
		{
			name:    "dealer stands on soft 17",
			deal:    []cards.Card{card(cards.Ten, cards.Spades), card(cards.Eight, cards.Hearts), card(cards.Ace, cards.Clubs), card(cards.Six, cards.Diamonds), card(cards.Five, cards.Clubs)},
			outcome: OutcomeWin,
			balance: 170,
			message: "You win 20 coins.",
		},
		{
			name:    "dealer draws to 17",
			deal:    []cards.Card{card(cards.Ten, cards.Spades), card(cards.Seven, cards.Hearts), card(cards.Two, cards.Clubs), card(cards.Three, cards.Diamonds), card(cards.Four, cards.Clubs), card(cards.Nine, cards.Clubs)},
			outcome: OutcomeLose,
			balance: 130,
			message: "You lose 20 coins.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := stacked(tt.deal...)
			r, err := table.PlaceBet(NewRound(150), 20)
			require.NoError(t, err)

			r, err = table.Stand(r)
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, r.Outcome)
			assert.Equal(t, tt.balance, r.Balance)
			assert.Equal(t, tt.message, r.Message)
			assert.GreaterOrEqual(t, HandValue(r.Dealer), DealerStandsOn)
		})
	}
}

func TestLosingLastCoinsEndsSession(t *testing.T) {
	table := stacked(
		card(cards.Ten, cards.Spades), card(cards.Seven, cards.Hearts),
		card(cards.Ten, cards.Clubs), card(cards.Nine, cards.Diamonds),
	)

	r, err := table.PlaceBet(NewRound(50), 50)
	require.NoError(t, err)
	r, v, err := table.Step(r, Stand)
	require.NoError(t, err)

	assert.Equal(t, 0, r.Balance)
	assert.True(t, r.SessionOver())
	assert.Equal(t, casino.SignalSessionEnd, v.Signal)
	assert.Equal(t, "You lose 50 coins. You are out of coins. The dealer asks you to leave.", v.Message)
}

func TestPlayAgainResets(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	table := NewTable(rng)

	for i := 0; i < 50; i++ {
		r, err := table.PlaceBet(NewRound(150), 10)
		require.NoError(t, err)
		if i%2 == 0 {
			r, err = table.Stand(r)
		} else {
			for r.Phase == PlayerTurn {
				r, err = table.Hit(r)
				require.NoError(t, err)
			}
		}
		require.NoError(t, err)
		require.Equal(t, RoundResolved, r.Phase)

		r, v, err := table.Step(r, PlayAgain)
		require.NoError(t, err)
		assert.Equal(t, AwaitingBet, r.Phase)
		assert.Empty(t, r.Player)
		assert.Empty(t, r.Dealer)
		assert.Zero(t, r.Bet)
		assert.False(t, r.DealerRevealed)
		assert.Equal(t, OutcomeNone, r.Outcome)
		assert.Equal(t, "Choose your bet", v.Message)
	}
}

func TestStepLeavesInputUntouched(t *testing.T) {
	table := stacked(
		card(cards.Two, cards.Spades), card(cards.Three, cards.Hearts),
		card(cards.Nine, cards.Clubs), card(cards.Eight, cards.Diamonds),
		card(cards.Four, cards.Spades), card(cards.Five, cards.Spades),
	)

	r, err := table.PlaceBet(NewRound(150), 10)
	require.NoError(t, err)
	before := r

	after, _, err := table.Step(r, Hit)
	require.NoError(t, err)
	assert.Len(t, after.Player, 3)
	assert.Len(t, r.Player, 2)
	assert.Equal(t, before, r)

	again, _, err := table.Step(r, Hit)
	require.NoError(t, err)
	assert.Equal(t, after.Player, again.Player, "replaying from the same round draws the same card")
}

func TestEmptyDeckFailsLoudly(t *testing.T) {
	t.Run("deal", func(t *testing.T) {
		table := stacked(card(cards.Two, cards.Spades), card(cards.Three, cards.Hearts), card(cards.Nine, cards.Clubs))
		start := NewRound(150)
		r, err := table.PlaceBet(start, 10)
		assert.ErrorIs(t, err, casino.ErrEmptyDeck)
		assert.Equal(t, start, r)
	})

	t.Run("hit", func(t *testing.T) {
		table := stacked(card(cards.Two, cards.Spades), card(cards.Three, cards.Hearts), card(cards.Nine, cards.Clubs), card(cards.Eight, cards.Clubs))
		r, err := table.PlaceBet(NewRound(150), 10)
		require.NoError(t, err)
		next, err := table.Hit(r)
		assert.ErrorIs(t, err, casino.ErrEmptyDeck)
		assert.Equal(t, r, next)
	})

	t.Run("dealer draw", func(t *testing.T) {
		table := stacked(card(cards.Ten, cards.Spades), card(cards.Nine, cards.Hearts), card(cards.Two, cards.Clubs), card(cards.Three, cards.Clubs))
		r, err := table.PlaceBet(NewRound(150), 10)
		require.NoError(t, err)
		next, err := table.Stand(r)
		assert.ErrorIs(t, err, casino.ErrEmptyDeck)
		assert.Equal(t, PlayerTurn, next.Phase)
		assert.Equal(t, r, next)
	})
}

func TestBackSignalsExit(t *testing.T) {
	table := NewTable(rand.New(rand.NewSource(42)))
	r, err := table.PlaceBet(NewRound(150), 10)
	require.NoError(t, err)

	next, v, err := table.Step(r, Back)
	require.NoError(t, err)
	assert.Equal(t, r, next)
	assert.Equal(t, casino.SignalExit, v.Signal)
}

func TestViewBetsAndMoves(t *testing.T) {
	table := NewTable(rand.New(rand.NewSource(42)), WithBetTiers([]int{5, 25, 100}))

	v := table.View(NewRound(30), casino.SignalNone)
	assert.Equal(t, []int{5, 25}, v.Bets)
	assert.Equal(t, []Move{MoveBet, MoveBack}, v.Moves)
	assert.Equal(t, []int{5, 25, 100}, table.Tiers())

	r, err := table.PlaceBet(NewRound(30), 25)
	require.NoError(t, err)
	v = table.View(r, casino.SignalNone)
	assert.Nil(t, v.Bets)
	assert.Equal(t, []Move{MoveHit, MoveStand, MoveBack}, v.Moves)
}

func TestTransitionTable(t *testing.T) {
	assert.True(t, AwaitingBet.CanTransition(PlayerTurn))
	assert.True(t, PlayerTurn.CanTransition(DealerTurn))
	assert.True(t, PlayerTurn.CanTransition(RoundResolved))
	assert.True(t, DealerTurn.CanTransition(RoundResolved))
	assert.True(t, RoundResolved.CanTransition(AwaitingBet))

	assert.False(t, AwaitingBet.CanTransition(RoundResolved))
	assert.False(t, DealerTurn.CanTransition(PlayerTurn))
	assert.False(t, RoundResolved.CanTransition(PlayerTurn))
}

func TestRandomRoundsKeepBalanceNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	table := NewTable(rng)
	r := NewRound(150)

	for i := 0; i < 2000 && r.Balance > 0; i++ {
		bets := table.Affordable(r.Balance)
		require.NotEmpty(t, bets)

		var err error
		r, err = table.PlaceBet(r, bets[rng.Intn(len(bets))])
		require.NoError(t, err)
		for r.Phase == PlayerTurn {
			if HandValue(r.Player) < 15 {
				r, err = table.Hit(r)
			} else {
				r, err = table.Stand(r)
			}
			require.NoError(t, err)
		}
		require.Equal(t, RoundResolved, r.Phase)
		require.GreaterOrEqual(t, r.Balance, 0)
		if r.SessionOver() {
			break
		}
		r, err = table.PlayAgain(r)
		require.NoError(t, err)
	}
}
