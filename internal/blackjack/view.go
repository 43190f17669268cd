package blackjack

import (
	"casinonight/internal/cards"
	"casinonight/internal/casino"
)

// View is what a surface needs to draw a round. The dealer's hole card is
// left out of Dealer and DealerTotal until it is revealed.
type View struct {
	Phase        Phase
	Balance      int
	Bet          int
	Player       cards.Hand
	PlayerTotal  int
	PlayerSoft   bool
	Dealer       cards.Hand
	DealerHidden int
	DealerTotal  int
	Bets         []int
	Moves        []Move
	Outcome      Outcome
	Busted       bool
	Message      string
	Signal       casino.Signal
}

// View renders r for display.
func (t *Table) View(r Round, signal casino.Signal) View {
	v := View{
		Phase:       r.Phase,
		Balance:     r.Balance,
		Bet:         r.Bet,
		Player:      append(cards.Hand(nil), r.Player...),
		PlayerTotal: HandValue(r.Player),
		PlayerSoft:  IsSoft(r.Player),
		Moves:       r.Phase.Moves(),
		Outcome:     r.Outcome,
		Busted:      r.Busted,
		Message:     r.Message,
		Signal:      signal,
	}
	if r.Phase == AwaitingBet {
		v.Bets = t.Affordable(r.Balance)
	}

	switch {
	case r.DealerRevealed:
		v.Dealer = append(cards.Hand(nil), r.Dealer...)
	case len(r.Dealer) > 0:
		v.Dealer = cards.Hand{r.Dealer[0]}
		v.DealerHidden = len(r.Dealer) - 1
	}
	v.DealerTotal = HandValue(v.Dealer)
	return v
}
