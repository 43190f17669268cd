package blackjack

import (
	"fmt"
	"math/rand"
	"slices"

	"casinonight/internal/cards"
	"casinonight/internal/casino"
)

// DefaultBetTiers are the wagers a round accepts unless configured otherwise.
var DefaultBetTiers = []int{10, 20, 50, 100}

const leaveNotice = " You are out of coins. The dealer asks you to leave."

// Outcome is how a resolved round ended for the player.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomePush
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomePush:
		return "push"
	}
	return "none"
}

// Resolve compares final totals.
func Resolve(player, dealer int) Outcome {
	switch {
	case player > Bust:
		return OutcomeLose
	case dealer > Bust:
		return OutcomeWin
	case player > dealer:
		return OutcomeWin
	case player < dealer:
		return OutcomeLose
	default:
		return OutcomePush
	}
}

// Delta is the balance change an outcome applies to bet.
func (o Outcome) Delta(bet int) int {
	switch o {
	case OutcomeWin:
		return bet
	case OutcomeLose:
		return -bet
	}
	return 0
}

// Round is the complete state of one seat at the table. Rounds are values:
// the Table's transitions take a Round and return a new one, leaving the
// argument untouched.
type Round struct {
	Phase          Phase
	Balance        int
	Bet            int
	Player         cards.Hand
	Dealer         cards.Hand
	DealerRevealed bool
	Outcome        Outcome
	Busted         bool
	Message        string

	deck cards.Deck
}

// NewRound seats a player holding balance coins.
func NewRound(balance int) Round {
	return Round{Phase: AwaitingBet, Balance: balance, Message: "Choose your bet"}
}

// SessionOver reports whether the round has resolved with nothing left to bet.
func (r Round) SessionOver() bool {
	return r.Phase == RoundResolved && r.Balance <= 0
}

func (r *Round) advance(next Phase) error {
	if !r.Phase.CanTransition(next) {
		return fmt.Errorf("%w: %s to %s", casino.ErrInvalidTransition, r.Phase, next)
	}
	r.Phase = next
	return nil
}

func (r *Round) draw(hand *cards.Hand) error {
	c, err := r.deck.Draw()
	if err != nil {
		return err
	}
	*hand = append(slices.Clone(*hand), c)
	return nil
}

// Table deals rounds. It owns the random source and the betting rules
// but no round state.
type Table struct {
	tiers   []int
	newDeck func() cards.Deck
}

// Option configures a Table.
type Option func(*Table)

// WithBetTiers replaces the accepted wagers.
func WithBetTiers(tiers []int) Option {
	return func(t *Table) {
		t.tiers = slices.Clone(tiers)
	}
}

// WithDeck replaces the per-round shuffle; every round draws from a deck
// returned by fn.
func WithDeck(fn func() cards.Deck) Option {
	return func(t *Table) {
		t.newDeck = fn
	}
}

// NewTable returns a table shuffling with rng.
func NewTable(rng *rand.Rand, opts ...Option) *Table {
	t := &Table{
		tiers: slices.Clone(DefaultBetTiers),
		newDeck: func() cards.Deck {
			return cards.FreshDeck(rng)
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tiers returns the accepted wagers.
func (t *Table) Tiers() []int {
	return slices.Clone(t.tiers)
}

// Affordable returns the tiers a balance can cover.
func (t *Table) Affordable(balance int) []int {
	var out []int
	for _, tier := range t.tiers {
		if tier <= balance {
			out = append(out, tier)
		}
	}
	return out
}

// PlaceBet takes a wager, deals two cards each from a fresh deck and hands the
// turn to the player.
func (t *Table) PlaceBet(r Round, amount int) (Round, error) {
	if !r.Phase.Allows(MoveBet) {
		return r, casino.Reject(MoveBet, r.Phase)
	}
	if amount > r.Balance {
		return r, fmt.Errorf("bet %d with %d coins: %w", amount, r.Balance, casino.ErrInsufficientFunds)
	}
	if !slices.Contains(t.tiers, amount) {
		return r, fmt.Errorf("bet %d: %w", amount, casino.ErrInvalidBet)
	}

	next := r
	next.deck = t.newDeck()
	next.Player, next.Dealer = nil, nil
	next.DealerRevealed = false
	next.Outcome = OutcomeNone
	next.Busted = false
	next.Bet = amount
	for i := 0; i < 2; i++ {
		if err := next.draw(&next.Player); err != nil {
			return r, err
		}
	}
	for i := 0; i < 2; i++ {
		if err := next.draw(&next.Dealer); err != nil {
			return r, err
		}
	}
	if err := next.advance(PlayerTurn); err != nil {
		return r, err
	}
	next.Message = fmt.Sprintf("Bet %d. Hit or stand.", amount)
	return next, nil
}

// Hit draws one card for the player. Going over 21 loses the bet at once;
// the dealer's hand is shown but never played.
func (t *Table) Hit(r Round) (Round, error) {
	if !r.Phase.Allows(MoveHit) {
		return r, casino.Reject(MoveHit, r.Phase)
	}

	next := r
	if err := next.draw(&next.Player); err != nil {
		return r, err
	}
	if HandValue(next.Player) <= Bust {
		next.Message = "Hit or stand."
		return next, nil
	}

	next.Busted = true
	next.DealerRevealed = true
	if err := next.settle(OutcomeLose); err != nil {
		return r, err
	}
	next.Message = fmt.Sprintf("Bust! You lose %d coins.", next.Bet)
	if next.SessionOver() {
		next.Message += leaveNotice
	}
	return next, nil
}

// Stand ends the player's turn. The dealer reveals the hole card and draws
// until reaching 17, then the round is settled.
func (t *Table) Stand(r Round) (Round, error) {
	if !r.Phase.Allows(MoveStand) {
		return r, casino.Reject(MoveStand, r.Phase)
	}

	next := r
	if err := next.advance(DealerTurn); err != nil {
		return r, err
	}
	next.DealerRevealed = true
	for HandValue(next.Dealer) < DealerStandsOn {
		if err := next.draw(&next.Dealer); err != nil {
			return r, err
		}
	}

	outcome := Resolve(HandValue(next.Player), HandValue(next.Dealer))
	if err := next.settle(outcome); err != nil {
		return r, err
	}
	switch outcome {
	case OutcomeWin:
		next.Message = fmt.Sprintf("You win %d coins.", next.Bet)
	case OutcomeLose:
		next.Message = fmt.Sprintf("You lose %d coins.", next.Bet)
	default:
		next.Message = "Push. No coins won or lost."
	}
	if next.SessionOver() {
		next.Message += leaveNotice
	}
	return next, nil
}

// PlayAgain clears the table for the next wager.
func (t *Table) PlayAgain(r Round) (Round, error) {
	if !r.Phase.Allows(MovePlayAgain) {
		return r, casino.Reject(MovePlayAgain, r.Phase)
	}

	next := r
	if err := next.advance(AwaitingBet); err != nil {
		return r, err
	}
	next.Player, next.Dealer = nil, nil
	next.DealerRevealed = false
	next.Bet = 0
	next.Outcome = OutcomeNone
	next.Busted = false
	next.deck = cards.Deck{}
	next.Message = "Choose your bet"
	return next, nil
}

func (r *Round) settle(o Outcome) error {
	if err := r.advance(RoundResolved); err != nil {
		return err
	}
	r.Outcome = o
	r.Balance += o.Delta(r.Bet)
	if r.Balance < 0 {
		r.Balance = 0
	}
	return nil
}

// Step applies an action and returns the resulting round with its render
// model. On error the returned round is r itself.
func (t *Table) Step(r Round, a Action) (Round, View, error) {
	var (
		next Round
		err  error
	)
	switch a.Move {
	case MoveBet:
		next, err = t.PlaceBet(r, a.Amount)
	case MoveHit:
		next, err = t.Hit(r)
	case MoveStand:
		next, err = t.Stand(r)
	case MovePlayAgain:
		next, err = t.PlayAgain(r)
	case MoveBack:
		return r, t.View(r, casino.SignalExit), nil
	default:
		err = casino.Reject(a.Move, r.Phase)
	}
	if err != nil {
		return r, t.View(r, casino.SignalNone), err
	}

	signal := casino.SignalNone
	if next.SessionOver() {
		signal = casino.SignalSessionEnd
	}
	return next, t.View(next, signal), nil
}
