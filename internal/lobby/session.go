// Package lobby walks one player between the lobby and the tables, keeping
// the ledger in step with every payout.
package lobby

import (
	"errors"
	"fmt"
	"slices"

	"casinonight/internal/blackjack"
	"casinonight/internal/casino"
	"casinonight/internal/database"
	"casinonight/internal/ledger"
	"casinonight/internal/slots"

	"github.com/charmbracelet/log"
)

var ErrNotBroke = errors.New("balance still covers a stake")

const (
	lobbyGreeting     = "Welcome to the casino. Pick a game."
	blackjackGreeting = "Dealer says good evening. Ready to play?"
	blackjackWelcome  = "Dealer says great. Good luck, do not get greedy."
	slotsGreeting     = "Slots cost %d coins each pull. Continue?"
	slotsWelcome      = "Good luck."
	brokeNotice       = "You are out of coins."
	shortNotice       = "You can't cover a bet or a pull."
)

// Recorder stores settled plays.
type Recorder interface {
	RecordPlay(p database.Play) (database.Play, error)
}

// View is everything a surface draws for the current screen. Blackjack and
// Slots are set only on their table screens. Broke is set when the balance
// covers neither the smallest bet nor a pull.
type View struct {
	Screen    Screen
	Balance   int
	Message   string
	Blackjack *blackjack.View
	Slots     *slots.View
	Signal    casino.Signal
	Ended     bool
	Broke     bool
}

// Session is one player's visit. It is not safe for concurrent use.
type Session struct {
	ledger  *ledger.Ledger
	history Recorder
	table   *blackjack.Table
	machine *slots.Machine
	logger  *log.Logger
	screen  Screen
	balance int
	round   blackjack.Round
	pull    slots.State
	ended   bool
	message string
}

// Option configures a Session.
type Option func(*Session)

// WithRecorder records every settled round and pull.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.history = r
	}
}

// New starts a session in the lobby with the balance held by l.
func New(l *ledger.Ledger, table *blackjack.Table, machine *slots.Machine, logger *log.Logger, opts ...Option) (*Session, error) {
	bal, err := l.Load()
	if err != nil {
		return nil, err
	}
	s := &Session{
		ledger:  l,
		table:   table,
		machine: machine,
		logger:  logger.WithPrefix("lobby").With("slot", l.Slot()),
		screen:  ScreenLobby,
		balance: bal,
		message: lobbyGreeting,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.message = s.lobbyMessage()
	return s, nil
}

// Balance returns the coins currently held.
func (s *Session) Balance() int {
	return s.balance
}

// CanPlay reports whether the balance covers the smallest bet tier or a
// single pull.
func (s *Session) CanPlay() bool {
	return !ledger.Depleted(s.balance) && s.balance >= s.minStake()
}

func (s *Session) minStake() int {
	stake := s.machine.Cost()
	if tiers := s.table.Tiers(); len(tiers) > 0 {
		stake = min(stake, slices.Min(tiers))
	}
	return stake
}

// Ended reports whether the balance ran out at a table and the session is
// waiting for Leave.
func (s *Session) Ended() bool {
	return s.ended
}

// View renders the current screen.
func (s *Session) View() View {
	return s.render(casino.SignalNone)
}

// Do applies a surface action. A rejected action leaves the session as it was.
func (s *Session) Do(a Action) (View, error) {
	s.logger.Debug("Action", "screen", s.screen, "action", a)

	var (
		v   View
		err error
	)
	switch s.screen {
	case ScreenLobby:
		v, err = s.doLobby(a)
	case ScreenBlackjackPrompt, ScreenSlotsPrompt:
		v, err = s.doPrompt(a)
	case ScreenBlackjack:
		v, err = s.doBlackjack(a)
	case ScreenSlots:
		v, err = s.doSlots(a)
	default:
		err = fmt.Errorf("%w: unknown screen %d", casino.ErrInvalidTransition, s.screen)
	}
	if err != nil {
		s.logger.Debug("Action rejected", "action", a, "error", err)
		return s.View(), err
	}
	return v, nil
}

// Leave returns to the lobby after the balance ran out.
func (s *Session) Leave() View {
	s.toLobby()
	s.logger.Info("Session returned to lobby", "balance", s.balance)
	return s.View()
}

// Refill restores the starting balance. It is only allowed from the lobby
// once no game can be played.
func (s *Session) Refill() (View, error) {
	if s.screen != ScreenLobby {
		return s.View(), fmt.Errorf("%w: refill from %s", casino.ErrInvalidTransition, s.screen)
	}
	if s.CanPlay() {
		return s.View(), ErrNotBroke
	}
	saved, err := s.ledger.Save(s.ledger.Starting())
	if err != nil {
		return s.View(), err
	}
	s.balance = saved
	s.message = fmt.Sprintf("The house spots you %d coins.", saved)
	s.logger.Info("Balance refilled", "balance", saved)
	return s.View(), nil
}

func (s *Session) doLobby(a Action) (View, error) {
	switch a.Kind {
	case KindOpen:
		switch a.Game {
		case GameBlackjack:
			s.screen = ScreenBlackjackPrompt
			s.message = blackjackGreeting
		case GameSlots:
			s.screen = ScreenSlotsPrompt
			s.message = fmt.Sprintf(slotsGreeting, s.machine.Cost())
		default:
			return View{}, fmt.Errorf("%w: no game %q", casino.ErrInvalidTransition, a.Game)
		}
		return s.View(), nil
	case KindBack:
		return s.render(casino.SignalExit), nil
	case KindRefill:
		return s.Refill()
	}
	return View{}, casino.Reject(a, s.screen)
}

func (s *Session) doPrompt(a Action) (View, error) {
	switch a.Kind {
	case KindAccept:
		if s.screen == ScreenBlackjackPrompt {
			s.round = blackjack.NewRound(s.balance)
			s.round.Message = blackjackWelcome
			s.screen = ScreenBlackjack
		} else {
			s.pull = slots.NewState(s.balance)
			s.pull.Message = slotsWelcome
			s.screen = ScreenSlots
		}
		s.logger.Info("Sat down", "game", s.screen, "balance", s.balance)
		return s.View(), nil
	case KindDecline, KindBack:
		s.toLobby()
		return s.View(), nil
	}
	return View{}, casino.Reject(a, s.screen)
}

func (s *Session) doBlackjack(a Action) (View, error) {
	var act blackjack.Action
	switch a.Kind {
	case KindBet:
		act = blackjack.Bet(a.Amount)
	case KindHit:
		act = blackjack.Hit
	case KindStand:
		act = blackjack.Stand
	case KindPlayAgain:
		act = blackjack.PlayAgain
	case KindBack:
		act = blackjack.Back
	default:
		return View{}, casino.Reject(a, s.screen)
	}
	if s.ended && a.Kind != KindBack {
		return View{}, casino.Reject(a, s.screen)
	}

	prev := s.round
	next, bv, err := s.table.Step(prev, act)
	if err != nil {
		return View{}, err
	}
	if bv.Signal == casino.SignalExit {
		s.toLobby()
		return s.render(casino.SignalExit), nil
	}
	if err := s.commit(next.Balance); err != nil {
		return View{}, err
	}
	s.round = next

	if prev.Phase != blackjack.RoundResolved && next.Phase == blackjack.RoundResolved {
		s.logger.Info("Round settled", "bet", next.Bet, "outcome", next.Outcome, "busted", next.Busted,
			"player", blackjack.HandValue(next.Player), "dealer", blackjack.HandValue(next.Dealer), "balance", next.Balance)
		detail := fmt.Sprintf("%s: %s vs %s", next.Outcome, next.Player, next.Dealer)
		s.record(string(GameBlackjack), next.Bet, next.Outcome.Delta(next.Bet), detail)
	}
	if bv.Signal == casino.SignalSessionEnd {
		s.end()
	}
	return s.render(bv.Signal), nil
}

func (s *Session) doSlots(a Action) (View, error) {
	var move slots.Move
	switch a.Kind {
	case KindPull:
		move = slots.MovePull
	case KindBack:
		move = slots.MoveBack
	default:
		return View{}, casino.Reject(a, s.screen)
	}
	if s.ended && a.Kind != KindBack {
		return View{}, casino.Reject(a, s.screen)
	}

	next, sv, err := s.machine.Step(s.pull, move)
	if err != nil {
		return View{}, err
	}
	if sv.Signal == casino.SignalExit {
		s.toLobby()
		return s.render(casino.SignalExit), nil
	}
	if err := s.commit(next.Balance); err != nil {
		return View{}, err
	}
	s.pull = next

	s.logger.Info("Pulled", "reels", next.Reels, "win", next.Win, "balance", next.Balance)
	s.record(string(GameSlots), s.machine.Cost(), next.Win-s.machine.Cost(), fmt.Sprint(next.Reels))
	if sv.Signal == casino.SignalSessionEnd {
		s.end()
	}
	return s.render(sv.Signal), nil
}

// commit persists a changed balance. The session only adopts bal once the
// store has it.
func (s *Session) commit(bal int) error {
	if bal == s.balance {
		return nil
	}
	saved, err := s.ledger.Save(bal)
	if err != nil {
		s.logger.Error("Failed to save balance", "balance", bal, "error", err)
		return err
	}
	s.balance = saved
	return nil
}

func (s *Session) record(game string, wager, net int, detail string) {
	if s.history == nil {
		return
	}
	_, err := s.history.RecordPlay(database.Play{
		Slot:    s.ledger.Slot(),
		Game:    game,
		Wager:   wager,
		Net:     net,
		Balance: s.balance,
		Detail:  detail,
	})
	if err != nil {
		s.logger.Warn("Failed to record play", "game", game, "error", err)
	}
}

func (s *Session) end() {
	s.ended = true
	s.logger.Info("Out of coins", "screen", s.screen)
}

func (s *Session) toLobby() {
	s.screen = ScreenLobby
	s.ended = false
	s.message = s.lobbyMessage()
}

func (s *Session) lobbyMessage() string {
	switch {
	case ledger.Depleted(s.balance):
		return brokeNotice
	case !s.CanPlay():
		return shortNotice
	}
	return lobbyGreeting
}

func (s *Session) render(signal casino.Signal) View {
	v := View{
		Screen:  s.screen,
		Balance: s.balance,
		Message: s.message,
		Signal:  signal,
		Ended:   s.ended,
		Broke:   !s.CanPlay(),
	}
	switch s.screen {
	case ScreenBlackjack:
		bv := s.table.View(s.round, signal)
		v.Blackjack = &bv
		v.Message = bv.Message
	case ScreenSlots:
		sv := s.machine.View(s.pull, signal)
		v.Slots = &sv
		v.Message = sv.Message
	}
	return v
}
