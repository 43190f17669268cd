package slots

import (
	"fmt"
	"math/rand"
	"slices"

	"casinonight/internal/cards"
	"casinonight/internal/casino"
)

// Move is a request at the machine.
type Move int

const (
	MovePull Move = iota
	MoveBack
)

func (m Move) String() string {
	switch m {
	case MovePull:
		return "pull"
	case MoveBack:
		return "go back"
	}
	return "unknown move"
}

// State is a player's seat at the machine.
type State struct {
	Balance int
	Reels   []Symbol
	Win     int
	Message string
}

// NewState seats a player holding balance coins.
func NewState(balance int) State {
	return State{Balance: balance, Message: "Good luck."}
}

// Machine draws reels with its random source. It keeps no per-player state.
type Machine struct {
	rng     *rand.Rand
	catalog []Symbol
	cost    int
}

// Option configures a Machine.
type Option func(*Machine)

// WithCatalog replaces the reel symbols.
func WithCatalog(catalog []Symbol) Option {
	return func(m *Machine) {
		m.catalog = slices.Clone(catalog)
	}
}

// WithPullCost replaces the price of a pull.
func WithPullCost(cost int) Option {
	return func(m *Machine) {
		m.cost = cost
	}
}

// NewMachine returns a machine drawing with rng.
func NewMachine(rng *rand.Rand, opts ...Option) *Machine {
	m := &Machine{
		rng:     rng,
		catalog: slices.Clone(DefaultCatalog),
		cost:    DefaultPullCost,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Cost returns the price of a pull.
func (m *Machine) Cost() int {
	return m.cost
}

// Catalog returns the reel symbols.
func (m *Machine) Catalog() []Symbol {
	return slices.Clone(m.catalog)
}

// Payout returns the coins won by reels: the symbol's payout when every reel
// shows the same symbol, otherwise 0.
func (m *Machine) Payout(reels []Symbol) int {
	if len(reels) != Reels {
		return 0
	}
	for _, r := range reels[1:] {
		if r.Name != reels[0].Name {
			return 0
		}
	}
	for _, s := range m.catalog {
		if s.Name == reels[0].Name {
			return s.Payout
		}
	}
	return 0
}

// Pull charges the pull cost, spins every reel independently and credits
// any win.
func (m *Machine) Pull(s State) (State, error) {
	if s.Balance < m.cost {
		return s, fmt.Errorf("pull costs %d, have %d: %w", m.cost, s.Balance, casino.ErrInsufficientFunds)
	}

	reels := make([]Symbol, 0, Reels)
	for i := 0; i < Reels; i++ {
		sym, err := cards.PickWeighted(m.rng, m.catalog)
		if err != nil {
			return s, err
		}
		reels = append(reels, sym)
	}

	next := s
	next.Balance -= m.cost
	next.Reels = reels
	next.Win = m.Payout(reels)
	next.Balance += next.Win
	if next.Win > 0 {
		next.Message = fmt.Sprintf("You win %d coins.", next.Win)
	} else {
		next.Message = "No match. Try again."
	}
	if next.Balance <= 0 {
		next.Message = "You are out of coins. The bouncer asks you to leave."
	}
	return next, nil
}

// View is what a surface needs to draw the machine.
type View struct {
	Balance int
	Reels   []Symbol
	Win     int
	Cost    int
	Legend  []Symbol
	CanPull bool
	Message string
	Signal  casino.Signal
}

// View renders s for display.
func (m *Machine) View(s State, signal casino.Signal) View {
	return View{
		Balance: s.Balance,
		Reels:   slices.Clone(s.Reels),
		Win:     s.Win,
		Cost:    m.cost,
		Legend:  m.Catalog(),
		CanPull: s.Balance >= m.cost,
		Message: s.Message,
		Signal:  signal,
	}
}

// Step applies a move and returns the resulting state with its render model.
// On error the returned state is s itself.
func (m *Machine) Step(s State, move Move) (State, View, error) {
	switch move {
	case MovePull:
		next, err := m.Pull(s)
		if err != nil {
			return s, m.View(s, casino.SignalNone), err
		}
		signal := casino.SignalNone
		if next.Balance <= 0 {
			signal = casino.SignalSessionEnd
		}
		return next, m.View(next, signal), nil
	case MoveBack:
		return s, m.View(s, casino.SignalExit), nil
	}
	return s, m.View(s, casino.SignalNone), fmt.Errorf("%w: %s", casino.ErrInvalidTransition, move)
}
