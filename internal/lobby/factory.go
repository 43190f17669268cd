package lobby

import (
	"math/rand"
	"time"

	"casinonight/internal/blackjack"
	"casinonight/internal/config"
	"casinonight/internal/ledger"
	"casinonight/internal/slots"

	"github.com/charmbracelet/log"
)

// Factory opens sessions that share one rule set and one store. Every
// session gets its own random source since rand.Rand is not safe for
// concurrent use.
type Factory struct {
	Rules    config.Rules
	Store    ledger.Store
	Recorder Recorder
	Logger   *log.Logger
	// Seed returns the seed for a new session. Nil seeds from the wall clock.
	Seed func() int64
}

// Open starts a session for slot.
func (f Factory) Open(slot string) (*Session, error) {
	seed := time.Now().UnixNano()
	if f.Seed != nil {
		seed = f.Seed()
	}
	rng := rand.New(rand.NewSource(seed))

	table := blackjack.NewTable(rng, blackjack.WithBetTiers(f.Rules.BetTiers))
	machine := slots.NewMachine(rng,
		slots.WithCatalog(f.Rules.Symbols),
		slots.WithPullCost(f.Rules.PullCost),
	)

	var opts []Option
	if f.Recorder != nil {
		opts = append(opts, WithRecorder(f.Recorder))
	}
	return New(ledger.New(f.Store, slot, f.Rules.StartingBalance), table, machine, f.Logger, opts...)
}
