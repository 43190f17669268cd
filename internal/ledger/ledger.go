// Package ledger keeps a player's coin balance in an external store.
package ledger

import (
	"fmt"
	"sync"
)

// DefaultBalance is what a player starts with when nothing is stored.
const DefaultBalance = 150

// Store reads and writes integer balances keyed by slot name. ok is false
// when the slot has never been written.
type Store interface {
	Balance(slot string) (balance int, ok bool, err error)
	SetBalance(slot string, balance int) error
}

// Ledger is one slot of a Store.
type Ledger struct {
	store    Store
	slot     string
	starting int
}

// New returns the ledger for slot. starting replaces DefaultBalance when positive.
func New(store Store, slot string, starting int) *Ledger {
	if starting <= 0 {
		starting = DefaultBalance
	}
	return &Ledger{store: store, slot: slot, starting: starting}
}

// Slot returns the ledger's key in the store.
func (l *Ledger) Slot() string {
	return l.slot
}

// Starting returns the balance used when the slot is unset.
func (l *Ledger) Starting() int {
	return l.starting
}

// Load returns the stored balance, or the starting balance if none is stored.
func (l *Ledger) Load() (int, error) {
	bal, ok, err := l.store.Balance(l.slot)
	if err != nil {
		return 0, fmt.Errorf("failed to load balance for %s: %w", l.slot, err)
	}
	if !ok {
		return l.starting, nil
	}
	if bal < 0 {
		return 0, nil
	}
	return bal, nil
}

// Save persists v, clamped at zero, and returns the value written.
func (l *Ledger) Save(v int) (int, error) {
	if v < 0 {
		v = 0
	}
	if err := l.store.SetBalance(l.slot, v); err != nil {
		return 0, fmt.Errorf("failed to save balance for %s: %w", l.slot, err)
	}
	return v, nil
}

// Depleted reports whether v ends a session.
func Depleted(v int) bool {
	return v <= 0
}

// MemoryStore is a Store held in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	balances map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{balances: make(map[string]int)}
}

func (m *MemoryStore) Balance(slot string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal, ok := m.balances[slot]
	return bal, ok, nil
}

func (m *MemoryStore) SetBalance(slot string, balance int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[slot] = balance
	return nil
}
