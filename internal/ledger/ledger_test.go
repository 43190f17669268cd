package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{}

var errDisk = errors.New("disk on fire")

func (brokenStore) Balance(string) (int, bool, error) { return 0, false, errDisk }
func (brokenStore) SetBalance(string, int) error      { return errDisk }

func TestLoadDefaultsWhenUnset(t *testing.T) {
	l := New(NewMemoryStore(), "coins", 0)

	bal, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultBalance, bal)
	assert.Equal(t, 150, bal)
}

func TestSaveThenLoad(t *testing.T) {
	store := NewMemoryStore()
	l := New(store, "coins", 0)

	saved, err := l.Save(275)
	require.NoError(t, err)
	assert.Equal(t, 275, saved)

	bal, err := New(store, "coins", 0).Load()
	require.NoError(t, err)
	assert.Equal(t, 275, bal)

	other, err := New(store, "coins:someone-else", 0).Load()
	require.NoError(t, err)
	assert.Equal(t, 150, other)
}

func TestSaveClampsAtZero(t *testing.T) {
	store := NewMemoryStore()
	l := New(store, "coins", 0)

	saved, err := l.Save(-40)
	require.NoError(t, err)
	assert.Zero(t, saved)
	assert.True(t, Depleted(saved))

	bal, ok, _ := store.Balance("coins")
	assert.True(t, ok)
	assert.Zero(t, bal)

	bal, err = l.Load()
	require.NoError(t, err)
	assert.Zero(t, bal, "a stored zero is not replaced by the default")
}

func TestCustomStartingBalance(t *testing.T) {
	l := New(NewMemoryStore(), "coins", 500)
	bal, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 500, bal)
	assert.Equal(t, 500, l.Starting())
	assert.Equal(t, "coins", l.Slot())
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	l := New(brokenStore{}, "coins", 0)

	_, err := l.Load()
	assert.ErrorIs(t, err, errDisk)

	_, err = l.Save(10)
	assert.ErrorIs(t, err, errDisk)
}
