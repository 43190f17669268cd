package database

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"casinonight/internal/ledger"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ledger.Store = (*DB)(nil)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	db, err := New(filepath.Join(t.TempDir(), "casino.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBalanceRoundTrip(t *testing.T) {
	db := openTestDB(t)

	_, ok, err := db.Balance("coins")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.SetBalance("coins", 150))
	require.NoError(t, db.SetBalance("coins", 90))

	bal, ok, err := db.Balance("coins")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 90, bal)
}

func TestLedgerOverDB(t *testing.T) {
	db := openTestDB(t)
	l := ledger.New(db, "coins:42", 0)

	bal, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, ledger.DefaultBalance, bal)

	_, err = l.Save(0)
	require.NoError(t, err)
	bal, err = l.Load()
	require.NoError(t, err)
	assert.Zero(t, bal)
}

func TestReopenKeepsBalances(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	path := filepath.Join(t.TempDir(), "casino.db")

	db, err := New(path, logger)
	require.NoError(t, err)
	require.NoError(t, db.SetBalance("coins", 333))
	require.NoError(t, db.Close())

	db, err = New(path, logger)
	require.NoError(t, err)
	defer db.Close()
	bal, ok, err := db.Balance("coins")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 333, bal)
}

func TestPlays(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	first, err := db.RecordPlay(Play{Slot: "coins", Game: "blackjack", Wager: 50, Net: 50, Balance: 200, Detail: "win", PlayedAt: base})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = db.RecordPlay(Play{Slot: "coins", Game: "slots", Wager: 10, Net: -10, Balance: 190, Detail: "seven seven star", PlayedAt: base.Add(time.Minute)})
	require.NoError(t, err)
	_, err = db.RecordPlay(Play{Slot: "other", Game: "slots", Wager: 10, Net: 110, Balance: 260})
	require.NoError(t, err)

	plays, err := db.RecentPlays("coins", 10)
	require.NoError(t, err)
	require.Len(t, plays, 2)
	assert.Equal(t, "slots", plays[0].Game)
	assert.Equal(t, first.ID, plays[1].ID)
	assert.True(t, plays[1].PlayedAt.Equal(base))

	limited, err := db.RecentPlays("coins", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	totals, err := db.PlayTotals("coins")
	require.NoError(t, err)
	assert.Equal(t, Totals{Plays: 2, Wins: 1, Net: 40}, totals)

	empty, err := db.PlayTotals("nobody")
	require.NoError(t, err)
	assert.Equal(t, Totals{}, empty)
}
