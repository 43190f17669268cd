package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// timeLayout keeps stored times fixed width so they sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type DB struct {
	conn   *sql.DB
	logger *log.Logger
}

// New initializes the database connection and creates the schema.
func New(dsn string, logger *log.Logger) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer; sqlite serialises anyway and this keeps busy errors away.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	d := &DB{conn: db, logger: logger.WithPrefix("database")}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	d.logger.Info("Database connected", "dsn", dsn)
	return d, nil
}

func (d *DB) migrate() error {
	// Wallets table
	_, err := d.conn.Exec(`
	CREATE TABLE IF NOT EXISTS wallets (
		slot TEXT PRIMARY KEY,
		balance INTEGER NOT NULL DEFAULT 0
	);`)
	if err != nil {
		return err
	}

	// Plays table
	_, err = d.conn.Exec(`
	CREATE TABLE IF NOT EXISTS plays (
		id TEXT PRIMARY KEY,
		slot TEXT NOT NULL,
		game TEXT NOT NULL,
		wager INTEGER NOT NULL,
		net INTEGER NOT NULL,
		balance INTEGER NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		played_at TEXT NOT NULL
	);`)
	if err != nil {
		return err
	}

	_, err = d.conn.Exec(`CREATE INDEX IF NOT EXISTS plays_slot_played_at ON plays (slot, played_at);`)
	return err
}

func (d *DB) Close() error {
	d.logger.Info("Database connection closing.")
	return d.conn.Close()
}

// Wallet Methods

// Balance returns the stored balance for slot. ok is false if the slot was never written.
func (d *DB) Balance(slot string) (int, bool, error) {
	var balance int
	err := d.conn.QueryRow("SELECT balance FROM wallets WHERE slot = ?", slot).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return balance, true, nil
}

// SetBalance sets the balance for slot.
func (d *DB) SetBalance(slot string, balance int) error {
	_, err := d.conn.Exec("INSERT INTO wallets (slot, balance) VALUES (?, ?) ON CONFLICT(slot) DO UPDATE SET balance = excluded.balance", slot, balance)
	return err
}

// Play Methods

// Play is one settled blackjack round or slot pull.
type Play struct {
	ID       string
	Slot     string
	Game     string
	Wager    int
	Net      int
	Balance  int
	Detail   string
	PlayedAt time.Time
}

// Totals summarises the plays recorded for a slot.
type Totals struct {
	Plays int
	Wins  int
	Net   int
}

// RecordPlay stores p, filling in the ID and time when they are empty.
func (d *DB) RecordPlay(p Play) (Play, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PlayedAt.IsZero() {
		p.PlayedAt = time.Now()
	}
	_, err := d.conn.Exec(`
		INSERT INTO plays (id, slot, game, wager, net, balance, detail, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Slot, p.Game, p.Wager, p.Net, p.Balance, p.Detail, p.PlayedAt.UTC().Format(timeLayout))
	if err != nil {
		return Play{}, fmt.Errorf("failed to record play: %w", err)
	}
	return p, nil
}

// RecentPlays returns up to limit plays for slot, newest first.
func (d *DB) RecentPlays(slot string, limit int) ([]Play, error) {
	rows, err := d.conn.Query(`
		SELECT id, slot, game, wager, net, balance, detail, played_at
		FROM plays WHERE slot = ?
		ORDER BY played_at DESC LIMIT ?
	`, slot, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plays []Play
	for rows.Next() {
		var p Play
		var playedAt string
		if err := rows.Scan(&p.ID, &p.Slot, &p.Game, &p.Wager, &p.Net, &p.Balance, &p.Detail, &playedAt); err != nil {
			return nil, err
		}
		p.PlayedAt, err = time.Parse(timeLayout, playedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse play time %q: %w", playedAt, err)
		}
		plays = append(plays, p)
	}
	return plays, rows.Err()
}

// PlayTotals returns aggregate results for slot.
func (d *DB) PlayTotals(slot string) (Totals, error) {
	var t Totals
	err := d.conn.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN net > 0 THEN 1 ELSE 0 END), 0), COALESCE(SUM(net), 0)
		FROM plays WHERE slot = ?
	`, slot).Scan(&t.Plays, &t.Wins, &t.Net)
	if err != nil {
		return Totals{}, err
	}
	return t, nil
}
