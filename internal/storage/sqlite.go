package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/logger"
)

// Compile-time interface check.
var _ domain.Slot = (*SQLiteSlot)(nil)

const slotSchema = `
CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteSlot stores slots as rows of a single SQLite table.
type SQLiteSlot struct {
	db  *sql.DB
	log *logger.Logger
	now func() time.Time
}

// OpenSQLiteSlot creates or opens the database at path and makes sure
// the slots table exists. Use ":memory:" for a throwaway database.
func OpenSQLiteSlot(path string, log *logger.Logger) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// One writer at a time; a single connection also keeps ":memory:"
	// databases alive across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("executing %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(slotSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating slots table: %w", err)
	}

	log.Debug("opened sqlite slot store at %s", path)
	return &SQLiteSlot{db: db, log: log, now: time.Now}, nil
}

// Close closes the database connection.
func (s *SQLiteSlot) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the blob stored under key, or nil if there is no row.
func (s *SQLiteSlot) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM slots WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Debug("slot %q has no row", key)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %q: %w: %w", key, domain.ErrSlotUnavailable, err)
	}
	return data, nil
}

// Put upserts the blob for key in a single statement.
func (s *SQLiteSlot) Put(ctx context.Context, key string, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("writing slot %q: %w: %w", key, domain.ErrSlotUnavailable, err)
	}
	s.log.Debug("wrote slot %q (%d bytes)", key, len(data))
	return nil
}
