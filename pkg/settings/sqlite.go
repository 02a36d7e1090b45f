package settings

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS settings (
	key   INTEGER NOT NULL,
	idx   INTEGER NOT NULL,
	value BLOB    NOT NULL,
	PRIMARY KEY (key, idx)
)`

// SQLiteStore persists settings in a SQLite database, one row per value.
// Values of a key are ordered by insertion.
type SQLiteStore struct {
	mu   sync.Mutex
	dsn  string
	db   *sql.DB
	open bool
}

// NewSQLiteStore creates a SQLite-backed store for the given data source
// name (a file path, or "file::memory:?cache=shared" for tests).
func NewSQLiteStore(dsn string) *SQLiteStore {
	return &SQLiteStore{dsn: dsn}
}

// Init opens the database and creates the schema.
func (s *SQLiteStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		return nil
	}

	db, err := sql.Open("sqlite3", s.dsn)
	if err != nil {
		return fmt.Errorf("open settings db: %w", err)
	}
	// A single connection keeps in-memory databases coherent.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return fmt.Errorf("create settings schema: %w", err)
	}

	s.db = db
	s.open = true
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil
	}
	s.open = false
	return s.db.Close()
}

// Get returns the value at index for key.
func (s *SQLiteStore) Get(key Key, index int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil, ErrNotInitialized
	}
	if index < 0 {
		return nil, ErrNotFound
	}

	var value []byte
	err := s.db.QueryRow(
		`SELECT value FROM settings WHERE key = ? ORDER BY idx LIMIT 1 OFFSET ?`,
		int(key), index,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set replaces all values of key.
func (s *SQLiteStore) Set(key Key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotInitialized
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM settings WHERE key = ?`, int(key)); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`INSERT INTO settings (key, idx, value) VALUES (?, 0, ?)`, int(key), clone(value)); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Add appends a value to key.
func (s *SQLiteStore) Add(key Key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotInitialized
	}

	_, err := s.db.Exec(
		`INSERT INTO settings (key, idx, value)
		 SELECT ?, COALESCE(MAX(idx) + 1, 0), ? FROM settings WHERE key = ?`,
		int(key), clone(value), int(key),
	)
	return err
}

// Delete removes one or all values of key.
func (s *SQLiteStore) Delete(key Key, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotInitialized
	}

	var res sql.Result
	var err error
	switch {
	case index == DeleteAll:
		res, err = s.db.Exec(`DELETE FROM settings WHERE key = ?`, int(key))
	case index < 0:
		return ErrNotFound
	default:
		res, err = s.db.Exec(
			`DELETE FROM settings WHERE key = ? AND idx = (
				SELECT idx FROM settings WHERE key = ? ORDER BY idx LIMIT 1 OFFSET ?)`,
			int(key), int(key), index,
		)
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Wipe removes every setting.
func (s *SQLiteStore) Wipe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotInitialized
	}
	_, err := s.db.Exec(`DELETE FROM settings`)
	return err
}

var _ Store = (*SQLiteStore)(nil)
