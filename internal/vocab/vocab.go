// Package vocab persists annotated vocabulary in a SQLite database so
// study tooling can pick it up later.
package vocab

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/f3rmion/canto/internal/canto"
)

// Entry is one stored vocabulary word with its readings and how often it
// has been seen across exports.
type Entry struct {
	Word     string
	Jyutping string
	Yale     string
	Seen     int64
	AddedAt  time.Time
}

// Store is a SQLite-backed vocabulary list.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS vocab (
	word     TEXT PRIMARY KEY,
	jyutping TEXT NOT NULL,
	yale     TEXT NOT NULL DEFAULT '',
	seen     INTEGER NOT NULL DEFAULT 0,
	added_at INTEGER NOT NULL
);`

// Open opens (creating if needed) the vocabulary database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening vocab database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing vocab schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddTokens upserts every token that carries a Jyutping reading,
// incrementing the seen counter for words already stored. It returns the
// number of tokens recorded.
func (s *Store) AddTokens(tokens []canto.Token) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO vocab (word, jyutping, yale, seen, added_at)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(word) DO UPDATE SET seen = seen + 1`)
	if err != nil {
		return 0, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	added := 0
	for _, t := range tokens {
		if !t.HasReading() {
			continue
		}
		if _, err := stmt.Exec(t.Word, t.Jyutping, t.Yale, now); err != nil {
			return 0, fmt.Errorf("storing %q: %w", t.Word, err)
		}
		added++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return added, nil
}

// List returns all stored entries, most frequently seen first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT word, jyutping, yale, seen, added_at
		FROM vocab ORDER BY seen DESC, word`)
	if err != nil {
		return nil, fmt.Errorf("querying vocab: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var added int64
		if err := rows.Scan(&e.Word, &e.Jyutping, &e.Yale, &e.Seen, &added); err != nil {
			return nil, fmt.Errorf("scanning vocab row: %w", err)
		}
		e.AddedAt = time.Unix(added, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
