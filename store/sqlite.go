// Package store caches fetched author profiles in a local SQLite database
// so a multi-hour fetch run can resume after interruption.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Will-Wei7/iclr-analysis/authors"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	author_name TEXT PRIMARY KEY,
	payload     TEXT NOT NULL,
	fetched_at  TEXT NOT NULL
);
`

// Cache is a SQLite-backed profile cache keyed by author name.
type Cache struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening profile cache: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating profile cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Get returns the cached profile for an author, if present.
func (c *Cache) Get(authorName string) (*authors.Author, bool, error) {
	var payload string
	err := c.db.Get(&payload, `SELECT payload FROM profiles WHERE author_name = ?`, authorName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached profile %s: %w", authorName, err)
	}

	var a authors.Author
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		// A corrupt row is treated as a miss so it gets refetched.
		return nil, false, nil
	}
	return &a, true, nil
}

// Put stores or replaces the cached profile for an author.
func (c *Cache) Put(a *authors.Author) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encoding profile %s: %w", a.Name, err)
	}

	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO profiles (author_name, payload, fetched_at) VALUES (?, ?, ?)`,
		a.Name, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("caching profile %s: %w", a.Name, err)
	}
	return nil
}

// Len returns the number of cached profiles.
func (c *Cache) Len() (int, error) {
	var n int
	if err := c.db.Get(&n, `SELECT COUNT(*) FROM profiles`); err != nil {
		return 0, fmt.Errorf("counting cached profiles: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
