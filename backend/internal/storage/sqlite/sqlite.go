// Package sqlite implements the forum store on an embedded SQLite file.
package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/traden-dev/traden/shared/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS threads (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT 'Allmänt',
	created_at TIMESTAMP NOT NULL,
	last_activity TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS replies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	thread_id INTEGER NOT NULL REFERENCES threads(id),
	content TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_replies_thread_id ON replies(thread_id);
`

type Storage struct {
	db *sqlx.DB
}

// New opens (creating if absent) the database file at path and ensures the schema exists.
func New(path string) (*Storage, error) {
	logger.Log.Info("opening database", "path", path)
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// modernc.org/sqlite serializes access per connection; a single connection
	// avoids SQLITE_BUSY between concurrent handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
