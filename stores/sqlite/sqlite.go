// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store is a SQLite-backed snapshot store for parsed dumps.
type Store struct {
	db *sql.DB
}

// StoreConfig holds configuration for creating a Store.
type StoreConfig struct {
	// Path is the file path for file-based SQLite.
	// If empty, an in-memory database is used.
	Path string

	// InitSchema controls whether to run schema initialization.
	// It is always run for in-memory databases.
	InitSchema bool
}

// NewStore creates a new in-memory store with the schema loaded.
func NewStore() (*Store, error) {
	return NewStoreWithConfig(StoreConfig{InitSchema: true})
}

// NewStoreWithConfig creates a store based on the provided
// configuration. For file-based mode the database file must already
// exist unless InitSchema is set; SQLite would otherwise create an
// empty file silently on first open.
func NewStoreWithConfig(cfg StoreConfig) (*Store, error) {
	var dsn string

	if cfg.Path == "" {
		dsn = "file::memory:?cache=shared&_pragma=foreign_keys(1)"
	} else {
		if !cfg.InitSchema {
			if _, err := os.Stat(cfg.Path); os.IsNotExist(err) {
				return nil, fmt.Errorf("database file does not exist: %s", cfg.Path)
			}
		}
		// Apply PRAGMA's per-connection via DSN so the pool always has them.
		// modernc.org/sqlite supports repeated _pragma=... parameters.
		dsn = fmt.Sprintf(
			"file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)",
			cfg.Path,
		)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.InitSchema || cfg.Path == "" {
		if _, err := db.Exec(schemaSQL); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// StoreStats reports row counts for the main tables.
type StoreStats struct {
	Snapshots int
	Resources int
	Keycodes  int
	Modifiers int
	Users     int
}

// Stats returns row counts for logging and sanity checks.
func (s *Store) Stats() StoreStats {
	var stats StoreStats
	s.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&stats.Snapshots)
	s.db.QueryRow("SELECT COUNT(*) FROM resources").Scan(&stats.Resources)
	s.db.QueryRow("SELECT COUNT(*) FROM keycodes").Scan(&stats.Keycodes)
	s.db.QueryRow("SELECT COUNT(*) FROM modifiers").Scan(&stats.Modifiers)
	s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&stats.Users)
	return stats
}
