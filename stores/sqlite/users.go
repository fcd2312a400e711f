// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mdhender/xtab/web/auth"
)

// CreateUser adds a user for the query server. The password is hashed
// with bcrypt before it touches the database.
func (s *Store) CreateUser(ctx context.Context, handle, password string) error {
	handle = strings.ToLower(strings.TrimSpace(handle))
	if handle == "" {
		return fmt.Errorf("handle must not be empty")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (handle, password_hash, created_at) VALUES (?, ?, ?)",
		handle, hash, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Authenticate reports whether the handle/password pair matches a
// stored user. An unknown handle is a plain false, not an error.
func (s *Store) Authenticate(ctx context.Context, handle, password string) (bool, error) {
	handle = strings.ToLower(strings.TrimSpace(handle))
	var hash string
	err := s.db.QueryRowContext(ctx,
		"SELECT password_hash FROM users WHERE handle = ?", handle).Scan(&hash)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup user: %w", err)
	}
	return auth.CheckPassword(password, hash), nil
}
