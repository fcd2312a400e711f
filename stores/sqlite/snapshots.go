// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mdhender/xtab/xmodmap"
	"github.com/mdhender/xtab/xrdb"
)

// Snapshot kinds.
const (
	KindResources = "resources"
	KindKeymap    = "keymap"
)

// Snapshot is one frozen copy of a parsed dump.
type Snapshot struct {
	ID      int64     `json:"id"`
	Kind    string    `json:"kind"`
	TakenAt time.Time `json:"taken_at"`
}

// SaveResources stores a resource table as a new snapshot and returns
// its id. The whole snapshot is written in one transaction.
func (s *Store) SaveResources(ctx context.Context, takenAt time.Time, entries []xrdb.Entry) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	id, err := insertSnapshot(ctx, tx, KindResources, takenAt)
	if err != nil {
		return 0, err
	}
	for _, entry := range entries {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO resources (snapshot_id, component, property, value) VALUES (?, ?, ?, ?)",
			id, entry.Component, entry.Property, entry.Value)
		if err != nil {
			return 0, fmt.Errorf("insert resource: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// SaveKeymap stores a key table as a new snapshot and returns its id.
// Keysyms and modifiers are stored by name so the rows stay readable
// from the SQL console and survive enum reordering.
func (s *Store) SaveKeymap(ctx context.Context, takenAt time.Time, records []xmodmap.KeyRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	id, err := insertSnapshot(ctx, tx, KindKeymap, takenAt)
	if err != nil {
		return 0, err
	}
	for _, rec := range records {
		for position, sym := range rec.Syms {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO keycodes (snapshot_id, keycode, position, keysym) VALUES (?, ?, ?, ?)",
				id, int(rec.Code), position, sym.String())
			if err != nil {
				return 0, fmt.Errorf("insert keycode: %w", err)
			}
		}
		for _, mod := range rec.Modifiers {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO modifiers (snapshot_id, modifier, keycode) VALUES (?, ?, ?)",
				id, mod.String(), int(rec.Code))
			if err != nil {
				return 0, fmt.Errorf("insert modifier: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func insertSnapshot(ctx context.Context, tx *sql.Tx, kind string, takenAt time.Time) (int64, error) {
	result, err := tx.ExecContext(ctx,
		"INSERT INTO snapshots (kind, taken_at) VALUES (?, ?)",
		kind, takenAt.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("snapshot id: %w", err)
	}
	return id, nil
}

// ListSnapshots returns all snapshots, newest first.
func (s *Store) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, kind, taken_at FROM snapshots ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var snap Snapshot
		var takenAt string
		if err := rows.Scan(&snap.ID, &snap.Kind, &takenAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snap.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// ResourceEntries returns the resource rows of a snapshot sorted by
// component then property.
func (s *Store) ResourceEntries(ctx context.Context, snapshotID int64) ([]xrdb.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT component, property, value FROM resources WHERE snapshot_id = ? ORDER BY component, property",
		snapshotID)
	if err != nil {
		return nil, fmt.Errorf("resource entries: %w", err)
	}
	defer rows.Close()

	var entries []xrdb.Entry
	for rows.Next() {
		var entry xrdb.Entry
		if err := rows.Scan(&entry.Component, &entry.Property, &entry.Value); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// QueryResource answers a point lookup against a stored snapshot with
// the same miss semantics as the live facade: the bool is false when
// the snapshot holds no matching entry.
func (s *Store) QueryResource(ctx context.Context, snapshotID int64, component, property string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM resources WHERE snapshot_id = ? AND component = ? AND property = ?",
		snapshotID, component, property).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query resource: %w", err)
	}
	return value, true, nil
}

// KeymapRecords rebuilds the key records of a stored keymap snapshot in
// ascending keycode order. Names that fell out of the keysym or
// modifier vocabulary since the snapshot was taken are dropped, the
// same recovery the live parser applies.
func (s *Store) KeymapRecords(ctx context.Context, snapshotID int64) ([]xmodmap.KeyRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT keycode, keysym FROM keycodes WHERE snapshot_id = ? ORDER BY keycode, position",
		snapshotID)
	if err != nil {
		return nil, fmt.Errorf("keymap records: %w", err)
	}
	defer rows.Close()

	byCode := make(map[int]*xmodmap.KeyRecord)
	var order []int
	for rows.Next() {
		var code int
		var name string
		if err := rows.Scan(&code, &name); err != nil {
			return nil, fmt.Errorf("scan keycode: %w", err)
		}
		rec, ok := byCode[code]
		if !ok {
			rec = &xmodmap.KeyRecord{Code: xmodmap.KeyCode(code)}
			byCode[code] = rec
			order = append(order, code)
		}
		if sym, ok := xmodmap.KeySymFromName(name); ok {
			rec.Syms = append(rec.Syms, sym)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	modRows, err := s.db.QueryContext(ctx,
		"SELECT modifier, keycode FROM modifiers WHERE snapshot_id = ? ORDER BY keycode",
		snapshotID)
	if err != nil {
		return nil, fmt.Errorf("keymap modifiers: %w", err)
	}
	defer modRows.Close()

	for modRows.Next() {
		var name string
		var code int
		if err := modRows.Scan(&name, &code); err != nil {
			return nil, fmt.Errorf("scan modifier: %w", err)
		}
		mod, ok := xmodmap.ModifierFromName(name)
		if !ok {
			continue
		}
		if rec, ok := byCode[code]; ok {
			rec.Modifiers = append(rec.Modifiers, mod)
		}
	}
	if err := modRows.Err(); err != nil {
		return nil, err
	}

	records := make([]xmodmap.KeyRecord, 0, len(order))
	for _, code := range order {
		records = append(records, *byCode[code])
	}
	return records, nil
}

// ModifierCodes returns the keycodes bound to a modifier class in a
// stored snapshot, ascending. Unbound yields an empty slice.
func (s *Store) ModifierCodes(ctx context.Context, snapshotID int64, mod xmodmap.Modifier) ([]xmodmap.KeyCode, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT keycode FROM modifiers WHERE snapshot_id = ? AND modifier = ? ORDER BY keycode",
		snapshotID, mod.String())
	if err != nil {
		return nil, fmt.Errorf("modifier codes: %w", err)
	}
	defer rows.Close()

	codes := []xmodmap.KeyCode{}
	for rows.Next() {
		var code int
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan modifier code: %w", err)
		}
		codes = append(codes, xmodmap.KeyCode(code))
	}
	return codes, rows.Err()
}
