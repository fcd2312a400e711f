// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package xmodmap is a read-only facade over the keyboard mapping as
// dumped by `xmodmap -pke -pm`. Construction invokes xmodmap once,
// parses the whole dump eagerly, and owns the resulting table; the
// table never changes afterwards. A KeyTable is not safe for concurrent
// construction but is safe for concurrent reads once built.
package xmodmap

import (
	"slices"

	"github.com/mdhender/xtab/invoke"
	"github.com/spf13/afero"
)

// KeyCode identifies a physical key position as reported by the
// keyboard driver. Valid codes are 0..255; anything else in a dump is
// treated as malformed and dropped.
type KeyCode int

// KeyRecord associates a keycode with the keysyms bound to it at each
// shift level and the modifier classes the keycode currently carries.
// Syms may be shorter than the number of shift levels in the dump when
// unrecognized names were dropped; Modifiers is empty, not nil-checked,
// when the keycode carries none.
type KeyRecord struct {
	Code      KeyCode
	Syms      []KeySym
	Modifiers []Modifier
}

// KeyTable answers keysym and modifier lookups against one parsed dump.
type KeyTable struct {
	records   map[KeyCode]*KeyRecord
	codes     []KeyCode // ascending, for deterministic lookup order
	modifiers map[Modifier][]KeyCode
}

// New invokes `xmodmap -pke -pm` and parses the combined dump. The two
// sections are distinguished by line shape, so their order in the blob
// does not matter. Construction fails only when xmodmap itself cannot
// be run; a dump with no parsable lines yields an empty table.
func New() (*KeyTable, error) {
	output, err := invoke.Output("xmodmap", "-pke", "-pm")
	if err != nil {
		return nil, err
	}
	return parseDump(output), nil
}

// NewFromFile parses a saved dump file instead of invoking xmodmap.
func NewFromFile(fs afero.Fs, path string) (*KeyTable, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return parseDump(string(data)), nil
}

// GetKey returns the record for the first keycode, in ascending keycode
// order, whose bound syms contain the requested keysym. When a keysym
// is bound to several keycodes (main block and keypad, say) the lowest
// keycode always wins. The second return is false when the keysym is
// not bound anywhere in the current layout; that is a miss, not an
// error.
func (t *KeyTable) GetKey(sym KeySym) (KeyRecord, bool) {
	for _, code := range t.codes {
		rec := t.records[code]
		if slices.Contains(rec.Syms, sym) {
			return rec.clone(), true
		}
	}
	return KeyRecord{}, false
}

// GetModifier returns the keycodes currently bound to the modifier
// class, in ascending order. An unbound modifier yields an empty slice,
// never an absence signal.
func (t *KeyTable) GetModifier(m Modifier) []KeyCode {
	return slices.Clone(t.modifiers[m])
}

// Len returns the number of keycodes in the table.
func (t *KeyTable) Len() int {
	return len(t.records)
}

// Records returns every key record in ascending keycode order. The
// records are copies; mutating them does not touch the table.
func (t *KeyTable) Records() []KeyRecord {
	records := make([]KeyRecord, 0, len(t.codes))
	for _, code := range t.codes {
		records = append(records, t.records[code].clone())
	}
	return records
}

func (r *KeyRecord) clone() KeyRecord {
	return KeyRecord{
		Code:      r.Code,
		Syms:      slices.Clone(r.Syms),
		Modifiers: slices.Clone(r.Modifiers),
	}
}
