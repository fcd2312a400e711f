// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package xmodmap_test

import (
	"slices"
	"testing"

	"github.com/mdhender/xtab/xmodmap"
	"github.com/spf13/afero"
)

const sampleDump = `xmodmap:  up to 4 keys per modifier, (keycodes in parentheses):

keycode  12 = KP_Enter
keycode  36 = Return NoSymbol Return
keycode  38 = a A a A
keycode  45 = a A
keycode  50 = Shift_L NoSymbol Shift_L
keycode  62 = Shift_R NoSymbol Shift_R
keycode  66 = Caps_Lock NoSymbol Caps_Lock
keycode 204 =

shift       Shift_L (0x32),  Shift_R (0x3e)
lock        Caps_Lock (0x42)
control     Control_L (0x25),  Control_R (0x69)
mod3
mod4        Super_L (0x85),  Super_R (0x86)
`

func newTable(t *testing.T) *xmodmap.KeyTable {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/xmodmap.out", []byte(sampleDump), 0o644); err != nil {
		t.Fatalf("write dump: %v", err)
	}
	table, err := xmodmap.NewFromFile(fs, "/xmodmap.out")
	if err != nil {
		t.Fatalf("new from file: %v", err)
	}
	return table
}

func TestGetKeyLowestKeycodeWins(t *testing.T) {
	table := newTable(t)

	// 'a' is bound to keycodes 38 and 45; 38 must win, every time
	for i := 0; i < 3; i++ {
		rec, ok := table.GetKey(xmodmap.Sym_a)
		if !ok {
			t.Fatal("GetKey(a): want hit")
		}
		if rec.Code != 38 {
			t.Errorf("code: want 38, got %d", rec.Code)
		}
	}
}

func TestGetKeyMiss(t *testing.T) {
	table := newTable(t)
	if _, ok := table.GetKey(xmodmap.SymF12); ok {
		t.Error("GetKey(F12): want miss, layout does not bind it")
	}
}

func TestGetKeyRecord(t *testing.T) {
	table := newTable(t)

	rec, ok := table.GetKey(xmodmap.SymShift_L)
	if !ok {
		t.Fatal("GetKey(Shift_L): want hit")
	}
	if rec.Code != 50 {
		t.Errorf("code: want 50, got %d", rec.Code)
	}
	wantSyms := []xmodmap.KeySym{xmodmap.SymShift_L, xmodmap.SymNone, xmodmap.SymShift_L}
	if !slices.Equal(rec.Syms, wantSyms) {
		t.Errorf("syms: want %v, got %v", wantSyms, rec.Syms)
	}
	if !slices.Equal(rec.Modifiers, []xmodmap.Modifier{xmodmap.Shift}) {
		t.Errorf("modifiers: want [shift], got %v", rec.Modifiers)
	}
}

func TestGetModifier(t *testing.T) {
	table := newTable(t)

	if codes := table.GetModifier(xmodmap.Shift); !slices.Equal(codes, []xmodmap.KeyCode{50, 62}) {
		t.Errorf("shift: want [50 62], got %v", codes)
	}
	if codes := table.GetModifier(xmodmap.Lock); !slices.Equal(codes, []xmodmap.KeyCode{66}) {
		t.Errorf("lock: want [66], got %v", codes)
	}
	// control's keycodes are never defined by the keycode section, so
	// both references dangle and are dropped
	if codes := table.GetModifier(xmodmap.Control); len(codes) != 0 {
		t.Errorf("control: want empty, got %v", codes)
	}
	// mod3 is explicitly unbound, mod5 never appears at all; both are
	// an empty set, not an absence
	if codes := table.GetModifier(xmodmap.Mod3); len(codes) != 0 {
		t.Errorf("mod3: want empty, got %v", codes)
	}
	if codes := table.GetModifier(xmodmap.Mod5); len(codes) != 0 {
		t.Errorf("mod5: want empty, got %v", codes)
	}
}

func TestRecordsAscendingAndDetached(t *testing.T) {
	table := newTable(t)

	records := table.Records()
	if len(records) != 8 {
		t.Fatalf("records: want 8, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].Code >= records[i].Code {
			t.Fatalf("records not ascending at %d: %d >= %d", i, records[i-1].Code, records[i].Code)
		}
	}

	// mutating a returned record must not change the table
	rec, _ := table.GetKey(xmodmap.Sym_a)
	if len(rec.Syms) > 0 {
		rec.Syms[0] = xmodmap.Sym_z
	}
	again, _ := table.GetKey(xmodmap.Sym_a)
	if again.Syms[0] != xmodmap.Sym_a {
		t.Error("GetKey returned an aliased record")
	}
}
