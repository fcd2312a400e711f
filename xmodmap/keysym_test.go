// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package xmodmap_test

import (
	"testing"

	"github.com/mdhender/xtab/xmodmap"
)

func TestKeySymFromName(t *testing.T) {
	tests := []struct {
		name string
		sym  xmodmap.KeySym
		ok   bool
	}{
		{"a", xmodmap.Sym_a, true},
		{"A", xmodmap.Sym_A, true},
		{"asciitilde", xmodmap.SymAsciiTilde, true},
		{"Shift_L", xmodmap.SymShift_L, true},
		{"NoSymbol", xmodmap.SymNone, true},
		{"F12", xmodmap.SymF12, true},
		{"XF86AudioMute", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		sym, ok := xmodmap.KeySymFromName(tc.name)
		if ok != tc.ok {
			t.Errorf("%q: ok: want %v, got %v", tc.name, tc.ok, ok)
			continue
		}
		if ok && sym != tc.sym {
			t.Errorf("%q: want %v, got %v", tc.name, tc.sym, sym)
		}
	}
}

func TestKeySymString(t *testing.T) {
	for _, name := range []string{"a", "Z", "9", "quotedbl", "Caps_Lock", "space"} {
		sym, ok := xmodmap.KeySymFromName(name)
		if !ok {
			t.Fatalf("%q: want in vocabulary", name)
		}
		if got := sym.String(); got != name {
			t.Errorf("round trip %q: got %q", name, got)
		}
	}
	if got := xmodmap.SymNone.String(); got != "NoSymbol" {
		t.Errorf("SymNone: want %q, got %q", "NoSymbol", got)
	}
}

func TestModifierFromName(t *testing.T) {
	for i, name := range []string{"shift", "lock", "control", "mod1", "mod2", "mod3", "mod4", "mod5"} {
		mod, ok := xmodmap.ModifierFromName(name)
		if !ok {
			t.Fatalf("%q: want in vocabulary", name)
		}
		if mod != xmodmap.Modifiers[i] {
			t.Errorf("%q: want %v, got %v", name, xmodmap.Modifiers[i], mod)
		}
		if got := mod.String(); got != name {
			t.Errorf("round trip %q: got %q", name, got)
		}
	}
	if _, ok := xmodmap.ModifierFromName("mod6"); ok {
		t.Error("mod6: want not in vocabulary")
	}
}
