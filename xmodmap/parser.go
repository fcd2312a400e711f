// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package xmodmap

import (
	"slices"
	"strconv"
	"strings"
)

// parseDump folds the dump into a key table. Two line shapes carry
// data:
//
//	keycode  38 = a A a A
//	shift       Shift_L (0x32),  Shift_R (0x3e)
//
// Everything else (the `xmodmap:` header, blank lines, lines that fail
// their shape) is skipped silently. Modifier lines are cross-referenced
// against the keycode section after both are parsed; a reference to a
// keycode the dump never defined is dropped.
func parseDump(input string) *KeyTable {
	records := make(map[KeyCode]*KeyRecord)
	refs := make(map[Modifier][]KeyCode)

	for _, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "keycode" {
			if code, syms, ok := parseKeycodeLine(fields); ok {
				records[code] = &KeyRecord{Code: code, Syms: syms}
			}
			continue
		}
		if mod, ok := ModifierFromName(fields[0]); ok {
			refs[mod] = append(refs[mod], parseModifierLine(fields)...)
		}
	}

	codes := make([]KeyCode, 0, len(records))
	for code := range records {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	// attach modifier membership, dropping dangling references
	modifiers := make(map[Modifier][]KeyCode, len(Modifiers))
	for _, mod := range Modifiers {
		modifiers[mod] = []KeyCode{}
	}
	for _, mod := range Modifiers {
		for _, code := range refs[mod] {
			rec, ok := records[code]
			if !ok {
				continue
			}
			if !slices.Contains(rec.Modifiers, mod) {
				rec.Modifiers = append(rec.Modifiers, mod)
			}
			if !slices.Contains(modifiers[mod], code) {
				modifiers[mod] = append(modifiers[mod], code)
			}
		}
		slices.Sort(modifiers[mod])
	}
	for _, rec := range records {
		slices.Sort(rec.Modifiers)
	}

	return &KeyTable{records: records, codes: codes, modifiers: modifiers}
}

// parseKeycodeLine parses `keycode NN = sym sym ...`. Unrecognized
// keysym names are dropped one at a time; the rest of the line
// survives. A line with no syms after the `=` is valid and produces a
// record with an empty binding.
func parseKeycodeLine(fields []string) (KeyCode, []KeySym, bool) {
	if len(fields) < 3 || fields[2] != "=" {
		return 0, nil, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 || n > 255 {
		return 0, nil, false
	}
	syms := make([]KeySym, 0, len(fields)-3)
	for _, name := range fields[3:] {
		if sym, ok := KeySymFromName(name); ok {
			syms = append(syms, sym)
		}
	}
	return KeyCode(n), syms, true
}

// parseModifierLine parses the keycodes out of a modifier line. The
// line is a modifier name followed by zero or more `Sym (0xNN)` pairs;
// zero pairs is valid and means the modifier is unbound. Only the
// parenthesized keycodes matter here, the sym names are display sugar.
func parseModifierLine(fields []string) []KeyCode {
	var codes []KeyCode
	for _, field := range fields[1:] {
		if !strings.HasPrefix(field, "(") {
			continue
		}
		text := strings.TrimFunc(field, func(r rune) bool {
			return r == '(' || r == ')' || r == ','
		})
		n, err := strconv.ParseInt(text, 0, 32)
		if err != nil || n < 0 || n > 255 {
			continue
		}
		codes = append(codes, KeyCode(n))
	}
	return codes
}
