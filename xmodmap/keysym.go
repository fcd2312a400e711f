// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package xmodmap

// KeySym names a logical key. The vocabulary is closed: it covers the
// printable ASCII range, the function keys, the editing/motion keys,
// and the modifier keys that show up in modifier bindings. Names in a
// dump that fall outside the vocabulary are dropped during parsing and
// never reach a caller.
type KeySym int

const (
	// SymNone is xmodmap's NoSymbol placeholder. It is a real member
	// of the vocabulary: a keycode line may use it to pad a shift
	// level, and the position must be preserved.
	SymNone KeySym = iota

	Sym_a
	Sym_b
	Sym_c
	Sym_d
	Sym_e
	Sym_f
	Sym_g
	Sym_h
	Sym_i
	Sym_j
	Sym_k
	Sym_l
	Sym_m
	Sym_n
	Sym_o
	Sym_p
	Sym_q
	Sym_r
	Sym_s
	Sym_t
	Sym_u
	Sym_v
	Sym_w
	Sym_x
	Sym_y
	Sym_z

	Sym_A
	Sym_B
	Sym_C
	Sym_D
	Sym_E
	Sym_F
	Sym_G
	Sym_H
	Sym_I
	Sym_J
	Sym_K
	Sym_L
	Sym_M
	Sym_N
	Sym_O
	Sym_P
	Sym_Q
	Sym_R
	Sym_S
	Sym_T
	Sym_U
	Sym_V
	Sym_W
	Sym_X
	Sym_Y
	Sym_Z

	Sym_0
	Sym_1
	Sym_2
	Sym_3
	Sym_4
	Sym_5
	Sym_6
	Sym_7
	Sym_8
	Sym_9

	SymExclam
	SymAt
	SymNumberSign
	SymDollar
	SymPercent
	SymAsciiCircum
	SymAmpersand
	SymAsterisk
	SymParenLeft
	SymParenRight
	SymMinus
	SymUnderscore
	SymPlus
	SymEqual
	SymBracketLeft
	SymBracketRight
	SymBraceLeft
	SymBraceRight
	SymSemicolon
	SymColon
	SymApostrophe
	SymQuoteDbl
	SymBackslash
	SymBar
	SymComma
	SymLess
	SymPeriod
	SymGreater
	SymSlash
	SymQuestion
	SymGrave
	SymAsciiTilde

	SymSpace
	SymReturn
	SymBackSpace
	SymTab
	SymEscape
	SymDelete
	SymInsert
	SymHome
	SymEnd
	SymPrior
	SymNext
	SymLeft
	SymRight
	SymUp
	SymDown

	SymF1
	SymF2
	SymF3
	SymF4
	SymF5
	SymF6
	SymF7
	SymF8
	SymF9
	SymF10
	SymF11
	SymF12

	SymShift_L
	SymShift_R
	SymControl_L
	SymControl_R
	SymCaps_Lock
	SymShift_Lock
	SymAlt_L
	SymAlt_R
	SymMeta_L
	SymMeta_R
	SymSuper_L
	SymSuper_R
	SymHyper_L
	SymHyper_R
	SymNum_Lock
	SymISO_Level3_Shift
	SymMode_switch
)

// keySymNames maps the names xmodmap prints to their KeySym. This is
// the single source of truth for the vocabulary; the inverse table for
// String is derived from it at init.
var keySymNames = map[string]KeySym{
	"NoSymbol": SymNone,

	"a": Sym_a, "b": Sym_b, "c": Sym_c, "d": Sym_d, "e": Sym_e,
	"f": Sym_f, "g": Sym_g, "h": Sym_h, "i": Sym_i, "j": Sym_j,
	"k": Sym_k, "l": Sym_l, "m": Sym_m, "n": Sym_n, "o": Sym_o,
	"p": Sym_p, "q": Sym_q, "r": Sym_r, "s": Sym_s, "t": Sym_t,
	"u": Sym_u, "v": Sym_v, "w": Sym_w, "x": Sym_x, "y": Sym_y,
	"z": Sym_z,

	"A": Sym_A, "B": Sym_B, "C": Sym_C, "D": Sym_D, "E": Sym_E,
	"F": Sym_F, "G": Sym_G, "H": Sym_H, "I": Sym_I, "J": Sym_J,
	"K": Sym_K, "L": Sym_L, "M": Sym_M, "N": Sym_N, "O": Sym_O,
	"P": Sym_P, "Q": Sym_Q, "R": Sym_R, "S": Sym_S, "T": Sym_T,
	"U": Sym_U, "V": Sym_V, "W": Sym_W, "X": Sym_X, "Y": Sym_Y,
	"Z": Sym_Z,

	"0": Sym_0, "1": Sym_1, "2": Sym_2, "3": Sym_3, "4": Sym_4,
	"5": Sym_5, "6": Sym_6, "7": Sym_7, "8": Sym_8, "9": Sym_9,

	"exclam":       SymExclam,
	"at":           SymAt,
	"numbersign":   SymNumberSign,
	"dollar":       SymDollar,
	"percent":      SymPercent,
	"asciicircum":  SymAsciiCircum,
	"ampersand":    SymAmpersand,
	"asterisk":     SymAsterisk,
	"parenleft":    SymParenLeft,
	"parenright":   SymParenRight,
	"minus":        SymMinus,
	"underscore":   SymUnderscore,
	"plus":         SymPlus,
	"equal":        SymEqual,
	"bracketleft":  SymBracketLeft,
	"bracketright": SymBracketRight,
	"braceleft":    SymBraceLeft,
	"braceright":   SymBraceRight,
	"semicolon":    SymSemicolon,
	"colon":        SymColon,
	"apostrophe":   SymApostrophe,
	"quotedbl":     SymQuoteDbl,
	"backslash":    SymBackslash,
	"bar":          SymBar,
	"comma":        SymComma,
	"less":         SymLess,
	"period":       SymPeriod,
	"greater":      SymGreater,
	"slash":        SymSlash,
	"question":     SymQuestion,
	"grave":        SymGrave,
	"asciitilde":   SymAsciiTilde,

	"space":     SymSpace,
	"Return":    SymReturn,
	"BackSpace": SymBackSpace,
	"Tab":       SymTab,
	"Escape":    SymEscape,
	"Delete":    SymDelete,
	"Insert":    SymInsert,
	"Home":      SymHome,
	"End":       SymEnd,
	"Prior":     SymPrior,
	"Next":      SymNext,
	"Left":      SymLeft,
	"Right":     SymRight,
	"Up":        SymUp,
	"Down":      SymDown,

	"F1": SymF1, "F2": SymF2, "F3": SymF3, "F4": SymF4,
	"F5": SymF5, "F6": SymF6, "F7": SymF7, "F8": SymF8,
	"F9": SymF9, "F10": SymF10, "F11": SymF11, "F12": SymF12,

	"Shift_L":          SymShift_L,
	"Shift_R":          SymShift_R,
	"Control_L":        SymControl_L,
	"Control_R":        SymControl_R,
	"Caps_Lock":        SymCaps_Lock,
	"Shift_Lock":       SymShift_Lock,
	"Alt_L":            SymAlt_L,
	"Alt_R":            SymAlt_R,
	"Meta_L":           SymMeta_L,
	"Meta_R":           SymMeta_R,
	"Super_L":          SymSuper_L,
	"Super_R":          SymSuper_R,
	"Hyper_L":          SymHyper_L,
	"Hyper_R":          SymHyper_R,
	"Num_Lock":         SymNum_Lock,
	"ISO_Level3_Shift": SymISO_Level3_Shift,
	"Mode_switch":      SymMode_switch,
}

var keySymStrings = map[KeySym]string{}

func init() {
	for name, sym := range keySymNames {
		keySymStrings[sym] = name
	}
}

// KeySymFromName returns the KeySym for an xmodmap name. The second
// return is false when the name is outside the vocabulary.
func KeySymFromName(name string) (KeySym, bool) {
	sym, ok := keySymNames[name]
	return sym, ok
}

// String returns the xmodmap name for the keysym.
func (s KeySym) String() string {
	if name, ok := keySymStrings[s]; ok {
		return name
	}
	return "NoSymbol"
}
