// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package xmodmap

// Modifier names one of the eight modifier classes the X server
// defines. The set is fixed; there is no ninth class.
type Modifier int

const (
	Shift Modifier = iota
	Lock
	Control
	Mod1
	Mod2
	Mod3
	Mod4
	Mod5
)

// Modifiers lists every modifier class in server order.
var Modifiers = []Modifier{Shift, Lock, Control, Mod1, Mod2, Mod3, Mod4, Mod5}

var modifierNames = map[string]Modifier{
	"shift":   Shift,
	"lock":    Lock,
	"control": Control,
	"mod1":    Mod1,
	"mod2":    Mod2,
	"mod3":    Mod3,
	"mod4":    Mod4,
	"mod5":    Mod5,
}

var modifierStrings = map[Modifier]string{}

func init() {
	for name, mod := range modifierNames {
		modifierStrings[mod] = name
	}
}

// ModifierFromName returns the Modifier for the name xmodmap prints
// ("shift", "lock", "control", "mod1".."mod5").
func ModifierFromName(name string) (Modifier, bool) {
	mod, ok := modifierNames[name]
	return mod, ok
}

func (m Modifier) String() string {
	if name, ok := modifierStrings[m]; ok {
		return name
	}
	return "unknown"
}
