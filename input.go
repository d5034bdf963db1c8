package textfield

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned when a key name cannot be parsed.
var ErrUnknownKey = errors.New("textfield: unknown key")

// ErrUnknownModifier is returned when a modifier name cannot be parsed.
var ErrUnknownModifier = errors.New("textfield: unknown modifier")

// Key identifies a physical or logical key delivered by the input layer.
// Printable characters arrive as KeyChar with the character in KeyEvent.Char.
type Key int

const (
	KeyNone Key = iota
	KeyChar
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyShift
	KeyAlt
	KeyControl
	KeySuper
	KeyCount
)

// Modifiers is the set of modifier keys held while a key was pressed.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
	ModSuper
)

// Has reports whether every modifier in m is set.
func (m Modifiers) Has(mod Modifiers) bool {
	return mod != 0 && m&mod == mod
}

// KeyEvent is a single key press from the input layer.
type KeyEvent struct {
	Key  Key
	Char rune // Character for insertion; 0 when the key produces none
	Mods Modifiers
}

// CharEvent builds the event for a typed character.
func CharEvent(r rune, mods Modifiers) KeyEvent {
	return KeyEvent{Key: KeyChar, Char: r, Mods: mods}
}

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyChar:      "char",
	KeyTab:       "tab",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyDelete:    "delete",
	KeyBackspace: "backspace",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyShift:     "shift",
	KeyAlt:       "alt",
	KeyControl:   "control",
	KeySuper:     "super",
}

// String returns the key name as used in config files.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey parses a key name (case-insensitive). "command", "meta" and "cmd"
// are accepted for KeySuper, "ctrl" for KeyControl and "return" for KeyEnter.
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "command", "cmd", "meta":
		return KeySuper, nil
	case "ctrl":
		return KeyControl, nil
	case "return":
		return KeyEnter, nil
	}
	for k, s := range keyNames {
		if s == n {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// ParseModifier parses a single modifier name.
func ParseModifier(name string) (Modifiers, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shift":
		return ModShift, nil
	case "alt", "option":
		return ModAlt, nil
	case "ctrl", "control":
		return ModCtrl, nil
	case "super", "command", "cmd", "meta":
		return ModSuper, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
}
