package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/textfield"
)

// TranslateKey converts a tcell key event. ok is false for keys a text field
// has no use for (function keys, Ctrl+letter shortcuts).
func TranslateKey(ev *tcell.EventKey) (textfield.KeyEvent, bool) {
	mods := translateMods(ev.Modifiers())
	switch ev.Key() {
	case tcell.KeyRune:
		return textfield.CharEvent(ev.Rune(), mods), true
	case tcell.KeyEnter:
		return textfield.KeyEvent{Key: textfield.KeyEnter, Mods: mods}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return textfield.KeyEvent{Key: textfield.KeyBackspace, Mods: mods}, true
	case tcell.KeyDelete:
		return textfield.KeyEvent{Key: textfield.KeyDelete, Mods: mods}, true
	case tcell.KeyLeft:
		return textfield.KeyEvent{Key: textfield.KeyLeft, Mods: mods}, true
	case tcell.KeyRight:
		return textfield.KeyEvent{Key: textfield.KeyRight, Mods: mods}, true
	case tcell.KeyUp:
		return textfield.KeyEvent{Key: textfield.KeyUp, Mods: mods}, true
	case tcell.KeyDown:
		return textfield.KeyEvent{Key: textfield.KeyDown, Mods: mods}, true
	case tcell.KeyHome:
		return textfield.KeyEvent{Key: textfield.KeyHome, Mods: mods}, true
	case tcell.KeyEnd:
		return textfield.KeyEvent{Key: textfield.KeyEnd, Mods: mods}, true
	case tcell.KeyTab, tcell.KeyBacktab:
		return textfield.KeyEvent{Key: textfield.KeyTab, Mods: mods}, true
	case tcell.KeyEscape:
		return textfield.KeyEvent{Key: textfield.KeyEscape, Mods: mods}, true
	}
	return textfield.KeyEvent{}, false
}

func translateMods(m tcell.ModMask) textfield.Modifiers {
	var out textfield.Modifiers
	if m&tcell.ModShift != 0 {
		out |= textfield.ModShift
	}
	if m&tcell.ModAlt != 0 {
		out |= textfield.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= textfield.ModCtrl
	}
	if m&tcell.ModMeta != 0 {
		out |= textfield.ModSuper
	}
	return out
}
