package textfield

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned when a command name cannot be parsed.
var ErrUnknownCommand = errors.New("textfield: unknown command")

// Command is one of the fixed edit operations a key can trigger.
type Command uint8

const (
	CmdInsert Command = iota // Insert the event's character (fallback)
	CmdSubmit
	CmdDeleteBackward
	CmdMoveLeft
	CmdMoveRight
	CmdHistoryUp
	CmdHistoryDown
)

var commandNames = [...]string{
	CmdInsert:         "insert",
	CmdSubmit:         "submit",
	CmdDeleteBackward: "delete_backward",
	CmdMoveLeft:       "move_left",
	CmdMoveRight:      "move_right",
	CmdHistoryUp:      "history_up",
	CmdHistoryDown:    "history_down",
}

// String returns the command name as used in config files.
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand parses a command name.
func ParseCommand(name string) (Command, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for c, s := range commandNames {
		if s == n {
			return Command(c), nil
		}
	}
	return CmdInsert, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Activity is the focus query a Dispatcher consults before editing.
type Activity interface {
	// Active reports whether the target currently accepts key input.
	Active() bool
}

// Dispatcher maps keys to commands and executes them against an EditState.
//
// Keys in the ignore set are discarded before the table is consulted. Keys
// with no binding fall back to CmdInsert. Move commands jump to the start or
// end of the line when the jump modifier is held.
type Dispatcher struct {
	bindings map[Key]Command
	ignore   map[Key]struct{}
	jump     Modifiers
}

// NewDispatcher creates a dispatcher with the default bindings:
// Enter submits, Delete and Backspace delete backward, Left/Right move,
// Up/Down walk the history. Shift, Alt, Control, Tab and Super are ignored
// and Super (command) is the jump modifier.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		bindings: make(map[Key]Command, 8),
		ignore:   make(map[Key]struct{}, 8),
		jump:     ModSuper,
	}
	d.Bind(KeyEnter, CmdSubmit)
	d.Bind(KeyDelete, CmdDeleteBackward)
	d.Bind(KeyBackspace, CmdDeleteBackward)
	d.Bind(KeyLeft, CmdMoveLeft)
	d.Bind(KeyRight, CmdMoveRight)
	d.Bind(KeyUp, CmdHistoryUp)
	d.Bind(KeyDown, CmdHistoryDown)
	for _, k := range []Key{KeyShift, KeyAlt, KeyControl, KeyTab, KeySuper} {
		d.Ignore(k)
	}
	return d
}

// Bind maps key to cmd, replacing any previous binding.
func (d *Dispatcher) Bind(key Key, cmd Command) {
	d.bindings[key] = cmd
}

// Unbind removes the binding for key so it falls back to CmdInsert.
func (d *Dispatcher) Unbind(key Key) {
	delete(d.bindings, key)
}

// Ignore adds key to the ignore set.
func (d *Dispatcher) Ignore(key Key) {
	d.ignore[key] = struct{}{}
}

// Unignore removes key from the ignore set.
func (d *Dispatcher) Unignore(key Key) {
	delete(d.ignore, key)
}

// ClearIgnored empties the ignore set.
func (d *Dispatcher) ClearIgnored() {
	clear(d.ignore)
}

// IsIgnored reports whether key is in the ignore set.
func (d *Dispatcher) IsIgnored(key Key) bool {
	_, ok := d.ignore[key]
	return ok
}

// SetJumpModifier sets the modifier that turns moves into start/end jumps.
func (d *Dispatcher) SetJumpModifier(m Modifiers) {
	d.jump = m
}

// JumpModifier returns the current jump modifier.
func (d *Dispatcher) JumpModifier() Modifiers {
	return d.jump
}

// Resolve returns the command for key. ok is false for ignored keys.
func (d *Dispatcher) Resolve(key Key) (cmd Command, ok bool) {
	if d.IsIgnored(key) {
		return CmdInsert, false
	}
	if cmd, found := d.bindings[key]; found {
		return cmd, true
	}
	return CmdInsert, true
}

// Handle applies ev to state if target is active and the key is not ignored.
// It returns the executed command and whether anything was executed.
// A nil target counts as active.
func (d *Dispatcher) Handle(state *EditState, target Activity, ev KeyEvent) (Command, bool) {
	if target != nil && !target.Active() {
		return CmdInsert, false
	}
	cmd, ok := d.Resolve(ev.Key)
	if !ok {
		fieldLogger.Debug("key ignored", "key", ev.Key)
		return cmd, false
	}
	d.Execute(state, cmd, ev)
	return cmd, true
}

// Execute runs cmd against state using the character and modifiers of ev.
func (d *Dispatcher) Execute(state *EditState, cmd Command, ev KeyEvent) {
	wholeLine := ev.Mods.Has(d.jump)
	switch cmd {
	case CmdSubmit:
		state.Submit()
	case CmdDeleteBackward:
		state.DeleteBackward()
	case CmdMoveLeft:
		state.MoveLeft(wholeLine)
	case CmdMoveRight:
		state.MoveRight(wholeLine)
	case CmdHistoryUp:
		state.HistoryUp()
	case CmdHistoryDown:
		state.HistoryDown()
	default:
		state.InsertChar(ev.Char)
	}
	state.MarkDirty()
}
