package textfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/textfield"
)

type activity bool

func (a activity) Active() bool { return bool(a) }

func key(k textfield.Key, mods textfield.Modifiers) textfield.KeyEvent {
	return textfield.KeyEvent{Key: k, Mods: mods}
}

func TestDispatcherDefaults(t *testing.T) {
	d := textfield.NewDispatcher()
	tests := []struct {
		key  textfield.Key
		want textfield.Command
	}{
		{textfield.KeyEnter, textfield.CmdSubmit},
		{textfield.KeyDelete, textfield.CmdDeleteBackward},
		{textfield.KeyBackspace, textfield.CmdDeleteBackward},
		{textfield.KeyLeft, textfield.CmdMoveLeft},
		{textfield.KeyRight, textfield.CmdMoveRight},
		{textfield.KeyUp, textfield.CmdHistoryUp},
		{textfield.KeyDown, textfield.CmdHistoryDown},
		{textfield.KeyChar, textfield.CmdInsert},
		{textfield.KeyHome, textfield.CmdInsert},
	}
	for _, tt := range tests {
		cmd, ok := d.Resolve(tt.key)
		assert.True(t, ok, tt.key.String())
		assert.Equal(t, tt.want, cmd, tt.key.String())
	}

	for _, k := range []textfield.Key{
		textfield.KeyShift, textfield.KeyAlt, textfield.KeyControl, textfield.KeyTab, textfield.KeySuper,
	} {
		assert.True(t, d.IsIgnored(k), k.String())
		_, ok := d.Resolve(k)
		assert.False(t, ok, k.String())
	}
	assert.Equal(t, textfield.ModSuper, d.JumpModifier())
}

func TestDispatcherHandleTyping(t *testing.T) {
	d := textfield.NewDispatcher()
	s := textfield.NewEditState()

	for _, r := range "hi!" {
		cmd, ok := d.Handle(s, activity(true), textfield.CharEvent(r, 0))
		require.True(t, ok)
		assert.Equal(t, textfield.CmdInsert, cmd)
	}
	assert.Equal(t, "hi!", s.Text())

	d.Handle(s, activity(true), key(textfield.KeyBackspace, 0))
	assert.Equal(t, "hi", s.Text())

	var submitted string
	s.SetSubmitHandler(func(v string) { submitted = v })
	cmd, ok := d.Handle(s, nil, key(textfield.KeyEnter, 0))
	assert.True(t, ok, "nil target counts as active")
	assert.Equal(t, textfield.CmdSubmit, cmd)
	assert.Equal(t, "hi", submitted)
	assert.Empty(t, s.Text())
}

func TestDispatcherInactiveTarget(t *testing.T) {
	d := textfield.NewDispatcher()
	s := textfield.NewEditState()
	s.SetValue("abc")

	_, ok := d.Handle(s, activity(false), textfield.CharEvent('x', 0))
	assert.False(t, ok)
	_, ok = d.Handle(s, activity(false), key(textfield.KeyEnter, 0))
	assert.False(t, ok)
	assert.Equal(t, "abc", s.Text())
	assert.Equal(t, []string{""}, s.HistoryEntries())
}

func TestDispatcherIgnoreTakesPrecedence(t *testing.T) {
	d := textfield.NewDispatcher()
	d.Bind(textfield.KeyTab, textfield.CmdSubmit)
	s := textfield.NewEditState()
	s.SetValue("abc")

	_, ok := d.Handle(s, nil, textfield.KeyEvent{Key: textfield.KeyTab, Char: '\t'})
	assert.False(t, ok)
	assert.Equal(t, "abc", s.Text())

	d.Unignore(textfield.KeyTab)
	cmd, ok := d.Handle(s, nil, key(textfield.KeyTab, 0))
	assert.True(t, ok)
	assert.Equal(t, textfield.CmdSubmit, cmd)
}

func TestDispatcherJumpModifier(t *testing.T) {
	d := textfield.NewDispatcher()
	s := textfield.NewEditState()
	s.SetValue("hello")

	d.Handle(s, nil, key(textfield.KeyLeft, textfield.ModSuper))
	assert.Equal(t, 0, s.Cursor())
	d.Handle(s, nil, key(textfield.KeyRight, 0))
	assert.Equal(t, 1, s.Cursor())
	d.Handle(s, nil, key(textfield.KeyRight, textfield.ModSuper|textfield.ModShift))
	assert.Equal(t, 5, s.Cursor())

	d.SetJumpModifier(textfield.ModCtrl)
	d.Handle(s, nil, key(textfield.KeyLeft, textfield.ModSuper))
	assert.Equal(t, 4, s.Cursor(), "super no longer jumps")
	d.Handle(s, nil, key(textfield.KeyLeft, textfield.ModCtrl))
	assert.Equal(t, 0, s.Cursor())
}

func TestDispatcherRebind(t *testing.T) {
	d := textfield.NewDispatcher()
	d.Bind(textfield.KeyHome, textfield.CmdMoveLeft)
	d.Unbind(textfield.KeyUp)
	d.ClearIgnored()

	cmd, _ := d.Resolve(textfield.KeyHome)
	assert.Equal(t, textfield.CmdMoveLeft, cmd)
	cmd, _ = d.Resolve(textfield.KeyUp)
	assert.Equal(t, textfield.CmdInsert, cmd)
	assert.False(t, d.IsIgnored(textfield.KeyShift))
}

func TestDispatcherMarksDirty(t *testing.T) {
	f := textfield.New("t", textfield.Rect{W: 100, H: 20})
	f.View()
	require.False(t, f.State().Dirty())

	// A no-op edit still invalidates the view.
	textfield.NewDispatcher().Handle(f.State(), nil, key(textfield.KeyLeft, 0))
	assert.True(t, f.State().Dirty())
}

func TestParseCommand(t *testing.T) {
	for c := textfield.CmdInsert; c <= textfield.CmdHistoryDown; c++ {
		got, err := textfield.ParseCommand(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := textfield.ParseCommand("forward_delete")
	assert.ErrorIs(t, err, textfield.ErrUnknownCommand)
}

func TestParseKey(t *testing.T) {
	for name, want := range map[string]textfield.Key{
		"Enter":   textfield.KeyEnter,
		"return":  textfield.KeyEnter,
		"cmd":     textfield.KeySuper,
		"command": textfield.KeySuper,
		"ctrl":    textfield.KeyControl,
		"home":    textfield.KeyHome,
	} {
		got, err := textfield.ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	for k := textfield.KeyNone; k < textfield.KeyCount; k++ {
		got, err := textfield.ParseKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := textfield.ParseKey("f13")
	assert.ErrorIs(t, err, textfield.ErrUnknownKey)
}

func TestParseModifier(t *testing.T) {
	m, err := textfield.ParseModifier("Meta")
	require.NoError(t, err)
	assert.Equal(t, textfield.ModSuper, m)

	m, err = textfield.ParseModifier("control")
	require.NoError(t, err)
	assert.Equal(t, textfield.ModCtrl, m)

	_, err = textfield.ParseModifier("hyper")
	assert.ErrorIs(t, err, textfield.ErrUnknownModifier)
}

func TestModifiersHas(t *testing.T) {
	m := textfield.ModShift | textfield.ModCtrl
	assert.True(t, m.Has(textfield.ModCtrl))
	assert.False(t, m.Has(textfield.ModSuper))
	assert.False(t, m.Has(0), "empty modifier never matches")
}
