package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/textfield"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(40, 10)
	t.Cleanup(s.Fini)
	return s
}

func cell(s tcell.Screen, x, y int) (rune, tcell.Color, tcell.Color) {
	r, _, style, _ := s.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return r, fg, bg
}

func TestPaintRectAndText(t *testing.T) {
	s := newScreen(t)
	dl := textfield.AcquireDrawList()
	defer textfield.ReleaseDrawList(dl)

	dl.AddRect(1, 1, 3, 1, textfield.RGBA(255, 0, 0, 255))
	dl.AddText(1, 1, "hi", 2, 1, textfield.ColorWhite)
	Paint(s, dl)

	red := tcell.NewRGBColor(255, 0, 0)
	r, fg, bg := cell(s, 1, 1)
	assert.Equal(t, 'h', r)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)
	assert.Equal(t, red, bg, "text keeps the background")

	r, _, _ = cell(s, 2, 1)
	assert.Equal(t, 'i', r)
	_, _, bg = cell(s, 3, 1)
	assert.Equal(t, red, bg)
	_, _, bg = cell(s, 4, 1)
	assert.NotEqual(t, red, bg)
}

func TestPaintClip(t *testing.T) {
	s := newScreen(t)
	dl := textfield.AcquireDrawList()
	defer textfield.ReleaseDrawList(dl)

	dl.PushClipRect(textfield.Rect{X: 2, Y: 0, W: 2, H: 1})
	dl.AddText(0, 0, "abcdef", 6, 1, textfield.ColorWhite)
	dl.PopClipRect()
	dl.AddText(0, 1, "xy", 2, 1, textfield.ColorWhite)
	Paint(s, dl)

	var row []rune
	for x := 0; x < 6; x++ {
		r, _, _ := cell(s, x, 0)
		row = append(row, r)
	}
	assert.Equal(t, []rune{' ', ' ', 'c', 'd', ' ', ' '}, row)

	r, _, _ := cell(s, 0, 1)
	assert.Equal(t, 'x', r, "pop restores unclipped drawing")
}

func TestPaintWideRunes(t *testing.T) {
	s := newScreen(t)
	dl := textfield.AcquireDrawList()
	defer textfield.ReleaseDrawList(dl)

	dl.AddText(0, 0, "世a", 3, 1, textfield.ColorWhite)
	Paint(s, dl)

	r, _, _ := cell(s, 0, 0)
	assert.Equal(t, '世', r)
	r, _, _ = cell(s, 2, 0)
	assert.Equal(t, 'a', r)
}

func TestBlend(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(1, 2, 3), blend(textfield.RGBA(1, 2, 3, 255), tcell.ColorDefault))

	half := textfield.RGBA(255, 255, 255, 128)
	assert.Equal(t, tcell.NewRGBColor(128, 128, 128), blend(half, tcell.ColorDefault), "default cell counts as black")
	assert.Equal(t, tcell.NewRGBColor(255, 128, 128), blend(half, tcell.NewRGBColor(255, 0, 0)))
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want textfield.KeyEvent
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), textfield.CharEvent('a', 0)},
		{tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), textfield.CharEvent('A', textfield.ModShift)},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), textfield.KeyEvent{Key: textfield.KeyEnter}},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), textfield.KeyEvent{Key: textfield.KeyBackspace}},
		{tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), textfield.KeyEvent{Key: textfield.KeyDelete}},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl), textfield.KeyEvent{Key: textfield.KeyLeft, Mods: textfield.ModCtrl}},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModMeta), textfield.KeyEvent{Key: textfield.KeyRight, Mods: textfield.ModSuper}},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModAlt), textfield.KeyEvent{Key: textfield.KeyUp, Mods: textfield.ModAlt}},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), textfield.KeyEvent{Key: textfield.KeyTab}},
	}
	for _, tt := range tests {
		got, ok := TranslateKey(tt.ev)
		assert.True(t, ok, tt.ev.Name())
		assert.Equal(t, tt.want, got, tt.ev.Name())
	}

	_, ok := TranslateKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	assert.False(t, ok)
}

func newTerminal(t *testing.T) (*Terminal, *textfield.Field) {
	t.Helper()
	f := textfield.New("cmd", textfield.Rect{X: 2, Y: 1, W: 20, H: 3}, textfield.WithMeasurer(Measurer()))
	f.SetFocus(true)
	return New(newScreen(t), f), f
}

func TestTerminalTyping(t *testing.T) {
	term, f := newTerminal(t)
	var submitted []string
	f.AddListener(func(v string) { submitted = append(submitted, v) })

	for _, r := range "look" {
		assert.True(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)))
	}
	assert.Equal(t, "look", f.Value())

	term.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.Equal(t, []string{"look"}, submitted)

	term.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, "look", f.Value())
}

func TestTerminalDraw(t *testing.T) {
	term, f := newTerminal(t)
	f.SetValue("hey")
	term.Draw()

	// text starts TextMargin cells in, centered in a three-row box
	for i, want := range "hey" {
		r, _, _ := cell(term.Screen(), 4+i, 2)
		assert.Equal(t, want, r)
	}
	r, _, _ := cell(term.Screen(), 2, 8)
	assert.Equal(t, 'C', r, "caption sits below the box")
}

func TestTerminalEscapeAndQuit(t *testing.T) {
	term, f := newTerminal(t)
	esc := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	assert.True(t, term.HandleEvent(esc))
	assert.False(t, f.IsFocused())
	assert.False(t, term.HandleEvent(esc), "escape with nothing focused quits")

	term2, _ := newTerminal(t)
	assert.False(t, term2.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestTerminalMouseFocus(t *testing.T) {
	term, f := newTerminal(t)
	f.KeepFocus(false)

	term.HandleEvent(tcell.NewEventMouse(30, 8, tcell.Button1, tcell.ModNone))
	assert.False(t, f.IsFocused())
	term.HandleEvent(tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone))
	assert.True(t, f.IsFocused())
}
