// Package terminal runs text fields on a tcell screen: it translates tcell
// key and mouse events and paints draw lists into cells.
package terminal

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/textfield"
)

var termLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: textfield.LogLevel()}))

// Measurer returns the measurer for terminal cells: one unit per column,
// two for wide runes.
func Measurer() *textfield.FixedGlyphMeasurer {
	return textfield.NewFixedGlyphMeasurer(1, 1, 1)
}

// Terminal owns a tcell screen and the fields drawn on it.
// All methods must be called from the goroutine running Run.
type Terminal struct {
	screen tcell.Screen
	fields []*textfield.Field
	bg     tcell.Style
}

// New wraps an initialized screen.
func New(screen tcell.Screen, fields ...*textfield.Field) *Terminal {
	return &Terminal{
		screen: screen,
		fields: fields,
		bg:     tcell.StyleDefault,
	}
}

// Open creates and initializes the default terminal screen.
func Open(fields ...*textfield.Field) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	return New(screen, fields...), nil
}

// Screen returns the wrapped screen.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Add registers another field.
func (t *Terminal) Add(f *textfield.Field) {
	t.fields = append(t.fields, f)
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// HandleEvent applies one tcell event. It returns false when the user asked
// to quit (Ctrl+C, or Escape with no focused field).
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyEscape && !t.anyFocused() {
			return false
		}
		kev, ok := TranslateKey(ev)
		if !ok {
			termLogger.Debug("key dropped", "key", ev.Name())
			return true
		}
		for _, f := range t.fields {
			if f.Active() {
				f.HandleKey(kev)
			}
		}
		if kev.Key == textfield.KeyEscape {
			for _, f := range t.fields {
				if !f.IsKeepFocus() {
					f.SetFocus(false)
				}
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			p := textfield.Vec2{X: float32(x), Y: float32(y)}
			for _, f := range t.fields {
				f.HandleClick(p)
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) anyFocused() bool {
	for _, f := range t.fields {
		if f.IsFocused() {
			return true
		}
	}
	return false
}

// Draw repaints every field and shows the screen.
func (t *Terminal) Draw() {
	t.screen.SetStyle(t.bg)
	t.screen.Clear()
	dl := textfield.AcquireDrawList()
	for _, f := range t.fields {
		f.Draw(dl)
	}
	Paint(t.screen, dl)
	textfield.ReleaseDrawList(dl)
	t.screen.Show()
}

// Run draws and handles events until the user quits.
func (t *Terminal) Run() {
	t.Draw()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if !t.HandleEvent(ev) {
			return
		}
		t.Draw()
	}
}
