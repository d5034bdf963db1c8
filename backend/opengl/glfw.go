package opengl

import (
	"log/slog"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/textfield"
)

var inputLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: textfield.LogLevel()}))

// GLFWInputAdapter forwards GLFW keyboard and mouse callbacks to text fields.
// GLFW invokes callbacks from PollEvents on the main thread, so fields see
// events in arrival order without locking.
type GLFWInputAdapter struct {
	window *glfw.Window
	fields []*textfield.Field
}

// NewGLFWInputAdapter installs callbacks on window that drive fields.
func NewGLFWInputAdapter(window *glfw.Window, fields ...*textfield.Field) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		fields: fields,
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharModsCallback(adapter.charModsCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)

	return adapter
}

// Add registers another field.
func (a *GLFWInputAdapter) Add(f *textfield.Field) {
	a.fields = append(a.fields, f)
}

// dispatch sends ev to every field that currently accepts input.
func (a *GLFWInputAdapter) dispatch(ev textfield.KeyEvent) {
	for _, f := range a.fields {
		if f.Active() {
			f.HandleKey(ev)
		}
	}
}

// keyCallback handles non-printable keys. Printable keys arrive through the
// char callback and map to KeyNone here, so they are not inserted twice.
func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	k := glfwKeyToKey(key)
	if k == textfield.KeyNone {
		return
	}
	a.dispatch(textfield.KeyEvent{Key: k, Mods: glfwMods(mods)})
}

func (a *GLFWInputAdapter) charModsCallback(w *glfw.Window, char rune, mods glfw.ModifierKey) {
	a.dispatch(textfield.CharEvent(char, glfwMods(mods)))
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	x, y := w.GetCursorPos()
	p := textfield.Vec2{X: float32(x), Y: float32(y)}
	inputLogger.Debug("click", "x", p.X, "y", p.Y)
	for _, f := range a.fields {
		f.HandleClick(p)
	}
}

// glfwMods converts GLFW modifier bits.
func glfwMods(mods glfw.ModifierKey) textfield.Modifiers {
	var m textfield.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= textfield.ModShift
	}
	if mods&glfw.ModAlt != 0 {
		m |= textfield.ModAlt
	}
	if mods&glfw.ModControl != 0 {
		m |= textfield.ModCtrl
	}
	if mods&glfw.ModSuper != 0 {
		m |= textfield.ModSuper
	}
	return m
}

// glfwKeyToKey maps GLFW keys to text field keys.
func glfwKeyToKey(key glfw.Key) textfield.Key {
	switch key {
	case glfw.KeyTab:
		return textfield.KeyTab
	case glfw.KeyLeft:
		return textfield.KeyLeft
	case glfw.KeyRight:
		return textfield.KeyRight
	case glfw.KeyUp:
		return textfield.KeyUp
	case glfw.KeyDown:
		return textfield.KeyDown
	case glfw.KeyHome:
		return textfield.KeyHome
	case glfw.KeyEnd:
		return textfield.KeyEnd
	case glfw.KeyDelete:
		return textfield.KeyDelete
	case glfw.KeyBackspace:
		return textfield.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return textfield.KeyEnter
	case glfw.KeyEscape:
		return textfield.KeyEscape
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return textfield.KeyShift
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return textfield.KeyAlt
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return textfield.KeyControl
	case glfw.KeyLeftSuper, glfw.KeyRightSuper:
		return textfield.KeySuper
	default:
		return textfield.KeyNone
	}
}
