/*
Package textfield provides a single-line text input widget for immediate and
retained GUIs: an editing engine, a key dispatcher and a scrolling view
window, with declarative drawing that any backend can rasterize.

# Overview

A Field owns an EditState (rune buffer, cursor, input filter, submission
history) and a Dispatcher (key to command table). The input layer feeds key
events into the field; the field mutates its state and marks the view dirty.
On the next Draw the visible run of text is recomputed from a Measurer and
emitted into a DrawList as rectangles and text runs.

# Quick Start

	field := textfield.New("command", textfield.Rect{X: 20, Y: 20, W: 240, H: 20},
	    textfield.WithSubmitHandler(func(v string) { run(v) }),
	)
	field.SetFocus(true)

	// Input layer
	field.HandleKey(textfield.CharEvent('l', 0))
	field.HandleKey(textfield.KeyEvent{Key: textfield.KeyEnter})

	// Frame
	dl := textfield.AcquireDrawList()
	field.Draw(dl)
	renderer.Render(dl)
	textfield.ReleaseDrawList(dl)

# Keys

Default bindings:

	Enter              Submit the text, append it to the history
	Backspace, Delete  Delete the character before the cursor
	Left, Right        Move the cursor one character
	Super+Left/Right   Jump to the start or end of the line
	Up, Down           Walk the submission history
	Shift, Alt, Control, Tab, Super
	                   Ignored
	anything else      Insert the event's character (subject to the filter)

Bindings, the ignore set and the jump modifier can be changed on the
Dispatcher or in the [keys] table of a config file.

# Filters

FilterInteger accepts 0-9, FilterFloat adds '.', FilterPrintable accepts
printable ASCII plus CR and LF, FilterNone accepts everything. Filters apply
only to typed characters; SetValue stores text as given.

# Measurement

FixedGlyphMeasurer serves bitmap fonts with a fixed cell per glyph (wide runes
take two cells). FaceMeasurer wraps any golang.org/x/image/font.Face;
NewGoRegularMeasurer builds one from the bundled Go Regular font. The
measurer is chosen when the field is configured.

# Backends

backend/opengl renders DrawLists with OpenGL 4.1 from a glyph atlas (the
x/image 7x13 face by default; measure with Renderer.Measurer) and adapts GLFW
callbacks; backend/terminal paints DrawLists onto a tcell screen and translates
tcell key events.

# Debugging

SetVerbose(true) enables slog debug records for submits, history
navigation, ignored keys, focus changes and view recomputation.
*/
package textfield
