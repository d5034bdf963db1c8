package textfield

import "strings"

// Field is a single-line text input widget.
//
// A Field owns its EditState exclusively and is not safe for concurrent use:
// key events, clicks and Draw must all come from the UI thread, in order.
type Field struct {
	name    string
	caption string
	bounds  Rect
	style   Style

	state      *EditState
	dispatcher *Dispatcher
	measurer   Measurer

	focused     bool
	keepFocus   bool
	interactive bool
	password    bool
	filterSet   bool

	view      ViewWindow
	listeners []SubmitFunc
}

// New creates a field named name occupying bounds. The caption defaults to
// the upper-cased name and the measurer to an 8x8 bitmap font, which also
// selects FilterPrintable unless a filter is given explicitly.
func New(name string, bounds Rect, opts ...Option) *Field {
	f := &Field{
		name:        name,
		caption:     strings.ToUpper(name),
		bounds:      bounds,
		style:       DefaultStyle(),
		state:       NewEditState(),
		dispatcher:  NewDispatcher(),
		interactive: true,
	}
	f.state.SetSubmitHandler(f.broadcast)

	for _, opt := range opts {
		opt(f)
	}
	if f.measurer == nil {
		f.SetMeasurer(NewFixedGlyphMeasurer(8, 8, 1))
	}
	return f
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// State exposes the underlying edit state.
func (f *Field) State() *EditState {
	return f.state
}

// Dispatcher returns the key dispatcher, for rebinding keys.
func (f *Field) Dispatcher() *Dispatcher {
	return f.dispatcher
}

// Bounds returns the box rectangle (caption excluded).
func (f *Field) Bounds() Rect {
	return f.bounds
}

// SetPosition moves the field.
func (f *Field) SetPosition(x, y float32) {
	f.bounds.X, f.bounds.Y = x, y
}

// SetSize resizes the field and invalidates the view.
func (f *Field) SetSize(w, h float32) {
	f.bounds.W, f.bounds.H = w, h
	f.state.MarkDirty()
}

// Style returns the current style.
func (f *Field) Style() Style {
	return f.style
}

// SetStyle replaces the style.
func (f *Field) SetStyle(s Style) {
	f.style = s
}

// SetColor sets the text color.
func (f *Field) SetColor(c uint32) {
	f.style.TextColor = c
}

// SetColorCursor sets the caret color.
func (f *Field) SetColorCursor(c uint32) {
	f.style.CursorColor = c
}

// Caption returns the label drawn under the box.
func (f *Field) Caption() string {
	return f.caption
}

// SetCaption sets the label drawn under the box. Empty hides it.
func (f *Field) SetCaption(s string) {
	f.caption = s
}

// Measurer returns the active text measurer.
func (f *Field) Measurer() Measurer {
	return f.measurer
}

// SetMeasurer installs the text measurement strategy. Unless a filter was
// set explicitly, a fixed-glyph measurer restricts input to FilterPrintable
// and a scalable one lifts that restriction again.
func (f *Field) SetMeasurer(m Measurer) {
	if m == nil {
		return
	}
	f.measurer = m
	if !f.filterSet {
		switch m.Kind() {
		case MeasurerFixedGlyph:
			if f.state.Filter() == FilterNone {
				f.state.SetFilter(FilterPrintable)
			}
		case MeasurerScalable:
			if f.state.Filter() == FilterPrintable {
				f.state.SetFilter(FilterNone)
			}
		}
	}
	f.state.MarkDirty()
}

// SetValue replaces the text, bypassing the input filter.
func (f *Field) SetValue(text string) {
	f.state.SetValue(text)
}

// SetText is an alias of SetValue.
func (f *Field) SetText(text string) {
	f.SetValue(text)
}

// Value returns the current text.
func (f *Field) Value() string {
	return f.state.Text()
}

// Text is an alias of Value.
func (f *Field) Text() string {
	return f.state.Text()
}

// Index returns the cursor rune index.
func (f *Field) Index() int {
	return f.state.Cursor()
}

// Clear empties the text.
func (f *Field) Clear() {
	f.state.Clear()
}

// SetAutoClear controls whether Submit empties the text.
func (f *Field) SetAutoClear(v bool) {
	f.state.SetAutoClear(v)
}

// IsAutoClear reports whether Submit empties the text.
func (f *Field) IsAutoClear() bool {
	return f.state.AutoClear()
}

// SetInputFilter restricts interactive insertion. An explicit filter is kept
// when the measurer changes.
func (f *Field) SetInputFilter(filter InputFilter) {
	f.state.SetFilter(filter)
	f.filterSet = true
}

// InputFilter returns the active filter.
func (f *Field) InputFilter() InputFilter {
	return f.state.Filter()
}

// SetPasswordMode draws every rune as '*'. The stored text is unchanged.
func (f *Field) SetPasswordMode(v bool) {
	f.password = v
	f.state.MarkDirty()
}

// IsPasswordMode reports whether the text is masked.
func (f *Field) IsPasswordMode() bool {
	return f.password
}

// SetFocus gives or removes keyboard focus.
func (f *Field) SetFocus(v bool) {
	if f.focused != v {
		fieldLogger.Debug("focus", "field", f.name, "focused", v)
	}
	f.focused = v
	f.state.MarkDirty()
}

// IsFocused reports whether the field has keyboard focus.
func (f *Field) IsFocused() bool {
	return f.focused
}

// KeepFocus pins focus: clicks outside no longer unfocus the field.
// Enabling it also focuses the field.
func (f *Field) KeepFocus(v bool) {
	f.keepFocus = v
	if v {
		f.SetFocus(true)
	}
}

// IsKeepFocus reports whether focus is pinned.
func (f *Field) IsKeepFocus() bool {
	return f.keepFocus
}

// SetUserInteraction is set by the parent to enable or disable key input.
func (f *Field) SetUserInteraction(v bool) {
	f.interactive = v
}

// Active reports whether key events are applied.
func (f *Field) Active() bool {
	return f.focused && f.interactive
}

// AddListener registers fn to receive every submitted value.
func (f *Field) AddListener(fn SubmitFunc) {
	if fn != nil {
		f.listeners = append(f.listeners, fn)
	}
}

// Submit commits the current text as if Enter had been pressed.
// It works regardless of focus.
func (f *Field) Submit() string {
	return f.state.Submit()
}

// HistoryEntries returns the submitted values followed by the draft.
func (f *Field) HistoryEntries() []string {
	return f.state.HistoryEntries()
}

// HandleKey feeds one key event through the dispatcher.
// It reports whether an edit command ran.
func (f *Field) HandleKey(ev KeyEvent) bool {
	_, ok := f.dispatcher.Handle(f.state, f, ev)
	return ok
}

// HandleClick focuses the field on a press inside its box and unfocuses it
// on a press elsewhere unless focus is pinned.
func (f *Field) HandleClick(p Vec2) {
	if f.bounds.Contains(p) {
		f.SetFocus(true)
		return
	}
	if !f.keepFocus && f.focused {
		f.SetFocus(false)
	}
}

// View returns the visible window, recomputing it if an edit happened since
// the last call.
func (f *Field) View() ViewWindow {
	if f.state.Dirty() {
		f.refresh()
	}
	return f.view
}

func (f *Field) availableWidth() float32 {
	return max(0, f.bounds.W-TextMargin*2)
}

func (f *Field) refresh() {
	text := f.state.buffer
	if f.password {
		text = []rune(strings.Repeat("*", len(text)))
	}
	f.view = ComputeView(text, f.state.Cursor(), f.availableWidth(), f.measurer)
	f.state.markClean()
	if verbose() {
		fieldLogger.Debug("view recomputed",
			"field", f.name,
			"start", f.view.Start,
			"cursorX", f.view.CursorX,
			"scrollX", f.view.ScrollX)
	}
}

func (f *Field) broadcast(value string) {
	for _, fn := range f.listeners {
		fn(value)
	}
}

// Draw emits the field's primitives: background, caret (when focused), the
// visible text run, four one-pixel borders and the caption below the box.
func (f *Field) Draw(dl *DrawList) {
	v := f.View()
	b := f.bounds
	avail := f.availableWidth()
	lh := f.measurer.LineHeight()

	dl.AddRect(b.X, b.Y, b.W, b.H, f.style.BackgroundColor)

	dl.PushClipRect(Rect{X: b.X + TextMargin, Y: b.Y, W: avail, H: b.H})
	if f.focused {
		cx := min(v.Caret(), max(0, avail-CursorWidth))
		dl.AddRect(b.X+TextMargin+cx, b.Y, CursorWidth, b.H, f.style.CursorColor)
	}
	dl.AddText(b.X+TextMargin-v.ScrollX, b.Y+(b.H-lh)/2, v.Text, v.TextWidth, lh, f.style.TextColor)
	dl.PopClipRect()

	border := f.style.BorderColor
	if f.focused {
		border = f.style.ActiveColor
	}
	dl.AddRect(b.X, b.Y, b.W, 1, border)
	dl.AddRect(b.X, b.Y+b.H-1, b.W, 1, border)
	dl.AddRect(b.X-1, b.Y, 1, b.H, border)
	dl.AddRect(b.X+b.W, b.Y, 1, b.H, border)

	if f.caption != "" {
		dl.AddText(b.X, b.Y+b.H+f.style.CaptionGap, f.caption, measure(f.measurer, f.caption), lh, f.style.CaptionColor)
	}
}
