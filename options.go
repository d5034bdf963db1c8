package textfield

// Option configures a Field.
type Option func(*Field)

// WithStyle sets the field style.
func WithStyle(style Style) Option {
	return func(f *Field) { f.style = style }
}

// WithMeasurer sets the text measurement strategy.
func WithMeasurer(m Measurer) Option {
	return func(f *Field) { f.SetMeasurer(m) }
}

// WithFilter sets an explicit input filter.
func WithFilter(filter InputFilter) Option {
	return func(f *Field) { f.SetInputFilter(filter) }
}

// WithAutoClear controls whether Submit empties the text (default true).
func WithAutoClear(v bool) Option {
	return func(f *Field) { f.state.SetAutoClear(v) }
}

// WithHistoryLimit caps how many submissions the history keeps.
// Zero, the default, keeps all of them.
func WithHistoryLimit(n int) Option {
	return func(f *Field) { f.state.SetHistoryLimit(n) }
}

// WithCaption overrides the caption drawn under the box.
func WithCaption(caption string) Option {
	return func(f *Field) { f.caption = caption }
}

// WithPassword masks the text.
func WithPassword(v bool) Option {
	return func(f *Field) { f.password = v }
}

// WithKeepFocus pins focus on the field.
func WithKeepFocus(v bool) Option {
	return func(f *Field) { f.KeepFocus(v) }
}

// WithDispatcher replaces the default key dispatcher.
func WithDispatcher(d *Dispatcher) Option {
	return func(f *Field) {
		if d != nil {
			f.dispatcher = d
		}
	}
}

// WithSubmitHandler registers a listener for submitted values.
func WithSubmitHandler(fn SubmitFunc) Option {
	return func(f *Field) { f.AddListener(fn) }
}

// WithValue sets the initial text.
func WithValue(text string) Option {
	return func(f *Field) { f.state.SetValue(text) }
}
