package textfield

import "unicode/utf8"

// SubmitFunc receives the committed value when a field is submitted.
type SubmitFunc func(value string)

// EditState owns the text buffer, cursor, input filter and submission history
// of one text field. All methods are synchronous state transitions; none fail.
//
// The cursor is a rune index in [0, len(buffer)] and is clamped after every
// mutation. Every buffer or cursor change sets the dirty flag, which the view
// recomputation clears.
type EditState struct {
	buffer    []rune
	cursor    int
	filter    InputFilter
	history   *History
	autoClear bool
	dirty     bool
	onSubmit  SubmitFunc
}

// NewEditState creates an empty, dirty state with auto-clear enabled and an
// unbounded history.
func NewEditState() *EditState {
	return &EditState{
		buffer:    make([]rune, 0, 32),
		history:   NewHistory(0),
		autoClear: true,
		dirty:     true,
	}
}

// InsertChar inserts r at the cursor and advances the cursor.
// Characters rejected by the filter, NUL and utf8.RuneError are dropped.
func (s *EditState) InsertChar(r rune) {
	if r == 0 || r == utf8.RuneError || !s.filter.Accepts(r) {
		return
	}
	s.buffer = append(s.buffer, 0)
	copy(s.buffer[s.cursor+1:], s.buffer[s.cursor:])
	s.buffer[s.cursor] = r
	s.setCursor(s.cursor + 1)
}

// DeleteBackward removes the rune before the cursor.
// Both Delete and Backspace route here; there is no forward delete.
func (s *EditState) DeleteBackward() {
	if len(s.buffer) == 0 || s.cursor == 0 {
		return
	}
	s.buffer = append(s.buffer[:s.cursor-1], s.buffer[s.cursor:]...)
	s.setCursor(s.cursor - 1)
}

// MoveLeft moves the cursor one rune left, or to the start when wholeLine is set.
func (s *EditState) MoveLeft(wholeLine bool) {
	if wholeLine {
		s.setCursor(0)
		return
	}
	s.setCursor(s.cursor - 1)
}

// MoveRight moves the cursor one rune right, or to the end when wholeLine is set.
func (s *EditState) MoveRight(wholeLine bool) {
	if wholeLine {
		s.setCursor(len(s.buffer))
		return
	}
	s.setCursor(s.cursor + 1)
}

// HistoryUp loads the previous history entry. No-op at the oldest entry.
// Leaving the draft slot stores the unsubmitted buffer in it, so HistoryDown
// brings it back.
func (s *EditState) HistoryUp() {
	if s.history.OnDraft() && s.history.Cursor() > 0 {
		s.history.SetDraft(string(s.buffer))
	}
	if v, ok := s.history.Prev(); ok {
		s.load(v)
		fieldLogger.Debug("history up", "cursor", s.history.Cursor(), "value", v)
	}
}

// HistoryDown loads the next history entry. No-op on the draft slot.
func (s *EditState) HistoryDown() {
	if v, ok := s.history.Next(); ok {
		s.load(v)
		fieldLogger.Debug("history down", "cursor", s.history.Cursor(), "value", v)
	}
}

// Submit commits the buffer: the submit handler receives it, the history
// draft slot is overwritten with it and a new empty draft is appended.
// With auto-clear enabled the buffer is emptied afterwards.
func (s *EditState) Submit() string {
	value := string(s.buffer)
	if s.onSubmit != nil {
		s.onSubmit(value)
	}
	s.history.Commit(value)
	fieldLogger.Debug("submit", "value", value, "history", s.history.Len())
	if s.autoClear {
		s.Clear()
	}
	return value
}

// SetValue replaces the buffer wholesale and moves the cursor to the end.
// The input filter is not applied.
func (s *EditState) SetValue(text string) {
	s.load(text)
}

// Clear empties the buffer.
func (s *EditState) Clear() {
	s.buffer = s.buffer[:0]
	s.setCursor(0)
}

// Text returns the buffer contents.
func (s *EditState) Text() string {
	return string(s.buffer)
}

// Len returns the buffer length in runes.
func (s *EditState) Len() int {
	return len(s.buffer)
}

// Cursor returns the cursor rune index.
func (s *EditState) Cursor() int {
	return s.cursor
}

// HistoryEntries returns a snapshot of the history, draft last.
func (s *EditState) HistoryEntries() []string {
	return s.history.Entries()
}

// HistoryCursor returns the index of the history entry last loaded.
func (s *EditState) HistoryCursor() int {
	return s.history.Cursor()
}

// SetHistoryLimit caps the number of committed entries kept (0 = unbounded).
func (s *EditState) SetHistoryLimit(n int) {
	s.history.SetLimit(n)
}

// Filter returns the active input filter.
func (s *EditState) Filter() InputFilter {
	return s.filter
}

// SetFilter changes the input filter. Existing text is left untouched.
func (s *EditState) SetFilter(f InputFilter) {
	s.filter = f
}

// AutoClear reports whether Submit empties the buffer.
func (s *EditState) AutoClear() bool {
	return s.autoClear
}

// SetAutoClear controls whether Submit empties the buffer.
func (s *EditState) SetAutoClear(v bool) {
	s.autoClear = v
}

// SetSubmitHandler installs the sink invoked by Submit.
func (s *EditState) SetSubmitHandler(fn SubmitFunc) {
	s.onSubmit = fn
}

// Dirty reports whether the view needs recomputing.
func (s *EditState) Dirty() bool {
	return s.dirty
}

// MarkDirty forces the next draw to recompute the view.
func (s *EditState) MarkDirty() {
	s.dirty = true
}

// markClean is called by the view recomputation.
func (s *EditState) markClean() {
	s.dirty = false
}

func (s *EditState) load(text string) {
	s.buffer = append(s.buffer[:0], []rune(text)...)
	s.setCursor(len(s.buffer))
}

// setCursor clamps idx into [0, len(buffer)] and marks the state dirty.
func (s *EditState) setCursor(idx int) {
	s.cursor = clampi(idx, 0, len(s.buffer))
	s.dirty = true
}
