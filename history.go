package textfield

// History holds committed submissions followed by one draft slot.
// It is never empty: a fresh History holds a single empty draft.
//
// limit == 0 keeps every submission. A positive limit drops the oldest
// committed entries once more than limit are held; the draft is never dropped.
type History struct {
	entries []string
	cursor  int
	limit   int
}

// NewHistory creates a history containing only an empty draft.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{entries: []string{""}, limit: limit}
}

// Len returns the number of entries including the draft.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the index of the entry currently loaded.
func (h *History) Cursor() int {
	return h.cursor
}

// Entries returns a copy of all entries, oldest first, draft last.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Commit overwrites the draft with value, appends a new empty draft and
// points the cursor at it.
func (h *History) Commit(value string) {
	h.entries[len(h.entries)-1] = value
	h.entries = append(h.entries, "")
	if h.limit > 0 && len(h.entries)-1 > h.limit {
		drop := len(h.entries) - 1 - h.limit
		h.entries = append(h.entries[:0], h.entries[drop:]...)
	}
	h.cursor = len(h.entries) - 1
}

// SetDraft overwrites the trailing draft slot.
func (h *History) SetDraft(value string) {
	h.entries[len(h.entries)-1] = value
}

// OnDraft reports whether the cursor is on the draft slot.
func (h *History) OnDraft() bool {
	return h.cursor == len(h.entries)-1
}

// Prev steps toward older entries. Returns false at the oldest entry.
func (h *History) Prev() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next steps toward the draft. Returns false when already on the draft.
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries)-1 {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// SetLimit changes the cap on committed entries and trims if needed.
func (h *History) SetLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	h.limit = limit
	if limit > 0 && len(h.entries)-1 > limit {
		drop := len(h.entries) - 1 - limit
		h.entries = append(h.entries[:0], h.entries[drop:]...)
		h.cursor = clampi(h.cursor-drop, 0, len(h.entries)-1)
	}
}
