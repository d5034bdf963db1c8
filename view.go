package textfield

// Text layout constants shared by the view window and Field drawing.
const (
	// TextMargin is the horizontal inset of the text run inside the box.
	TextMargin float32 = 2
	// ScrollSlack is subtracted from the available width when scrolling.
	ScrollSlack float32 = 2
	// CursorWidth is the width of the caret rectangle.
	CursorWidth float32 = 1
)

// ViewWindow is the slice of the buffer visible inside the field.
type ViewWindow struct {
	Start     int     // Rune index of the first visible rune
	Text      string  // Visible run
	TextWidth float32 // Measured width of Text
	CursorX   float32 // Caret offset from the start of Text
	ScrollX   float32 // Shift applied to Text so the caret stays in the box
}

// Caret returns the caret x offset inside the available width.
func (v ViewWindow) Caret() float32 {
	return max(0, v.CursorX-v.ScrollX)
}

// ComputeView recomputes the visible run of text for a box with avail pixels
// of usable width and the caret at rune index cursor.
//
// When the whole text fits it is shown as is. Otherwise a forward scan finds
// how many runes fit in the budget, and a backward scan from
// max(thatCount, cursor-1) prepends runes until the budget is exceeded; the
// rune that exceeded it starts the window. The result keeps the caret in view
// and slides right to left as typing passes the right edge.
//
// Both scans visit each rune at most once. The result depends only on the
// arguments.
func ComputeView(text []rune, cursor int, avail float32, m Measurer) ViewWindow {
	cursor = clampi(cursor, 0, len(text))
	full := measure(m, string(text))
	if full <= 0 || full < avail || len(text) == 0 {
		return ViewWindow{
			Text:      string(text),
			TextWidth: full,
			CursorX:   min(measure(m, string(text[:cursor])), full),
		}
	}

	budget := avail - ScrollSlack

	lastFit := 0
	var n float32
	for _, r := range text {
		n += measure(m, string(r))
		if n > budget {
			break
		}
		lastFit++
	}

	right := clampi(max(lastFit, cursor-1), 0, len(text)-1)
	start := 0
	n = 0
	for i := right; i >= 0; i-- {
		n += measure(m, string(text[i]))
		if n > budget {
			start = i
			break
		}
	}

	run := text[start : right+1]
	v := ViewWindow{
		Start:     start,
		Text:      string(run),
		TextWidth: measure(m, string(run)),
	}
	v.CursorX = min(measure(m, string(run[:clampi(cursor-start, 0, len(run))])), v.TextWidth)
	if v.CursorX > avail {
		v.ScrollX = v.TextWidth - avail
	}
	return v
}
