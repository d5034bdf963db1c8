package textfield_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/go-theft-auto/textfield"
)

func typeText(s *textfield.EditState, text string) {
	for _, r := range text {
		s.InsertChar(r)
	}
}

func TestEditStateInsert(t *testing.T) {
	s := textfield.NewEditState()
	typeText(s, "abc")
	assert.Equal(t, "abc", s.Text())
	assert.Equal(t, 3, s.Cursor())
}

func TestEditStateInsertAtCursor(t *testing.T) {
	s := textfield.NewEditState()
	typeText(s, "ac")
	s.MoveLeft(false)
	s.InsertChar('b')
	assert.Equal(t, "abc", s.Text())
	assert.Equal(t, 2, s.Cursor())
}

func TestEditStateDeleteBackward(t *testing.T) {
	s := textfield.NewEditState()
	typeText(s, "abc")
	s.DeleteBackward()
	s.DeleteBackward()
	assert.Equal(t, "a", s.Text())
	assert.Equal(t, 1, s.Cursor())

	s.MoveLeft(true)
	s.DeleteBackward()
	assert.Equal(t, "a", s.Text(), "delete at cursor 0 is a no-op")

	s.Clear()
	s.DeleteBackward()
	assert.Empty(t, s.Text())
	assert.Equal(t, 0, s.Cursor())
}

func TestEditStateMoves(t *testing.T) {
	s := textfield.NewEditState()
	typeText(s, "hello")

	s.MoveLeft(false)
	assert.Equal(t, 4, s.Cursor())
	s.MoveLeft(true)
	assert.Equal(t, 0, s.Cursor())
	s.MoveLeft(false)
	assert.Equal(t, 0, s.Cursor(), "left at start stays at 0")

	s.MoveRight(false)
	assert.Equal(t, 1, s.Cursor())
	s.MoveRight(true)
	assert.Equal(t, 5, s.Cursor())
	s.MoveRight(false)
	assert.Equal(t, 5, s.Cursor(), "right at end stays at len")
}

func TestEditStateSubmitHistory(t *testing.T) {
	s := textfield.NewEditState()
	var got []string
	s.SetSubmitHandler(func(v string) { got = append(got, v) })

	typeText(s, "hello")
	assert.Equal(t, "hello", s.Submit())
	typeText(s, "world")
	s.Submit()

	assert.Equal(t, []string{"hello", "world", ""}, s.HistoryEntries())
	assert.Equal(t, []string{"hello", "world"}, got)
	assert.Empty(t, s.Text(), "auto-clear empties the buffer")
	assert.Equal(t, 2, s.HistoryCursor())
}

func TestEditStateHistoryNavigation(t *testing.T) {
	s := textfield.NewEditState()
	typeText(s, "hello")
	s.Submit()
	typeText(s, "world")
	s.Submit()

	s.HistoryUp()
	assert.Equal(t, "world", s.Text())
	assert.Equal(t, 5, s.Cursor())
	s.HistoryUp()
	assert.Equal(t, "hello", s.Text())
	s.HistoryUp()
	assert.Equal(t, "hello", s.Text(), "no older entry")

	s.HistoryDown()
	assert.Equal(t, "world", s.Text())
	s.HistoryDown()
	assert.Empty(t, s.Text())
	s.HistoryDown()
	assert.Empty(t, s.Text(), "already on the draft")
}

func TestEditStateHistoryKeepsDraft(t *testing.T) {
	s := textfield.NewEditState()
	typeText(s, "first")
	s.Submit()
	typeText(s, "unsent")

	s.HistoryUp()
	require.Equal(t, "first", s.Text())
	s.HistoryDown()
	assert.Equal(t, "unsent", s.Text())
}

func TestEditStateHistoryUpOnFreshState(t *testing.T) {
	s := textfield.NewEditState()
	typeText(s, "draft")
	s.HistoryUp()
	s.HistoryDown()
	assert.Equal(t, "draft", s.Text())
	assert.Equal(t, []string{""}, s.HistoryEntries())
}

func TestEditStateIntegerFilter(t *testing.T) {
	s := textfield.NewEditState()
	s.SetFilter(textfield.FilterInteger)
	s.InsertChar('a')
	assert.Empty(t, s.Text())
	s.InsertChar('7')
	assert.Equal(t, "7", s.Text())
}

func TestEditStateSetValueBypassesFilter(t *testing.T) {
	s := textfield.NewEditState()
	s.SetFilter(textfield.FilterInteger)
	s.SetValue("abc")
	assert.Equal(t, "abc", s.Text())
	assert.Equal(t, 3, s.Cursor())

	s.SetFilter(textfield.FilterFloat)
	assert.Equal(t, "abc", s.Text(), "filters never apply retroactively")
}

func TestEditStateNoAutoClear(t *testing.T) {
	s := textfield.NewEditState()
	s.SetAutoClear(false)
	typeText(s, "x")
	s.Submit()

	assert.Equal(t, "x", s.Text())
	assert.Equal(t, []string{"x", ""}, s.HistoryEntries())

	s.Submit()
	assert.Equal(t, []string{"x", "x", ""}, s.HistoryEntries())
}

func TestEditStateDropsControlRunes(t *testing.T) {
	s := textfield.NewEditState()
	s.InsertChar(0)
	s.InsertChar(utf8.RuneError)
	assert.Empty(t, s.Text())
	assert.Equal(t, 0, s.Cursor())
}

func TestEditStateDirty(t *testing.T) {
	f := textfield.New("t", textfield.Rect{W: 100, H: 20})
	s := f.State()
	assert.True(t, s.Dirty(), "new state starts dirty")

	f.View()
	assert.False(t, s.Dirty())

	s.InsertChar('a')
	assert.True(t, s.Dirty())
	f.View()
	s.MoveLeft(false)
	assert.True(t, s.Dirty())
}

func TestEditStateHistoryLimit(t *testing.T) {
	s := textfield.NewEditState()
	s.SetHistoryLimit(2)
	for _, v := range []string{"a", "b", "c"} {
		s.SetValue(v)
		s.Submit()
	}
	assert.Equal(t, []string{"b", "c", ""}, s.HistoryEntries())
	assert.Equal(t, 2, s.HistoryCursor())
}

func TestEditStateCursorClampedProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := textfield.NewEditState()
		s.SetValue(rapid.StringMatching(`[a-z0-9 ]{0,16}`).Draw(t, "initial"))

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				s.MoveLeft(rapid.Bool().Draw(t, "whole"))
			case 1:
				s.MoveRight(rapid.Bool().Draw(t, "whole"))
			case 2:
				s.DeleteBackward()
			case 3:
				s.InsertChar(rapid.RuneFrom([]rune("xyz7.")).Draw(t, "r"))
			}
			if s.Cursor() < 0 || s.Cursor() > s.Len() {
				t.Fatalf("cursor %d outside [0, %d]", s.Cursor(), s.Len())
			}
		}
	})
}

func TestEditStateFilterIdempotenceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		filter := rapid.SampledFrom([]textfield.InputFilter{
			textfield.FilterInteger,
			textfield.FilterFloat,
			textfield.FilterPrintable,
		}).Draw(t, "filter")
		s := textfield.NewEditState()
		s.SetValue(rapid.String().Draw(t, "initial"))
		s.MoveLeft(rapid.Bool().Draw(t, "home"))
		s.SetFilter(filter)

		r := rapid.Rune().Draw(t, "r")
		if filter.Accepts(r) {
			t.Skip("accepted rune")
		}
		before, cursor := s.Text(), s.Cursor()
		s.InsertChar(r)
		if s.Text() != before || s.Cursor() != cursor {
			t.Fatalf("rejected %q changed state: %q@%d -> %q@%d", r, before, cursor, s.Text(), s.Cursor())
		}
	})
}

func TestEditStateHistoryMonotonicProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := textfield.NewEditState()
		initial := len(s.HistoryEntries())
		values := rapid.SliceOf(rapid.StringMatching(`[a-z]{0,8}`)).Draw(t, "values")
		for _, v := range values {
			s.SetValue(v)
			s.Submit()
			n := len(s.HistoryEntries())
			if s.HistoryCursor() != n-1 {
				t.Fatalf("history cursor %d, want %d", s.HistoryCursor(), n-1)
			}
		}
		if got := len(s.HistoryEntries()); got != initial+len(values) {
			t.Fatalf("history length %d, want %d", got, initial+len(values))
		}
	})
}

func TestEditStateRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := textfield.NewEditState()
		for _, v := range rapid.SliceOf(rapid.StringMatching(`[a-z]{1,8}`)).Draw(t, "submitted") {
			s.SetValue(v)
			s.Submit()
		}
		s.SetValue(rapid.StringMatching(`[a-z]{0,8}`).Draw(t, "draft"))
		before := s.Text()

		s.HistoryUp()
		s.HistoryDown()
		if s.Text() != before {
			t.Fatalf("round trip changed buffer %q -> %q", before, s.Text())
		}
	})
}
