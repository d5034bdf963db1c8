package textfield

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFilter is returned when a filter name cannot be parsed.
var ErrUnknownFilter = errors.New("textfield: unknown input filter")

// InputFilter restricts which characters may be inserted interactively.
// Programmatic sets (SetValue) are never filtered.
type InputFilter uint8

const (
	// FilterNone accepts every character.
	FilterNone InputFilter = iota
	// FilterInteger accepts the digits 0-9.
	FilterInteger
	// FilterFloat accepts the digits 0-9 and '.'.
	FilterFloat
	// FilterPrintable accepts the characters a fixed-glyph bitmap font can
	// draw: printable ASCII plus '\n' and '\r'.
	FilterPrintable
)

// Accepts reports whether r may be inserted under this filter.
func (f InputFilter) Accepts(r rune) bool {
	switch f {
	case FilterInteger:
		return r >= '0' && r <= '9'
	case FilterFloat:
		return (r >= '0' && r <= '9') || r == '.'
	case FilterPrintable:
		return r == '\n' || r == '\r' || (r >= ' ' && r <= '~')
	default:
		return true
	}
}

// String returns the filter name as used in config files.
func (f InputFilter) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterInteger:
		return "integer"
	case FilterFloat:
		return "float"
	case FilterPrintable:
		return "printable"
	default:
		return fmt.Sprintf("InputFilter(%d)", uint8(f))
	}
}

// ParseFilter parses a filter name. The empty string maps to FilterNone.
func ParseFilter(name string) (InputFilter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "default":
		return FilterNone, nil
	case "integer", "int":
		return FilterInteger, nil
	case "float":
		return FilterFloat, nil
	case "printable", "bitfont":
		return FilterPrintable, nil
	}
	return FilterNone, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}
