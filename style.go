package textfield

import (
	"fmt"
	"strconv"
	"strings"
)

// Style defines the visual appearance of a text field.
type Style struct {
	// Box
	BackgroundColor uint32
	BorderColor     uint32 // Border when not focused
	ActiveColor     uint32 // Border when focused

	// Text
	TextColor    uint32
	CaptionColor uint32
	CursorColor  uint32

	// Caption spacing below the box
	CaptionGap float32
}

// DefaultStyle returns the default style: dark blue box, light border,
// translucent white caret.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: RGBA(0, 45, 90, 255),
		BorderColor:     RGBA(0, 105, 140, 255),
		ActiveColor:     RGBA(0, 170, 255, 255),
		TextColor:       ColorWhite,
		CaptionColor:    ColorWhite,
		CursorColor:     0x88FFFFFF,
		CaptionGap:      4,
	}
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into a packed color.
func ParseColor(s string) (uint32, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return 0, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
