package textfield

// Vec2 is a point in field coordinates (pixels, or cells on a terminal).
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float32
	W, H float32
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Packed colors are 0xAABBGGRR, the byte order OpenGL reads as RGBA.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorTransparent uint32 = 0
)

// RGBA packs 8-bit channels.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA splits a packed color into its channels.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clampi(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
