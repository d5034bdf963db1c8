// Package mesh tessellates text field draw lists into indexed triangle
// batches for GPU backends.
package mesh

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas glyph range: printable ASCII. Other runes draw as FallbackRune.
const (
	firstRune    = ' '
	lastRune     = '~'
	atlasColumns = 16

	// FallbackRune replaces runes the atlas has no cell for.
	FallbackRune = '?'
)

// Atlas is a grid of fixed-size glyph cells rasterized from a font face.
// Pix is a single-channel coverage image, ready for upload as a red texture.
type Atlas struct {
	Pix   *image.Alpha
	CellW int
	CellH int
}

// NewAtlas rasterizes printable ASCII from face. Cells are as wide as the
// face's advance for 'M' and as tall as its line height.
func NewAtlas(face font.Face) *Atlas {
	adv, _ := face.GlyphAdvance('M')
	m := face.Metrics()
	cw, ch := adv.Ceil(), m.Height.Ceil()
	if cw <= 0 || ch <= 0 {
		cw, ch = 1, 1
	}

	count := int(lastRune-firstRune) + 1
	rows := (count + atlasColumns - 1) / atlasColumns
	img := image.NewAlpha(image.Rect(0, 0, atlasColumns*cw, rows*ch))

	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := rune(firstRune); r <= lastRune; r++ {
		col, row := cellOf(r)
		d.Dot = fixed.P(col*cw, row*ch+m.Ascent.Ceil())
		d.DrawString(string(r))
	}
	return &Atlas{Pix: img, CellW: cw, CellH: ch}
}

// DefaultAtlas uses the 7x13 face bundled with x/image.
func DefaultAtlas() *Atlas {
	return NewAtlas(basicfont.Face7x13)
}

// Size returns the atlas texture dimensions in pixels.
func (a *Atlas) Size() (w, h int) {
	b := a.Pix.Bounds()
	return b.Dx(), b.Dy()
}

// UV returns the normalized texture coordinates of r's cell.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	if r < firstRune || r > lastRune {
		r = FallbackRune
	}
	col, row := cellOf(r)
	w, h := a.Size()
	u0 = float32(col*a.CellW) / float32(w)
	v0 = float32(row*a.CellH) / float32(h)
	u1 = float32((col+1)*a.CellW) / float32(w)
	v1 = float32((row+1)*a.CellH) / float32(h)
	return
}

func cellOf(r rune) (col, row int) {
	idx := int(r - firstRune)
	return idx % atlasColumns, idx / atlasColumns
}
