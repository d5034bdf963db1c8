package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/textfield"
)

// Paint rasterizes dl onto screen. One unit of field geometry is one cell.
// Rects fill cell backgrounds; text keeps the background already painted
// under it, so a caret drawn first stays visible. Translucent colors are
// blended with the cell below.
func Paint(screen tcell.Screen, dl *textfield.DrawList) {
	sw, sh := screen.Size()
	for _, op := range dl.Ops {
		clip := cellBox{x0: 0, y0: 0, x1: sw, y1: sh}
		if op.Clipped {
			clip = clip.intersect(boxOf(op.Clip))
		}
		switch op.Kind {
		case textfield.OpRect:
			paintRect(screen, boxOf(op.Rect).intersect(clip), op.Color)
		case textfield.OpText:
			paintText(screen, op, clip)
		}
	}
}

// cellBox is a half-open range of cells [x0,x1) x [y0,y1).
type cellBox struct {
	x0, y0, x1, y1 int
}

func boxOf(r textfield.Rect) cellBox {
	return cellBox{
		x0: int(math.Floor(float64(r.X))),
		y0: int(math.Floor(float64(r.Y))),
		x1: int(math.Ceil(float64(r.X + r.W))),
		y1: int(math.Ceil(float64(r.Y + r.H))),
	}
}

func (b cellBox) intersect(o cellBox) cellBox {
	return cellBox{
		x0: max(b.x0, o.x0),
		y0: max(b.y0, o.y0),
		x1: min(b.x1, o.x1),
		y1: min(b.y1, o.y1),
	}
}

func (b cellBox) contains(x, y int) bool {
	return x >= b.x0 && x < b.x1 && y >= b.y0 && y < b.y1
}

func paintRect(screen tcell.Screen, b cellBox, color uint32) {
	for y := b.y0; y < b.y1; y++ {
		for x := b.x0; x < b.x1; x++ {
			mainc, combc, style, _ := screen.GetContent(x, y)
			_, bg, _ := style.Decompose()
			screen.SetContent(x, y, mainc, combc, style.Background(blend(color, bg)))
		}
	}
}

func paintText(screen tcell.Screen, op textfield.DrawOp, clip cellBox) {
	x := int(math.Floor(float64(op.Rect.X)))
	y := int(math.Floor(float64(op.Rect.Y)))
	for _, r := range op.Text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if clip.contains(x, y) {
			_, _, style, _ := screen.GetContent(x, y)
			_, bg, _ := style.Decompose()
			screen.SetContent(x, y, r, nil, style.Foreground(blend(op.Color, bg)))
		}
		x += w
	}
}

// blend composites a packed RGBA color over the cell color below.
func blend(c uint32, below tcell.Color) tcell.Color {
	r, g, b, a := textfield.UnpackRGBA(c)
	if a == 0xFF {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	br, bgc, bb := below.RGB()
	if br < 0 {
		br, bgc, bb = 0, 0, 0
	}
	mix := func(top uint8, bottom int32) int32 {
		return (int32(top)*int32(a) + bottom*int32(255-a)) / 255
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bgc), mix(b, bb))
}
