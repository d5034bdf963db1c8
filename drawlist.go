package textfield

import "sync"

// drawListPool provides reuse of DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			Ops:       make([]DrawOp, 0, 16),
			clipStack: make([]Rect, 0, 4),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawOpKind is the primitive type of a DrawOp.
type DrawOpKind uint8

const (
	// OpRect is a filled rectangle.
	OpRect DrawOpKind = iota
	// OpText is a single-line text run whose top-left corner is Rect.X, Rect.Y.
	OpText
)

// DrawOp is one declarative draw instruction. Backends rasterize it.
type DrawOp struct {
	Kind  DrawOpKind
	Rect  Rect   // Rect for OpRect; position and measured size for OpText
	Text  string // OpText only
	Color uint32
	Clip  Rect // Valid when Clipped is set
	// Clipped marks ops that must be scissored to Clip.
	Clipped bool
}

// DrawList accumulates draw instructions for a frame.
type DrawList struct {
	Ops []DrawOp

	clipStack []Rect
	clip      Rect
	clipped   bool
}

// Clear resets the DrawList, retaining allocated capacity.
func (dl *DrawList) Clear() {
	dl.Ops = dl.Ops[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.clip = Rect{}
	dl.clipped = false
}

// PushClipRect clips all subsequent primitives to r.
func (dl *DrawList) PushClipRect(r Rect) {
	if dl.clipped {
		dl.clipStack = append(dl.clipStack, dl.clip)
	} else {
		dl.clipStack = append(dl.clipStack, Rect{W: -1})
	}
	dl.clip = r
	dl.clipped = true
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	prev := dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	if prev.W < 0 {
		dl.clip = Rect{}
		dl.clipped = false
		return
	}
	dl.clip = prev
}

// AddRect adds a filled rectangle. Fully transparent colors are skipped.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	dl.Ops = append(dl.Ops, DrawOp{
		Kind:    OpRect,
		Rect:    Rect{X: x, Y: y, W: w, H: h},
		Color:   color,
		Clip:    dl.clip,
		Clipped: dl.clipped,
	})
}

// AddText adds a text run of measured size w x h at (x, y).
func (dl *DrawList) AddText(x, y float32, text string, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}
	dl.Ops = append(dl.Ops, DrawOp{
		Kind:    OpText,
		Rect:    Rect{X: x, Y: y, W: w, H: h},
		Text:    text,
		Color:   color,
		Clip:    dl.clip,
		Clipped: dl.clipped,
	})
}
