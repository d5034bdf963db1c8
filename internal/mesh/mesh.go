package mesh

import (
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/textfield"
)

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// Batch is one indexed draw call. A new batch starts whenever the clip
// rectangle or the texture changes.
type Batch struct {
	Clip         [4]float32 // x0, y0, x1, y1
	Textured     bool       // Sample the glyph atlas
	VertexOffset uint32
	IndexOffset  uint32
	IndexCount   uint32
}

// Unclipped is the clip rectangle of ops outside any clip push.
var Unclipped = [4]float32{-1e9, -1e9, 1e9, 1e9}

// Mesh is the tessellated form of a textfield.DrawList. Indices are relative
// to the owning batch's VertexOffset.
type Mesh struct {
	Batches  []Batch
	Vertices []Vertex
	Indices  []uint16

	atlas *Atlas
	scale float32
}

// New creates an empty mesh that lays text out from atlas at scale 1.
func New(atlas *Atlas) *Mesh {
	return &Mesh{
		Vertices: make([]Vertex, 0, 512),
		Indices:  make([]uint16, 0, 1024),
		Batches:  make([]Batch, 0, 8),
		atlas:    atlas,
		scale:    1,
	}
}

// Atlas returns the glyph atlas used for text.
func (m *Mesh) Atlas() *Atlas {
	return m.atlas
}

// SetScale sets the glyph magnification. Non-positive values reset it to 1.
func (m *Mesh) SetScale(s float32) {
	if s <= 0 {
		s = 1
	}
	m.scale = s
}

// GlyphSize returns the on-screen size of one glyph cell.
func (m *Mesh) GlyphSize() (w, h float32) {
	return float32(m.atlas.CellW) * m.scale, float32(m.atlas.CellH) * m.scale
}

// Reset drops all geometry, retaining allocated capacity.
func (m *Mesh) Reset() {
	m.Batches = m.Batches[:0]
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// Build replaces the mesh contents with the tessellation of dl.
// Empty batches are never emitted.
func (m *Mesh) Build(dl *textfield.DrawList) {
	m.Reset()
	for _, op := range dl.Ops {
		clip := Unclipped
		if op.Clipped {
			clip = [4]float32{op.Clip.X, op.Clip.Y, op.Clip.X + op.Clip.W, op.Clip.Y + op.Clip.H}
		}
		switch op.Kind {
		case textfield.OpRect:
			b := m.batch(clip, false)
			m.quad(b, op.Rect.X, op.Rect.Y, op.Rect.X+op.Rect.W, op.Rect.Y+op.Rect.H, [4]float32{}, op.Color)
		case textfield.OpText:
			m.text(op, clip)
		}
	}
	kept := m.Batches[:0]
	for _, b := range m.Batches {
		if b.IndexCount > 0 {
			kept = append(kept, b)
		}
	}
	m.Batches = kept
}

// batch returns the batch to append to, starting a new one on a state change.
func (m *Mesh) batch(clip [4]float32, textured bool) *Batch {
	if n := len(m.Batches); n > 0 {
		last := &m.Batches[n-1]
		if last.Clip == clip && last.Textured == textured {
			return last
		}
	}
	m.Batches = append(m.Batches, Batch{
		Clip:         clip,
		Textured:     textured,
		VertexOffset: uint32(len(m.Vertices)),
		IndexOffset:  uint32(len(m.Indices)),
	})
	return &m.Batches[len(m.Batches)-1]
}

func (m *Mesh) quad(b *Batch, x0, y0, x1, y1 float32, uv [4]float32, color uint32) {
	base := uint16(uint32(len(m.Vertices)) - b.VertexOffset)
	m.Vertices = append(m.Vertices,
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{uv[0], uv[1]}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{uv[2], uv[1]}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{uv[2], uv[3]}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{uv[0], uv[3]}, Color: color},
	)
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	b.IndexCount += 6
}

// text lays out one quad per rune. Wide runes advance two cells and
// zero-width runes none, matching textfield.FixedGlyphMeasurer.
func (m *Mesh) text(op textfield.DrawOp, clip [4]float32) {
	b := m.batch(clip, true)
	gw, gh := m.GlyphSize()
	x := op.Rect.X
	for _, r := range op.Text {
		cells := runewidth.RuneWidth(r)
		if cells == 0 {
			continue
		}
		u0, v0, u1, v1 := m.atlas.UV(r)
		m.quad(b, x, op.Rect.Y, x+gw, op.Rect.Y+gh, [4]float32{u0, v0, u1, v1}, op.Color)
		x += gw * float32(cells)
	}
}
