// Package opengl provides an OpenGL 4.1 backend for text fields: a renderer
// for textfield.DrawList and a GLFW input adapter.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/textfield"
	"github.com/go-theft-auto/textfield/internal/mesh"
)

// Renderer rasterizes text field draw lists using OpenGL. Text is drawn
// from a glyph atlas; fields must measure with Measurer so layout and
// rasterization agree.
type Renderer struct {
	program  uint32
	vao      uint32
	vbo, ebo uint32
	glyphTex uint32

	projLoc     int32
	glyphsLoc   int32
	texturedLoc int32

	width, height int
	mesh          *mesh.Mesh

	atlas *mesh.Atlas
	scale float32
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAtlas replaces the default 7x13 glyph atlas.
func WithAtlas(a *mesh.Atlas) Option {
	return func(r *Renderer) { r.atlas = a }
}

// WithScale magnifies glyphs by s.
func WithScale(s float32) Option {
	return func(r *Renderer) { r.scale = s }
}

// NewRenderer creates a renderer for a width x height viewport.
// A current OpenGL 4.1 context is required.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		scale:  1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.atlas == nil {
		r.atlas = mesh.DefaultAtlas()
	}
	r.mesh = mesh.New(r.atlas)
	r.mesh.SetScale(r.scale)

	var err error
	if r.program, err = linkProgram(); err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.program, gl.Str("projection\x00"))
	r.glyphsLoc = gl.GetUniformLocation(r.program, gl.Str("glyphs\x00"))
	r.texturedLoc = gl.GetUniformLocation(r.program, gl.Str("textured\x00"))

	r.initBuffers()
	r.glyphTex = uploadAtlas(r.mesh.Atlas())
	return r, nil
}

func (r *Renderer) initBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	var v mesh.Vertex
	stride := int32(unsafe.Sizeof(v))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.Pos))
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.TexCoord))
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(v.Color))
	for i := uint32(0); i < 3; i++ {
		gl.EnableVertexAttribArray(i)
	}

	gl.BindVertexArray(0)
}

// uploadAtlas creates a red-channel texture from the atlas coverage image.
func uploadAtlas(a *mesh.Atlas) uint32 {
	w, h := a.Size()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.Pix.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Measurer returns a fixed-glyph measurer for the renderer's atlas cells.
func (r *Renderer) Measurer() *textfield.FixedGlyphMeasurer {
	w, h := r.mesh.GlyphSize()
	return textfield.NewFixedGlyphMeasurer(w, h, 1)
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws a text field DrawList. GL state touched here is restored
// before returning.
func (r *Renderer) Render(dl *textfield.DrawList) error {
	if dl == nil || len(dl.Ops) == 0 {
		return nil
	}
	m := r.mesh
	m.Build(dl)
	if len(m.Vertices) == 0 {
		return nil
	}
	if len(m.Vertices) > 0xFFFF {
		return fmt.Errorf("draw list too large: %d vertices", len(m.Vertices))
	}

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	proj := ortho(float32(r.width), float32(r.height))
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.glyphTex)
	gl.Uniform1i(r.glyphsLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(unsafe.Sizeof(mesh.Vertex{})), gl.Ptr(m.Vertices), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, gl.Ptr(m.Indices), gl.STREAM_DRAW)

	for _, b := range m.Batches {
		x, y, w, h, ok := scissorBox(b.Clip, r.height)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)

		textured := int32(0)
		if b.Textured {
			textured = 1
		}
		gl.Uniform1i(r.texturedLoc, textured)

		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(b.IndexCount), gl.UNSIGNED_SHORT,
			uintptr(b.IndexOffset)*2, int32(b.VertexOffset))
	}

	gl.BindVertexArray(0)
	return nil
}

// scissorBox converts a top-left origin clip rectangle into GL window
// coordinates. ok is false when nothing of it is on screen.
func scissorBox(clip [4]float32, viewportH int) (x, y, w, h int32, ok bool) {
	x = int32(clip[0])
	y = int32(float32(viewportH) - clip[3])
	w = int32(clip[2] - clip[0])
	h = int32(clip[3] - clip[1])
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	return x, y, w, h, w > 0 && h > 0
}

// glState is the subset of GL state Render changes.
type glState struct {
	program            int32
	blendSrc, blendDst int32
	scissor            [4]int32
	caps               map[uint32]bool
}

func saveState() glState {
	s := glState{caps: make(map[uint32]bool, 4)}
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissor[0])
	for _, c := range []uint32{gl.BLEND, gl.DEPTH_TEST, gl.CULL_FACE, gl.SCISSOR_TEST} {
		s.caps[c] = gl.IsEnabled(c)
	}
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	for c, on := range s.caps {
		if on {
			gl.Enable(c)
		} else {
			gl.Disable(c)
		}
	}
	gl.Scissor(s.scissor[0], s.scissor[1], s.scissor[2], s.scissor[3])
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.glyphTex != 0 {
		gl.DeleteTextures(1, &r.glyphTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
