package textfield

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// MeasurerKind tells which font strategy a Measurer implements.
type MeasurerKind uint8

const (
	// MeasurerFixedGlyph is a bitmap font with a fixed cell per glyph.
	MeasurerFixedGlyph MeasurerKind = iota
	// MeasurerScalable is an outline font with per-glyph advances.
	MeasurerScalable
)

// Measurer is the text measurement capability supplied by the renderer.
// The field never rasterizes; it only asks for widths.
type Measurer interface {
	// Measure returns the pixel width of text.
	Measure(text string) float32
	// LineHeight returns the height of one line of text.
	LineHeight() float32
	// Kind reports the font strategy behind this measurer.
	Kind() MeasurerKind
}

// FixedGlyphMeasurer measures text drawn with a bitmap font where every
// glyph occupies CharWidth*Scale pixels. East Asian wide runes take two cells
// and zero-width runes none, as reported by go-runewidth.
type FixedGlyphMeasurer struct {
	CharWidth  float32
	CharHeight float32
	Scale      float32
}

// NewFixedGlyphMeasurer creates a measurer for a cw x ch bitmap font.
func NewFixedGlyphMeasurer(cw, ch, scale float32) *FixedGlyphMeasurer {
	if scale <= 0 {
		scale = 1
	}
	return &FixedGlyphMeasurer{CharWidth: cw, CharHeight: ch, Scale: scale}
}

// Measure returns the summed cell width of text.
func (m *FixedGlyphMeasurer) Measure(text string) float32 {
	return float32(runewidth.StringWidth(text)) * m.CharWidth * m.Scale
}

// LineHeight returns the scaled cell height.
func (m *FixedGlyphMeasurer) LineHeight() float32 {
	return m.CharHeight * m.Scale
}

// Kind returns MeasurerFixedGlyph.
func (m *FixedGlyphMeasurer) Kind() MeasurerKind {
	return MeasurerFixedGlyph
}

// FaceMeasurer measures text with a scalable font.Face.
type FaceMeasurer struct {
	face font.Face
}

// NewFaceMeasurer wraps an existing face.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	return &FaceMeasurer{face: face}
}

// NewScalableMeasurer parses an OpenType/TrueType font and builds a face at
// size points and dpi dots per inch.
func NewScalableMeasurer(ttf []byte, size, dpi float64) (*FaceMeasurer, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return NewFaceMeasurer(face), nil
}

// NewGoRegularMeasurer returns a measurer for the bundled Go Regular font.
func NewGoRegularMeasurer(size, dpi float64) (*FaceMeasurer, error) {
	return NewScalableMeasurer(goregular.TTF, size, dpi)
}

// Face returns the wrapped face.
func (m *FaceMeasurer) Face() font.Face {
	return m.face
}

// Measure returns the advance width of text, kerning included.
func (m *FaceMeasurer) Measure(text string) float32 {
	return fixedToFloat(font.MeasureString(m.face, text))
}

// LineHeight returns the face's recommended line height.
func (m *FaceMeasurer) LineHeight() float32 {
	return fixedToFloat(m.face.Metrics().Height)
}

// Kind returns MeasurerScalable.
func (m *FaceMeasurer) Kind() MeasurerKind {
	return MeasurerScalable
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// measure guards against measurers reporting negative widths.
func measure(m Measurer, text string) float32 {
	if text == "" {
		return 0
	}
	return max(0, m.Measure(text))
}
