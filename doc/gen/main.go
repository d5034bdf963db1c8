// Command gen renders text fields in typical states, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/textfield"
	"github.com/go-theft-auto/textfield/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const (
	shotWidth  = 260
	shotHeight = 60
)

// screenshot defines a single field state to capture.
type screenshot struct {
	name string // filename without extension
	// field builds the field in the wanted state.
	field func(m textfield.Measurer) *textfield.Field
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("textfield renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, shotWidth, shotHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// The hidden window stays at 800x600; only the projection shrinks.
	renderer.Resize(shotWidth, shotHeight)

	f := s.field(renderer.Measurer())

	gl.Viewport(0, 0, shotWidth, shotHeight)
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	dl := textfield.AcquireDrawList()
	f.Draw(dl)
	err := renderer.Render(dl)
	textfield.ReleaseDrawList(dl)
	if err != nil {
		return err
	}

	pixels := make([]byte, shotWidth*shotHeight*4)
	gl.ReadPixels(0, 0, shotWidth, shotHeight, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := shotWidth * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < shotHeight/2; y++ {
		top := y * rowLen
		bot := (shotHeight - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, shotWidth, shotHeight))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return jpeg.Encode(out, img, &jpeg.Options{Quality: 90})
}

var fieldBounds = textfield.Rect{X: 10, Y: 10, W: 160, H: 20}

func typed(f *textfield.Field, text string) *textfield.Field {
	for _, r := range text {
		f.HandleKey(textfield.CharEvent(r, 0))
	}
	return f
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "field_empty",
			field: func(m textfield.Measurer) *textfield.Field {
				return textfield.New("command", fieldBounds, textfield.WithMeasurer(m))
			},
		},
		{
			name: "field_focused",
			field: func(m textfield.Measurer) *textfield.Field {
				f := textfield.New("command", fieldBounds, textfield.WithMeasurer(m), textfield.WithKeepFocus(true))
				return typed(f, "hello")
			},
		},
		{
			name: "field_scrolled",
			field: func(m textfield.Measurer) *textfield.Field {
				f := textfield.New("command", fieldBounds, textfield.WithMeasurer(m), textfield.WithKeepFocus(true))
				return typed(f, "the quick brown fox jumps over the lazy dog")
			},
		},
		{
			name: "field_cursor_home",
			field: func(m textfield.Measurer) *textfield.Field {
				f := textfield.New("command", fieldBounds, textfield.WithMeasurer(m), textfield.WithKeepFocus(true))
				typed(f, "the quick brown fox jumps over the lazy dog")
				f.HandleKey(textfield.KeyEvent{Key: textfield.KeyLeft, Mods: textfield.ModSuper})
				return f
			},
		},
		{
			name: "field_password",
			field: func(m textfield.Measurer) *textfield.Field {
				f := textfield.New("password", fieldBounds, textfield.WithMeasurer(m),
					textfield.WithPassword(true), textfield.WithKeepFocus(true))
				return typed(f, "hunter2")
			},
		},
		{
			name: "field_integer",
			field: func(m textfield.Measurer) *textfield.Field {
				f := textfield.New("amount", fieldBounds, textfield.WithMeasurer(m),
					textfield.WithFilter(textfield.FilterInteger), textfield.WithKeepFocus(true))
				// letters are dropped by the filter
				return typed(f, "12ab34")
			},
		},
	}
}
