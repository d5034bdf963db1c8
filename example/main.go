// Example opens a GLFW window with two text fields: a free-text command line
// with history and an integer-only field.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/textfield"
	"github.com/go-theft-auto/textfield/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "textfield example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	textfield.SetVerbose(true)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: textfield.LogLevel()}))

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("textfield renderer: %w", err)
	}
	defer renderer.Delete()

	command := textfield.New("command", textfield.Rect{X: 20, Y: 20, W: 240, H: 20},
		textfield.WithMeasurer(renderer.Measurer()),
		textfield.WithKeepFocus(true),
		textfield.WithSubmitHandler(func(v string) {
			logger.Info("command", "value", v)
		}),
	)
	amount := textfield.New("amount", textfield.Rect{X: 20, Y: 80, W: 120, H: 20},
		textfield.WithMeasurer(renderer.Measurer()),
		textfield.WithFilter(textfield.FilterInteger),
		textfield.WithAutoClear(false),
		textfield.WithSubmitHandler(func(v string) {
			logger.Info("amount", "value", v)
		}),
	)

	opengl.NewGLFWInputAdapter(window, command, amount)

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := textfield.AcquireDrawList()
		command.Draw(dl)
		amount.Draw(dl)
		err := renderer.Render(dl)
		textfield.ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("textfield render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
