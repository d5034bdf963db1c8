// Command tfterm runs a text field in the terminal. Submitted lines are
// echoed into a second, read-only field; Up/Down walk the history.
//
//	go run ./cmd/tfterm -config testdata/terminal.toml -v 2>debug.log
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-theft-auto/textfield"
	"github.com/go-theft-auto/textfield/backend/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML field configuration")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	textfield.SetVerbose(*verbose)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: textfield.LogLevel()}))

	cfg := textfield.DefaultConfig()
	cfg.Field = textfield.FieldConfig{Name: "command", X: 2, Y: 1, Width: 40, Height: 3}
	cfg.Keys.JumpModifier = "ctrl"
	if *configPath != "" {
		var err error
		if cfg, err = textfield.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	// Terminal cells are the unit of measure whatever the config says.
	cfg.Font = textfield.FontConfig{Kind: "fixed", CharWidth: 1, CharHeight: 1, Scale: 1}

	b := cfg.Bounds()
	echo := textfield.New("last", textfield.Rect{X: b.X, Y: b.Y + b.H + 3, W: b.W, H: 3},
		textfield.WithMeasurer(terminal.Measurer()),
	)
	echo.SetUserInteraction(false)

	field, err := cfg.NewField(
		textfield.WithMeasurer(terminal.Measurer()),
		textfield.WithSubmitHandler(func(v string) {
			logger.Debug("submitted", "value", v)
			echo.SetValue(v)
		}),
	)
	if err != nil {
		return err
	}
	field.SetFocus(true)

	term, err := terminal.Open(field, echo)
	if err != nil {
		return err
	}
	defer term.Close()

	term.Run()
	return nil
}
