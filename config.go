package textfield

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the TOML description of one text field.
//
//	[field]
//	name = "command"
//	x = 20
//	y = 20
//	width = 240
//	height = 20
//	filter = "printable"
//	auto_clear = true
//	history_limit = 100
//
//	[keys]
//	jump_modifier = "super"
//	ignore = ["shift", "alt", "control", "tab", "super"]
//
//	[keys.bindings]
//	enter = "submit"
//
//	[style]
//	background = "#002D5AFF"
//
//	[font]
//	kind = "fixed"
//	char_width = 8
//	char_height = 8
type Config struct {
	Field FieldConfig `toml:"field"`
	Keys  KeysConfig  `toml:"keys"`
	Style StyleConfig `toml:"style"`
	Font  FontConfig  `toml:"font"`
}

// FieldConfig holds geometry and editing behavior.
type FieldConfig struct {
	Name         string  `toml:"name"`
	Caption      *string `toml:"caption"`
	X            float32 `toml:"x"`
	Y            float32 `toml:"y"`
	Width        float32 `toml:"width"`
	Height       float32 `toml:"height"`
	Value        string  `toml:"value"`
	Filter       string  `toml:"filter"`
	AutoClear    *bool   `toml:"auto_clear"`
	HistoryLimit int     `toml:"history_limit"`
	Password     bool    `toml:"password"`
	KeepFocus    bool    `toml:"keep_focus"`
}

// KeysConfig customizes the dispatcher. Bindings map key names to command
// names; Ignore, when present, replaces the default ignore set.
type KeysConfig struct {
	JumpModifier string            `toml:"jump_modifier"`
	Ignore       []string          `toml:"ignore"`
	Bindings     map[string]string `toml:"bindings"`
	Unbind       []string          `toml:"unbind"`
}

// StyleConfig overrides style colors, "#RRGGBB" or "#RRGGBBAA".
type StyleConfig struct {
	Background string `toml:"background"`
	Border     string `toml:"border"`
	Active     string `toml:"active"`
	Text       string `toml:"text"`
	Caption    string `toml:"caption"`
	Cursor     string `toml:"cursor"`
}

// FontConfig selects the measurement strategy: "fixed" (bitmap cells) or
// "scalable" (Go Regular, or the TrueType file at Path).
type FontConfig struct {
	Kind       string  `toml:"kind"`
	CharWidth  float32 `toml:"char_width"`
	CharHeight float32 `toml:"char_height"`
	Scale      float32 `toml:"scale"`
	Path       string  `toml:"path"`
	Size       float64 `toml:"size"`
	DPI        float64 `toml:"dpi"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("textfield: invalid config")

// DefaultConfig returns the configuration New uses without options.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{Name: "input", Width: 200, Height: 20},
		Font:  FontConfig{Kind: "fixed", CharWidth: 8, CharHeight: 8, Scale: 1, Size: 12, DPI: 72},
	}
}

// LoadConfig reads and validates a TOML file. Missing keys keep the values
// of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	fieldLogger.Debug("config loaded", "path", path, "field", cfg.Field.Name)
	return cfg, nil
}

// ParseConfig decodes and validates TOML data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks names, sizes and colors.
func (c Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field size %gx%g", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	}
	if c.Field.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit %d", ErrInvalidConfig, c.Field.HistoryLimit)
	}
	if _, err := ParseFilter(c.Field.Filter); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Keys.dispatcher(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Style.apply(DefaultStyle()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Font.Kind {
	case "", "fixed", "scalable":
	default:
		return fmt.Errorf("%w: font kind %q", ErrInvalidConfig, c.Font.Kind)
	}
	return nil
}

// Bounds returns the configured box rectangle.
func (c Config) Bounds() Rect {
	return Rect{X: c.Field.X, Y: c.Field.Y, W: c.Field.Width, H: c.Field.Height}
}

// Measurer builds the configured measurement strategy.
func (c Config) Measurer() (Measurer, error) {
	fc := c.Font
	if fc.Kind != "scalable" {
		return NewFixedGlyphMeasurer(fc.CharWidth, fc.CharHeight, fc.Scale), nil
	}
	if fc.Path == "" {
		return NewGoRegularMeasurer(fc.Size, fc.DPI)
	}
	data, err := os.ReadFile(fc.Path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return NewScalableMeasurer(data, fc.Size, fc.DPI)
}

// Options converts the configuration into field options.
func (c Config) Options() ([]Option, error) {
	m, err := c.Measurer()
	if err != nil {
		return nil, err
	}
	d, err := c.Keys.dispatcher()
	if err != nil {
		return nil, err
	}
	style, err := c.Style.apply(DefaultStyle())
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithMeasurer(m),
		WithDispatcher(d),
		WithStyle(style),
		WithHistoryLimit(c.Field.HistoryLimit),
		WithPassword(c.Field.Password),
	}
	if c.Field.Filter != "" {
		filter, err := ParseFilter(c.Field.Filter)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithFilter(filter))
	}
	if c.Field.AutoClear != nil {
		opts = append(opts, WithAutoClear(*c.Field.AutoClear))
	}
	if c.Field.Caption != nil {
		opts = append(opts, WithCaption(*c.Field.Caption))
	}
	if c.Field.KeepFocus {
		opts = append(opts, WithKeepFocus(true))
	}
	if c.Field.Value != "" {
		opts = append(opts, WithValue(c.Field.Value))
	}
	return opts, nil
}

// NewField builds a field from the configuration plus extra options, which
// are applied last.
func (c Config) NewField(extra ...Option) (*Field, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return New(c.Field.Name, c.Bounds(), append(opts, extra...)...), nil
}

func (k KeysConfig) dispatcher() (*Dispatcher, error) {
	d := NewDispatcher()
	if k.JumpModifier != "" {
		m, err := ParseModifier(k.JumpModifier)
		if err != nil {
			return nil, err
		}
		d.SetJumpModifier(m)
	}
	if k.Ignore != nil {
		d.ClearIgnored()
		for _, name := range k.Ignore {
			key, err := ParseKey(name)
			if err != nil {
				return nil, err
			}
			d.Ignore(key)
		}
	}
	for _, name := range k.Unbind {
		key, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		d.Unbind(key)
	}
	for keyName, cmdName := range k.Bindings {
		key, err := ParseKey(keyName)
		if err != nil {
			return nil, err
		}
		cmd, err := ParseCommand(cmdName)
		if err != nil {
			return nil, err
		}
		d.Bind(key, cmd)
	}
	return d, nil
}

func (s StyleConfig) apply(base Style) (Style, error) {
	fields := []struct {
		value string
		dst   *uint32
	}{
		{s.Background, &base.BackgroundColor},
		{s.Border, &base.BorderColor},
		{s.Active, &base.ActiveColor},
		{s.Text, &base.TextColor},
		{s.Caption, &base.CaptionColor},
		{s.Cursor, &base.CursorColor},
	}
	for _, fv := range fields {
		if fv.value == "" {
			continue
		}
		c, err := ParseColor(fv.value)
		if err != nil {
			return base, err
		}
		*fv.dst = c
	}
	return base, nil
}
