// Package config loads the user configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/analogue/config.toml, or
// ~/.config/analogue/config.toml when XDG_CONFIG_HOME is unset:
//
//	[display]
//	show_type_hints = true
//
//	[output]
//	color = "auto"   # auto, always or never
//
// Keys missing from the file keep their defaults. A missing file is not an
// error. Command-line flags override values loaded from the file.
package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/render/nodeview"
)

const appName = "analogue"

// FileName is the configuration file name inside the config directory.
const FileName = "config.toml"

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the user configuration.
type Config struct {
	Display Display `toml:"display"`
	Output  Output  `toml:"output"`
}

// Display holds node display settings.
type Display struct {
	ShowTypeHints bool `toml:"show_type_hints"`
}

// Output holds terminal output settings.
type Output struct {
	Color string `toml:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: Display{ShowTypeHints: true},
		Output:  Output{Color: ColorAuto},
	}
}

// Validate checks option values.
func (c Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidConfig, "output.color must be auto, always or never, got %q", c.Output.Color)
}

// DisplayOptions returns the renderer options described by c.
func (c Config) DisplayOptions() nodeview.DisplayOptions {
	return nodeview.DisplayOptions{ShowTypeHints: c.Display.ShowTypeHints}
}

// =============================================================================
// Loading
// =============================================================================

// DefaultPath returns the config file location following the XDG convention.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, FileName), nil
}

// Load reads the config file at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Decode reads a config from r on top of the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save writes c to path, creating parent directories.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
