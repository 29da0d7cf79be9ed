package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/analogue/pkg/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Config
		wantErr bool
	}{
		{"empty keeps defaults", "", Default(), false},
		{"hints off", "[display]\nshow_type_hints = false\n",
			Config{Display: Display{ShowTypeHints: false}, Output: Output{Color: ColorAuto}}, false},
		{"color never", "[output]\ncolor = \"never\"\n",
			Config{Display: Display{ShowTypeHints: true}, Output: Output{Color: ColorNever}}, false},
		{"bad color", "[output]\ncolor = \"rainbow\"\n", Config{}, true},
		{"unknown key", "[display]\nshow_types = true\n", Config{}, true},
		{"malformed", "[display\n", Config{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := Default()
	cfg.Display.ShowTypeHints = false
	cfg.Output.Color = ColorAlways

	require.NoError(t, cfg.Save(path))
	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
	assert.False(t, back.DisplayOptions().ShowTypeHints)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))
	assert.Contains(t, buf.String(), "show_type_hints = true")
	assert.Contains(t, buf.String(), `color = "auto"`)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "analogue", FileName), path)

	t.Setenv("XDG_CONFIG_HOME", "")
	path, err = DefaultPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(".config", "analogue", FileName)), path)
}
