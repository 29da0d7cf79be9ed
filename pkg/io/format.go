package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/analogue/pkg/errors"
)

// Format identifies a document encoding.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

var formatsByExt = map[string]Format{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
}

// ParseFormat parses a format name, case-insensitively. "yml" is accepted.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatsByExt["."+strings.ToLower(s)]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unsupported format %q (want json, yaml or toml)", s)
}

// FormatFromPath selects a format by file extension.
func FormatFromPath(path string) (Format, error) {
	if f, ok := formatsByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "cannot infer document format from %q", path)
}
