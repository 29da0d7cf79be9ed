package io

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/graph"
	"github.com/matzehuels/analogue/pkg/observability"
)

// Read decodes a document in format f from r.
//
// Read returns an error if the input is malformed, contains keys that are not
// part of the document schema, or holds more than one document. Semantic
// validation (unknown types, duplicate ids) happens in graph.Build.
func Read(r io.Reader, f Format) (graph.Document, error) {
	var doc graph.Document
	var err error
	switch f {
	case FormatJSON:
		err = readJSON(r, &doc)
	case FormatYAML:
		err = readYAML(r, &doc)
	case FormatTOML:
		err = readTOML(r, &doc)
	default:
		return doc, errors.New(errors.ErrCodeInvalidInput, "unsupported format %q", f)
	}
	if err != nil {
		return graph.Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", f)
	}
	return doc, nil
}

// ImportFile reads the document at path, choosing the format by extension.
func ImportFile(path string) (graph.Document, error) {
	start := time.Now()
	f, err := FormatFromPath(path)
	if err != nil {
		return graph.Document{}, err
	}

	doc, err := importFile(path, f)
	observability.Document().OnLoad(path, string(f), len(doc.Nodes), time.Since(start), err)
	return doc, err
}

func importFile(path string, f Format) (graph.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return graph.Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return graph.Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	doc, err := Read(file, f)
	if err != nil {
		return graph.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// =============================================================================
// Decoders
// =============================================================================

func readJSON(r io.Reader, doc *graph.Document) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after document")
	}
	return nil
}

func readYAML(r io.Reader, doc *graph.Document) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return fmt.Errorf("empty document")
		}
		return err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !stderrors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected second document")
	}
	return nil
}

func readTOML(r io.Reader, doc *graph.Document) error {
	md, err := toml.NewDecoder(r).Decode(doc)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}
