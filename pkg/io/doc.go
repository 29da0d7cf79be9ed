// Package io reads and writes node-graph documents.
//
// # Formats
//
// Documents ([graph.Document]) can be stored as JSON, YAML or TOML. The
// format of a file is chosen by its extension:
//
//	.json          JSON
//	.yaml, .yml    YAML
//	.toml          TOML
//
// All three decoders are strict: unknown keys are rejected so that typos in
// hand-written documents surface as errors instead of silently missing ports.
//
// # Usage
//
//	doc, err := io.ImportFile("graph.yaml")
//	lib, entries, err := graph.Build(doc)
//
//	err = io.ExportFile("graph.toml", doc)    // convert between formats
//
// [Read] and [Write] operate on streams and never close them.
//
// # Errors
//
// Missing files are reported with errors.ErrCodeFileNotFound, malformed or
// unknown-key input with errors.ErrCodeInvalidFormat and unsupported
// extensions with errors.ErrCodeInvalidInput.
package io
