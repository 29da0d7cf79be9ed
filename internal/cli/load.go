package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/graph"
	"github.com/matzehuels/analogue/pkg/io"
	"github.com/matzehuels/analogue/pkg/node"
)

// document is a loaded and built node-graph document.
type document struct {
	path    string
	raw     graph.Document
	lib     *node.Library
	entries []graph.Entry
}

// loadDocument imports and builds the document at path.
func loadDocument(ctx context.Context, path string) (*document, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	raw, err := io.ImportFile(path)
	if err != nil {
		return nil, err
	}
	lib, entries, err := graph.Build(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	prog.done(fmt.Sprintf("Loaded %d nodes, %d types", len(entries), lib.Types.Len()))
	return &document{path: path, raw: raw, lib: lib, entries: entries}, nil
}

// selectEntries returns the entries with the given ids, in the order given.
// No ids selects every entry.
func (d *document) selectEntries(ids []string) ([]graph.Entry, error) {
	if len(ids) == 0 {
		return d.entries, nil
	}
	out := make([]graph.Entry, 0, len(ids))
	for _, id := range ids {
		i := slices.IndexFunc(d.entries, func(e graph.Entry) bool { return e.ID == id })
		if i < 0 {
			return nil, errors.New(errors.ErrCodeNotFound, "no node with id %q in %s", id, d.path)
		}
		out = append(out, d.entries[i])
	}
	return out, nil
}
