package graph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/node"
	"github.com/matzehuels/analogue/pkg/observability"
	"github.com/matzehuels/analogue/pkg/types"
)

// Entry is a built node with its document identity and optional position.
type Entry struct {
	ID     string
	Node   *node.Node
	X, Y   int
	Placed bool // X and Y were given
}

// Build converts a document into a library and its nodes, in document order.
func Build(doc Document) (*node.Library, []Entry, error) {
	lib, entries, err := build(doc)
	observability.Document().OnBuild(len(doc.Types), len(entries), err)
	return lib, entries, err
}

func build(doc Document) (*node.Library, []Entry, error) {
	pool := types.NewPool()
	lib := node.NewLibrary(pool)
	res := NewResolver(pool)

	for i, td := range doc.Types {
		if err := defineType(res, pool, td); err != nil {
			return nil, nil, invalid(err, "types[%d] %q", i, td.Name)
		}
	}
	for _, name := range doc.Declarations {
		if _, err := lib.Declare(name); err != nil {
			return nil, nil, invalid(err, "declaration %q", name)
		}
	}

	entries := make([]Entry, 0, len(doc.Nodes))
	seen := make(map[string]struct{}, len(doc.Nodes))
	for i, dn := range doc.Nodes {
		id := dn.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := seen[id]; dup {
			return nil, nil, errors.New(errors.ErrCodeInvalidDocument, "nodes[%d]: duplicate id %q", i, id)
		}
		seen[id] = struct{}{}

		n, err := buildNode(lib, res, dn)
		if err != nil {
			return nil, nil, invalid(err, "node %s", id)
		}
		e := Entry{ID: id, Node: n}
		if dn.X != nil && dn.Y != nil {
			e.X, e.Y, e.Placed = *dn.X, *dn.Y, true
		}
		entries = append(entries, e)
	}
	return lib, entries, nil
}

func invalid(err error, format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeInvalidDocument, err, format, args...)
}

// =============================================================================
// Types
// =============================================================================

func defineType(res *Resolver, pool *types.Pool, td TypeDef) error {
	variants := 0
	for _, set := range []bool{td.Uint != 0, td.Array != "", td.VArray != "", td.Alias != "", td.Record != nil} {
		if set {
			variants++
		}
	}
	if variants != 1 {
		return errors.New(errors.ErrCodeInvalidType, "exactly one of uint, array, varray, alias or record is required")
	}
	if _, ok := uintBits(td.Name); ok {
		return errors.New(errors.ErrCodeInvalidType, "type name %q shadows an integer type", td.Name)
	}
	if td.Record != nil && res.taken(td.Name) {
		return errors.New(errors.ErrCodeInvalidType, "type %q already defined", td.Name)
	}

	var (
		id  types.TypeID
		err error
	)
	switch {
	case td.Uint != 0:
		id, err = pool.UnsignedInt(td.Uint)
	case td.Array != "":
		if id, err = res.Resolve(td.Array); err == nil {
			id, err = pool.FixedArray(id, td.Len)
		}
	case td.VArray != "":
		if id, err = res.Resolve(td.VArray); err == nil {
			id, err = pool.VariableArray(id)
		}
	case td.Alias != "":
		if id, err = res.Resolve(td.Alias); err == nil {
			id, err = pool.Alias(id)
		}
	case td.Record != nil:
		fields := make([]types.Field, 0, len(td.Record.Fields))
		for _, f := range td.Record.Fields {
			ft, ferr := res.Resolve(f.Type)
			if ferr != nil {
				return fmt.Errorf("field %s: %w", f.Name, ferr)
			}
			fields = append(fields, types.Field{Name: f.Name, Type: ft})
		}
		// Records are found through the pool, not the resolver.
		_, err = pool.Define(td.Name, fields...)
		return err
	}
	if err != nil {
		return err
	}
	return res.Name(td.Name, id)
}

// =============================================================================
// Nodes
// =============================================================================

func buildNode(lib *node.Library, res *Resolver, dn Node) (*node.Node, error) {
	class, err := classify(lib, dn)
	if err != nil {
		return nil, err
	}
	n := node.New(class)
	if dn.Alias != "" {
		if err := n.SetAlias(dn.Alias); err != nil {
			return nil, err
		}
	}

	strategy, err := node.ParseStrategy(dn.Strategy)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNode, err, "strategy")
	}
	n.Ports.SetStrategy(strategy)

	if dn.PrimaryInput != "" {
		t, err := res.Resolve(dn.PrimaryInput)
		if err != nil {
			return nil, fmt.Errorf("primary input: %w", err)
		}
		n.Ports.SetPrimaryInput(node.PrimaryPort(t))
	}
	if dn.PrimaryOutput != "" {
		t, err := res.Resolve(dn.PrimaryOutput)
		if err != nil {
			return nil, fmt.Errorf("primary output: %w", err)
		}
		n.Ports.SetPrimaryOutput(node.PrimaryPort(t))
	}
	for i, p := range dn.Inputs {
		t, err := res.Resolve(p.Type)
		if err != nil {
			return nil, fmt.Errorf("inputs[%d]: %w", i, err)
		}
		n.Ports.AddInput(node.NewPort(t, p.Name))
	}
	for i, p := range dn.Outputs {
		t, err := res.Resolve(p.Type)
		if err != nil {
			return nil, fmt.Errorf("outputs[%d]: %w", i, err)
		}
		n.Ports.AddOutput(node.NewPort(t, p.Name))
	}
	return n, nil
}

func classify(lib *node.Library, dn Node) (node.Classification, error) {
	set := 0
	for _, s := range []string{dn.Builtin, dn.Struct, dn.Defined} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return node.Classification{}, errors.New(errors.ErrCodeInvalidNode, "exactly one of builtin, struct or defined is required")
	}

	switch {
	case dn.Builtin != "":
		k, err := node.ParseBuiltin(dn.Builtin)
		if err != nil {
			return node.Classification{}, errors.Wrap(errors.ErrCodeInvalidNode, err, "builtin")
		}
		return node.Builtin(k), nil
	case dn.Struct != "":
		id, ok := lib.Types.Lookup(dn.Struct)
		if !ok {
			return node.Classification{}, errors.New(errors.ErrCodeInvalidNode, "unknown record type %q", dn.Struct)
		}
		return node.StructInitialization(id), nil
	default:
		decl, ok := lib.LookupDeclaration(dn.Defined)
		if !ok {
			var err error
			if decl, err = lib.Declare(dn.Defined); err != nil {
				return node.Classification{}, err
			}
		}
		return node.Defined(decl), nil
	}
}
