package graph

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/node"
	"github.com/matzehuels/analogue/pkg/types"
)

func intp(v int) *int { return &v }

func sampleDocument() Document {
	return Document{
		Types: []TypeDef{
			{Name: "byte", Uint: 8},
			{Name: "bytes", VArray: "byte"},
			{Name: "quad", Array: "byte", Len: 4},
			{Name: "octet", Alias: "byte"},
			{Name: "Point", Record: &RecordDef{Fields: []FieldDef{
				{Name: "x", Type: "byte"},
				{Name: "y", Type: "u16"},
			}}},
		},
		Declarations: []string{"Adder"},
		Nodes: []Node{
			{ID: "start", Builtin: "entry", Alias: "begin", PrimaryOutput: "bytes", X: intp(2), Y: intp(4)},
			{ID: "pt", Struct: "Point", Inputs: []Port{{Name: "x", Type: "byte"}, {Name: "y", Type: "u16"}}, PrimaryOutput: "Point"},
			{ID: "add", Defined: "Adder", Strategy: "outputs-first", Inputs: []Port{{Type: "quad"}}, Outputs: []Port{{Name: "sum", Type: "octet[2][]"}}},
			{Defined: "Multiplier"},
		},
	}
}

func TestBuild(t *testing.T) {
	lib, entries, err := Build(sampleDocument())
	require.NoError(t, err)
	require.Len(t, entries, 4)

	start := entries[0]
	assert.Equal(t, "start", start.ID)
	assert.True(t, start.Placed)
	assert.Equal(t, 2, start.X)
	assert.Equal(t, 4, start.Y)
	assert.Equal(t, "begin", lib.DisplayName(start.Node))
	assert.Equal(t, "ENTRY", lib.NodeName(start.Node))
	out, ok := start.Node.Ports.PrimaryOutput()
	require.True(t, ok)
	assert.Equal(t, "u8[]", out.TypeName(lib.Types))

	pt := entries[1]
	assert.Equal(t, node.ClassStructInit, pt.Node.Class.Kind())
	assert.Equal(t, "Point", lib.DisplayName(pt.Node))
	assert.False(t, pt.Placed)
	assert.Equal(t, 2, pt.Node.Ports.InputCount())

	add := entries[2]
	assert.Equal(t, "Adder", lib.DisplayName(add.Node))
	assert.Equal(t, node.OutputsFirst, add.Node.Ports.Strategy())
	in, _ := add.Node.Ports.Input(0)
	assert.Equal(t, "u8[4]", in.TypeName(lib.Types))
	assert.False(t, in.HasName())
	sum, _ := add.Node.Ports.Output(0)
	assert.Equal(t, "u8[2][]", sum.TypeName(lib.Types))

	implicit := entries[3]
	_, err = uuid.Parse(implicit.ID)
	assert.NoError(t, err, "missing ids get a UUID")
	assert.Equal(t, "Multiplier", lib.DisplayName(implicit.Node))
	assert.Equal(t, []string{"Adder", "Multiplier"}, lib.Declarations())
}

func TestBuildInternsTypes(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "a", Builtin: "exit", PrimaryInput: "u8[]"},
		{ID: "b", Builtin: "exit", PrimaryInput: "u8[]"},
	}}
	lib, entries, err := Build(doc)
	require.NoError(t, err)

	a, _ := entries[0].Node.Ports.PrimaryInput()
	b, _ := entries[1].Node.Ports.PrimaryInput()
	assert.Equal(t, a.Type, b.Type)
	assert.Equal(t, 2, lib.Types.Len())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{"two variants", Document{Types: []TypeDef{{Name: "t", Uint: 8, Alias: "u8"}}}},
		{"no variant", Document{Types: []TypeDef{{Name: "t"}}}},
		{"forward reference", Document{Types: []TypeDef{{Name: "a", Alias: "b"}, {Name: "b", Uint: 8}}}},
		{"self reference", Document{Types: []TypeDef{{Name: "Loop", Record: &RecordDef{Fields: []FieldDef{{Name: "next", Type: "Loop"}}}}}}},
		{"shadowed integer", Document{Types: []TypeDef{{Name: "u8", Uint: 16}}}},
		{"duplicate type", Document{Types: []TypeDef{{Name: "t", Uint: 8}, {Name: "t", Uint: 16}}}},
		{"bad declaration", Document{Declarations: []string{"has space"}}},
		{"no classification", Document{Nodes: []Node{{ID: "x"}}}},
		{"two classifications", Document{Nodes: []Node{{ID: "x", Builtin: "entry", Defined: "Y"}}}},
		{"unknown builtin", Document{Nodes: []Node{{ID: "x", Builtin: "loop"}}}},
		{"unknown record", Document{Nodes: []Node{{ID: "x", Struct: "Nope"}}}},
		{"unknown port type", Document{Nodes: []Node{{ID: "x", Builtin: "entry", Outputs: []Port{{Type: "nope"}}}}}},
		{"bad strategy", Document{Nodes: []Node{{ID: "x", Builtin: "entry", Strategy: "diagonal"}}}},
		{"duplicate id", Document{Nodes: []Node{{ID: "x", Builtin: "entry"}, {ID: "x", Builtin: "exit"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Build(tt.doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidDocument), "got %v", err)
		})
	}
}

func TestParseTypeExpr(t *testing.T) {
	tests := []struct {
		expr    string
		want    string
		wantErr bool
	}{
		{"u8", "u8", false},
		{" u32 ", "u32", false},
		{"u8[4]", "u8[4]", false},
		{"u8[]", "u8[]", false},
		{"u1[3][]", "u1[3][]", false},
		{"u8[ 2 ]", "u8[2]", false},
		{"", "", true},
		{"u0", "", true},
		{"[4]", "", true},
		{"u8[4", "", true},
		{"u8[x]", "", true},
		{"u8[-1]", "", true},
		{"Unknown", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			pool := types.NewPool()
			id, err := ParseTypeExpr(pool, tt.expr)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidType), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, pool.DisplayName(id))
		})
	}
}

func TestParseTypeExprRoundTrip(t *testing.T) {
	pool := types.NewPool()
	u8, err := pool.UnsignedInt(8)
	require.NoError(t, err)
	point, err := pool.Define("Point", types.Field{Name: "x", Type: u8})
	require.NoError(t, err)
	arr, err := pool.FixedArray(point, 3)
	require.NoError(t, err)
	nested, err := pool.VariableArray(arr)
	require.NoError(t, err)

	display := pool.DisplayName(nested)
	assert.Equal(t, "Point[3][]", display)

	id, err := ParseTypeExpr(pool, display)
	require.NoError(t, err)
	assert.Equal(t, display, pool.DisplayName(id))
}

func TestResolverNames(t *testing.T) {
	pool := types.NewPool()
	res := NewResolver(pool)
	u8, err := res.Resolve("u8")
	require.NoError(t, err)

	require.NoError(t, res.Name("byte", u8))
	assert.Error(t, res.Name("byte", u8))
	assert.Error(t, res.Name("u16", u8))
	assert.Error(t, res.Name("ghost", types.TypeID(42)))

	id, err := res.Resolve("byte")
	require.NoError(t, err)
	assert.Equal(t, u8, id)

	again, err := res.Resolve("u8")
	require.NoError(t, err)
	assert.Equal(t, u8, again, "expressions are interned")
}

func TestNodeLabel(t *testing.T) {
	n := Node{ID: "n1"}
	assert.Equal(t, "n1", n.Label())
	n.Alias = "first"
	assert.Equal(t, "first", n.Label())
}
