package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/types"
)

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, "ENTRY", Entry.Name())
	assert.Equal(t, "EXIT", Exit.Name())
	assert.Equal(t, "COMMENT", Comment.Name())

	k, err := ParseBuiltin("exit")
	require.NoError(t, err)
	assert.Equal(t, Exit, k)

	_, err = ParseBuiltin("loop")
	assert.Error(t, err)
}

func TestLibraryNames(t *testing.T) {
	pool := types.NewPool()
	b := u8(t, pool)
	point, err := pool.Define("Point", types.Field{Name: "x", Type: b}, types.Field{Name: "y", Type: b})
	require.NoError(t, err)
	alias, err := pool.Alias(point)
	require.NoError(t, err)

	lib := NewLibrary(pool)
	adder, err := lib.Declare("Adder")
	require.NoError(t, err)

	again, err := lib.Declare("Adder")
	require.NoError(t, err)
	assert.Equal(t, adder, again)

	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"builtin", New(Builtin(Entry)), "ENTRY"},
		{"struct", New(StructInitialization(point)), "Point"},
		{"struct through alias", New(StructInitialization(alias)), "Point"},
		{"struct of non-record", New(StructInitialization(b)), "?"},
		{"defined", New(Defined(adder)), "Adder"},
		{"dangling declaration", New(Defined(99)), "?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lib.NodeName(tt.node))
			assert.Equal(t, tt.want, lib.DisplayName(tt.node))
		})
	}
}

func TestAlias(t *testing.T) {
	lib := NewLibrary(nil)
	n := New(Builtin(Exit))

	require.NoError(t, n.SetAlias("done"))
	assert.True(t, n.HasAlias())
	assert.Equal(t, "done", lib.DisplayName(n))
	assert.Equal(t, "EXIT", lib.NodeName(n))

	err := n.SetAlias("")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidNode))
	assert.Equal(t, "done", n.Alias)

	n.ClearAlias()
	assert.False(t, n.HasAlias())
	assert.Equal(t, "EXIT", lib.DisplayName(n))
}

func TestDeclareRejectsBadNames(t *testing.T) {
	lib := NewLibrary(nil)
	for _, name := range []string{"", "has space", "arr[]"} {
		_, err := lib.Declare(name)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidNode), "Declare(%q) = %v", name, err)
	}
	_, ok := lib.Declaration(0)
	assert.False(t, ok)
	assert.Empty(t, lib.Declarations())
}

func TestClassificationAccessors(t *testing.T) {
	c := StructInitialization(types.TypeID(4))
	assert.Equal(t, ClassStructInit, c.Kind())
	id, ok := c.Record()
	assert.True(t, ok)
	assert.Equal(t, types.TypeID(4), id)
	_, ok = c.Declaration()
	assert.False(t, ok)
	_, ok = c.BuiltinKind()
	assert.False(t, ok)
}
