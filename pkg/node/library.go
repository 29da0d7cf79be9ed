package node

import (
	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/types"
)

// unknownName is displayed for classifications that reference nothing.
const unknownName = "?"

// Library owns the type pool and the declared node-type names that node
// classifications refer to. It is the name-resolution context handed to
// renderers.
type Library struct {
	Types *types.Pool

	decls  []string
	byName map[string]DeclID
}

// NewLibrary creates a library over pool. A nil pool gets a fresh one.
func NewLibrary(pool *types.Pool) *Library {
	if pool == nil {
		pool = types.NewPool()
	}
	return &Library{Types: pool, byName: make(map[string]DeclID)}
}

// Declare registers a node-type name. Declaring an existing name returns the
// existing id.
func (l *Library) Declare(name string) (DeclID, error) {
	if err := errors.ValidateName(name); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidNode, err, "invalid node declaration %q", name)
	}
	if id, ok := l.byName[name]; ok {
		return id, nil
	}
	l.decls = append(l.decls, name)
	id := DeclID(len(l.decls))
	l.byName[name] = id
	return id, nil
}

// Declaration returns the name of a declaration.
func (l *Library) Declaration(id DeclID) (string, bool) {
	if id <= 0 || int(id) > len(l.decls) {
		return "", false
	}
	return l.decls[id-1], true
}

// LookupDeclaration finds a declaration by name.
func (l *Library) LookupDeclaration(name string) (DeclID, bool) {
	id, ok := l.byName[name]
	return id, ok
}

// Declarations returns the declared names in declaration order.
func (l *Library) Declarations() []string {
	return append([]string(nil), l.decls...)
}

// NodeName returns the name derived from the node's classification, ignoring
// any alias. Dangling references resolve to "?".
func (l *Library) NodeName(n *Node) string {
	switch n.Class.kind {
	case ClassBuiltin:
		return n.Class.builtin.Name()
	case ClassStructInit:
		if r, ok := l.Types.Record(n.Class.record); ok {
			return r.Name
		}
	case ClassDefined:
		if name, ok := l.Declaration(n.Class.decl); ok {
			return name
		}
	}
	return unknownName
}

// DisplayName returns the alias if present, otherwise NodeName.
func (l *Library) DisplayName(n *Node) string {
	if n.HasAlias() {
		return n.Alias
	}
	return l.NodeName(n)
}
