package node

import (
	"fmt"
	"strings"

	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/types"
)

// =============================================================================
// Classification
// =============================================================================

// BuiltinKind enumerates the node kinds provided by the editor itself.
type BuiltinKind uint8

const (
	Entry BuiltinKind = iota
	Exit
	Comment
)

// Name returns the literal name of the builtin kind.
func (b BuiltinKind) Name() string {
	switch b {
	case Entry:
		return "ENTRY"
	case Exit:
		return "EXIT"
	case Comment:
		return "COMMENT"
	default:
		return "?"
	}
}

// ParseBuiltin parses a builtin kind name, case-insensitively.
func ParseBuiltin(s string) (BuiltinKind, error) {
	for _, k := range []BuiltinKind{Entry, Exit, Comment} {
		if strings.EqualFold(s, k.Name()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown builtin node %q", s)
}

// ClassKind identifies the variant of a Classification.
type ClassKind uint8

const (
	ClassBuiltin ClassKind = iota
	ClassStructInit
	ClassDefined
)

func (k ClassKind) String() string {
	switch k {
	case ClassBuiltin:
		return "builtin"
	case ClassStructInit:
		return "struct"
	case ClassDefined:
		return "defined"
	default:
		return "unknown"
	}
}

// DeclID indexes a declared node-type name in a Library. Like type ids it
// is 1-based; zero never refers to a declaration.
type DeclID int32

// Classification is the type of a node. Construct it with Builtin,
// StructInitialization or Defined.
type Classification struct {
	kind    ClassKind
	builtin BuiltinKind
	record  types.TypeID
	decl    DeclID
}

// Builtin classifies an editor-provided node.
func Builtin(k BuiltinKind) Classification {
	return Classification{kind: ClassBuiltin, builtin: k}
}

// StructInitialization classifies a node that builds a value of the given
// defined record type.
func StructInitialization(record types.TypeID) Classification {
	return Classification{kind: ClassStructInit, record: record}
}

// Defined classifies a node of a user-declared node type.
func Defined(decl DeclID) Classification {
	return Classification{kind: ClassDefined, decl: decl}
}

// Kind returns the variant.
func (c Classification) Kind() ClassKind { return c.kind }

// BuiltinKind returns the builtin kind for ClassBuiltin classifications.
func (c Classification) BuiltinKind() (BuiltinKind, bool) {
	return c.builtin, c.kind == ClassBuiltin
}

// Record returns the record type for ClassStructInit classifications.
func (c Classification) Record() (types.TypeID, bool) {
	return c.record, c.kind == ClassStructInit
}

// Declaration returns the declaration for ClassDefined classifications.
func (c Classification) Declaration() (DeclID, bool) {
	return c.decl, c.kind == ClassDefined
}

// =============================================================================
// Node
// =============================================================================

// Node is the identity and port layout of a single graph node.
type Node struct {
	Class Classification
	Alias string
	Ports PortConfiguration
}

// New creates a node with no alias and no ports.
func New(class Classification) *Node {
	return &Node{Class: class}
}

// SetAlias sets the display alias. An empty alias is rejected; use ClearAlias.
func (n *Node) SetAlias(alias string) error {
	if err := errors.ValidateAlias(alias); err != nil {
		return err
	}
	n.Alias = alias
	return nil
}

// ClearAlias removes the alias.
func (n *Node) ClearAlias() { n.Alias = "" }

// HasAlias reports whether an alias is set.
func (n *Node) HasAlias() bool { return n.Alias != "" }
