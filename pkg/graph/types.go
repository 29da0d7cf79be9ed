package graph

// =============================================================================
// Document - Node Graph Serialization
// =============================================================================

// Document is the canonical serialization format for node graphs.
type Document struct {
	Types        []TypeDef `json:"types,omitempty" yaml:"types,omitempty" toml:"types,omitempty"`
	Declarations []string  `json:"declarations,omitempty" yaml:"declarations,omitempty" toml:"declarations,omitempty"`
	Nodes        []Node    `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// =============================================================================
// TypeDef - Named Types
// =============================================================================

// TypeDef names a type. Exactly one of Uint, Array, VArray, Alias or Record
// must be set. Array and VArray hold element type expressions.
type TypeDef struct {
	Name   string     `json:"name" yaml:"name" toml:"name"`
	Uint   int        `json:"uint,omitempty" yaml:"uint,omitempty" toml:"uint,omitempty"`
	Array  string     `json:"array,omitempty" yaml:"array,omitempty" toml:"array,omitempty"`
	Len    int        `json:"len,omitempty" yaml:"len,omitempty" toml:"len,omitempty"` // Length of Array
	VArray string     `json:"varray,omitempty" yaml:"varray,omitempty" toml:"varray,omitempty"`
	Alias  string     `json:"alias,omitempty" yaml:"alias,omitempty" toml:"alias,omitempty"`
	Record *RecordDef `json:"record,omitempty" yaml:"record,omitempty" toml:"record,omitempty"`
}

// RecordDef lists the fields of a record type.
type RecordDef struct {
	Fields []FieldDef `json:"fields" yaml:"fields" toml:"fields"`
}

// FieldDef is a record field with a type expression.
type FieldDef struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Type string `json:"type" yaml:"type" toml:"type"`
}

// =============================================================================
// Node
// =============================================================================

// Node builtin kinds.
const (
	BuiltinEntry   = "entry"
	BuiltinExit    = "exit"
	BuiltinComment = "comment"
)

// Node is a serialized graph node. Exactly one of Builtin, Struct or Defined
// classifies it.
type Node struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Builtin string `json:"builtin,omitempty" yaml:"builtin,omitempty" toml:"builtin,omitempty"` // "entry", "exit" or "comment"
	Struct  string `json:"struct,omitempty" yaml:"struct,omitempty" toml:"struct,omitempty"`    // Record type name
	Defined string `json:"defined,omitempty" yaml:"defined,omitempty" toml:"defined,omitempty"` // Declared node type
	Alias   string `json:"alias,omitempty" yaml:"alias,omitempty" toml:"alias,omitempty"`

	Strategy      string `json:"strategy,omitempty" yaml:"strategy,omitempty" toml:"strategy,omitempty"`
	PrimaryInput  string `json:"primary_input,omitempty" yaml:"primary_input,omitempty" toml:"primary_input,omitempty"`
	PrimaryOutput string `json:"primary_output,omitempty" yaml:"primary_output,omitempty" toml:"primary_output,omitempty"`
	Inputs        []Port `json:"inputs,omitempty" yaml:"inputs,omitempty" toml:"inputs,omitempty"`
	Outputs       []Port `json:"outputs,omitempty" yaml:"outputs,omitempty" toml:"outputs,omitempty"`

	X *int `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y *int `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
}

// Port is a serialized non-primary port.
type Port struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Type string `json:"type" yaml:"type" toml:"type"`
}

// Label returns the alias if set, otherwise the id.
func (n *Node) Label() string {
	if n.Alias != "" {
		return n.Alias
	}
	return n.ID
}
