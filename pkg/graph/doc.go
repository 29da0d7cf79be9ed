// Package graph provides the serialization format for node-graph documents.
//
// A [Document] lists named types, declared node types and nodes. It is the
// on-disk form of the editor's host graph and is decoded by package io from
// JSON, YAML or TOML:
//
//	types:
//	  - {name: byte, uint: 8}
//	  - {name: bytes, varray: byte}
//	  - {name: Point, record: {fields: [{name: x, type: byte}, {name: y, type: byte}]}}
//	declarations: [Adder]
//	nodes:
//	  - id: start
//	    builtin: entry
//	    primary_output: bytes
//	  - id: add
//	    defined: Adder
//	    strategy: inputs-first
//	    inputs: [{name: lhs, type: u16}, {name: rhs, type: u16}]
//	    outputs: [{name: sum, type: u16}]
//
// # Type Expressions
//
// Wherever a type is expected, a document may use a type expression:
//
//	u8        unsigned integer of 8 bits
//	T[4]      fixed array of four T
//	T[]       variable array of T
//	name      a named type from the types section, or a record name
//
// [ParseTypeExpr] and [Resolver] turn expressions into pool entries.
// Display strings produced by the type pool parse back to an equivalent type.
//
// # Building
//
// [Build] converts a document into a [node.Library] and one [Entry] per node.
// Named types may refer to earlier entries only, so documents cannot describe
// recursive types. Defined nodes whose type is not listed under declarations
// are declared on first use. Nodes without an id receive a random UUID.
//
// Positions (x, y) are carried through to entries for hosts that place nodes
// on a canvas; they have no influence on a node's size or appearance.
package graph
