// Package types provides the value-type system used to annotate node ports.
//
// # Overview
//
// A [Type] describes the shape of a value flowing through a port: an unsigned
// integer of some bit width, a fixed or variable array of another type, a
// transparent alias, or a user-defined record. Types are stored in a [Pool]
// and addressed by [TypeID]. Ports and nodes hold ids, never pointers, so a
// pool can be shared read-only by every node of a graph.
//
// # Construction
//
// Composite constructors only accept ids that already exist in the same pool.
// Every child therefore precedes its parent, which makes cycles impossible
// to express:
//
//	pool := types.NewPool()
//	u8, _ := pool.UnsignedInt(8)
//	bytes, _ := pool.VariableArray(u8)
//	point, _ := pool.Define("Point",
//	    types.Field{Name: "x", Type: u8},
//	    types.Field{Name: "y", Type: u8},
//	)
//
// # Display
//
// [Pool.DisplayName] produces the canonical type-hint string painted next to
// port markers:
//
//	u8          UnsignedInt(8)
//	u8[4]       FixedArray(u8, 4)
//	u8[]        VariableArray(u8)
//	Point       Defined(Point)
//
// Aliases display as their target. DisplayName is pure and total: an unknown
// id displays as "?".
//
// # Concurrency
//
// A Pool is safe for concurrent reads but not concurrent writes.
package types
