// Package node describes the identity and connection points of graph nodes.
//
// # Ports
//
// A [Port] is a typed connection point. Every node has at most one primary
// input and one primary output, drawn on the node's name row, plus ordered
// sequences of additional inputs and outputs. The index of a port within its
// sequence is its slot; slot order is insertion order.
//
// A [Strategy] decides how the two non-primary sequences are stacked:
//
//	Inline        input slot i and output slot i share a row
//	InputsFirst   every input row comes before every output row
//	OutputsFirst  every output row comes before every input row
//
// [PortConfiguration.RowForSlot] turns a slot into a row offset from the
// node's top border. Primaries are always on row 1.
//
// # Nodes
//
// A [Node] carries a [Classification] (builtin, struct initialization or a
// declared node type), an optional display alias and its ports. Names are
// resolved through a [Library], which owns the type pool and the declared
// node-type names that classifications refer to by index.
//
// Nodes, ports and libraries are plain values owned by the host graph model.
// Renderers borrow them for the duration of a single call.
package node
