// Package nodeview measures and paints graph nodes into a character grid.
//
// # Anatomy
//
// A node is drawn as a bordered box with one spare column on each side for
// port markers:
//
//	 ┏━━━━━━━━━━━┓
//	◈┫u8   _ u8[]┣◈   name row: primary ports, centered name
//	 ┣┄┄┄┄┄┄┄┄┄┄┄┫    separator, only with non-primary ports
//	◈┫u16        ┃    non-primary ports, one row per slot
//	 ┗━━━━━━━━━━━┛
//
// Struct-initialization nodes use the double border set; every other node
// uses the thick set. Type hints (the display string of each port's type)
// are shown next to the port when [DisplayOptions.ShowTypeHints] is set.
//
// # Renderer
//
// A [Renderer] is bound to at most one node at a time. [Renderer.MinimumSize]
// computes the smallest area the bound node can be painted into and caches
// the result; [Renderer.Render] paints into any area at least that large.
//
//	r := nodeview.New(lib, nil)
//	r.Bind(n)
//	size, err := r.MinimumSize()
//	buf := grid.NewBuffer(size.Width, size.Height)
//	err = r.Render(buf.Area(), buf)
//
// The cache holds a single entry. Binding (even the same node again),
// releasing and [Renderer.Invalidate] clear it. The entry also stores a
// fingerprint of the node's alias, classification, ports and the display
// options, so a node edited in place is re-measured on the next call.
//
// A Renderer is not safe for concurrent use. Distinct renderers share
// nothing.
package nodeview
