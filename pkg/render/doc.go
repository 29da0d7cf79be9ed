// Package render groups the terminal rendering packages for node-graph nodes.
//
// # Overview
//
// Rendering is split in two layers:
//
//   - [grid]: a rectangular cell grid. [grid.Buffer] is an in-memory grid with
//     line extraction and ANSI export; [grid.ScreenGrid] paints directly onto
//     a tcell screen. Both satisfy [grid.Grid].
//   - [nodeview]: computes the minimum size of a bound node and paints it into
//     any [grid.Grid] area at least that large.
//
//	r := nodeview.New(lib, &nodeview.DisplayOptions{ShowTypeHints: true})
//	r.Bind(n)
//	size, _ := r.MinimumSize()
//	buf := grid.NewBuffer(size.Width, size.Height)
//	_ = r.Render(buf.Area(), buf)
//
// [grid]: github.com/matzehuels/analogue/pkg/render/grid
// [grid.Buffer]: github.com/matzehuels/analogue/pkg/render/grid#Buffer
// [grid.ScreenGrid]: github.com/matzehuels/analogue/pkg/render/grid#ScreenGrid
// [grid.Grid]: github.com/matzehuels/analogue/pkg/render/grid#Grid
// [nodeview]: github.com/matzehuels/analogue/pkg/render/nodeview
package render
