package nodeview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/matzehuels/analogue/pkg/node"
	"github.com/matzehuels/analogue/pkg/render/grid"
)

// padding is the number of columns outside the name/hint area: a marker
// column and a border column on each side.
const padding = 4

// layout is the resolved text content of a node for one measure or paint.
type layout struct {
	name    string
	ports   *node.PortConfiguration
	lines   lineSet
	hints   bool
	inHint  func(node.Slot) string
	outHint func(node.Slot) string
}

func (r *Renderer) layout() *layout {
	n := r.node
	l := &layout{
		name:  r.lib.DisplayName(n),
		ports: &n.Ports,
		lines: thickSet,
		hints: r.opts.ShowTypeHints,
	}
	if n.Class.Kind() == node.ClassStructInit {
		l.lines = doubleSet
	}

	pool := r.lib.Types
	l.inHint = func(s node.Slot) string {
		if p, ok := n.Ports.Input(s); ok && l.hints {
			return p.TypeName(pool)
		}
		return ""
	}
	l.outHint = func(s node.Slot) string {
		if p, ok := n.Ports.Output(s); ok && l.hints {
			return p.TypeName(pool)
		}
		return ""
	}
	return l
}

func formatName(name string) string {
	return " " + name + " "
}

// =============================================================================
// Measuring
// =============================================================================

func (l *layout) size() grid.Size {
	return grid.Size{Width: padding + l.contentWidth(), Height: l.height()}
}

func (l *layout) height() int {
	h := node.MinimumNodeHeight
	if l.ports.IsNotOnlyPrimaries() {
		// separator plus one row per layer
		h += l.ports.Layers() + 1
	}
	return h
}

// contentWidth is the width between the two border columns.
func (l *layout) contentWidth() int {
	nameWidth := grid.StringWidth(formatName(l.name))
	if !l.hints || l.ports.IsEmpty() {
		return nameWidth
	}

	in := grid.StringWidth(l.inHint(node.PrimarySlot))
	out := grid.StringWidth(l.outHint(node.PrimarySlot))
	width := nameWidth + 2*max(in, out)

	if l.ports.Strategy() == node.Inline {
		rows := max(l.ports.InputCount(), l.ports.OutputCount())
		for i := 0; i < rows; i++ {
			s := node.Slot(i)
			in := grid.StringWidth(l.inHint(s))
			out := grid.StringWidth(l.outHint(s))
			row := 2 * max(in, out)
			if i < l.ports.InputCount() && i < l.ports.OutputCount() {
				row++
			}
			width = max(width, row)
		}
		return width
	}

	for i := 0; i < l.ports.InputCount(); i++ {
		width = max(width, grid.StringWidth(l.inHint(node.Slot(i))))
	}
	for i := 0; i < l.ports.OutputCount(); i++ {
		width = max(width, grid.StringWidth(l.outHint(node.Slot(i))))
	}
	return width
}

// =============================================================================
// Painting
// =============================================================================

func (l *layout) paint(area grid.Rect, g grid.Grid) {
	l.paintBorders(area, g)
	l.paintPorts(area, g)
	l.paintName(area, g)
}

func (l *layout) paintBorders(area grid.Rect, g grid.Grid) {
	left, right := area.X+1, area.Right()-2
	top, bottom := area.Y, area.Bottom()-1

	for x := left + 1; x < right; x++ {
		setRune(g, x, top, l.lines.horizontal, borderStyle)
		setRune(g, x, bottom, l.lines.horizontal, borderStyle)
	}
	for y := top + 1; y < bottom; y++ {
		setRune(g, left, y, l.lines.vertical, borderStyle)
		setRune(g, right, y, l.lines.vertical, borderStyle)
	}
	setRune(g, left, top, l.lines.topLeft, borderStyle)
	setRune(g, right, top, l.lines.topRight, borderStyle)
	setRune(g, left, bottom, l.lines.bottomLeft, borderStyle)
	setRune(g, right, bottom, l.lines.bottomRight, borderStyle)

	if !l.ports.IsNotOnlyPrimaries() {
		return
	}
	y := top + 2
	setRune(g, left, y, l.lines.verticalRight, borderStyle)
	for x := left + 1; x < right; x++ {
		setRune(g, x, y, separator, borderStyle)
	}
	setRune(g, right, y, l.lines.verticalLeft, borderStyle)
}

func (l *layout) paintPorts(area grid.Rect, g grid.Grid) {
	inX, outX := area.X, area.Right()-1

	paintInput := func(s node.Slot) {
		y := area.Y + l.ports.RowForSlot(s, false)
		setRune(g, inX, y, portMarker, markerStyle)
		setRune(g, inX+1, y, l.lines.verticalLeft, borderStyle)
		if hint := l.inHint(s); hint != "" {
			grid.DrawString(g, inX+2, y, hint, hintStyle)
		}
	}
	paintOutput := func(s node.Slot) {
		y := area.Y + l.ports.RowForSlot(s, true)
		setRune(g, outX, y, portMarker, markerStyle)
		setRune(g, outX-1, y, l.lines.verticalRight, borderStyle)
		if hint := l.outHint(s); hint != "" {
			grid.DrawString(g, outX-1-grid.StringWidth(hint), y, hint, hintStyle)
		}
	}

	if l.ports.HasPrimaryInput() {
		paintInput(node.PrimarySlot)
	}
	for i := 0; i < l.ports.InputCount(); i++ {
		paintInput(node.Slot(i))
	}
	if l.ports.HasPrimaryOutput() {
		paintOutput(node.PrimarySlot)
	}
	for i := 0; i < l.ports.OutputCount(); i++ {
		paintOutput(node.Slot(i))
	}
}

// paintName draws the padded name on the name row, inside a margin of two
// columns and one row. It is centered unless exactly one primary port is
// present, in which case it leans away from that port.
func (l *layout) paintName(area grid.Rect, g grid.Grid) {
	inner := area.Inner(2, 1)
	text := formatName(l.name)
	free := inner.Width - grid.StringWidth(text)

	var offset int
	switch in, out := l.ports.HasPrimaryInput(), l.ports.HasPrimaryOutput(); {
	case in && !out:
		offset = free
	case out && !in:
		offset = 0
	default:
		offset = free / 2
	}
	grid.DrawString(g, inner.X+max(offset, 0), area.Y+node.NameRow, text, nameStyle)
}

func setRune(g grid.Grid, x, y int, r rune, style tcell.Style) {
	g.SetContent(x, y, r, nil, style)
}
