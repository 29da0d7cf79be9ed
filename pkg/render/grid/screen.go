package grid

import "github.com/gdamore/tcell/v2"

// ScreenGrid adapts a tcell.Screen to the Grid interface.
type ScreenGrid struct {
	Screen tcell.Screen
}

// NewScreenGrid wraps s.
func NewScreenGrid(s tcell.Screen) *ScreenGrid {
	return &ScreenGrid{Screen: s}
}

// Size implements Grid.
func (g *ScreenGrid) Size() Size {
	w, h := g.Screen.Size()
	return Size{Width: w, Height: h}
}

// SetContent implements Grid.
func (g *ScreenGrid) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	w, h := g.Screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	g.Screen.SetContent(x, y, mainc, combc, style)
}
