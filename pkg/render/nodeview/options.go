package nodeview

import "github.com/gdamore/tcell/v2"

// DisplayOptions controls optional decorations.
type DisplayOptions struct {
	// ShowTypeHints draws each port's type name next to its marker.
	ShowTypeHints bool
}

// DefaultDisplayOptions returns options with type hints enabled.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{ShowTypeHints: true}
}

// =============================================================================
// Glyphs
// =============================================================================

const (
	portMarker = '◈'
	separator  = '┄'
)

// lineSet holds the box-drawing runes of one border variant.
type lineSet struct {
	topLeft, topRight       rune
	bottomLeft, bottomRight rune
	horizontal, vertical    rune
	// verticalRight joins a vertical line to a line on its right (┣),
	// verticalLeft to a line on its left (┫).
	verticalRight, verticalLeft rune
}

var (
	thickSet = lineSet{
		topLeft: '┏', topRight: '┓',
		bottomLeft: '┗', bottomRight: '┛',
		horizontal: '━', vertical: '┃',
		verticalRight: '┣', verticalLeft: '┫',
	}
	doubleSet = lineSet{
		topLeft: '╔', topRight: '╗',
		bottomLeft: '╚', bottomRight: '╝',
		horizontal: '═', vertical: '║',
		verticalRight: '╠', verticalLeft: '╣',
	}
)

var (
	borderStyle = tcell.StyleDefault
	nameStyle   = tcell.StyleDefault.Bold(true)
	hintStyle   = tcell.StyleDefault.Dim(true)
	markerStyle = tcell.StyleDefault
)
