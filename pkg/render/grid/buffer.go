package grid

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Cell is a single character cell. It holds one grapheme cluster: a base
// rune and the runes combined with it.
type Cell struct {
	Rune      rune
	Combining []rune
	Style     tcell.Style
	// Continuation marks a trailing cell of a wide character. Its Rune is unused.
	Continuation bool
}

var blank = Cell{Rune: ' ', Style: tcell.StyleDefault}

// Grid is a writable character-cell surface.
type Grid interface {
	// Size returns the grid dimensions.
	Size() Size
	// SetContent writes one character: a base rune plus the combining runes
	// of its grapheme cluster, as tcell.Screen does. Out-of-bounds writes are
	// ignored.
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// =============================================================================
// Buffer
// =============================================================================

// Buffer is an in-memory Grid. A fresh buffer is filled with spaces.
type Buffer struct {
	width, height int
	cells         []Cell
}

// NewBuffer allocates a width x height buffer. Negative dimensions are
// treated as zero.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{width: width, height: height, cells: make([]Cell, width*height)}
	b.Clear()
	return b
}

// Size implements Grid.
func (b *Buffer) Size() Size { return Size{Width: b.width, Height: b.height} }

// Area returns the rectangle covered by the buffer, anchored at the origin.
func (b *Buffer) Area() Rect { return Rect{Width: b.width, Height: b.height} }

// Clear resets every cell to an unstyled space.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Cell returns the cell at x, y. Out-of-bounds positions return a blank cell.
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blank
	}
	return b.cells[y*b.width+x]
}

// SetContent implements Grid. A wide character also claims the cells to its
// right.
func (b *Buffer) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	b.put(x, y, mainc, combc, style, clusterWidth(mainc, combc))
}

// SetCell writes a single rune.
func (b *Buffer) SetCell(x, y int, r rune, style tcell.Style) {
	b.SetContent(x, y, r, nil, style)
}

// SetString writes s starting at x, y and returns the number of columns
// advanced. Each grapheme cluster fills one cell, or two if wide. Zero-width
// clusters are dropped; a wide character that would straddle the right edge
// stops the write.
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) int {
	col := x
	eachCluster(s, func(cluster string, w int) bool {
		if w == 0 {
			return true
		}
		if col+w > b.width {
			return false
		}
		mainc, combc := splitCluster(cluster)
		b.put(col, y, mainc, combc, style, w)
		col += w
		return true
	})
	return col - x
}

func (b *Buffer) put(x, y int, mainc rune, combc []rune, style tcell.Style, w int) {
	if !b.inBounds(x, y) {
		return
	}
	w = max(w, 1)
	for i := 0; i < w && b.inBounds(x+i, y); i++ {
		b.release(x+i, y)
	}
	b.cells[y*b.width+x] = Cell{Rune: mainc, Combining: slices.Clone(combc), Style: style}
	for i := 1; i < w && b.inBounds(x+i, y); i++ {
		b.cells[y*b.width+x+i] = Cell{Rune: ' ', Style: style, Continuation: true}
	}
}

// release blanks every cell of the wide character that overlaps x, y.
func (b *Buffer) release(x, y int) {
	row := b.cells[y*b.width : (y+1)*b.width]
	head := x
	for head > 0 && row[head].Continuation {
		head--
	}
	if head == x && (x+1 >= b.width || !row[x+1].Continuation) {
		return
	}
	row[head] = blank
	for i := head + 1; i < b.width && row[i].Continuation; i++ {
		row[i] = blank
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// =============================================================================
// Text extraction
// =============================================================================

// Line returns row y as text, skipping continuation cells and keeping
// combining runes. Out-of-range rows return the empty string.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.Continuation {
			continue
		}
		sb.WriteRune(c.Rune)
		for _, r := range c.Combining {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Lines returns every row as text.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return lines
}

// String joins all rows with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Draw copies the buffer onto g with its origin at the given position, preserving styles.
func (b *Buffer) Draw(g Grid, at Position) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.Continuation {
				continue
			}
			g.SetContent(at.X+x, at.Y+y, c.Rune, c.Combining, c.Style)
		}
	}
}
