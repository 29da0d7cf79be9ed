package grid

import "fmt"

// Position is a cell coordinate. X grows to the right, Y grows downward.
type Position struct {
	X, Y int
}

// Size is a width and height in cells.
type Size struct {
	Width, Height int
}

// String formats the size as WIDTHxHEIGHT.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Fits reports whether s is at least as large as min in both dimensions.
func (s Size) Fits(min Size) bool {
	return s.Width >= min.Width && s.Height >= min.Height
}

// Rect is an axis-aligned rectangle of cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// RectAt returns a rectangle of the given size anchored at x, y.
func RectAt(x, y int, s Size) Rect {
	return Rect{X: x, Y: y, Width: s.Width, Height: s.Height}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle has no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Fits reports whether the rectangle is at least as large as s.
func (r Rect) Fits(s Size) bool { return r.Size().Fits(s) }

// Inner shrinks the rectangle by mx columns on each side and my rows on the
// top and bottom. The result never has negative dimensions.
func (r Rect) Inner(mx, my int) Rect {
	inner := Rect{
		X:      r.X + mx,
		Y:      r.Y + my,
		Width:  r.Width - 2*mx,
		Height: r.Height - 2*my,
	}
	inner.Width = max(inner.Width, 0)
	inner.Height = max(inner.Height, 0)
	return inner
}

// StringWidth returns the number of cells s occupies: the sum of the widths
// of its grapheme clusters, exactly as DrawString and Buffer.SetString
// advance.
func StringWidth(s string) int {
	width := 0
	eachCluster(s, func(_ string, w int) bool {
		width += w
		return true
	})
	return width
}
