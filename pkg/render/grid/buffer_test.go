package grid

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferBlank(t *testing.T) {
	b := NewBuffer(3, 2)
	assert.Equal(t, Size{3, 2}, b.Size())
	assert.Equal(t, []string{"   ", "   "}, b.Lines())
	assert.Equal(t, "   \n   ", b.String())

	empty := NewBuffer(-1, 4)
	assert.Equal(t, Size{0, 4}, empty.Size())
	assert.Equal(t, "", empty.Line(0))
}

func TestSetCellClips(t *testing.T) {
	b := NewBuffer(2, 1)
	b.SetCell(-1, 0, 'x', tcell.StyleDefault)
	b.SetCell(2, 0, 'x', tcell.StyleDefault)
	b.SetCell(0, 1, 'x', tcell.StyleDefault)
	b.SetCell(1, 0, 'y', tcell.StyleDefault)
	assert.Equal(t, " y", b.Line(0))
	assert.Equal(t, "", b.Line(5))
	assert.Equal(t, ' ', b.Cell(9, 9).Rune)
}

func TestSetString(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		x       int
		text    string
		want    string
		advance int
	}{
		{"ascii", 6, 1, "abc", " abc  ", 3},
		{"clipped", 4, 2, "abc", "  ab", 2},
		{"wide", 5, 0, "日本", "日本 ", 4},
		{"wide straddles edge", 3, 0, "日本", "日 ", 2},
		{"combining mark kept", 3, 0, "e\u0301x", "e\u0301x ", 2},
		{"emoji modifier", 3, 0, "👍🏽", "👍🏽 ", 2},
		{"zwj sequence", 3, 0, "👨\u200d👩\u200d👧", "👨\u200d👩\u200d👧 ", 2},
		{"flag", 3, 0, "🇯🇵", "🇯🇵 ", 2},
		{"flag straddles edge", 3, 2, "🇯🇵", "   ", 0},
		{"zero width dropped", 3, 0, "a\u200bb", "ab ", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.width, 1)
			n := b.SetString(tt.x, 0, tt.text, tcell.StyleDefault)
			assert.Equal(t, tt.advance, n)
			assert.Equal(t, tt.want, b.Line(0))
		})
	}
}

func TestWideRuneContinuation(t *testing.T) {
	b := NewBuffer(4, 1)
	b.SetString(0, 0, "日", tcell.StyleDefault)
	assert.False(t, b.Cell(0, 0).Continuation)
	assert.True(t, b.Cell(1, 0).Continuation)

	// Overwriting the trailing half releases the lead cell.
	b.SetCell(1, 0, 'x', tcell.StyleDefault)
	assert.Equal(t, " x  ", b.Line(0))
	assert.False(t, b.Cell(1, 0).Continuation)
}

func TestClusterCells(t *testing.T) {
	b := NewBuffer(4, 1)
	b.SetString(0, 0, "e\u0301👍🏽", tcell.StyleDefault)

	assert.Equal(t, 'e', b.Cell(0, 0).Rune)
	assert.Equal(t, []rune{'\u0301'}, b.Cell(0, 0).Combining)
	assert.Equal(t, '👍', b.Cell(1, 0).Rune)
	assert.Equal(t, []rune{'🏽'}, b.Cell(1, 0).Combining)
	assert.True(t, b.Cell(2, 0).Continuation)

	// Overwriting the lead cell drops the combining runes with it.
	b.SetCell(1, 0, 'x', tcell.StyleDefault)
	assert.Nil(t, b.Cell(1, 0).Combining)
	assert.Equal(t, "e\u0301x  ", b.Line(0))
}

func TestStringWidthMatchesDrawString(t *testing.T) {
	for _, s := range []string{"abc", "日本", "e\u0301", "👍🏽", "👨\u200d👩\u200d👧", "🇯🇵", "a\u200bb", "┏━◈┄"} {
		b := NewBuffer(10, 1)
		n := DrawString(b, 0, 0, s, tcell.StyleDefault)
		assert.Equal(t, StringWidth(s), n, "%q", s)
		assert.Equal(t, n, StringWidth(strings.TrimRight(b.Line(0), " ")), "%q", s)
	}
	assert.Equal(t, 1, StringWidth("┃"), "box drawing is narrow in every locale")
	assert.Equal(t, 2, StringWidth("🇯🇵"))
}

func TestClear(t *testing.T) {
	b := NewBuffer(2, 2)
	b.SetString(0, 1, "ab", tcell.StyleDefault.Bold(true))
	b.Clear()
	assert.Equal(t, "  \n  ", b.String())
	assert.Equal(t, tcell.StyleDefault, b.Cell(0, 1).Style)
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 5, Height: 3}
	assert.Equal(t, 7, r.Right())
	assert.Equal(t, 4, r.Bottom())
	assert.True(t, r.Contains(Position{2, 1}))
	assert.False(t, r.Contains(Position{7, 1}))
	assert.Equal(t, Rect{X: 4, Y: 2, Width: 1, Height: 1}, r.Inner(2, 1))
	assert.True(t, r.Inner(3, 3).Empty())
	assert.True(t, r.Fits(Size{5, 3}))
	assert.False(t, r.Fits(Size{6, 3}))
	assert.Equal(t, "5x3", r.Size().String())
	assert.Equal(t, r, RectAt(2, 1, Size{5, 3}))
}

func TestDrawOntoScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(10, 3)

	b := NewBuffer(4, 2)
	b.SetString(0, 0, "┏━━┓", tcell.StyleDefault)
	b.SetString(0, 1, "┗━━┛", tcell.StyleDefault.Bold(true))

	g := NewScreenGrid(screen)
	assert.Equal(t, Size{10, 3}, g.Size())
	b.Draw(g, Position{X: 8, Y: 1})
	screen.Show()

	r, _, _, _ := screen.GetContent(8, 1)
	assert.Equal(t, '┏', r)
	r, _, _, _ = screen.GetContent(9, 2)
	assert.Equal(t, '━', r)
	_, _, style, _ := screen.GetContent(8, 2)
	_, _, attrs := style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrBold)

	DrawString(g, 0, 0, "e\u0301", tcell.StyleDefault)
	screen.Show()
	r, combc, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'e', r)
	assert.Equal(t, []rune{'\u0301'}, combc)
}

func TestANSIPlainRoundTrip(t *testing.T) {
	b := NewBuffer(5, 2)
	b.SetString(0, 0, "ab", tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)))
	b.SetString(1, 1, "日", tcell.StyleDefault)

	out := ANSI(b, nil)
	// Whatever the color profile, stripping escapes yields the plain text.
	assert.Equal(t, b.String(), stripANSI(out))
}

func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
