package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// ANSI renders the buffer as text with each run of equally styled cells
// wrapped in the matching lipgloss style. A nil renderer uses lipgloss's
// default renderer, which downgrades or drops colors to suit the output.
func ANSI(b *Buffer, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	lines := make([]string, b.height)
	for y := range lines {
		var (
			sb  strings.Builder
			run strings.Builder
			cur tcell.Style
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(toLipgloss(r, cur).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.Continuation {
				continue
			}
			if c.Style != cur {
				flush()
				cur = c.Style
			}
			run.WriteRune(c.Rune)
			for _, r := range c.Combining {
				run.WriteRune(r)
			}
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func toLipgloss(r *lipgloss.Renderer, s tcell.Style) lipgloss.Style {
	fg, bg, attrs := s.Decompose()
	out := r.NewStyle()
	if c, ok := hexColor(fg); ok {
		out = out.Foreground(c)
	}
	if c, ok := hexColor(bg); ok {
		out = out.Background(c)
	}
	return out.
		Bold(attrs&tcell.AttrBold != 0).
		Faint(attrs&tcell.AttrDim != 0).
		Italic(attrs&tcell.AttrItalic != 0).
		Underline(attrs&tcell.AttrUnderline != 0).
		Reverse(attrs&tcell.AttrReverse != 0).
		Blink(attrs&tcell.AttrBlink != 0).
		Strikethrough(attrs&tcell.AttrStrikeThrough != 0)
}

func hexColor(c tcell.Color) (lipgloss.Color, bool) {
	h := c.Hex()
	if h < 0 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%06x", h)), true
}
