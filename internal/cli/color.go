package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/matzehuels/analogue/pkg/config"
	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/render/grid"
)

// defaultTermWidth is assumed when the output is not a terminal.
const defaultTermWidth = 80

// outputRenderer returns the lipgloss renderer for w in the given color mode,
// or nil when output should be plain text.
func outputRenderer(w io.Writer, mode string) (*lipgloss.Renderer, error) {
	switch mode {
	case config.ColorNever:
		return nil, nil
	case config.ColorAlways:
		return lipgloss.NewRenderer(w, termenv.WithProfile(termenv.TrueColor)), nil
	case config.ColorAuto, "":
		if !isTerminal(w) {
			return nil, nil
		}
		return lipgloss.NewRenderer(w), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "invalid color mode %q (must be auto, always or never)", mode)
}

// formatBuffer renders buf for printing with r, or as plain text when r is nil.
func formatBuffer(buf *grid.Buffer, r *lipgloss.Renderer) string {
	if r == nil {
		return buf.String()
	}
	return grid.ANSI(buf, r)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w if it is a terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
