package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/graph"
	"github.com/matzehuels/analogue/pkg/node"
	"github.com/matzehuels/analogue/pkg/render/grid"
	"github.com/matzehuels/analogue/pkg/render/nodeview"
)

var (
	previewHeaderStyle = tcell.StyleDefault.Reverse(true)
	previewErrorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// previewer is a full-screen node viewer drawing straight onto a tcell screen.
// Single mode centers one node; canvas mode draws every placed node at its
// document coordinates.
type previewer struct {
	screen  tcell.Screen
	grid    *grid.ScreenGrid
	lib     *node.Library
	entries []graph.Entry
	display *nodeview.DisplayOptions
	view    *nodeview.Renderer
	logger  *log.Logger

	index  int
	canvas bool
}

func newPreviewer(screen tcell.Screen, lib *node.Library, entries []graph.Entry, display nodeview.DisplayOptions, logger *log.Logger) *previewer {
	p := &previewer{
		screen:  screen,
		grid:    grid.NewScreenGrid(screen),
		lib:     lib,
		entries: entries,
		display: &display,
		logger:  logger,
	}
	p.view = nodeview.New(lib, p.display)
	return p
}

// run draws and handles events until the user quits or ctx is done. The
// screen must already be initialized.
func (p *previewer) run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = p.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	p.draw()
	for {
		switch ev := p.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			p.screen.Sync()
			p.draw()
		case *tcell.EventKey:
			if !p.handleKey(ev) {
				return nil
			}
			p.draw()
		}
	}
}

// handleKey applies a key press and reports whether the viewer keeps running.
func (p *previewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight, tcell.KeyDown:
		p.step(1)
	case tcell.KeyLeft, tcell.KeyUp:
		p.step(-1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'n':
			p.step(1)
		case 'p':
			p.step(-1)
		case 't':
			p.display.ShowTypeHints = !p.display.ShowTypeHints
			p.logger.Debug("toggled type hints", "show", p.display.ShowTypeHints)
		case 'c':
			p.canvas = !p.canvas
		}
	}
	return true
}

func (p *previewer) step(delta int) {
	if len(p.entries) == 0 {
		return
	}
	p.index = (p.index + delta + len(p.entries)) % len(p.entries)
}

func (p *previewer) draw() {
	p.screen.Clear()
	if p.canvas {
		p.drawCanvas()
	} else {
		p.drawSingle()
	}
	p.screen.Show()
}

func (p *previewer) drawSingle() {
	if len(p.entries) == 0 {
		p.header("no nodes")
		return
	}
	e := p.entries[p.index]
	p.view.Bind(e.Node)
	size, err := p.view.MinimumSize()
	if err != nil {
		p.message(err.Error())
		return
	}
	p.header(fmt.Sprintf(" %s  %s  %s  [%d/%d]  n/p next  t hints  c canvas  q quit",
		e.ID, classLabel(p.lib, e.Node), size, p.index+1, len(p.entries)))

	screen := p.grid.Size()
	x := max((screen.Width-size.Width)/2, 0)
	y := max((screen.Height-1-size.Height)/2, 0) + 1
	if err := p.view.Render(grid.RectAt(x, y, size), p.grid); err != nil {
		p.message(err.Error())
	}
}

func (p *previewer) drawCanvas() {
	placed := 0
	for _, e := range p.entries {
		if !e.Placed {
			continue
		}
		placed++
		p.view.Bind(e.Node)
		size, err := p.view.MinimumSize()
		if err != nil {
			p.logger.Debug("skipping node", "node", e.ID, "error", err)
			continue
		}
		if err := p.view.Render(grid.RectAt(e.X, e.Y+1, size), p.grid); err != nil {
			p.logger.Debug("skipping node", "node", e.ID, "error", err)
		}
	}
	p.header(fmt.Sprintf(" canvas  %d/%d placed  t hints  c single  q quit", placed, len(p.entries)))
}

// header fills the first row with text.
func (p *previewer) header(text string) {
	width := p.grid.Size().Width
	buf := grid.NewBuffer(width, 1)
	for x := range width {
		buf.SetCell(x, 0, ' ', previewHeaderStyle)
	}
	buf.SetString(0, 0, text, previewHeaderStyle)
	buf.Draw(p.grid, grid.Position{})
}

// message shows text on the last row.
func (p *previewer) message(text string) {
	size := p.grid.Size()
	buf := grid.NewBuffer(size.Width, 1)
	buf.SetString(0, 0, text, previewErrorStyle)
	buf.Draw(p.grid, grid.Position{Y: size.Height - 1})
}

// =============================================================================
// Command
// =============================================================================

// previewCommand creates the preview command, a full-screen node viewer.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		noHints bool
		canvas  bool
		nodes   []string
	)

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "View nodes full-screen",
		Long: `Open a full-screen viewer that draws one node at a time, or every node with
x/y coordinates at its position (--canvas).

Keys: n/p or arrows cycle nodes, t toggles type hints, c toggles canvas mode,
q or esc quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := loadDocument(ctx, args[0])
			if err != nil {
				return err
			}
			entries, err := doc.selectEntries(nodes)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "open terminal")
			}
			if err := screen.Init(); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "open terminal")
			}
			defer screen.Fini()

			p := newPreviewer(screen, doc.lib, entries, c.displayOptions(noHints), loggerFromContext(ctx))
			p.canvas = canvas
			return p.run(ctx)
		},
	}
	cmd.Flags().BoolVar(&noHints, "no-hints", false, "start with port type hints hidden")
	cmd.Flags().BoolVar(&canvas, "canvas", false, "start in canvas mode")
	cmd.Flags().StringSliceVarP(&nodes, "node", "n", nil, "node id to include (repeatable)")
	return cmd
}
