package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/analogue/pkg/graph"
	"github.com/matzehuels/analogue/pkg/node"
	"github.com/matzehuels/analogue/pkg/render/grid"
	"github.com/matzehuels/analogue/pkg/render/nodeview"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	nodes   []string // node ids to render (all if empty)
	noHints bool     // hide port type hints
	color   string   // color mode: auto, always, never
}

// renderCommand creates the render command for drawing nodes.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw nodes at their minimum size",
		Long: `Draw every node of a document (or the nodes selected with --node) at the
smallest size that fits its name, ports and type hints.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("color") {
				opts.color = c.Config.Output.Color
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.nodes, "node", "n", nil, "node id to render (repeatable)")
	cmd.Flags().BoolVar(&opts.noHints, "no-hints", false, "hide port type hints")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "color output: auto, always, never")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}
	entries, err := doc.selectEntries(opts.nodes)
	if err != nil {
		return err
	}
	renderer, err := outputRenderer(c.out, opts.color)
	if err != nil {
		return err
	}

	display := c.displayOptions(opts.noHints)
	view := nodeview.New(doc.lib, &display)
	width := terminalWidth(c.out)

	for i, e := range entries {
		view.Bind(e.Node)
		buf, err := view.Buffer()
		if err != nil {
			return fmt.Errorf("node %s: %w", e.ID, err)
		}
		if buf.Size().Width > width {
			printWarning(c.out, "node %s is %d cells wide, terminal has %d", e.ID, buf.Size().Width, width)
		}

		if i > 0 {
			fmt.Fprintln(c.out)
		}
		writeNodeHeader(c.out, renderer, doc.lib, e, buf.Size())
		fmt.Fprintln(c.out, formatBuffer(buf, renderer))
	}
	view.Release()
	return nil
}

// displayOptions merges the config file with the --no-hints flag.
func (c *CLI) displayOptions(noHints bool) nodeview.DisplayOptions {
	opts := c.Config.DisplayOptions()
	if noHints {
		opts.ShowTypeHints = false
	}
	return opts
}

func writeNodeHeader(w io.Writer, r *lipgloss.Renderer, lib *node.Library, e graph.Entry, size grid.Size) {
	id, class, dims := e.ID, classLabel(lib, e.Node), size.String()
	if r != nil {
		id = r.NewStyle().Inherit(StyleTitle).Render(id)
		class = r.NewStyle().Inherit(StyleDim).Render(class)
		dims = r.NewStyle().Inherit(StyleNumber).Render(dims)
	}
	fmt.Fprintln(w, id+"  "+class+"  "+dims)
}

// classLabel describes a node's classification, e.g. "struct Point".
func classLabel(lib *node.Library, n *node.Node) string {
	return n.Class.Kind().String() + " " + lib.NodeName(n)
}
