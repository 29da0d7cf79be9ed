package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/analogue/pkg/render/nodeview"
)

// sizeCommand creates the size command, which tabulates minimum node sizes.
func (c *CLI) sizeCommand() *cobra.Command {
	var noHints bool

	cmd := &cobra.Command{
		Use:   "size [file]",
		Short: "Show the minimum size of every node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSize(cmd.Context(), args[0], noHints)
		},
	}
	cmd.Flags().BoolVar(&noHints, "no-hints", false, "measure without port type hints")
	return cmd
}

func (c *CLI) runSize(ctx context.Context, path string, noHints bool) error {
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}

	display := c.displayOptions(noHints)
	view := nodeview.New(doc.lib, &display)
	defer view.Release()

	rows := make([][]string, 0, len(doc.entries))
	for _, e := range doc.entries {
		view.Bind(e.Node)
		size, err := view.MinimumSize()
		if err != nil {
			return fmt.Errorf("node %s: %w", e.ID, err)
		}
		ports := &e.Node.Ports
		rows = append(rows, []string{
			e.ID,
			doc.lib.DisplayName(e.Node),
			classLabel(doc.lib, e.Node),
			ports.Strategy().String(),
			strconv.Itoa(ports.InputCount() + boolInt(ports.HasPrimaryInput())),
			strconv.Itoa(ports.OutputCount() + boolInt(ports.HasPrimaryOutput())),
			size.String(),
		})
	}

	fmt.Fprintln(c.out, newTable("ID", "Name", "Class", "Strategy", "In", "Out", "Size").Rows(rows...).Render())
	printDetail(c.out, "%d nodes, type hints %s", len(rows), onOff(display.ShowTypeHints))
	return nil
}

// newTable creates a table with the CLI's header and border styles.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
