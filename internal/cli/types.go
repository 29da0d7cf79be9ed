package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/analogue/pkg/types"
)

// typesCommand creates the types command, which lists a document's type pool.
func (c *CLI) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types [file]",
		Short: "List the types used by a document",
		Long: `List every entry of the document's type pool in allocation order, with its
kind, display name and details. Structurally equal types share one entry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTypes(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runTypes(ctx context.Context, path string) error {
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}
	pool := doc.lib.Types

	rows := make([][]string, 0, pool.Len())
	for _, id := range pool.IDs() {
		t, _ := pool.Get(id)
		rows = append(rows, []string{
			strconv.Itoa(int(id)),
			t.Kind.String(),
			pool.DisplayName(id),
			typeDetail(pool, t),
		})
	}

	fmt.Fprintln(c.out, newTable("ID", "Kind", "Name", "Detail").Rows(rows...).Render())
	printDetail(c.out, "%d types, %d declarations", pool.Len(), len(doc.lib.Declarations()))
	return nil
}

// typeDetail summarizes the payload of t.
func typeDetail(pool *types.Pool, t types.Type) string {
	switch t.Kind {
	case types.KindUnsignedInt:
		return fmt.Sprintf("%d bits", t.Bits)
	case types.KindFixedArray:
		return fmt.Sprintf("%d × %s", t.Len, pool.DisplayName(t.Elem))
	case types.KindVariableArray:
		return "of " + pool.DisplayName(t.Elem)
	case types.KindAlias:
		return "→ " + pool.DisplayName(t.Elem)
	case types.KindDefined:
		fields := make([]string, len(t.Record.Fields))
		for i, f := range t.Record.Fields {
			fields[i] = f.Name + ": " + pool.DisplayName(f.Type)
		}
		return "{" + strings.Join(fields, ", ") + "}"
	}
	return ""
}
