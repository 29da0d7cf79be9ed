package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/analogue/pkg/graph"
	"github.com/matzehuels/analogue/pkg/io"
)

// convertCommand creates the convert command, which rewrites a document in
// another format. The format of each file is taken from its extension.
func (c *CLI) convertCommand() *cobra.Command {
	var skipCheck bool

	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a document between JSON, YAML and TOML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), args[0], args[1], skipCheck)
		},
	}
	cmd.Flags().BoolVar(&skipCheck, "no-check", false, "skip building the document before writing")
	return cmd
}

func (c *CLI) runConvert(ctx context.Context, in, out string, skipCheck bool) error {
	sp := newSpinner(ctx, c.errOut, "Converting "+in).start()
	defer sp.stop()

	doc, err := io.ImportFile(in)
	if err != nil {
		return err
	}
	if !skipCheck {
		if _, _, err := graph.Build(doc); err != nil {
			return err
		}
	} else {
		printInfo(c.out, "Skipping document check")
	}
	if sp.cancelled() {
		return ctx.Err()
	}
	if err := io.ExportFile(out, doc); err != nil {
		return err
	}
	sp.stop()

	printSuccess(c.out, "Converted %d nodes", len(doc.Nodes))
	printFile(c.out, out)
	return nil
}
