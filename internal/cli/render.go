package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	flowerrors "github.com/flowdeck/flowdeck/pkg/errors"
	"github.com/flowdeck/flowdeck/pkg/render"
	"github.com/flowdeck/flowdeck/pkg/store"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	importOpts
	format string // "dot" or "svg"
}

// renderCommand creates the render command: import a document and
// export the resulting graph as Graphviz DOT or SVG.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Export a diagram document as DOT or SVG",
		Long: `Import a diagram document and export the resulting graph.

The export honors the canonical style payload: node fill and stroke,
edge dash patterns, and the circle/diamond edge markers. Positions from
the input are pinned.

Examples:
  flowdeck render deck.xml --format svg -o deck.svg
  flowdeck render rows.csv --format dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "", "document kind (markup or tabular)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the diagram cache")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format (dot or svg)")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts, path string) error {
	ctx := withLogger(cmd.Context(), c.Logger)

	g, err := c.importInto(ctx, &opts.importOpts, path, store.New())
	if err != nil {
		return err
	}

	dot := render.ToDOT(g.Snapshot())

	var out []byte
	switch strings.ToLower(opts.format) {
	case "dot":
		out = []byte(dot)
	case "svg":
		svg, err := render.SVG(ctx, dot)
		if err != nil {
			return err
		}
		out = svg
	default:
		return flowerrors.New(flowerrors.ErrCodeInvalidFormat, "invalid format: %q (must be dot or svg)", opts.format)
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	c.Logger.Info("wrote export", "path", opts.output, "format", opts.format, "bytes", len(out))
	return nil
}
