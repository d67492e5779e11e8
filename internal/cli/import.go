package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowdeck/flowdeck/pkg/diagram"
	"github.com/flowdeck/flowdeck/pkg/httputil"
	"github.com/flowdeck/flowdeck/pkg/model"
	"github.com/flowdeck/flowdeck/pkg/reconcile"
	"github.com/flowdeck/flowdeck/pkg/store"
)

// importOpts holds the command-line flags for the import command.
type importOpts struct {
	kind    string // document kind override (markup/tabular); auto-detect if empty
	noCache bool   // bypass the diagram cache
	output  string // output file path (stdout if empty)
}

// importCommand creates the import command. It runs the full pipeline
// on one document: parse, build, reconcile into a fresh live graph,
// then write the resulting graph as JSON.
func (c *CLI) importCommand() *cobra.Command {
	opts := importOpts{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a diagram document into a live graph",
		Long: `Import a diagram document and print the resulting graph as JSON.

The document kind is detected from the file extension (.xml for markup,
.csv/.txt for tabular) and can be overridden with --kind.

Examples:
  flowdeck import deck.xml
  flowdeck import rows.csv -o graph.json
  flowdeck import data.txt --kind tabular
  flowdeck import https://example.com/deck.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImport(cmd, &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "", "document kind (markup or tabular)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the diagram cache")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func (c *CLI) runImport(cmd *cobra.Command, opts *importOpts, path string) error {
	ctx := withLogger(cmd.Context(), c.Logger)

	g, err := c.importInto(ctx, opts, path, store.New())
	if err != nil {
		return err
	}
	return writeGraphJSON(g.Snapshot(), opts.output)
}

// importInto runs the pipeline for path and reconciles the result into
// g. Shared by import, edit, and render. The path may be a local file
// or an http(s) URL.
func (c *CLI) importInto(ctx context.Context, opts *importOpts, path string, g *store.Graph) (*store.Graph, error) {
	parser, err := c.pickParser(opts.kind, httputil.DetectPath(path))
	if err != nil {
		return nil, err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}

	prog := newProgress(c.Logger)
	runner := c.newRunner(ctx, cfg, opts.noCache)
	defer runner.Cache.Close()

	var raw []byte
	if httputil.IsURL(path) {
		raw, err = httputil.NewFetcher(runner.Cache).Fetch(ctx, path)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	res, err := runner.Import(ctx, parser, raw)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}

	logger := loggerFromContext(ctx)
	rep := reconcile.Apply(res.Diagram, g)
	for _, diag := range res.Skipped {
		logger.Warn("skipped record", "reason", diag)
	}
	for _, diag := range rep.SkippedEdges {
		logger.Warn("skipped edge", "reason", diag)
	}
	prog.done(fmt.Sprintf("Imported %d nodes and %d edges", rep.NodesInserted, rep.EdgesInserted))

	return g, nil
}

func (c *CLI) pickParser(kind, path string) (diagram.Parser, error) {
	if kind != "" {
		return diagram.ByKind(kind)
	}
	return diagram.Detect(path)
}

// writeGraphJSON writes the diagram as indented JSON to path, or to
// stdout when path is empty.
func writeGraphJSON(d model.Diagram, path string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}
