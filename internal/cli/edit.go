package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flowdeck/flowdeck/pkg/store"
)

// editCommand creates the edit command: import a document, then open
// an interactive terminal session on the resulting graph.
func (c *CLI) editCommand() *cobra.Command {
	opts := importOpts{}

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit an imported graph interactively",
		Long: `Import a diagram document and open an interactive session on the graph.

Selecting a node with enter opens a choice dialog: c copies the node
(offset by 100,100 and connected to the original with a dashed edge),
d deletes it along with its incident edges, esc dismisses the dialog.

Examples:
  flowdeck edit deck.xml
  flowdeck edit rows.csv -o graph.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd, &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "", "document kind (markup or tabular)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the diagram cache")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the edited graph as JSON on exit")

	return cmd
}

func (c *CLI) runEdit(cmd *cobra.Command, opts *importOpts, path string) error {
	ctx := withLogger(cmd.Context(), c.Logger)

	g, err := c.importInto(ctx, opts, path, store.New())
	if err != nil {
		return err
	}

	prog, err := tea.NewProgram(newEditModel(g), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("edit session: %w", err)
	}
	if m, ok := prog.(editModel); ok && m.quit {
		c.Logger.Debug("edit session ended", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	}

	if opts.output != "" {
		return writeGraphJSON(g.Snapshot(), opts.output)
	}
	return nil
}
