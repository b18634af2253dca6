package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatter/keygrid/internal/grid"
	"github.com/chatter/keygrid/internal/style"
	"github.com/chatter/keygrid/internal/ui/help"
)

func newCSSCmd(o *options) *cobra.Command {
	var (
		width         int
		noDecorations bool
	)

	cssCmd := &cobra.Command{
		Use:   "css",
		Short: "Print the grid placement as a stylesheet",
		Long: `Lay out the keymap for the given width and print the grid properties of
every element as CSS rules keyed by element id (key-<group>-<index>,
label-<group>-<index>, group-label-<group>, group-background-<group>).
Widths are measured with the terminal renderer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			available, err := o.resolveWidth(cmd.OutOrStdout(), width)
			if err != nil {
				return err
			}

			k, err := o.loadKeymap()
			if err != nil {
				return err
			}

			orientation, err := o.parsedOrientation()
			if err != nil {
				return err
			}

			visible := k.Visible()

			g := help.NewGridHelp()
			g.SetKeymap(visible)

			doc := style.NewDocument(g.Bindings(), !noDecorations)
			doc.SetWidth(style.BodyID, available)

			// The document's content width tracks the terminal grid as
			// each candidate is placed.
			docFits := style.Fits(doc)
			fits := func(columnsPerRow int) bool {
				doc.SetWidth(style.ContentID, g.Width())
				return docFits(columnsPerRow)
			}

			target := grid.Multi(g, style.NewTarget(doc))
			result := grid.New(target, fits, grid.WithOrientation(orientation), grid.WithLogger(o.log)).
				Layout(g.Bindings())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "/* %s: %d columns, %d rows, content %d of %d */\n",
				visible.Title, result.ColumnsPerRow, result.Rows,
				doc.Width(style.ContentID), doc.Width(style.BodyID))

			return doc.WriteCSS(out)
		},
	}

	cssCmd.Flags().IntVarP(&width, "width", "w", 0, "available width in terminal cells (default: terminal width, or 80)")
	cssCmd.Flags().BoolVar(&noDecorations, "no-decorations", false, "omit group headers and backgrounds")

	return cssCmd
}
