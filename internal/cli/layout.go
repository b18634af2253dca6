package cli

import (
	"fmt"
	"sort"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/chatter/keygrid/internal/grid"
	"github.com/chatter/keygrid/internal/keymap"
	"github.com/chatter/keygrid/internal/ui"
	"github.com/chatter/keygrid/internal/ui/help"
)

func newLayoutCmd(o *options) *cobra.Command {
	var (
		width   int
		preview bool
	)

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the grid placement of every binding",
		Long: `Lay out the keymap for a terminal of the given width and print where
every key, label, group header and group background was placed.`,
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

			out, err := o.output(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			g, result := layoutTerminal(k.Visible(), available, orientation, o)

			fmt.Fprintln(out, placementTable(g).Render())
			fmt.Fprintf(out, "columns: %d  rows: %d  attempts: %d  width: %d/%d\n",
				result.ColumnsPerRow, result.Rows, result.Attempts, g.Width(), available)

			if preview {
				fmt.Fprintln(out)
				fmt.Fprintln(out, g.View())
			}

			return nil
		},
	}

	layoutCmd.Flags().IntVarP(&width, "width", "w", 0, "available width in terminal cells (default: terminal width, or 80)")
	layoutCmd.Flags().BoolVar(&preview, "preview", false, "also print the rendered grid")

	return layoutCmd
}

// layoutTerminal runs the engine against the terminal grid renderer with
// width as the available space.
func layoutTerminal(k *keymap.Keymap, width int, orientation grid.Orientation, o *options) (*help.GridHelp, grid.Result) {
	g := help.NewGridHelp()
	g.SetKeymap(k)

	fits := func(int) bool { return g.Width() <= width }
	engine := grid.New(g, fits, grid.WithOrientation(orientation), grid.WithLogger(o.log))

	return g, engine.Layout(g.Bindings())
}

// placementTable lists item placements in group, then index order.
func placementTable(g *help.GridHelp) *table.Table {
	b := g.Bindings()

	order := make(map[string]int, len(b))
	for i, grp := range b {
		order[grp.Name] = i
	}

	keys := make([]grid.ItemKey, 0, len(g.Items))
	for k := range g.Items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Group != keys[j].Group {
			return order[keys[i].Group] < order[keys[j].Group]
		}
		return keys[i].Index < keys[j].Index
	})

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		p := g.Items[k]
		start := ""
		if p.Start {
			start = "yes"
		}
		rows = append(rows, []string{
			k.Group,
			strconv.Itoa(k.Index),
			strconv.Itoa(p.Key.Row),
			strconv.Itoa(p.Key.Column),
			strconv.Itoa(p.Label.Column),
			start,
		})
	}

	headerStyle := ui.HeaderStyle.Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(ui.DimStyle).
		Headers("group", "item", "row", "key col", "label col", "start").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
