package help

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/chatter/keygrid/internal/grid"
	"github.com/chatter/keygrid/internal/keymap"
	"github.com/chatter/keygrid/internal/ui"
)

const (
	columnGap   = 2 // spaces between grid columns
	bandPadding = 1 // spaces on each side of a group band
)

type cellKind int

const (
	cellHeader cellKind = iota
	cellKey
	cellLabel
)

type cell struct {
	text string
	kind cellKind
}

// GridHelp draws keymap groups on the row/column grid computed by a
// grid.Engine. It is the engine's target: placements are recorded as they
// arrive, and Width measures the grid they describe so the engine's fits
// predicate can compare it against the space available.
type GridHelp struct {
	*grid.Recorder

	groups []keymap.Group
	byName map[string]keymap.Group
}

// NewGridHelp creates an empty grid.
func NewGridHelp() *GridHelp {
	return &GridHelp{
		Recorder: grid.NewRecorder(),
		byName:   make(map[string]keymap.Group),
	}
}

// SetKeymap replaces the displayed groups and forgets all placements.
func (g *GridHelp) SetKeymap(k *keymap.Keymap) {
	g.groups = nil
	g.byName = make(map[string]keymap.Group)
	if k != nil {
		g.groups = k.Groups
		for _, grp := range k.Groups {
			g.byName[grp.Name] = grp
		}
	}
	g.Reset()
}

// Bindings returns the group sizes handed to the engine.
func (g *GridHelp) Bindings() grid.Bindings {
	b := make(grid.Bindings, len(g.groups))
	for i, grp := range g.groups {
		b[i] = grid.Group{Name: grp.Name, Count: len(grp.Bindings)}
	}
	return b
}

// Width returns the rendered width of the grid as currently placed.
func (g *GridHelp) Width() int {
	widths := g.columnWidths(g.cells())
	if len(widths) == 0 {
		return 0
	}

	total := 2 * bandPadding
	for _, w := range widths {
		total += w
	}
	return total + columnGap*(len(widths)-1)
}

// View renders the grid as currently placed.
func (g *GridHelp) View() string {
	cells := g.cells()
	widths := g.columnWidths(cells)
	if len(widths) == 0 {
		return ""
	}

	spaced := make(map[int]bool)
	for i, grp := range g.groups {
		if i == 0 {
			continue
		}
		if h, ok := g.Headers[grp.Name]; ok {
			spaced[h.Rows.Start] = true
		}
	}

	var lines []string
	for row := 1; row <= g.rowCount(cells); row++ {
		if spaced[row] && len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.renderRow(row, cells, widths))
	}

	return strings.Join(lines, "\n")
}

// cells collects the text of every occupied cell.
func (g *GridHelp) cells() map[grid.Cell]cell {
	cells := make(map[grid.Cell]cell)

	for name, h := range g.Headers {
		cells[grid.Cell{Row: h.Rows.Start, Column: h.Column}] = cell{text: name, kind: cellHeader}
	}

	for k, p := range g.Items {
		grp, ok := g.byName[k.Group]
		if !ok || k.Index >= len(grp.Bindings) {
			continue
		}
		h := grp.Bindings[k.Index].Help()
		cells[p.Key] = cell{text: h.Key, kind: cellKey}
		cells[p.Label] = cell{text: h.Desc, kind: cellLabel}
	}

	return cells
}

// columnWidths returns the width of every column from 1 to the last one in
// use, indexed from 0.
func (g *GridHelp) columnWidths(cells map[grid.Cell]cell) []int {
	last := 0
	for c := range cells {
		last = max(last, c.Column)
	}
	for _, bg := range g.Backgrounds {
		last = max(last, bg.Columns.End-1)
	}

	widths := make([]int, last)
	for c, v := range cells {
		if c.Column < 1 {
			continue
		}
		widths[c.Column-1] = max(widths[c.Column-1], lipgloss.Width(v.text))
	}
	return widths
}

func (g *GridHelp) rowCount(cells map[grid.Cell]cell) int {
	rows := 0
	for c := range cells {
		rows = max(rows, c.Row)
	}
	for _, h := range g.Headers {
		rows = max(rows, h.Rows.End-1)
	}
	return rows
}

// bandAt returns the background covering row, if any.
func (g *GridHelp) bandAt(row int) (grid.BackgroundPlacement, bool) {
	for _, bg := range g.Backgrounds {
		if bg.Rows.Contains(row) {
			return bg, true
		}
	}
	return grid.BackgroundPlacement{}, false
}

func (g *GridHelp) renderRow(row int, cells map[grid.Cell]cell, widths []int) string {
	band, inBand := g.bandAt(row)
	banded := func(column int) bool {
		return inBand && band.Columns.Contains(column)
	}
	fill := func(n int, colored bool) string {
		s := strings.Repeat(" ", n)
		if colored {
			return lipgloss.NewStyle().Background(ui.BandColor).Render(s)
		}
		return s
	}

	var b strings.Builder
	b.WriteString(fill(bandPadding, banded(1)))

	for column := 1; column <= len(widths); column++ {
		if column > 1 {
			b.WriteString(fill(columnGap, banded(column-1) && banded(column)))
		}

		c := cells[grid.Cell{Row: row, Column: column}]
		text := c.text + strings.Repeat(" ", max(widths[column-1]-lipgloss.Width(c.text), 0))

		style := lipgloss.NewStyle()
		if c.text != "" {
			switch c.kind {
			case cellHeader:
				style = ui.HeaderStyle
			case cellKey:
				style = ui.KeyStyle
			case cellLabel:
				style = ui.LabelStyle
			}
		}
		if banded(column) {
			style = style.Background(ui.BandColor)
		}
		b.WriteString(style.Render(text))
	}

	b.WriteString(fill(bandPadding, banded(len(widths))))

	return b.String()
}
