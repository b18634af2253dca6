package help

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"pgregory.net/rapid"

	"github.com/chatter/keygrid/internal/grid"
	"github.com/chatter/keygrid/internal/keymap"
	"github.com/chatter/keygrid/internal/keymap/testgen"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;:]*[a-zA-Z]`)

// stripANSI removes all ANSI escape sequences from a string
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// group builds a keymap group whose bindings are labelled in order.
func group(name string, labels ...string) keymap.Group {
	g := keymap.Group{Name: name}
	for i, label := range labels {
		k := string(rune('a' + i%26))
		g.Bindings = append(g.Bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, label)))
	}
	return g
}

func numbered(prefix string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return labels
}

func layoutGrid(k *keymap.Keymap, fits grid.FitsFunc) (*GridHelp, grid.Result) {
	g := NewGridHelp()
	g.SetKeymap(k)
	result := grid.New(g, fits).Layout(g.Bindings())
	return g, result
}

func TestGrid_WidestCandidateRendersOneRowPerGroup(t *testing.T) {
	k := &keymap.Keymap{Groups: []keymap.Group{
		group("Movement", "Left", "Right", "Up", "Down"),
		group("Actions", "Open", "Close"),
	}}

	g, result := layoutGrid(k, grid.Always)
	if result.ColumnsPerRow != 4 {
		t.Fatalf("expected 4 columns, got %d", result.ColumnsPerRow)
	}

	lines := strings.Split(stripANSI(g.View()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 2 rows and one separator, got %d lines: %q", len(lines), lines)
	}

	for _, want := range []string{"Movement", "Left", "Right", "Up", "Down"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("row 1 missing %q: %q", want, lines[0])
		}
	}
	if strings.TrimSpace(lines[1]) != "" {
		t.Errorf("expected blank separator, got %q", lines[1])
	}
	for _, want := range []string{"Actions", "Open", "Close"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("row 2 missing %q: %q", want, lines[2])
		}
	}
}

func TestGrid_WrappedRowsStayInsideGroup(t *testing.T) {
	k := &keymap.Keymap{Groups: []keymap.Group{group("solo", numbered("item", 5)...)}}

	g, result := layoutGrid(k, grid.MaxColumns(2))
	if result.ColumnsPerRow != 2 {
		t.Fatalf("expected 2 columns, got %d", result.ColumnsPerRow)
	}

	lines := strings.Split(stripANSI(g.View()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d: %q", len(lines), lines)
	}

	// Header only on the start row; labels flow two per row.
	if !strings.Contains(lines[0], "solo") || strings.Contains(lines[1], "solo") {
		t.Errorf("header should appear on the first row only: %q", lines)
	}
	wantRows := [][]string{{"item0", "item1"}, {"item2", "item3"}, {"item4"}}
	for row, labels := range wantRows {
		for _, label := range labels {
			if !strings.Contains(lines[row], label) {
				t.Errorf("row %d missing %q: %q", row+1, label, lines[row])
			}
		}
	}
}

func TestGrid_LabelsAlignInColumns(t *testing.T) {
	k := &keymap.Keymap{Groups: []keymap.Group{group("g", "short", "a much longer label", "x", "y")}}

	g, _ := layoutGrid(k, grid.MaxColumns(2))

	lines := strings.Split(stripANSI(g.View()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), lines)
	}

	first, second := strings.Index(lines[0], "short"), strings.Index(lines[1], "x")
	if first < 0 || first != second {
		t.Errorf("first label column misaligned (%d vs %d): %q / %q", first, second, lines[0], lines[1])
	}
	if lipgloss.Width(lines[0]) != lipgloss.Width(lines[1]) {
		t.Errorf("rows should be padded to equal width: %d vs %d", lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
	}
}

func TestGrid_EmptyKeymap(t *testing.T) {
	g, result := layoutGrid(&keymap.Keymap{}, grid.Always)

	if result.Attempts != 0 {
		t.Errorf("expected no attempts, got %d", result.Attempts)
	}
	if g.Width() != 0 {
		t.Errorf("expected zero width, got %d", g.Width())
	}
	if g.View() != "" {
		t.Errorf("expected empty view, got %q", g.View())
	}
}

func TestGrid_SetKeymapForgetsPlacements(t *testing.T) {
	g, _ := layoutGrid(&keymap.Keymap{Groups: []keymap.Group{group("old", "stale")}}, grid.Always)

	g.SetKeymap(&keymap.Keymap{Groups: []keymap.Group{group("new", "fresh")}})

	if len(g.Items) != 0 || len(g.Headers) != 0 || len(g.Backgrounds) != 0 {
		t.Fatalf("expected no placements after SetKeymap")
	}
	if g.View() != "" {
		t.Errorf("expected empty view before layout, got %q", g.View())
	}
}

func TestGrid_WidthMatchesRenderedRows(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := testgen.Keymap(5, 8).Draw(t, "keymap")
		limit := rapid.IntRange(1, 8).Draw(t, "limit")

		g, _ := layoutGrid(k, grid.MaxColumns(limit))

		width := g.Width()
		for i, line := range strings.Split(g.View(), "\n") {
			if stripANSI(line) == "" {
				continue
			}
			if w := lipgloss.Width(line); w != width {
				t.Fatalf("line %d has width %d, Width() = %d: %q", i, w, width, stripANSI(line))
			}
		}
	})
}

func TestGrid_OneSeparatorPerGroupBoundary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := testgen.Keymap(5, 8).Draw(t, "keymap")
		limit := rapid.IntRange(1, 8).Draw(t, "limit")

		g, result := layoutGrid(k, grid.MaxColumns(limit))

		lines := strings.Split(stripANSI(g.View()), "\n")
		blank := 0
		for _, line := range lines {
			if line == "" {
				blank++
			}
		}

		if blank != len(k.Groups)-1 {
			t.Fatalf("expected %d separators, got %d", len(k.Groups)-1, blank)
		}
		if len(lines)-blank != result.Rows {
			t.Fatalf("expected %d grid rows, rendered %d", result.Rows, len(lines)-blank)
		}
	})
}

func TestGrid_EveryLabelRendered(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := testgen.Keymap(4, 6).Draw(t, "keymap")
		limit := rapid.IntRange(1, 6).Draw(t, "limit")

		g, _ := layoutGrid(k, grid.MaxColumns(limit))
		view := stripANSI(g.View())

		for _, grp := range k.Groups {
			if !strings.Contains(view, grp.Name) {
				t.Fatalf("group %q missing from view", grp.Name)
			}
			for _, b := range grp.Bindings {
				if !strings.Contains(view, b.Help().Desc) {
					t.Fatalf("label %q missing from view", b.Help().Desc)
				}
			}
		}
	})
}
