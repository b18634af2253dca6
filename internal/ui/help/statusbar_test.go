package help

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"pgregory.net/rapid"
)

// generateBinding creates a random HelpBinding
func generateBinding(t *rapid.T, idx int) HelpBinding {
	keyStr := string(rune('a' + idx%26))
	desc := rapid.StringMatching(`[a-z]{3,10}`).Draw(t, "desc")
	order := rapid.IntRange(0, 100).Draw(t, "order")
	enabled := rapid.Bool().Draw(t, "enabled")

	binding := key.NewBinding(key.WithKeys(keyStr), key.WithHelp(keyStr, desc))
	if !enabled {
		binding.SetEnabled(false)
	}

	return HelpBinding{
		Binding: binding,
		Order:   order,
		Hidden:  rapid.Bool().Draw(t, "hidden"),
	}
}

func generateBindings(t *rapid.T) []HelpBinding {
	numBindings := rapid.IntRange(0, 20).Draw(t, "numBindings")
	bindings := make([]HelpBinding, numBindings)
	for i := 0; i < numBindings; i++ {
		bindings[i] = generateBinding(t, i)
	}
	return bindings
}

func TestStatusBar_WidthNeverExceeded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 200).Draw(t, "width")
		columns := rapid.IntRange(0, 12).Draw(t, "columns")

		sb := NewStatusBar("keygrid v1.0.0")
		sb.SetHints(Hints(generateBindings(t))...)
		sb.SetLayout(columns, "horizontal")
		sb.SetWidth(width)

		if viewWidth := lipgloss.Width(sb.View()); viewWidth > width {
			t.Errorf("view width %d exceeds specified width %d: %q", viewWidth, width, sb.View())
		}
	})
}

func TestStatusBar_VersionAlwaysPresent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		version := rapid.StringMatching(`v[0-9]+\.[0-9]+\.[0-9]+`).Draw(t, "version")
		width := rapid.IntRange(len(version), 200).Draw(t, "width")

		sb := NewStatusBar(version)
		sb.SetHints(Hints(generateBindings(t))...)
		sb.SetLayout(rapid.IntRange(0, 12).Draw(t, "columns"), "vertical")
		sb.SetWidth(width)

		view := sb.View()

		if !strings.HasSuffix(stripANSI(view), version) {
			t.Errorf("version %q not at end of view: %q", version, view)
		}
	})
}

func TestStatusBar_DisabledAndHiddenBindingsNeverAppear(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(50, 200).Draw(t, "width")

		numBindings := rapid.IntRange(1, 10).Draw(t, "numBindings")
		bindings := make([]HelpBinding, numBindings)
		for i := 0; i < numBindings; i++ {
			desc := "absent" + string(rune('0'+i))
			binding := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", desc))
			hidden := i%2 == 0
			if !hidden {
				binding.SetEnabled(false)
			}
			bindings[i] = HelpBinding{Binding: binding, Order: i, Hidden: hidden}
		}

		sb := NewStatusBar("v1.0.0")
		sb.SetHints(Hints(bindings)...)
		sb.SetWidth(width)

		if view := sb.View(); strings.Contains(view, "absent") {
			t.Errorf("disabled or hidden binding shown: %q", view)
		}
	})
}

func TestStatusBar_HintsOrderedByPriority(t *testing.T) {
	bindings := []HelpBinding{
		{Binding: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")), Order: 100},
		{Binding: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")), Order: 1},
		{Binding: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "orientation")), Order: 10},
	}

	sb := NewStatusBar("v1.0.0")
	sb.SetHints(Hints(bindings)...)
	sb.SetWidth(120)

	view := stripANSI(sb.View())
	help, orient, quit := strings.Index(view, "help"), strings.Index(view, "orientation"), strings.Index(view, "quit")
	if help < 0 || orient < 0 || quit < 0 {
		t.Fatalf("expected all hints in %q", view)
	}
	if !(help < orient && orient < quit) {
		t.Errorf("hints out of order: %q", view)
	}
	if strings.Count(view, "•") < 2 {
		t.Errorf("expected separators between hints: %q", view)
	}
}

func TestStatusBar_ShowsLayout(t *testing.T) {
	sb := NewStatusBar("v1.0.0")
	sb.SetWidth(80)

	sb.SetLayout(3, "horizontal")
	if view := stripANSI(sb.View()); !strings.Contains(view, "3 cols · horizontal") {
		t.Errorf("expected layout indicator: %q", view)
	}

	sb.SetLayout(1, "vertical")
	if view := stripANSI(sb.View()); !strings.Contains(view, "1 col · vertical") {
		t.Errorf("expected singular indicator: %q", view)
	}

	sb.SetLayout(0, "horizontal")
	if view := stripANSI(sb.View()); strings.Contains(view, "col") {
		t.Errorf("expected indicator cleared: %q", view)
	}
}

func TestStatusBar_DropsHintsBeforeLayout(t *testing.T) {
	sb := NewStatusBar("v1")
	sb.SetHints(
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	)
	sb.SetLayout(4, "horizontal")

	if sb.View() != "" {
		t.Fatalf("zero width should render nothing")
	}

	sb.SetWidth(lipgloss.Width("4 cols · horizontal • v1") + 1)

	view := stripANSI(sb.View())
	if !strings.Contains(view, "4 cols") {
		t.Errorf("expected layout kept: %q", view)
	}
	if strings.Contains(view, "quit") {
		t.Errorf("expected hints dropped first: %q", view)
	}
}

func TestStatusBar_EmptyHintsShowsVersion(t *testing.T) {
	sb := NewStatusBar("v1.0.0")
	sb.SetWidth(40)

	view := sb.View()
	if lipgloss.Width(view) != 40 {
		t.Errorf("expected view padded to 40, got %d", lipgloss.Width(view))
	}
	if !strings.HasSuffix(view, "v1.0.0") {
		t.Errorf("expected version right aligned: %q", view)
	}
}
