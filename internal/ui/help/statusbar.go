package help

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

// StatusBar renders a minimal status line: key hints on the left, the active
// layout and version on the right.
type StatusBar struct {
	width   int
	version string
	hints   []key.Binding
	layout  string

	// Styles
	keyStyle  lipgloss.Style
	descStyle lipgloss.Style
	sepStyle  lipgloss.Style
}

// NewStatusBar creates a new status bar that displays the given version string.
func NewStatusBar(version string) *StatusBar {
	return &StatusBar{
		version:   version,
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
		sepStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
	}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetHints sets the bindings shown on the left. Disabled bindings are skipped.
func (s *StatusBar) SetHints(hints ...key.Binding) {
	s.hints = hints
}

// SetLayout records the accepted column count and orientation. A zero
// column count clears the indicator.
func (s *StatusBar) SetLayout(columns int, orientation string) {
	if columns <= 0 {
		s.layout = ""
		return
	}

	unit := "cols"
	if columns == 1 {
		unit = "col"
	}
	s.layout = fmt.Sprintf("%d %s · %s", columns, unit, orientation)
}

// View renders the status bar. Hints are dropped from the end first, then
// the layout indicator; the version stays as long as it fits at all.
func (s *StatusBar) View() string {
	if s.width <= 0 {
		return ""
	}

	sep := s.sepStyle.Render(" • ")

	var hints []string
	for _, b := range s.hints {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, s.keyStyle.Render(h.Key)+" "+s.descStyle.Render(h.Desc))
	}

	rights := []string{s.version}
	if s.layout != "" {
		rights = []string{s.descStyle.Render(s.layout) + sep + s.version, s.version}
	}

	const minGap = 1

	for _, right := range rights {
		rightWidth := lipgloss.Width(right)

		for n := len(hints); n >= 0; n-- {
			left := strings.Join(hints[:n], sep)
			leftWidth := lipgloss.Width(left)

			gap := minGap
			if leftWidth == 0 {
				gap = 0
			}
			if leftWidth+gap+rightWidth > s.width {
				continue
			}

			return left + strings.Repeat(" ", s.width-leftWidth-rightWidth) + right
		}
	}

	return lipgloss.NewStyle().MaxWidth(s.width).Render(s.version)
}
