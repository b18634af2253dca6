// Package help provides the keybinding help overlay: a grid renderer driven
// by the layout engine, the floating modal hosting it, and the status bar.
package help

import (
	"sort"

	"charm.land/bubbles/v2/key"
)

// HelpBinding contains display information for a keybinding.
// This is the display-only version; app.ActionBinding adds the Action field.
type HelpBinding struct {
	Binding key.Binding
	Order   int  // lower = shown earlier in the status bar
	Hidden  bool // dispatch only, never shown as a hint
}

// Hints returns the bindings to show in the status bar, ordered.
func Hints(bindings []HelpBinding) []key.Binding {
	visible := make([]HelpBinding, 0, len(bindings))
	for _, hb := range bindings {
		if hb.Hidden || !hb.Binding.Enabled() {
			continue
		}
		visible = append(visible, hb)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	hints := make([]key.Binding, len(visible))
	for i, hb := range visible {
		hints[i] = hb.Binding
	}
	return hints
}
