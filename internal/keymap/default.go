package keymap

import (
	"charm.land/bubbles/v2/key"
)

func bind(label string, keys ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(Display(keys...), label),
	)
}

// Default returns the keymap shown when no keymap file is configured: a
// tiling window manager's bindings, led by the overlay's own keys.
func Default() *Keymap {
	return &Keymap{
		Title: "Window manager",
		Groups: []Group{
			{
				Name: DefaultGroup,
				Bindings: []key.Binding{
					bind("Cancel operation", "esc", "ctrl+g"),
					bind("Toggle help", "?"),
					bind("Quit", "q", "ctrl+c"),
				},
			},
			{
				Name: "Focus",
				Bindings: []key.Binding{
					bind("Focus left", "super+h", "super+left"),
					bind("Focus down", "super+j", "super+down"),
					bind("Focus up", "super+k", "super+up"),
					bind("Focus right", "super+l", "super+right"),
					bind("Next window", "super+tab"),
					bind("Previous window", "super+shift+tab"),
				},
			},
			{
				Name: "Layout",
				Bindings: []key.Binding{
					bind("Toggle floating", "super+space"),
					bind("Fullscreen", "super+f"),
					bind("Grow", "super+plus"),
					bind("Shrink", "super+minus"),
					bind("Next layout", "super+alt+space"),
				},
			},
			{
				Name: "Launch",
				Bindings: []key.Binding{
					bind("Terminal", "super+enter"),
					bind("Browser", "super+b"),
					bind("Run prompt", "super+r"),
					bind("Lock screen", "ctrl+alt+l"),
				},
			},
		},
	}
}
