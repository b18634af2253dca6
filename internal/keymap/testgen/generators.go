// Package testgen provides rapid generators for keymaps and grid bindings.
package testgen

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	"pgregory.net/rapid"

	"github.com/chatter/keygrid/internal/grid"
	"github.com/chatter/keygrid/internal/keymap"
)

// GroupName generates a group name usable in element ids.
func GroupName() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z][a-z0-9]{2,9}`)
}

// KeySpec generates a key spec with optional modifiers, e.g. "ctrl+shift+x".
func KeySpec() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		name := rapid.SampledFrom([]string{
			"a", "b", "j", "k", "x", "G", "?", "/",
			"tab", "enter", "esc", "space", "up", "down", "left", "right",
		}).Draw(t, "name")

		mods := rapid.SliceOfNDistinct(
			rapid.SampledFrom([]string{"ctrl", "alt", "shift", "super"}),
			0, 2,
			rapid.ID[string],
		).Draw(t, "mods")

		spec := name
		for _, m := range mods {
			spec = m + "+" + spec
		}
		return spec
	})
}

// Binding generates an enabled binding with one or two keys.
func Binding() *rapid.Generator[key.Binding] {
	return rapid.Custom(func(t *rapid.T) key.Binding {
		keys := rapid.SliceOfN(KeySpec(), 1, 2).Draw(t, "keys")
		label := rapid.StringMatching(`[A-Z][a-z]{2,14}( [a-z]{2,8})?`).Draw(t, "label")

		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keymap.Display(keys...), label),
		)
	})
}

// Keymap generates a keymap of 1-maxGroups uniquely named, non-empty
// groups holding up to maxPerGroup bindings each.
func Keymap(maxGroups, maxPerGroup int) *rapid.Generator[*keymap.Keymap] {
	return rapid.Custom(func(t *rapid.T) *keymap.Keymap {
		names := rapid.SliceOfNDistinct(GroupName(), 1, maxGroups, rapid.ID[string]).Draw(t, "names")

		k := &keymap.Keymap{Title: "generated"}
		for _, name := range names {
			bindings := rapid.SliceOfN(Binding(), 1, maxPerGroup).Draw(t, "bindings")
			k.Groups = append(k.Groups, keymap.Group{Name: name, Bindings: bindings})
		}
		return k
	})
}

// Bindings generates grid bindings with 1-maxGroups groups of 1-maxCount
// items.
func Bindings(maxGroups, maxCount int) *rapid.Generator[grid.Bindings] {
	return rapid.Custom(func(t *rapid.T) grid.Bindings {
		n := rapid.IntRange(1, maxGroups).Draw(t, "groups")
		b := make(grid.Bindings, n)
		for i := range b {
			b[i] = grid.Group{
				Name:  fmt.Sprintf("g%d", i),
				Count: rapid.IntRange(1, maxCount).Draw(t, "count"),
			}
		}
		return b
	})
}
