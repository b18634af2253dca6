package keymap

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"a", "a"},
		{"G", "G"},
		{"tab", "⇥"},
		{"enter", "⏎"},
		{"esc", "Esc"},
		{"space", "␣"},
		{" ", "␣"},
		{"up", "↑"},
		{"pgdown", "⇟"},
		{"ctrl+c", "⌃c"},
		{"shift+tab", "⇧⇥"},
		{"super+shift+tab", "⇧⌘⇥"},
		{"cmd+alt+ctrl+x", "⌃⌥⌘x"},
		{"control+option+x", "⌃⌥x"},
		{"hyper+k", "hyper-k"},
		{"ctrl++", "⌃+"},
		{"ctrl+", "⌃+"},
		{"ctrl+shift+", "⌃⇧+"},
		{"meta+x", "⌥x"},
		{"m+x", "⌥x"},
		{"meta+alt+x", "⌥x"},
		{"+", "+"},
		{"f12", "f12"},
	}

	for _, tt := range tests {
		if got := Glyph(tt.spec); got != tt.want {
			t.Errorf("Glyph(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		specs []string
		want  string
	}{
		{[]string{"j", "down"}, "j/↓"},
		{[]string{"q", "ctrl+c"}, "q/⌃c"},
		{[]string{"enter", "return"}, "⏎"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := Display(tt.specs...); got != tt.want {
			t.Errorf("Display(%v) = %q, want %q", tt.specs, got, tt.want)
		}
	}
}

func TestGlyph_ModifierOrderIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mods := rapid.SliceOfNDistinct(
			rapid.SampledFrom([]string{"ctrl", "alt", "shift", "super"}),
			1, 4,
			rapid.ID[string],
		).Draw(t, "mods")
		name := rapid.SampledFrom([]string{"a", "tab", "left", "x"}).Draw(t, "name")

		forward := strings.Join(append(append([]string{}, mods...), name), "+")

		reversed := make([]string, 0, len(mods)+1)
		for i := len(mods) - 1; i >= 0; i-- {
			reversed = append(reversed, mods[i])
		}
		backward := strings.Join(append(reversed, name), "+")

		if Glyph(forward) != Glyph(backward) {
			t.Fatalf("Glyph(%q)=%q, Glyph(%q)=%q", forward, Glyph(forward), backward, Glyph(backward))
		}
	})
}
