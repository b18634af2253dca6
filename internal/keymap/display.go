package keymap

import (
	"strings"
)

// modifierOrder is the order modifiers are printed in front of a key.
var modifierOrder = []string{"ctrl", "alt", "shift", "super", "hyper"}

// modifierGlyphs maps modifier names (and their aliases) to display forms.
var modifierGlyphs = map[string]string{
	"ctrl":    "⌃",
	"control": "⌃",
	"alt":     "⌥",
	"opt":     "⌥",
	"option":  "⌥",
	"shift":   "⇧",
	"super":   "⌘",
	"cmd":     "⌘",
	"command": "⌘",
	"win":     "⌘",
	"hyper":   "hyper-",
}

// modifierCanonical maps aliases to the names used in modifierOrder.
var modifierCanonical = map[string]string{
	"control": "ctrl",
	"opt":     "alt",
	"option":  "alt",
	"meta":    "alt",
	"m":       "alt",
	"cmd":     "super",
	"command": "super",
	"win":     "super",
}

// keyGlyphs maps key names to display forms.
var keyGlyphs = map[string]string{
	"tab":       "⇥",
	"enter":     "⏎",
	"return":    "⏎",
	"esc":       "Esc",
	"escape":    "Esc",
	"backspace": "⌫",
	"delete":    "⌦",
	"up":        "↑",
	"down":      "↓",
	"left":      "←",
	"right":     "→",
	"pgup":      "⇞",
	"pageup":    "⇞",
	"pgdown":    "⇟",
	"pagedown":  "⇟",
	"home":      "↖",
	"end":       "↘",
	"space":     "␣",
	" ":         "␣",
	"plus":      "+",
	"minus":     "-",
	"question":  "?",
}

// Glyph renders one key spec such as "ctrl+shift+tab" as "⌃⇧⇥".
// Unknown names are kept as written.
func Glyph(spec string) string {
	if spec == " " || spec == "+" {
		if g, ok := keyGlyphs[spec]; ok {
			return g
		}
		return spec
	}

	parts := strings.Split(spec, "+")
	name := parts[len(parts)-1]
	mods := parts[:len(parts)-1]
	if name == "" && len(parts) > 1 {
		// "ctrl+" and "ctrl++" both name the plus key.
		name = "+"
		for len(mods) > 0 && mods[len(mods)-1] == "" {
			mods = mods[:len(mods)-1]
		}
	}

	held := make(map[string]bool)
	for _, mod := range mods {
		mod = strings.ToLower(mod)
		if canon, ok := modifierCanonical[mod]; ok {
			mod = canon
		}
		held[mod] = true
	}

	var b strings.Builder
	for _, mod := range modifierOrder {
		if held[mod] {
			b.WriteString(modifierGlyphs[mod])
		}
	}

	if g, ok := keyGlyphs[strings.ToLower(name)]; ok {
		b.WriteString(g)
	} else {
		b.WriteString(name)
	}

	return b.String()
}

// Display renders key specs as glyphs joined with "/", dropping duplicates.
func Display(specs ...string) string {
	seen := make(map[string]bool, len(specs))
	glyphs := make([]string, 0, len(specs))
	for _, spec := range specs {
		g := Glyph(spec)
		if seen[g] {
			continue
		}
		seen[g] = true
		glyphs = append(glyphs, g)
	}
	return strings.Join(glyphs, "/")
}
