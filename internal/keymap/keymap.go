// Package keymap loads the keybindings shown by the help overlay.
package keymap

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/spf13/viper"

	"github.com/chatter/keygrid/internal/grid"
	"github.com/chatter/keygrid/internal/ignore"
)

// DefaultGroup holds bindings declared without a group.
const DefaultGroup = "General"

var (
	// ErrNoGroups is returned when a keymap declares no bindings at all.
	ErrNoGroups = errors.New("keymap has no bindings")

	// ErrEmptyLabel is returned when a binding has no label.
	ErrEmptyLabel = errors.New("binding has no label")

	// ErrNoKeys is returned when a binding has no keys.
	ErrNoKeys = errors.New("binding has no keys")
)

// Group is a named, ordered set of bindings.
type Group struct {
	Name     string
	Bindings []key.Binding
}

// Keymap is an ordered list of groups plus the patterns hiding some of them.
type Keymap struct {
	Title  string
	Hide   []string
	Groups []Group
}

// Bindings returns the item count of every group, in order.
func (k *Keymap) Bindings() grid.Bindings {
	b := make(grid.Bindings, len(k.Groups))
	for i, g := range k.Groups {
		b[i] = grid.Group{Name: g.Name, Count: len(g.Bindings)}
	}
	return b
}

// Len returns the number of bindings across all groups.
func (k *Keymap) Len() int {
	n := 0
	for _, g := range k.Groups {
		n += len(g.Bindings)
	}
	return n
}

// Group returns the group called name.
func (k *Keymap) Group(name string) (Group, bool) {
	for _, g := range k.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// Visible returns a copy without disabled bindings, bindings matched by the
// hide patterns, and groups left empty.
func (k *Keymap) Visible() *Keymap {
	m := ignore.NewMatcher(k.Hide)

	out := &Keymap{Title: k.Title, Hide: k.Hide}
	for _, g := range k.Groups {
		if m.Match(g.Name) {
			continue
		}

		visible := Group{Name: g.Name}
		for _, b := range g.Bindings {
			if !b.Enabled() || hidden(m, g.Name, b) {
				continue
			}
			visible.Bindings = append(visible.Bindings, b)
		}

		if len(visible.Bindings) > 0 {
			out.Groups = append(out.Groups, visible)
		}
	}

	return out
}

// hidden reports whether any of the binding's key specs, or its display
// key, is matched.
func hidden(m *ignore.Matcher, group string, b key.Binding) bool {
	if m.MatchBinding(group, b.Help().Key) {
		return true
	}
	for _, k := range b.Keys() {
		if m.MatchBinding(group, k) {
			return true
		}
	}
	return false
}

// file is the on-disk layout of a keymap.
type file struct {
	Title    string          `mapstructure:"title"`
	Hide     []string        `mapstructure:"hide"`
	Bindings []bindingConfig `mapstructure:"bindings"`
	Groups   []groupConfig   `mapstructure:"groups"`
}

type groupConfig struct {
	Name     string          `mapstructure:"name"`
	Bindings []bindingConfig `mapstructure:"bindings"`
}

type bindingConfig struct {
	Keys    []string `mapstructure:"keys"`
	Label   string   `mapstructure:"label"`
	Display string   `mapstructure:"display"`
}

// Load reads a keymap file. The format follows the extension: toml, yaml or
// json.
func Load(path string) (*Keymap, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading keymap %s: %w", path, err)
	}

	var f file
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decoding keymap %s: %w", path, err)
	}

	k, err := f.build()
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}

	return k, nil
}

func (f file) build() (*Keymap, error) {
	k := &Keymap{Title: f.Title, Hide: f.Hide}

	groups := f.Groups
	if len(f.Bindings) > 0 {
		groups = append([]groupConfig{{Name: DefaultGroup, Bindings: f.Bindings}}, groups...)
	}

	for _, gc := range groups {
		name := strings.TrimSpace(gc.Name)
		if name == "" {
			name = DefaultGroup
		}

		bindings := make([]key.Binding, 0, len(gc.Bindings))
		for i, bc := range gc.Bindings {
			b, err := bc.build()
			if err != nil {
				return nil, fmt.Errorf("group %q binding %d: %w", name, i, err)
			}
			bindings = append(bindings, b)
		}

		k.add(name, bindings)
	}

	if k.Len() == 0 {
		return nil, ErrNoGroups
	}

	return k, nil
}

// add appends bindings to the group called name, creating it at the end when
// it does not exist yet.
func (k *Keymap) add(name string, bindings []key.Binding) {
	for i := range k.Groups {
		if k.Groups[i].Name == name {
			k.Groups[i].Bindings = append(k.Groups[i].Bindings, bindings...)
			return
		}
	}
	k.Groups = append(k.Groups, Group{Name: name, Bindings: bindings})
}

func (bc bindingConfig) build() (key.Binding, error) {
	if strings.TrimSpace(bc.Label) == "" {
		return key.Binding{}, ErrEmptyLabel
	}
	if len(bc.Keys) == 0 {
		return key.Binding{}, ErrNoKeys
	}

	display := bc.Display
	if display == "" {
		display = Display(bc.Keys...)
	}

	return key.NewBinding(
		key.WithKeys(bc.Keys...),
		key.WithHelp(display, bc.Label),
	), nil
}
