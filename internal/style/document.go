// Package style models the element tree of the web help overlay: elements
// addressed by id, each carrying inline CSS properties and a rendered width.
// Target writes grid placements into it using the overlay's property names.
package style

import (
	"fmt"

	"github.com/chatter/keygrid/internal/grid"
)

// Fixed element ids.
const (
	ContentID = "content"
	BodyID    = "body"
)

// KeyID returns the id of an item's key element.
func KeyID(group string, index int) string {
	return fmt.Sprintf("key-%s-%d", group, index)
}

// LabelID returns the id of an item's label element.
func LabelID(group string, index int) string {
	return fmt.Sprintf("label-%s-%d", group, index)
}

// GroupLabelID returns the id of a group's header element.
func GroupLabelID(group string) string {
	return "group-label-" + group
}

// GroupBackgroundID returns the id of a group's background element.
func GroupBackgroundID(group string) string {
	return "group-background-" + group
}

// Style holds inline CSS properties in first-write order.
type Style struct {
	names  []string
	values map[string]string
}

// SetProperty sets a property, keeping its original position on overwrite.
func (s *Style) SetProperty(name, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// GetPropertyValue returns a property value, or "" when unset.
func (s *Style) GetPropertyValue(name string) string {
	return s.values[name]
}

// Len returns the number of properties set.
func (s *Style) Len() int {
	return len(s.names)
}

// Each calls fn for every property in first-write order.
func (s *Style) Each(fn func(name, value string)) {
	for _, name := range s.names {
		fn(name, s.values[name])
	}
}

// Element is a styled node.
type Element struct {
	ID    string
	Style Style
	Width int
}

// Document indexes elements by id.
type Document struct {
	elements map[string]*Element
	order    []string
}

// NewDocument creates a document holding the content and body elements, the
// key and label elements of every item in b and, when decorations is set, a
// header and background per group.
func NewDocument(b grid.Bindings, decorations bool) *Document {
	d := &Document{elements: make(map[string]*Element)}
	d.Add(BodyID)
	d.Add(ContentID)

	for _, g := range b {
		if decorations {
			d.Add(GroupLabelID(g.Name))
			d.Add(GroupBackgroundID(g.Name))
		}
		for i := 0; i < g.Count; i++ {
			d.Add(KeyID(g.Name, i))
			d.Add(LabelID(g.Name, i))
		}
	}

	return d
}

// Add returns the element with id, creating it if needed.
func (d *Document) Add(id string) *Element {
	if d.elements == nil {
		d.elements = make(map[string]*Element)
	}
	if el, ok := d.elements[id]; ok {
		return el
	}

	el := &Element{ID: id}
	d.elements[id] = el
	d.order = append(d.order, id)

	return el
}

// GetElementByID returns the element with id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	return d.elements[id]
}

// SetWidth records the rendered width of an element, creating it if needed.
func (d *Document) SetWidth(id string, width int) {
	d.Add(id).Width = width
}

// Width returns the rendered width of an element, or 0 when absent.
func (d *Document) Width(id string) int {
	if el := d.elements[id]; el != nil {
		return el.Width
	}
	return 0
}

// Elements returns all elements in insertion order.
func (d *Document) Elements() []*Element {
	out := make([]*Element, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.elements[id])
	}
	return out
}
