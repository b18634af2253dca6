package style

import (
	"fmt"
	"strconv"

	"github.com/chatter/keygrid/internal/grid"
)

// Spacing values written for group starts.
const (
	StartSpacing = "0.2em"
	NoSpacing    = "0"
)

// Target writes placements as inline grid properties on a Document.
// Key and label elements must exist; headers and backgrounds are optional.
type Target struct {
	doc *Document
}

var _ grid.Target = (*Target)(nil)

// NewTarget creates a Target writing to doc.
func NewTarget(doc *Document) *Target {
	return &Target{doc: doc}
}

// PlaceItem implements grid.Target. It panics when the key or label element
// is missing.
func (t *Target) PlaceItem(group string, index int, p grid.ItemPlacement) {
	key := t.mustGet(KeyID(group, index))
	label := t.mustGet(LabelID(group, index))

	setCell(key, p.Key)
	setCell(label, p.Label)

	spacing := NoSpacing
	if p.Start {
		spacing = StartSpacing
	}
	for _, el := range []*Element{key, label} {
		el.Style.SetProperty("margin-top", spacing)
		el.Style.SetProperty("padding-top", spacing)
	}
}

// PlaceHeader implements grid.Target.
func (t *Target) PlaceHeader(group string, p grid.HeaderPlacement) {
	el := t.doc.GetElementByID(GroupLabelID(group))
	if el == nil {
		return
	}

	el.Style.SetProperty("grid-row-start", strconv.Itoa(p.Rows.Start))
	el.Style.SetProperty("grid-row-end", strconv.Itoa(p.Rows.End))
	el.Style.SetProperty("grid-column", strconv.Itoa(p.Column))
	el.Style.SetProperty("margin-top", StartSpacing)
	el.Style.SetProperty("padding-top", StartSpacing)
	el.Style.SetProperty("padding-bottom", StartSpacing)
}

// PlaceBackground implements grid.Target.
func (t *Target) PlaceBackground(group string, p grid.BackgroundPlacement) {
	el := t.doc.GetElementByID(GroupBackgroundID(group))
	if el == nil {
		return
	}

	el.Style.SetProperty("grid-row-start", strconv.Itoa(p.Rows.Start))
	el.Style.SetProperty("grid-row-end", strconv.Itoa(p.Rows.End))
	el.Style.SetProperty("grid-column-start", strconv.Itoa(p.Columns.Start))
	el.Style.SetProperty("grid-column-end", strconv.Itoa(p.Columns.End))
	el.Style.SetProperty("margin-top", StartSpacing)
}

func (t *Target) mustGet(id string) *Element {
	el := t.doc.GetElementByID(id)
	if el == nil {
		panic(fmt.Sprintf("style: no element with id %q", id))
	}
	return el
}

func setCell(el *Element, c grid.Cell) {
	el.Style.SetProperty("grid-row", strconv.Itoa(c.Row))
	el.Style.SetProperty("grid-column", strconv.Itoa(c.Column))
}

// Fits reports whether the content element is no wider than the body.
func Fits(doc *Document) grid.FitsFunc {
	return func(int) bool {
		return doc.Width(ContentID) <= doc.Width(BodyID)
	}
}
