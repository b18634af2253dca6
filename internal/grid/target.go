package grid

// Target receives placements. Implementations own the elements being
// positioned; a target without decorations for a group ignores the
// PlaceHeader and PlaceBackground calls for it.
type Target interface {
	PlaceItem(group string, index int, p ItemPlacement)
	PlaceHeader(group string, p HeaderPlacement)
	PlaceBackground(group string, p BackgroundPlacement)
}

// FitsFunc reports whether the layout just written for columnsPerRow fits
// the available width. It is called after every candidate pass and must
// observe that pass's writes.
type FitsFunc func(columnsPerRow int) bool

// Always accepts the first candidate.
func Always(int) bool { return true }

// Never rejects every candidate, forcing the single-column fallback.
func Never(int) bool { return false }

// MaxColumns accepts candidates of at most n columns.
func MaxColumns(n int) FitsFunc {
	return func(columnsPerRow int) bool {
		return columnsPerRow <= n
	}
}

type multiTarget []Target

// Multi fans placements out to every target in order.
func Multi(targets ...Target) Target {
	return multiTarget(targets)
}

func (m multiTarget) PlaceItem(group string, index int, p ItemPlacement) {
	for _, t := range m {
		t.PlaceItem(group, index, p)
	}
}

func (m multiTarget) PlaceHeader(group string, p HeaderPlacement) {
	for _, t := range m {
		t.PlaceHeader(group, p)
	}
}

func (m multiTarget) PlaceBackground(group string, p BackgroundPlacement) {
	for _, t := range m {
		t.PlaceBackground(group, p)
	}
}
