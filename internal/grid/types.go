// Package grid computes the responsive grid layout of a keybinding help
// overlay: it places key/label pairs on rows and columns, wraps rows at a
// candidate column count and spans group decorations over the rows their
// group occupies.
package grid

// Group is a named run of bindings and how many items it holds.
type Group struct {
	Name  string
	Count int
}

// Bindings lists groups in display order (top to bottom).
type Bindings []Group

// MaxCount returns the largest item count of any group, or 0 when empty.
func (b Bindings) MaxCount() int {
	maxCount := 0
	for _, g := range b {
		maxCount = max(maxCount, g.Count)
	}
	return maxCount
}

// Total returns the number of items across all groups.
func (b Bindings) Total() int {
	total := 0
	for _, g := range b {
		total += max(g.Count, 0)
	}
	return total
}

// Candidates returns the column counts to try, widest first.
func (b Bindings) Candidates() []int {
	maxCount := b.MaxCount()
	candidates := make([]int, 0, maxCount)
	for columnsPerRow := maxCount; columnsPerRow > 0; columnsPerRow-- {
		candidates = append(candidates, columnsPerRow)
	}
	return candidates
}

// Cell is a 1-based grid coordinate.
type Cell struct {
	Row    int
	Column int
}

// Span is a half-open [Start, End) range of grid lines.
type Span struct {
	Start int
	End   int
}

// Contains reports whether track n lies inside the span.
func (s Span) Contains(n int) bool {
	return n >= s.Start && n < s.End
}

// ItemPlacement positions one key/label pair.
type ItemPlacement struct {
	Key   Cell
	Label Cell
	Start bool // first row of its group; gets start spacing
}

// HeaderPlacement positions a group header.
type HeaderPlacement struct {
	Rows   Span
	Column int
}

// BackgroundPlacement positions a group background panel.
type BackgroundPlacement struct {
	Rows    Span
	Columns Span
}

// Result summarises the accepted layout.
type Result struct {
	ColumnsPerRow int // accepted candidate, 0 when nothing was laid out
	Rows          int // grid rows occupied by the accepted layout
	Attempts      int // candidates tried, including the accepted one
}
