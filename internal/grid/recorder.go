package grid

// ItemKey identifies an item within its group.
type ItemKey struct {
	Group string
	Index int
}

// Recorder is a Target that keeps the latest placement of every element.
// Later passes overwrite earlier ones, the way style writes do.
type Recorder struct {
	Items       map[ItemKey]ItemPlacement
	Headers     map[string]HeaderPlacement
	Backgrounds map[string]BackgroundPlacement

	// Calls counts every placement received, across all passes.
	Calls int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	r := &Recorder{}
	r.Reset()
	return r
}

// Reset forgets all placements.
func (r *Recorder) Reset() {
	r.Items = make(map[ItemKey]ItemPlacement)
	r.Headers = make(map[string]HeaderPlacement)
	r.Backgrounds = make(map[string]BackgroundPlacement)
	r.Calls = 0
}

// PlaceItem implements Target.
func (r *Recorder) PlaceItem(group string, index int, p ItemPlacement) {
	r.Items[ItemKey{Group: group, Index: index}] = p
	r.Calls++
}

// PlaceHeader implements Target.
func (r *Recorder) PlaceHeader(group string, p HeaderPlacement) {
	r.Headers[group] = p
	r.Calls++
}

// PlaceBackground implements Target.
func (r *Recorder) PlaceBackground(group string, p BackgroundPlacement) {
	r.Backgrounds[group] = p
	r.Calls++
}

// Item returns the placement of item index in group.
func (r *Recorder) Item(group string, index int) (ItemPlacement, bool) {
	p, ok := r.Items[ItemKey{Group: group, Index: index}]
	return p, ok
}

// Rows returns the rows assigned to a group's items in index order.
func (r *Recorder) Rows(group string, count int) []int {
	rows := make([]int, 0, count)
	for i := 0; i < count; i++ {
		if p, ok := r.Item(group, i); ok {
			rows = append(rows, p.Key.Row)
		}
	}
	return rows
}
