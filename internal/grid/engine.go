package grid

import (
	"github.com/chatter/keygrid/internal/logger"
)

// Engine searches for the widest column count whose layout fits.
type Engine struct {
	target      Target
	fits        FitsFunc
	orientation Orientation
	log         *logger.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithOrientation sets the orientation used by Layout.
func WithOrientation(o Orientation) Option {
	return func(e *Engine) {
		e.orientation = o
	}
}

// WithLogger sets the logger for candidate tracing.
func WithLogger(log *logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an engine writing to target and measuring with fits.
// A nil fits accepts the first candidate.
func New(target Target, fits FitsFunc, opts ...Option) *Engine {
	if fits == nil {
		fits = Always
	}

	e := &Engine{
		target: target,
		fits:   fits,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Orientation returns the orientation used by Layout.
func (e *Engine) Orientation() Orientation {
	return e.orientation
}

// SetOrientation changes the orientation used by Layout.
func (e *Engine) SetOrientation(o Orientation) {
	e.orientation = o
}

// Layout lays out bindings with the engine's orientation, horizontal unless
// WithOrientation or SetOrientation chose another.
func (e *Engine) Layout(b Bindings) Result {
	if e.orientation == Vertical {
		return e.LayoutVertical(b)
	}
	return e.LayoutHorizontal(b)
}

// LayoutHorizontal lays out bindings with the horizontal placer.
func (e *Engine) LayoutHorizontal(b Bindings) Result {
	return e.layout(b, Horizontal)
}

// LayoutVertical lays out bindings with the vertical placer.
func (e *Engine) LayoutVertical(b Bindings) Result {
	return e.layout(b, Vertical)
}

func (e *Engine) layout(b Bindings, o Orientation) Result {
	var result Result

	placer := o.Placer()
	for _, columnsPerRow := range b.Candidates() {
		result.Attempts++
		result.ColumnsPerRow = columnsPerRow
		result.Rows = Plan(b, columnsPerRow, placer, e.target)

		if e.fits(columnsPerRow) {
			e.log.Debug("layout candidate fits", "columns", columnsPerRow, "rows", result.Rows)
			break
		}

		e.log.Debug("layout candidate overflows", "columns", columnsPerRow, "rows", result.Rows)
	}

	if result.Attempts > 0 {
		e.log.Info("layout accepted",
			"orientation", o.String(),
			"groups", len(b),
			"items", b.Total(),
			"columns", result.ColumnsPerRow,
			"rows", result.Rows,
			"attempts", result.Attempts,
		)
	}

	return result
}

// Plan writes one candidate pass for columnsPerRow to target and returns the
// number of grid rows it occupies.
func Plan(b Bindings, columnsPerRow int, placer Placer, target Target) int {
	row := 1
	for _, g := range b {
		column := 1
		startRow := row

		for index := 0; index < g.Count; index++ {
			if column > columnsPerRow {
				column = 1
				row++
			}

			key, label := placer(row, column)
			target.PlaceItem(g.Name, index, ItemPlacement{
				Key:   key,
				Label: label,
				Start: row == startRow,
			})

			column++
		}

		rows := Span{Start: startRow, End: row + 1}
		target.PlaceHeader(g.Name, HeaderPlacement{Rows: rows, Column: 1})
		target.PlaceBackground(g.Name, BackgroundPlacement{
			Rows:    rows,
			Columns: Span{Start: 1, End: 2*columnsPerRow + 2},
		})

		row++
	}

	return row - 1
}
