package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrientation is returned when an orientation name is not recognised.
var ErrUnknownOrientation = errors.New("unknown orientation")

// Placer maps an item's logical (row, column) slot to the grid cells of its
// key and label.
type Placer func(row, column int) (key, label Cell)

// Orientation selects the placer used by a layout pass.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Orientations lists every orientation in cycling order.
var Orientations = []Orientation{Horizontal, Vertical}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Next returns the orientation after o in cycling order.
func (o Orientation) Next() Orientation {
	return Orientations[(int(o)+1)%len(Orientations)]
}

// Placer returns the placer for o. Unknown values fall back to horizontal.
func (o Orientation) Placer() Placer {
	switch o {
	case Vertical:
		return placeVertical
	default:
		return placeHorizontal
	}
}

// ParseOrientation parses "horizontal" or "vertical" (case-insensitive, "h"
// and "v" accepted).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("%w: %s (use horizontal, vertical)", ErrUnknownOrientation, s)
	}
}

// placeHorizontal puts the key in the even column and its label in the odd
// column right after it.
func placeHorizontal(row, column int) (key, label Cell) {
	return Cell{Row: row, Column: 2 * column}, Cell{Row: row, Column: 2*column + 1}
}

// placeVertical has the same cell assignment as horizontal until a
// column-major flow is specified.
func placeVertical(row, column int) (key, label Cell) {
	return placeHorizontal(row, column)
}
