package cli

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

// defaultWidth is used when --width is unset and the output is not a
// terminal.
const defaultWidth = 80

type fder interface {
	Fd() uintptr
}

// resolveWidth returns width, or the terminal's column count when width is
// zero and w is a terminal.
func (o *options) resolveWidth(w io.Writer, width int) (int, error) {
	if width < 0 {
		return 0, fmt.Errorf("--width must not be negative, got %d", width)
	}
	if width > 0 {
		return width, nil
	}

	if f, ok := w.(fder); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			o.log.Debug("width from terminal", "columns", cols)
			return cols, nil
		}
	}

	return defaultWidth, nil
}
