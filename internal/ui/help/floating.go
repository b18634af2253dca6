package help

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"

	"github.com/chatter/keygrid/internal/grid"
	"github.com/chatter/keygrid/internal/keymap"
	"github.com/chatter/keygrid/internal/logger"
	"github.com/chatter/keygrid/internal/ui"
)

// FloatingHelp renders a modal with every keymap group laid out on a
// responsive grid. The grid is re-laid whenever the modal size, keymap or
// orientation changes; rows that do not fit vertically scroll.
type FloatingHelp struct {
	width  int
	height int
	title  string

	grid     *GridHelp
	engine   *grid.Engine
	viewport viewport.Model
	result   grid.Result

	// Styles (cached for frame size calculations)
	borderStyle lipgloss.Style
	titleStyle  lipgloss.Style
	footerStyle lipgloss.Style
}

// NewFloatingHelp creates a new floating help modal.
func NewFloatingHelp(log *logger.Logger) *FloatingHelp {
	f := &FloatingHelp{
		grid:        NewGridHelp(),
		viewport:    viewport.New(),
		borderStyle: ui.ModalStyle,
		titleStyle:  ui.ModalTitleStyle,
		footerStyle: ui.DimStyle,
	}
	f.engine = grid.New(f.grid, f.fits, grid.WithLogger(log))
	return f
}

// SetSize sets the available size for the modal and re-lays the grid.
func (f *FloatingHelp) SetSize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	f.width = width
	f.height = height
	f.relayout()
}

// SetKeymap sets the keymap to display and re-lays the grid.
func (f *FloatingHelp) SetKeymap(k *keymap.Keymap) {
	f.title = "Help"
	if k != nil && k.Title != "" {
		f.title = k.Title
	}
	f.grid.SetKeymap(k)
	f.relayout()
	f.viewport.GotoTop()
}

// SetOrientation switches the placement strategy and re-lays the grid.
func (f *FloatingHelp) SetOrientation(o grid.Orientation) {
	f.engine.SetOrientation(o)
	f.relayout()
}

// Orientation returns the active placement strategy.
func (f *FloatingHelp) Orientation() grid.Orientation {
	return f.engine.Orientation()
}

// Result returns the outcome of the latest layout.
func (f *FloatingHelp) Result() grid.Result {
	return f.result
}

// ScrollDown scrolls the grid down by n lines.
func (f *FloatingHelp) ScrollDown(n int) {
	f.viewport.ScrollDown(n)
}

// ScrollUp scrolls the grid up by n lines.
func (f *FloatingHelp) ScrollUp(n int) {
	f.viewport.ScrollUp(n)
}

// PageDown scrolls the grid down by one modal height.
func (f *FloatingHelp) PageDown() {
	f.viewport.PageDown()
}

// PageUp scrolls the grid up by one modal height.
func (f *FloatingHelp) PageUp() {
	f.viewport.PageUp()
}

// innerSize returns the space inside the border, minus the title and footer
// lines for the height.
func (f *FloatingHelp) innerSize() (int, int) {
	innerWidth := f.width - f.borderStyle.GetHorizontalFrameSize()
	innerHeight := f.height - f.borderStyle.GetVerticalFrameSize() - 2
	return innerWidth, innerHeight
}

// fits accepts a candidate when the placed grid is no wider than the modal.
func (f *FloatingHelp) fits(int) bool {
	innerWidth, _ := f.innerSize()
	return f.grid.Width() <= innerWidth
}

func (f *FloatingHelp) relayout() {
	if f.width <= 0 || f.height <= 0 {
		return
	}

	f.result = f.engine.Layout(f.grid.Bindings())

	innerWidth, innerHeight := f.innerSize()
	f.viewport.SetWidth(max(innerWidth, 0))
	f.viewport.SetHeight(max(innerHeight, 0))
	f.viewport.SetContent(f.grid.View())
}

// View renders the floating help modal.
func (f *FloatingHelp) View() string {
	if f.width <= 0 || f.height <= 0 {
		return ""
	}

	innerWidth, innerHeight := f.innerSize()

	// Minimum size check
	if innerWidth < 20 || innerHeight < 1 {
		return f.borderStyle.Width(max(innerWidth, 10)).Render("...")
	}

	title := f.titleStyle.Render(f.title)

	var body string
	if f.result.ColumnsPerRow == 0 {
		body = f.footerStyle.Render("No keybindings available")
	} else {
		body = lipgloss.NewStyle().MaxWidth(innerWidth).Render(f.viewport.View())
	}

	footer := f.footerStyle.Render(f.footerText())
	padding := max(innerWidth-lipgloss.Width(footer), 0)
	footer = strings.Repeat(" ", padding) + footer

	inner := lipgloss.JoinVertical(lipgloss.Left, title, body, footer)

	return f.borderStyle.Render(inner)
}

func (f *FloatingHelp) footerText() string {
	text := "? to close"
	if f.viewport.TotalLineCount() > f.viewport.Height() {
		text = fmt.Sprintf("%3.f%% · %s", f.viewport.ScrollPercent()*100, text)
	}
	return text
}
