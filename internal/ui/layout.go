package ui

import "time"

// Card geometry. Widths include the border.
const (
	CardWidth  = 24
	CardHeight = 6
	CardGap    = 1
)

// Rows below the grid: status line and key hints.
const chromeBottom = 2

// DetailWidth is the outer width of the detail overlay.
const DetailWidth = 60

// Timing constants.
const (
	// StaggerStep is the reveal delay between consecutive cards of one batch.
	StaggerStep = 50 * time.Millisecond

	// RevealTick drives the stagger animation while cards are pending.
	RevealTick = 50 * time.Millisecond

	// LogOverlayLines is how much of the log file the log overlay keeps.
	LogOverlayLines = 400
)

// ErrorText is shown in place of the grid when a page fails to load.
const ErrorText = "Failed to load Pokémon. Please try again."

// Fixed rows of the main screen.
const (
	headerRow = 0
	searchRow = 1
	filterTop = 2
)

// chip is one filter bar entry with its screen position.
type chip struct {
	tag  string
	x, y int
	w    int
}

// filterChips lays the filter bar out for width, wrapping onto further rows.
// Positions are absolute screen coordinates.
func filterChips(width int) []chip {
	if width <= 0 {
		width = 80
	}
	tags := filterTags()
	chips := make([]chip, 0, len(tags))
	x, y := 0, filterTop
	for _, tag := range tags {
		w := len(tag) + 2 // padding
		if x > 0 && x+w > width {
			x = 0
			y++
		}
		chips = append(chips, chip{tag: tag, x: x, y: y, w: w})
		x += w + 1
	}
	return chips
}

// filterRows is how many rows the filter bar occupies at width.
func filterRows(width int) int {
	chips := filterChips(width)
	return chips[len(chips)-1].y - filterTop + 1
}

// gridTop is the first screen row of the card grid.
func (m Model) gridTop() int {
	return filterTop + filterRows(m.width) + 1
}

// columns is how many cards fit side by side.
func (m Model) columns() int {
	return max(1, (m.width+CardGap)/(CardWidth+CardGap))
}

// visibleRows is how many card rows fit between the filter bar and footer.
func (m Model) visibleRows() int {
	return max(1, (m.height-m.gridTop()-chromeBottom)/CardHeight)
}

// ensureVisible scrolls so the selected card's row is on screen.
func (m *Model) ensureVisible() {
	row := m.selected / m.columns()
	rows := m.visibleRows()
	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+rows {
		m.scrollRow = row - rows + 1
	}
}

func (m *Model) scroll(delta int) {
	cols := m.columns()
	totalRows := (m.grid.Len() + cols - 1) / cols
	maxTop := max(0, totalRows-m.visibleRows())
	m.scrollRow = min(max(m.scrollRow+delta, 0), maxTop)
}

func (m Model) chipAt(x, y int) (string, bool) {
	for _, c := range filterChips(m.width) {
		if y == c.y && x >= c.x && x < c.x+c.w {
			return c.tag, true
		}
	}
	return "", false
}

// cardAt maps a screen position to a revealed card index.
func (m Model) cardAt(x, y int) (int, bool) {
	top := m.gridTop()
	rows := m.visibleRows()
	if y < top || y >= top+rows*CardHeight || x < 0 {
		return 0, false
	}
	stride := CardWidth + CardGap
	if x%stride >= CardWidth {
		return 0, false
	}
	col := x / stride
	if col >= m.columns() {
		return 0, false
	}
	row := m.scrollRow + (y-top)/CardHeight
	idx := row*m.columns() + col
	cards := m.grid.Cards()
	if idx >= len(cards) || !cards[idx].Visible(m.frame) {
		return 0, false
	}
	return idx, true
}

// statusRow is the footer line that carries the load more control.
func (m Model) statusRow() int {
	return m.gridTop() + m.visibleRows()*CardHeight
}

func (m Model) onLoadMore(x, y int) bool {
	if y != m.statusRow() {
		return false
	}
	// Footer padding shifts the label one column right.
	return x >= 1 && x < 1+len(loadMoreLabel)
}

// rect is a screen rectangle.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// onClose reports whether (x, y) hits the close control drawn at the right
// end of the first content row.
func (r rect) onClose(x, y int) bool {
	right := r.x + r.w - 1 // border column
	return y == r.y+1 && x >= right-1-len(closeLabel) && x < right
}
