package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/dexterm/internal/catalog"
)

// handleKey routes keyboard input. Overlays capture every key, so the grid
// never moves while the detail panel is open.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	if m.detail != nil {
		if key.Matches(msg, m.keys.Close) {
			m.closeDetail()
		}
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		m.resizeLogView()
		return m, readLogsCmd(m.logPath)
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.NextCategory):
		return m, m.stepCategory(1)
	case key.Matches(msg, m.keys.PrevCategory):
		return m, m.stepCategory(-1)
	case key.Matches(msg, m.keys.LoadMore):
		return m, m.requestPage()
	case key.Matches(msg, m.keys.Open):
		return m, m.openDetail(m.selected)
	case key.Matches(msg, m.keys.Close):
		if m.search.Value() != "" {
			m.search.SetValue("")
			return m, m.applySearch()
		}
		return m, nil
	}

	m.handleGridKey(msg)
	return m, nil
}

// handleSearchKey feeds the search input. The filter is re-evaluated on every
// change; enter and esc only leave the input.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, tea.Batch(cmd, m.applySearch())
}

func (m *Model) applySearch() tea.Cmd {
	if m.state == nil || !m.state.SetSearch(m.search.Value()) {
		return nil
	}
	return m.redraw()
}

func (m *Model) handleGridKey(msg tea.KeyMsg) {
	count := m.grid.Len()
	if count == 0 {
		return
	}
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected-cols >= 0 {
			m.selected -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected+cols < count {
			m.selected += cols
		}
	case key.Matches(msg, m.keys.Left):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Right):
		if m.selected < count-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	}
	m.ensureVisible()
}

// filterTags is the filter bar in display order.
func filterTags() []string {
	return append([]string{catalog.AllCategories}, catalog.Categories...)
}

// stepCategory moves the filter bar selection by delta, wrapping around.
func (m *Model) stepCategory(delta int) tea.Cmd {
	if m.state == nil {
		return nil
	}
	tags := filterTags()
	current := 0
	for i, tag := range tags {
		if tag == m.state.Filter().Category {
			current = i
			break
		}
	}
	next := (current + delta + len(tags)) % len(tags)
	return m.selectCategory(tags[next])
}

func (m *Model) selectCategory(tag string) tea.Cmd {
	if m.state == nil {
		return nil
	}
	changed, err := m.state.SetCategory(tag)
	if err != nil {
		m.log.Warn("ignoring category", zap.String("category", tag), zap.Error(err))
		return nil
	}
	if !changed {
		return nil
	}
	return m.redraw()
}

// handleMouse maps left clicks onto the filter bar, grid, load more control
// and overlays. The wheel scrolls the grid or the log overlay.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showLogs {
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.detail == nil && !m.showHelp {
			m.scroll(-1)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if m.detail == nil && !m.showHelp {
			m.scroll(1)
		}
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.detail != nil {
		rect := m.detailRect()
		if !rect.contains(msg.X, msg.Y) || rect.onClose(msg.X, msg.Y) {
			m.closeDetail()
		}
		return m, nil
	}

	if msg.Y == searchRow {
		m.searching = true
		return m, m.search.Focus()
	}
	if m.searching {
		m.searching = false
		m.search.Blur()
	}

	if tag, ok := m.chipAt(msg.X, msg.Y); ok {
		return m, m.selectCategory(tag)
	}
	if m.onLoadMore(msg.X, msg.Y) {
		return m, m.requestPage()
	}
	if idx, ok := m.cardAt(msg.X, msg.Y); ok {
		return m, m.openDetail(idx)
	}
	return m, nil
}
