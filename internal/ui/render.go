package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexterm/internal/catalog"
)

const (
	loadMoreLabel = "[ Load more ]"
	closeLabel    = "[x]"
)

// renderMain renders header, search, filter bar, grid and footer.
func (m Model) renderMain() string {
	parts := []string{
		m.renderHeader(),
		m.search.View(),
		m.renderFilterBar(),
		"",
		m.renderGrid(),
		m.renderFooter(),
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	cached := 0
	if m.state != nil {
		cached = m.state.Cache.Len()
	}
	left := bg.Render("dexterm", styles.Logo) + bg.Spaces(2) +
		bg.Render(fmt.Sprintf("%d shown · %d cached", m.grid.Len(), cached), styles.MutedText)
	right := bg.Render(m.theme.Name, styles.FaintText)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	return bg.FillLine(left+bg.Spaces(gap)+right, m.width)
}

// renderFilterBar draws the chips on the rows computed by filterChips.
func (m Model) renderFilterBar() string {
	active := catalog.AllCategories
	if m.state != nil {
		active = m.state.Filter().Category
	}

	var rows []string
	var line strings.Builder
	col, row := 0, filterTop
	for _, c := range filterChips(m.width) {
		if c.y != row {
			rows = append(rows, line.String())
			line.Reset()
			col, row = 0, c.y
		}
		if c.x > col {
			line.WriteString(strings.Repeat(" ", c.x-col))
		}
		line.WriteString(m.theme.ChipStyle(c.tag, c.tag == active).Render(c.tag))
		col = c.x + c.w
	}
	rows = append(rows, line.String())
	return strings.Join(rows, "\n")
}

// renderGrid draws the visible rows of cards, the inline error or an empty
// state, padded to the grid height.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	height := m.visibleRows() * CardHeight
	box := lipgloss.NewStyle().Width(m.width).Height(height)

	if msg := m.grid.Err(); msg != "" {
		return box.Align(lipgloss.Center).Render(styles.DangerText.Render(msg))
	}

	cards := m.grid.Cards()
	if len(cards) == 0 {
		text := "No Pokémon match the current filter."
		if m.loading {
			text = m.spinner.View() + " Loading Pokémon..."
		}
		return box.Align(lipgloss.Center).Render(styles.MutedText.Render(text))
	}

	cols := m.columns()
	gap := strings.Repeat(" ", CardGap)
	var rows []string
	for r := m.scrollRow; r < m.scrollRow+m.visibleRows(); r++ {
		start := r * cols
		if start >= len(cards) {
			break
		}
		end := min(start+cols, len(cards))
		rendered := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				rendered = append(rendered, gap)
			}
			rendered = append(rendered, m.renderCard(cards[i], i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return box.Render(strings.Join(rows, "\n"))
}

// renderCard draws one card, or a blank cell while its reveal delay runs.
func (m Model) renderCard(c Card, selected bool) string {
	if !c.Visible(m.frame) {
		return lipgloss.NewStyle().Width(CardWidth).Height(CardHeight).Render("")
	}
	styles := m.theme.Styles()
	inner := CardWidth - 2

	badges := make([]string, 0, len(c.Badges))
	for _, b := range c.Badges {
		badges = append(badges, styles.BadgeStyle(b.Tag).Render(b.Tag))
	}

	line := lipgloss.NewStyle().MaxWidth(inner)
	content := strings.Join([]string{
		line.Render(styles.FaintText.Render(c.Number)),
		line.Render(styles.Text.Bold(true).Render(c.Name)),
		line.Render(strings.Join(badges, " ")),
		line.Render(styles.FaintText.Render(c.ImageLabel())),
	}, "\n")

	border := m.theme.Border
	if selected {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(inner).
		Height(CardHeight - 2).
		Render(content)
}

// renderFooter draws the load more control with pagination status, then the
// key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var control string
	switch {
	case m.loading:
		control = m.spinner.View() + " Loading..."
	case m.state != nil && m.state.Pager.Exhausted():
		control = styles.FaintText.Render("All Pokémon loaded")
	default:
		control = styles.AccentText.Render(loadMoreLabel)
	}

	status := control
	if m.state != nil {
		f := m.state.Filter()
		status += styles.MutedText.Render(fmt.Sprintf("  type: %s", f.Category))
		if term := f.Term(); term != "" {
			status += styles.MutedText.Render(fmt.Sprintf(" · search: %q", term))
		}
	}

	return styles.Footer.Width(m.width).Render(status) + "\n" +
		styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
