package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexterm/internal/detail"
)

const (
	statLabelWidth = 16
	statBarWidth   = 20
)

// renderDetail draws the detail panel centered over the screen.
func (m Model) renderDetail() string {
	panel := m.detailPanel()
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		panel,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// detailRect is where renderDetail places the panel.
func (m Model) detailRect() rect {
	panel := m.detailPanel()
	w, h := lipgloss.Width(panel), lipgloss.Height(panel)
	return rect{
		x: max(0, (m.width-w)/2),
		y: max(0, (m.height-h)/2),
		w: w,
		h: h,
	}
}

func (m Model) detailPanel() string {
	if m.detail == nil {
		return ""
	}
	v := *m.detail
	lines := m.detailLines(v, DetailWidth-2)
	title := fmt.Sprintf("%s %s", v.Name, v.Number)
	return m.renderTitledBox(title, strings.Join(lines, "\n"), DetailWidth, len(lines)+2, true)
}

func (m Model) detailLines(v detail.View, width int) []string {
	styles := m.theme.Styles()
	wrap := lipgloss.NewStyle().Width(width - 2)

	closeLine := strings.Repeat(" ", max(0, width-len(closeLabel)-1)) +
		styles.DangerText.Render(closeLabel)

	badges := make([]string, 0, len(v.Types))
	for _, tag := range v.Types {
		badges = append(badges, styles.BadgeStyle(tag).Render(tag))
	}

	description := v.Description
	if v.Pending {
		description = m.spinner.View() + " Loading description..."
	}

	lines := []string{
		closeLine,
		" " + strings.Join(badges, " "),
		" " + styles.FaintText.Render(truncate(v.Image, width-2)),
		"",
		" " + styles.AccentText.Bold(true).Render("About"),
	}
	for _, l := range strings.Split(wrap.Render(description), "\n") {
		lines = append(lines, " "+styles.MutedText.Render(l))
	}
	lines = append(lines,
		"",
		" "+styles.FaintText.Render("Height    ")+styles.Text.Render(v.Height),
		" "+styles.FaintText.Render("Weight    ")+styles.Text.Render(v.Weight),
		" "+styles.FaintText.Render("Abilities ")+styles.Text.Render(strings.Join(v.Abilities, ", ")),
		"",
		" "+styles.AccentText.Bold(true).Render("Base Stats"),
	)
	for _, s := range v.Stats {
		lines = append(lines, " "+m.renderStat(s))
	}
	return lines
}

func (m Model) renderStat(s detail.StatBar) string {
	styles := m.theme.Styles()
	label := lipgloss.NewStyle().Width(statLabelWidth).Render(s.Name)
	value := fmt.Sprintf("%3d ", s.Value)
	filled := barCells(s.Percent, statBarWidth)
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent)).Render(strings.Repeat("█", filled)) +
		styles.FaintText.Render(strings.Repeat("░", statBarWidth-filled))
	return styles.MutedText.Render(label) + styles.Text.Render(value) + bar
}

// barCells converts a percentage into filled cells of a bar of width cells.
func barCells(percent float64, width int) int {
	cells := int(math.Round(percent / 100 * float64(width)))
	return min(max(cells, 0), width)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐. Focused boxes use the focus border and
// background colors.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	title = truncate(title, max(0, innerWidth-4))
	titleLen := lipgloss.Width(title)
	leftPad := max(0, (innerWidth-titleLen-2)/2)
	rightPad := max(0, innerWidth-titleLen-2-leftPad)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)
	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	clip := lipgloss.NewStyle().MaxWidth(innerWidth)
	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")

	rows := make([]string, 0, height)
	rows = append(rows, topBorder)
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, bg.Render("│", borderStyle)+contentStyle.Render(clip.Render(line))+bg.Render("│", borderStyle))
	}
	rows = append(rows, bottomBorder)
	return strings.Join(rows, "\n")
}
