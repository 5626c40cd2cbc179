package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/dexterm/internal/logtail"
)

func (m *Model) resizeLogView() {
	m.logView.Width = max(0, m.width-4)
	m.logView.Height = max(0, m.height-4)
}

// handleLogsKey scrolls the log overlay; L, esc or x close it.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Close) || key.Matches(msg, m.keys.Logs) {
		m.showLogs = false
		return m, nil
	}
	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	if msg.err != nil {
		m.log.Warn("read log file failed", zap.String("path", m.logPath), zap.Error(msg.err))
		m.logView.SetContent(m.theme.Styles().DangerText.Render("Could not read " + m.logPath))
		return
	}
	if len(msg.lines) == 0 {
		m.logView.SetContent(m.theme.Styles().MutedText.Render("Log is empty."))
		return
	}
	rendered := make([]string, 0, len(msg.lines))
	for _, line := range msg.lines {
		rendered = append(rendered, m.colorizeLogLine(logtail.Parse(line)))
	}
	m.logView.SetContent(strings.Join(rendered, "\n"))
	m.logView.GotoBottom()
}

func (m Model) colorizeLogLine(e logtail.Entry) string {
	return m.levelStyle(e.Level).Render(e.Format())
}

func (m Model) levelStyle(level string) lipgloss.Style {
	styles := m.theme.Styles()
	switch level {
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG":
		return styles.FaintText
	default:
		return styles.Text
	}
}

// renderLogs draws the log overlay.
func (m Model) renderLogs() string {
	title := "Log"
	if m.logPath != "" {
		title = "Log · " + m.logPath
	}
	return m.renderTitledBox(title, m.logView.View(), m.width, m.height, false)
}
