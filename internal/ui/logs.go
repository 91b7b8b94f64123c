package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/carlot/internal/logtail"
)

// logState holds the log view's buffer and scroll state.
type logState struct {
	lines    []string
	follow   bool
	err      error
	viewport viewport.Model
}

func newLogState() logState {
	return logState{follow: true, viewport: viewport.New(0, 0)}
}

type logLinesMsg struct {
	lines []string
	err   error
}

var toggleFollowKey = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "Toggle follow"))

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logLinesMsg{}
		}
		lines, err := logtail.Read(path, LogTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

// resizeLogViewport fits the viewport inside the log box.
func (m *Model) resizeLogViewport() {
	m.logs.viewport.Width = max(m.width-2, 0)
	m.logs.viewport.Height = max(m.height-4, 0)
}

// handleLogLines replaces the buffer and re-renders the viewport content.
func (m *Model) handleLogLines(msg logLinesMsg) {
	m.logs.err = msg.err
	if msg.err != nil {
		return
	}
	m.logs.lines = msg.lines
	m.logs.viewport.SetContent(m.renderLogContent())
	if m.logs.follow {
		m.logs.viewport.GotoBottom()
	}
}

// handleLogsKey scrolls the log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := &m.logs.viewport
	switch {
	case key.Matches(msg, toggleFollowKey):
		m.logs.follow = !m.logs.follow
		if m.logs.follow {
			vp.GotoBottom()
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		vp.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		vp.LineUp(1)
	case key.Matches(msg, m.keys.PageDown):
		vp.HalfViewDown()
	case key.Matches(msg, m.keys.PageUp):
		vp.HalfViewUp()
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
		return m, nil
	default:
		return m, nil
	}
	m.logs.follow = vp.AtBottom()
	return m, nil
}

// renderLogs renders the log box and its status line.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	height := max(m.height-3, 3)

	content := m.logs.viewport.View()
	if len(m.logs.lines) == 0 {
		content = styles.MutedText.Render("No log output yet.")
	}
	if m.logs.err != nil {
		content = styles.DangerText.Render(m.logs.err.Error())
	}
	box := m.renderTitledBox("carlot log", content, m.width, height, true)

	follow := "off"
	if m.logs.follow {
		follow = "on"
	}
	status := fmt.Sprintf("%s  %d lines  follow %s", truncate(m.logPath, 60), len(m.logs.lines), follow)
	return box + "\n" + styles.FaintText.Render(status)
}

// renderLogContent colours each line by its parsed level.
func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	out := make([]string, 0, len(m.logs.lines))
	for _, line := range m.logs.lines {
		out = append(out, colorizeLogLine(line, styles))
	}
	return strings.Join(out, "\n")
}

func colorizeLogLine(line string, styles Styles) string {
	e := logtail.Parse(line)
	if e.Level == "" {
		return styles.Text.Render(e.Message)
	}
	parts := make([]string, 0, 5)
	if e.Time != "" {
		parts = append(parts, styles.FaintText.Render(e.Time))
	}
	parts = append(parts, styles.LevelStyle(e.Level).Render(fmt.Sprintf("%-5s", e.Level)))
	if e.Logger != "" {
		parts = append(parts, styles.AccentText.Render("["+e.Logger+"]"))
	}
	parts = append(parts, styles.Text.Render(e.Message))
	if e.Fields != "" {
		parts = append(parts, styles.MutedText.Render(e.Fields))
	}
	return strings.Join(parts, " ")
}
