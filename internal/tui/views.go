package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/pulseboard/internal/domain"
	"github.com/drake/pulseboard/internal/tui/styles"
)

// Chrome: header line + status line + footer line
const chromeHeight = 3

// updateLayout recomputes panel sizes for the 2x2 grid.
func (m *Model) updateLayout() {
	if m.Width <= 0 || m.Height <= 0 {
		return
	}

	panelWidth := m.Width / 2
	panelHeight := (m.Height - chromeHeight) / 2
	if panelHeight < 4 {
		panelHeight = 4
	}

	for i := range m.Panels {
		m.Panels[i].SetSize(panelWidth, panelHeight)
	}
	m.Palette.SetSize(m.Width, m.Height)
	m.RefreshBar.SetWidth(m.Width)
}

// updatePanelLines re-renders panel contents from the current board.
func (m *Model) updatePanelLines() {
	if m.Board == nil {
		return
	}

	features := make([]string, len(m.Board.Features))
	for i, f := range m.Board.Features {
		features[i] = featureLine(f)
	}
	m.Panels[panelFeatures].SetLines(features)

	health := make([]string, len(m.Board.Health))
	for i, h := range m.Board.Health {
		health[i] = healthLine(h)
	}
	m.Panels[panelHealth].SetLines(health)

	alerts := make([]string, len(m.Board.Alerts))
	for i, a := range m.Board.Alerts {
		alerts[i] = alertLine(a)
	}
	m.Panels[panelAlerts].SetLines(alerts)

	learnings := make([]string, len(m.Board.Learnings))
	for i, l := range m.Board.Learnings {
		learnings[i] = learningLine(l)
	}
	m.Panels[panelLearnings].SetLines(learnings)
}

func statusGlyph(status string) string {
	switch status {
	case domain.StatusCompleted:
		return styles.CompletedStyle.Render(styles.CompletedChar)
	case domain.StatusInProgress:
		return styles.InProgressStyle.Render(styles.InProgressChar)
	case domain.StatusBlocked:
		return styles.BlockedStyle.Render(styles.BlockedChar)
	default:
		return styles.OpenStyle.Render(styles.OpenChar)
	}
}

func featureLine(f domain.Feature) string {
	return fmt.Sprintf("%s %s %s", statusGlyph(f.Status), f.Name, styles.DimStyle.Render(f.ID))
}

func healthLine(h domain.HealthEval) string {
	return fmt.Sprintf("%s %s %s", statusGlyph(h.Status), h.Check,
		styles.DimStyle.Render(fmt.Sprintf("%.0f%%", h.Score*100)))
}

func alertLine(a domain.Alert) string {
	sev := styles.DimStyle.Render(a.Severity)
	switch a.Severity {
	case domain.SeverityCritical:
		sev = styles.ErrorStyle.Render(a.Severity)
	case domain.SeverityWarning:
		sev = styles.AccentStyle.Render(a.Severity)
	}
	return fmt.Sprintf("%s %s", sev, a.Message)
}

func learningLine(l domain.Learning) string {
	line := l.Title
	if l.Tag != "" {
		line += " " + styles.DimStyle.Render("["+l.Tag+"]")
	}
	return line
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "loading..."
	}

	if m.Palette.IsVisible() {
		return m.Palette.View()
	}

	if m.ShowHelp {
		return m.helpView()
	}

	header := m.headerView()

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.Panels[panelFeatures].View(),
		m.Panels[panelHealth].View(),
	)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.Panels[panelAlerts].View(),
		m.Panels[panelLearnings].View(),
	)

	status := ""
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			status = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			status = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		topRow,
		bottomRow,
		status,
		m.RefreshBar.View(),
	)
}

func (m Model) headerView() string {
	title := styles.TitleStyle.Render("pulseboard")
	info := ""
	if m.Board != nil {
		info = styles.DimStyle.Render(" · fetched " + m.Board.FetchedAt.Format("15:04:05"))
	}
	return title + info
}

func (m Model) helpView() string {
	bindings := []struct {
		keys, desc string
	}{
		{Keys.Palette.Help().Key, "open command palette"},
		{Keys.Pause.Help().Key, "pause/resume auto-refresh"},
		{Keys.Refresh.Help().Key, "refresh now"},
		{Keys.Mute.Help().Key, "toggle notification sounds"},
		{Keys.NextPanel.Help().Key, "next panel"},
		{Keys.Up.Help().Key + "/" + Keys.Down.Help().Key, "move in panel"},
		{Keys.Help.Help().Key, "close help"},
		{Keys.Quit.Help().Key, "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			styles.AccentStyle.Render(fmt.Sprintf("%-10s", bind.keys)),
			styles.FooterStyle.Render(bind.desc)))
	}

	modal := styles.ModalStyle.Render(b.String())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
}
