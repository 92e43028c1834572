package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/drake/pulseboard/internal/tui/styles"
)

// ListPanel is a titled, bordered, scrollable list of pre-rendered lines.
// The dashboard shows four of them (features, health, alerts, learnings).
type ListPanel struct {
	title   string
	lines   []string
	cursor  int
	offset  int
	focused bool
	width   int
	height  int
}

// NewListPanel creates an empty panel.
func NewListPanel(title string) ListPanel {
	return ListPanel{title: title}
}

// SetLines replaces the panel contents, clamping the cursor.
func (p *ListPanel) SetLines(lines []string) {
	p.lines = lines
	if p.cursor >= len(lines) {
		p.cursor = len(lines) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.clampOffset()
}

// SetSize updates the outer panel dimensions.
func (p *ListPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.clampOffset()
}

// Focus marks the panel as the active one.
func (p *ListPanel) Focus() { p.focused = true }

// Blur removes focus.
func (p *ListPanel) Blur() { p.focused = false }

// Focused reports whether the panel has focus.
func (p *ListPanel) Focused() bool { return p.focused }

// Count returns the number of lines.
func (p *ListPanel) Count() int { return len(p.lines) }

// Title returns the panel title.
func (p *ListPanel) Title() string { return p.title }

// MoveUp moves the cursor up one line.
func (p *ListPanel) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
	p.clampOffset()
}

// MoveDown moves the cursor down one line.
func (p *ListPanel) MoveDown() {
	if p.cursor < len(p.lines)-1 {
		p.cursor++
	}
	p.clampOffset()
}

// visibleRows is the inner list height after border, title, and padding.
func (p *ListPanel) visibleRows() int {
	rows := p.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (p *ListPanel) clampOffset() {
	rows := p.visibleRows()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+rows {
		p.offset = p.cursor - rows + 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// View renders the panel.
func (p ListPanel) View() string {
	var b strings.Builder

	title := styles.TitleStyle.Render(p.title)
	if len(p.lines) > 0 {
		title += styles.DimStyle.Render(fmt.Sprintf(" (%d)", len(p.lines)))
	}
	b.WriteString(title)
	b.WriteString("\n")

	rows := p.visibleRows()
	innerWidth := p.width - 4
	if innerWidth < 8 {
		innerWidth = 8
	}

	if len(p.lines) == 0 {
		b.WriteString(styles.DimStyle.Render("nothing yet"))
	}

	end := p.offset + rows
	if end > len(p.lines) {
		end = len(p.lines)
	}
	for i := p.offset; i < end; i++ {
		line := styles.Truncate(p.lines[i], innerWidth)
		if p.focused && i == p.cursor {
			line = styles.SelectedItemStyle.Render(line)
		} else {
			line = styles.NormalItemStyle.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	border := styles.InactiveBorder
	if p.focused {
		border = styles.ActiveBorder
	}

	return border.
		Width(p.width - 2).
		Height(p.height - 2).
		Padding(0, 1).
		Render(lipgloss.NewStyle().MaxWidth(p.width - 4).Render(b.String()))
}
