package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/pulseboard/internal/search"
	"github.com/drake/pulseboard/internal/tui/styles"
)

// Palette is the command palette modal: a text input over the preloaded
// page/feature/learning index. All filtering is in-memory; it never hits
// the network.
type Palette struct {
	input   textinput.Model
	index   *search.Index
	results []search.Result
	cursor  int
	visible bool
	width   int
	height  int
}

// NewPalette creates the palette over the given index.
func NewPalette(index *search.Index) Palette {
	ti := textinput.New()
	ti.Placeholder = "Jump to page, feature, or learning..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return Palette{input: ti, index: index}
}

// Show opens the palette with an empty query (all entries listed).
func (p *Palette) Show() {
	p.visible = true
	p.input.Focus()
	p.input.SetValue("")
	p.results = p.index.Filter("")
	p.cursor = 0
}

// Hide closes the palette.
func (p *Palette) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible returns true while the palette is open. The app uses this to
// keep the global chord from leaking keys into the view underneath.
func (p Palette) IsVisible() bool {
	return p.visible
}

// SetSize updates the component dimensions.
func (p *Palette) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = width - 10
}

// Selected returns the entry under the cursor, or nil.
func (p Palette) Selected() *search.Result {
	if len(p.results) == 0 || p.cursor >= len(p.results) {
		return nil
	}
	return &p.results[p.cursor]
}

// Init initializes the component
func (p Palette) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. The bool reports that the user selected an entry.
func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd, bool) {
	if !p.visible {
		return p, nil, false
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			p.Hide()
			return p, nil, false

		case "enter":
			if len(p.results) > 0 {
				return p, nil, true
			}
			return p, nil, false

		case "down", "ctrl+n":
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}
			return p, nil, false

		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil, false

		default:
			prev := p.input.Value()
			p.input, cmd = p.input.Update(msg)
			if p.input.Value() != prev {
				p.results = p.index.Filter(p.input.Value())
				p.cursor = 0
			}
			return p, cmd, false
		}
	}

	p.input, cmd = p.input.Update(msg)
	return p, cmd, false
}

// View renders the component
func (p Palette) View() string {
	if !p.visible {
		return ""
	}

	modalWidth := p.width * 2 / 3
	if modalWidth < 40 {
		modalWidth = 40
	}
	if modalWidth > 80 {
		modalWidth = 80
	}
	maxResults := 10

	var b strings.Builder
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.results) == 0 && p.input.Value() != "" {
		b.WriteString(styles.DimStyle.Render("No matches found"))
	}

	displayCount := len(p.results)
	if displayCount > maxResults {
		displayCount = maxResults
	}

	for i := 0; i < displayCount; i++ {
		result := p.results[i]
		selected := i == p.cursor

		var line strings.Builder
		line.WriteString(styles.DimBadgeStyle.Render(badge(result.Kind)))
		line.WriteString(" ")

		value := styles.Truncate(result.Value, modalWidth-15)
		if selected {
			line.WriteString(styles.SelectedItemStyle.Render(value))
		} else {
			line.WriteString(renderHighlighted(value, result.MatchedIndexes))
		}

		b.WriteString(line.String())
		b.WriteString("\n")
	}

	if len(p.results) > maxResults {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(p.results)-maxResults)))
	}

	content := lipgloss.NewStyle().
		Width(modalWidth - 4).
		Render(b.String())

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(content)

	return lipgloss.Place(
		p.width,
		p.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func badge(kind search.Kind) string {
	switch kind {
	case search.KindFeature:
		return "FEAT"
	case search.KindLearning:
		return "LRN"
	default:
		return "PAGE"
	}
}

// renderHighlighted styles the matched character positions within value.
func renderHighlighted(value string, indexes []int) string {
	if len(indexes) == 0 {
		return styles.FooterStyle.Render(value)
	}
	matched := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range []rune(value) {
		if matched[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(styles.FooterStyle.Render(string(r)))
		}
	}
	return b.String()
}
