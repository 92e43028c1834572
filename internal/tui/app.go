package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/pulseboard/internal/domain"
	"github.com/drake/pulseboard/internal/notify"
	"github.com/drake/pulseboard/internal/platform"
	"github.com/drake/pulseboard/internal/refresh"
	"github.com/drake/pulseboard/internal/search"
	"github.com/drake/pulseboard/internal/service"
	"github.com/drake/pulseboard/internal/tui/components"
	"github.com/drake/pulseboard/internal/watch"
)

// Panel indexes
const (
	panelFeatures = iota
	panelHealth
	panelAlerts
	panelLearnings
	panelCount
)

// DefaultPages are the navigable views offered by the command palette.
var DefaultPages = []domain.Page{
	{ID: "features", Name: "Features", Path: "/features"},
	{ID: "health", Name: "Health Evals", Path: "/health"},
	{ID: "alerts", Name: "Alerts", Path: "/alerts"},
	{ID: "learnings", Name: "Learnings", Path: "/learnings"},
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Collaborators
	BoardSvc  *service.BoardService
	Watcher   *watch.Watcher
	Notifier  *notify.Notifier
	Scheduler *refresh.Scheduler
	Index     *search.Index

	logger *slog.Logger

	// UI components
	Panels     [panelCount]components.ListPanel
	Palette    components.Palette
	RefreshBar components.RefreshBar

	// Data
	Board *domain.Board

	// Dimensions
	Width  int
	Height int
	Ready  bool

	// UI state
	focus       int
	StatusMsg   string
	StatusIsErr bool
	ShowHelp    bool
}

// NewModel creates a new application model
func NewModel(
	boardSvc *service.BoardService,
	watcher *watch.Watcher,
	notifier *notify.Notifier,
	scheduler *refresh.Scheduler,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}

	index := search.NewIndex()
	hint := fmt.Sprintf("%s+K palette · space pause · m mute · ? help · q quit", platform.ModKey())

	m := Model{
		BoardSvc:   boardSvc,
		Watcher:    watcher,
		Notifier:   notifier,
		Scheduler:  scheduler,
		Index:      index,
		logger:     logger,
		Palette:    components.NewPalette(index),
		RefreshBar: components.NewRefreshBar(hint),
	}

	m.Panels[panelFeatures] = components.NewListPanel("Features")
	m.Panels[panelHealth] = components.NewListPanel("Health Evals")
	m.Panels[panelAlerts] = components.NewListPanel("Alerts")
	m.Panels[panelLearnings] = components.NewListPanel("Learnings")
	m.Panels[panelFeatures].Focus()

	m.RefreshBar.SetMuted(notifier.Muted())
	m.rebuildIndex()

	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	// Mount: the dashboard is the scheduler's only consumer.
	m.Scheduler.Activate()
	return tea.Batch(
		RefreshBoardCmd(m.BoardSvc),
		TickCmd(),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		fire := m.Scheduler.Tick()
		m.RefreshBar.SetScheduler(m.Scheduler)
		if fire {
			return m, tea.Batch(RefreshBoardCmd(m.BoardSvc), TickCmd())
		}
		return m, TickCmd()

	case BoardLoadedMsg:
		return m.handleBoardLoaded(msg)

	case ErrMsg:
		m.logger.Error("tui error", "context", msg.Context, "error", msg.Err)
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(5 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// First interaction of the session unlocks audio. Informational only;
	// playback was already being attempted before this point.
	m.Notifier.Unlock()

	// While the palette is open it owns the keyboard, so typed characters
	// never leak into the dashboard's own bindings.
	if m.Palette.IsVisible() {
		var cmd tea.Cmd
		var selected bool
		m.Palette, cmd, selected = m.Palette.Update(msg)
		if selected {
			result := m.Palette.Selected()
			m.Palette.Hide()
			if result != nil {
				m.focusPath(result.Path)
			}
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		// Unmount: stop the countdown before leaving.
		m.Scheduler.Deactivate()
		return m, tea.Quit

	case key.Matches(msg, Keys.Palette):
		m.Palette.Show()
		return m, m.Palette.Init()

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = !m.ShowHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		m.ShowHelp = false
		return m, nil

	case key.Matches(msg, Keys.Pause):
		m.Scheduler.TogglePause()
		m.RefreshBar.SetScheduler(m.Scheduler)
		return m, nil

	case key.Matches(msg, Keys.Mute):
		m.Notifier.ToggleMute()
		m.RefreshBar.SetMuted(m.Notifier.Muted())
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		m.StatusMsg = "refreshing..."
		m.StatusIsErr = false
		return m, RefreshBoardCmd(m.BoardSvc)

	case key.Matches(msg, Keys.Up):
		m.Panels[m.focus].MoveUp()
		return m, nil

	case key.Matches(msg, Keys.Down):
		m.Panels[m.focus].MoveDown()
		return m, nil

	case key.Matches(msg, Keys.NextPanel):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, Keys.PrevPanel):
		m.cycleFocus(-1)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleBoardLoaded(msg BoardLoadedMsg) (tea.Model, tea.Cmd) {
	m.Board = msg.Board
	m.RefreshBar.SetFromCache(msg.FromCache)
	m.updatePanelLines()
	m.rebuildIndex()

	// Diff-then-notify: the watcher decides whether this cycle is worth a
	// sound. Cache fallbacks still run through it; the seen-sets make
	// repeated cached payloads silent.
	event := m.Watcher.Observe(domain.FeatureSnapshots(msg.Board.Features))
	switch event {
	case watch.EventCompleted:
		m.Notifier.Play(notify.SoundCompleted)
		m.StatusMsg = "feature completed"
		m.StatusIsErr = false
		return *m, ClearStatusCmd(5 * time.Second)
	case watch.EventCreated:
		m.Notifier.Play(notify.SoundCreated)
		m.StatusMsg = "new feature on the board"
		m.StatusIsErr = false
		return *m, ClearStatusCmd(5 * time.Second)
	}

	return *m, nil
}

func (m *Model) cycleFocus(delta int) {
	m.Panels[m.focus].Blur()
	m.focus = (m.focus + delta + panelCount) % panelCount
	m.Panels[m.focus].Focus()
}

// focusPath moves focus to the panel backing a palette path like
// "/features/F1" or "/health".
func (m *Model) focusPath(path string) {
	target := panelFeatures
	switch {
	case strings.HasPrefix(path, "/health"):
		target = panelHealth
	case strings.HasPrefix(path, "/alerts"):
		target = panelAlerts
	case strings.HasPrefix(path, "/learnings"):
		target = panelLearnings
	}
	m.Panels[m.focus].Blur()
	m.focus = target
	m.Panels[m.focus].Focus()
}

// rebuildIndex reloads the palette index from the current board.
func (m *Model) rebuildIndex() {
	m.Index.Reset()
	for _, p := range DefaultPages {
		m.Index.Add(search.Item{Kind: search.KindPage, ID: p.ID, Name: p.Name, Path: p.Path})
	}
	if m.Board == nil {
		return
	}
	for _, f := range m.Board.Features {
		m.Index.Add(search.Item{
			Kind: search.KindFeature,
			ID:   f.ID,
			Name: f.Name,
			Path: "/features/" + f.ID,
		})
	}
	for _, l := range m.Board.Learnings {
		m.Index.Add(search.Item{
			Kind: search.KindLearning,
			ID:   l.ID,
			Name: l.Title,
			Path: "/learnings/" + l.ID,
		})
	}
}

