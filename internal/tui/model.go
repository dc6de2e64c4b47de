package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iammorganparry/bankdash/internal/view"
)

const sidebarWidth = 24

// dashboardState is shared by every copy of Model so the binding's
// subscriber can update it.
type dashboardState struct {
	panels view.Panels
	debug  *DebugLog
}

// Model is the root Bubble Tea model
type Model struct {
	width  int
	height int

	layout  view.Layout
	binding *view.Binding
	state   *dashboardState

	cursor int    // highlighted selector option
	err    string // last selection error

	keys KeyMap
}

// NewModel creates the terminal dashboard over binding. The initial panels
// are the binding's current ones.
func NewModel(binding *view.Binding, layout view.Layout, debug bool) Model {
	state := &dashboardState{
		panels: binding.Current(),
		debug:  NewDebugLog(debug, 50),
	}
	binding.Subscribe(func(p view.Panels) {
		state.panels = p
		state.debug.AddEvent("update", "category="+p.Category)
	})

	cursor := 0
	for i, opt := range layout.Options {
		if opt == state.panels.Category {
			cursor = i
			break
		}
	}

	return Model{
		layout:  layout,
		binding: binding,
		state:   state,
		cursor:  cursor,
		keys:    DefaultKeyMap(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.layout.Options)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Home):
			m.cursor = 0
		case key.Matches(msg, m.keys.End):
			m.cursor = len(m.layout.Options) - 1
		case key.Matches(msg, m.keys.Select):
			m.selectCurrent()
		case key.Matches(msg, m.keys.Debug):
			m.state.debug.Toggle()
		}
	}
	return m, nil
}

func (m *Model) selectCurrent() {
	category := m.layout.Options[m.cursor]
	if err := m.binding.Select(category); err != nil {
		m.err = err.Error()
		m.state.debug.AddEvent("error", err.Error())
		return
	}
	m.err = ""
}

// Panels returns the panels currently on screen
func (m Model) Panels() view.Panels {
	return m.state.panels
}

func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = 120
	}

	header := HeaderStyle.Render(m.layout.Title)

	sidebar := m.renderSidebar()
	panelWidth := (width - sidebarWidth - 4) / 2
	if panelWidth < 20 {
		panelWidth = 20
	}
	p := m.state.panels
	row1 := lipgloss.JoinHorizontal(lipgloss.Top,
		renderPanel(p.Figure(view.RegionAgeDistribution), panelWidth),
		renderPanel(p.Figure(view.RegionSubscriptionRate), panelWidth),
	)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top,
		renderPanel(p.Figure(view.RegionContactDuration), panelWidth),
		renderPanel(p.Figure(view.RegionMonthlyTrends), panelWidth),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		sidebar,
		lipgloss.JoinVertical(lipgloss.Left, row1, row2),
	)

	parts := []string{header, body}
	if m.state.debug.Visible() {
		parts = append(parts, m.state.debug.Render(width-2, 8))
	}
	parts = append(parts, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(SidebarTitleStyle.Render(m.layout.SelectorLabel))
	b.WriteString("\n\n")
	for i, opt := range m.layout.Options {
		marker := "  "
		if opt == m.state.panels.Category {
			marker = "● "
		}
		if i == m.cursor {
			b.WriteString(SelectedItemStyle.Render("▸ " + marker + opt))
		} else {
			b.WriteString(ItemStyle.Render("  " + marker + opt))
		}
		b.WriteString("\n")
	}
	return SidebarStyle.Width(sidebarWidth).Render(b.String())
}

func (m Model) renderStatusBar() string {
	if m.err != "" {
		return StatusBarStyle.Render(ErrorStyle.Render(m.err))
	}
	var hints []string
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return StatusBarStyle.Render(strings.Join(hints, " • "))
}
