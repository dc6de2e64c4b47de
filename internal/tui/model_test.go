package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iammorganparry/bankdash/internal/dataset"
	"github.com/iammorganparry/bankdash/internal/view"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ds, err := dataset.Load(filepath.Join("..", "dataset", "testdata", "bank-sample.csv"), dataset.DefaultDelimiter)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	b, err := view.NewBinding(ds)
	if err != nil {
		t.Fatalf("new binding: %v", err)
	}
	return NewModel(b, view.NewLayout(""), false)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestSelectionRerunsBinding(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"initial", nil, "job"},
		{"move without select", []string{"down", "down"}, "job"},
		{"select second", []string{"down", "enter"}, "marital"},
		{"vim keys", []string{"j", "j", "j", "k", "enter"}, "education"},
		{"end", []string{"G", "enter"}, "poutcome"},
		{"up stops at top", []string{"up", "up", "enter"}, "job"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newTestModel(t), tt.keys...)
			if got := m.Panels().Category; got != tt.want {
				t.Errorf("category = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectionLogsEvent(t *testing.T) {
	m := newTestModel(t)
	m.state.debug.now = func() time.Time { return time.Date(2024, 1, 24, 11, 11, 12, 0, time.UTC) }

	m = press(m, "down", "enter")

	lines := m.state.debug.Lines()
	if len(lines) != 1 || lines[0] != "11:11:12.000 [update] category=marital" {
		t.Errorf("debug lines = %q", lines)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 60})
	out := next.(Model).View()

	for _, want := range []string{
		"Banking Insights Dashboard",
		"Age Distribution",
		"Subscription Rate",
		"Contact Duration vs. Subscription",
		"Monthly Subscription Trends",
		"poutcome",
		"may",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestDebugToggle(t *testing.T) {
	m := newTestModel(t)
	if m.state.debug.Visible() {
		t.Fatal("debug panel should start hidden")
	}
	m = press(m, "d")
	if !m.state.debug.Visible() {
		t.Error("d should show the debug panel")
	}
	if !strings.Contains(m.View(), "DEBUG") {
		t.Error("view should include the debug panel")
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		n, max, width int
		want          int
	}{
		{0, 10, 20, 0},
		{10, 10, 20, 20},
		{5, 10, 20, 10},
		{1, 1000, 20, 1},
		{3, 0, 20, 0},
	}
	for _, tt := range tests {
		if got := len([]rune(bar(tt.n, tt.max, tt.width))); got != tt.want {
			t.Errorf("bar(%d, %d, %d) width = %d, want %d", tt.n, tt.max, tt.width, got, tt.want)
		}
	}
}
