package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DebugLog keeps the most recent binding events for the debug panel
type DebugLog struct {
	visible bool
	lines   []string
	limit   int
	now     func() time.Time
}

// NewDebugLog creates a log that keeps the last limit lines
func NewDebugLog(visible bool, limit int) *DebugLog {
	return &DebugLog{visible: visible, limit: limit, now: time.Now}
}

// Toggle flips panel visibility. Events are recorded either way.
func (d *DebugLog) Toggle() { d.visible = !d.visible }

// Visible reports whether the panel is shown
func (d *DebugLog) Visible() bool { return d.visible }

// AddEvent records an event with a timestamp
func (d *DebugLog) AddEvent(eventType, details string) {
	line := d.now().Format("15:04:05.000") + " [" + eventType + "]"
	if details != "" {
		line += " " + details
	}
	d.lines = append(d.lines, line)
	if len(d.lines) > d.limit {
		d.lines = d.lines[len(d.lines)-d.limit:]
	}
}

// Lines returns the recorded lines, oldest first
func (d *DebugLog) Lines() []string {
	return d.lines
}

// Render draws the newest lines that fit in height
func (d *DebugLog) Render(width, height int) string {
	if !d.visible {
		return ""
	}

	contentHeight := height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	lines := d.lines
	if len(lines) > contentHeight {
		lines = lines[len(lines)-contentHeight:]
	}

	maxLen := width - 4
	if maxLen < 10 {
		maxLen = 10
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, truncate(line, maxLen))
	}

	title := lipgloss.NewStyle().Foreground(ColorYellow).Bold(true).Render("DEBUG")
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorYellow).
		Padding(0, 1).
		Render(title + "\n" + strings.Join(out, "\n"))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
