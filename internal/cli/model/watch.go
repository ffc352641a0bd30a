// Package model holds the bubbletea models behind interactive commands.
package model

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/darkwatch/internal/cli/styles"
	"github.com/bnema/darkwatch/pkg/appearance"
)

const maxHistory = 10

// ModeChangedMsg reports a mode delivered by the subscription.
type ModeChangedMsg struct {
	Mode   appearance.Mode
	Source string
	At     time.Time
}

// HookResultMsg reports the outcome of the hooks run for a mode.
type HookResultMsg struct {
	Mode appearance.Mode
	Err  error
}

// WatchModel shows the live color scheme and the recent changes.
type WatchModel struct {
	theme   *styles.Theme
	spinner spinner.Model

	history  []ModeChangedMsg
	received int
	lastHook *HookResultMsg
	width    int
}

// NewWatchModel creates a new watch model.
func NewWatchModel(theme *styles.Theme) WatchModel {
	return WatchModel{
		theme:   theme,
		spinner: styles.NewModeSpinner(theme, appearance.ModeDefault),
		width:   80,
	}
}

// Init implements tea.Model.
func (m WatchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case ModeChangedMsg:
		m.spinner.Spinner = styles.ModeSpinner(msg.Mode)
		m.received++
		m.history = append(m.history, msg)
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}

	case HookResultMsg:
		m.lastHook = &msg

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// Current returns the latest delivered mode, if any.
func (m WatchModel) Current() (ModeChangedMsg, bool) {
	if len(m.history) == 0 {
		return ModeChangedMsg{}, false
	}
	return m.history[len(m.history)-1], true
}

// View implements tea.Model.
func (m WatchModel) View() string {
	t := m.theme

	current, ok := m.Current()
	if !ok {
		return t.Box.Render(fmt.Sprintf("%s %s", m.spinner.View(), t.Subtle.Render("Waiting for the desktop portal...")))
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.Title.Render("Color scheme "),
		t.ModeBadge(current.Mode),
		" ",
		m.spinner.View(),
	)

	lines := []string{header, ""}
	for i := len(m.history) - 1; i >= 0; i-- {
		c := m.history[i]
		lines = append(lines, t.RenderChange(c.At, c.Mode, c.Source))
	}

	lines = append(lines, "", t.Subtle.Render(fmt.Sprintf("%d updates received", m.received)))
	if m.lastHook != nil {
		if m.lastHook.Err != nil {
			lines = append(lines, t.ErrorStyle.Render(fmt.Sprintf("hooks for %s failed: %v", m.lastHook.Mode, m.lastHook.Err)))
		} else {
			lines = append(lines, t.SuccessStyle.Render(fmt.Sprintf("hooks for %s finished", m.lastHook.Mode)))
		}
	}
	lines = append(lines, "", t.HelpKey.Render("q")+" "+t.HelpDesc.Render("quit"))

	box := t.Box
	if w := min(m.width-2, 72); w > 0 {
		box = box.Width(w)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Ensure interface compliance.
var _ tea.Model = (*WatchModel)(nil)
