package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/darkwatch/pkg/appearance"
)

// ModeIcon returns the icon shown next to a mode.
func ModeIcon(mode appearance.Mode) string {
	switch mode {
	case appearance.ModeDark:
		return IconMoon
	case appearance.ModeLight:
		return IconSun
	default:
		return IconDesktop
	}
}

// ModeBadge renders the mode name on a colored background.
func (t *Theme) ModeBadge(mode appearance.Mode) string {
	bg := t.DefaultBadge
	fg := t.Text
	switch mode {
	case appearance.ModeDark:
		bg, fg = t.DarkBadge, lipgloss.Color("#ffffff")
	case appearance.ModeLight:
		bg, fg = t.LightBadge, lipgloss.Color("#1a1a1a")
	}
	return t.StatusBadge(ModeIcon(mode)+" "+mode.String(), fg, bg)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// RenderMode renders a resolved mode with the detector that produced it.
func (t *Theme) RenderMode(mode appearance.Mode, source string) string {
	if source == "" {
		return "  " + t.ModeBadge(mode)
	}
	return fmt.Sprintf("  %s %s", t.ModeBadge(mode), t.Subtle.Render("via "+source))
}

// RenderChange renders one line of the watch log.
func (t *Theme) RenderChange(at time.Time, mode appearance.Mode, source string) string {
	return fmt.Sprintf("  %s %s %s %s",
		t.Subtle.Render(at.Format("15:04:05")),
		lipgloss.NewStyle().Foreground(t.Accent).Render(IconArrow),
		t.ModeBadge(mode),
		t.Subtle.Render(source),
	)
}

// RenderError renders an error line.
func (t *Theme) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(t.Error)
	return fmt.Sprintf("  %s %s", iconStyle.Render(IconX), t.ErrorStyle.Render(err.Error()))
}
