// Package styles renders darkwatch output with lipgloss.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/darkwatch/pkg/appearance"
)

// Palette is the set of base colors a Theme is built from. Badge colors are
// part of the palette so each mode stays readable on its own background.
type Palette struct {
	Background string
	Text       string
	Muted      string
	Accent     string
	Border     string

	DarkBadge    string
	LightBadge   string
	DefaultBadge string
}

// Theme holds lipgloss colors and the styles built from them.
type Theme struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	DarkBadge    lipgloss.Color
	LightBadge   lipgloss.Color
	DefaultBadge lipgloss.Color

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
	Box          lipgloss.Style
}

// DefaultDarkPalette is used for dark and default terminals.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:   "#0a0a0b",
		Text:         "#ffffff",
		Muted:        "#909090",
		Accent:       "#818cf8",
		Border:       "#333333",
		DarkBadge:    "#4f46e5",
		LightBadge:   "#facc15",
		DefaultBadge: "#2d2d2d",
	}
}

// DefaultLightPalette is used when the desktop prefers light.
func DefaultLightPalette() Palette {
	return Palette{
		Background:   "#fafafa",
		Text:         "#1a1a1a",
		Muted:        "#606060",
		Accent:       "#d97706",
		Border:       "#cccccc",
		DarkBadge:    "#312e81",
		LightBadge:   "#fde68a",
		DefaultBadge: "#e0e0e0",
	}
}

// NewTheme picks the palette matching mode. The default mode uses the dark
// palette.
func NewTheme(mode appearance.Mode) *Theme {
	if mode == appearance.ModeLight {
		return NewThemeFromPalette(DefaultLightPalette())
	}
	return NewThemeFromPalette(DefaultDarkPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color("#22c55e"),

		DarkBadge:    lipgloss.Color(p.DarkBadge),
		LightBadge:   lipgloss.Color(p.LightBadge),
		DefaultBadge: lipgloss.Color(p.DefaultBadge),
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t.Title = fg(t.Text).Bold(true)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)
	t.HelpKey = fg(t.Accent)
	t.HelpDesc = fg(t.Muted)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	return t
}
