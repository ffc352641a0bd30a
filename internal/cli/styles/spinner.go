package styles

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/darkwatch/pkg/appearance"
)

// sunSpinner rotates the sun icon's rays.
var sunSpinner = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 4,
}

// ModeSpinner returns the animation matching mode: phases of the moon for
// dark, a turning half disc for light and dots otherwise.
func ModeSpinner(mode appearance.Mode) spinner.Spinner {
	switch mode {
	case appearance.ModeDark:
		return spinner.Moon
	case appearance.ModeLight:
		return sunSpinner
	default:
		return spinner.MiniDot
	}
}

// NewModeSpinner creates a themed spinner for mode.
func NewModeSpinner(theme *Theme, mode appearance.Mode) spinner.Model {
	return spinner.New(
		spinner.WithSpinner(ModeSpinner(mode)),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
	)
}
