package colorscheme

import (
	"os"
	"strings"

	"github.com/bnema/darkwatch/pkg/appearance"
)

const (
	envGTKTheme     = "GTK_THEME"
	detectorNameEnv = envGTKTheme
	priorityEnv     = 20
)

// EnvDetector reads the GTK_THEME environment variable, e.g. "Adwaita:dark".
type EnvDetector struct {
	lookup func(string) string
}

// NewEnvDetector creates a detector backed by the process environment.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{lookup: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return d.lookup(envGTKTheme) != ""
}

// Detect implements port.ColorSchemeDetector.
// A theme name or variant containing "dark" means dark, anything else light.
func (d *EnvDetector) Detect() (appearance.Mode, bool) {
	theme := d.lookup(envGTKTheme)
	if theme == "" {
		return appearance.ModeDefault, false
	}
	if strings.Contains(strings.ToLower(theme), "dark") {
		return appearance.ModeDark, true
	}
	return appearance.ModeLight, true
}
