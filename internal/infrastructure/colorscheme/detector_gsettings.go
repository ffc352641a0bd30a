package colorscheme

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/bnema/darkwatch/pkg/appearance"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
	gsettingsTimeout      = 2 * time.Second
)

// GsettingsDetector reads org.gnome.desktop.interface color-scheme.
// It answers on GNOME desktops where the portal is missing.
type GsettingsDetector struct {
	// run executes gsettings; swapped in tests.
	run func(ctx context.Context, args ...string) ([]byte, error)
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: runGsettings}
}

func runGsettings(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, "gsettings", args...).Output()
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
func (*GsettingsDetector) Available() bool {
	_, err := exec.LookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// "default" is not an answer: the desktop has no preference we can report
// beyond what the portal already says.
func (d *GsettingsDetector) Detect() (appearance.Mode, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), gsettingsTimeout)
	defer cancel()

	output, err := d.run(ctx, "get", "org.gnome.desktop.interface", "color-scheme")
	if err != nil {
		return appearance.ModeDefault, false
	}
	return parseGsettingsScheme(string(output))
}

// parseGsettingsScheme handles output like "'prefer-dark'\n".
func parseGsettingsScheme(output string) (appearance.Mode, bool) {
	result := strings.Trim(strings.TrimSpace(output), "'\"")

	switch result {
	case "prefer-dark":
		return appearance.ModeDark, true
	case "prefer-light":
		return appearance.ModeLight, true
	default:
		return appearance.ModeDefault, false
	}
}
