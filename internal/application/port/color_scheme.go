package port

import "github.com/bnema/darkwatch/pkg/appearance"

// ColorSchemePreference represents the resolved color scheme preference.
type ColorSchemePreference struct {
	// Mode is the resolved appearance.
	Mode appearance.Mode

	// Source identifies which detector provided this preference.
	// "config" means an explicit override, "fallback" means nothing answered.
	Source string
}

// PrefersDark reports whether the resolved mode is dark.
func (p ColorSchemePreference) PrefersDark() bool {
	return p.Mode == appearance.ModeDark
}

// ColorSchemeDetector detects the system's color scheme preference.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   - 100+: Desktop portal
	//   -  10+: Fallback detectors (gsettings, env vars)
	Priority() int

	// Available returns true if this detector can be used.
	Available() bool

	// Detect returns the detected mode and whether detection succeeded.
	// Returns (mode, true) on success, (_, false) if detection failed.
	Detect() (mode appearance.Mode, ok bool)
}

// ColorSchemeResolver resolves the effective color scheme preference.
// It manages multiple detectors and respects config overrides.
type ColorSchemeResolver interface {
	// Resolve returns the current color scheme preference.
	// It checks config for explicit overrides, then queries detectors by priority.
	// If all detectors fail, falls back to appearance.ModeDefault.
	Resolve() ColorSchemePreference

	// RegisterDetector adds a detector to the resolver.
	// Safe to call at any time; the resolver re-evaluates on next Resolve().
	RegisterDetector(detector ColorSchemeDetector)

	// Refresh forces re-evaluation of the color scheme.
	// Call this when system preferences change. Returns the new preference.
	Refresh() ColorSchemePreference

	// OnChange registers a callback for color scheme changes.
	// The callback is invoked when Refresh() results in a different mode.
	// Returns a function to unregister the callback.
	OnChange(callback func(ColorSchemePreference)) func()
}
