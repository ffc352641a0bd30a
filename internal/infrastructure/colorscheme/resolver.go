package colorscheme

import (
	"sort"
	"sync"

	"github.com/bnema/darkwatch/internal/application/port"
	"github.com/bnema/darkwatch/pkg/appearance"
)

const (
	// sourceFallback indicates no detector provided the preference.
	sourceFallback = "fallback"
	// sourceConfig indicates the preference came from user config.
	sourceConfig = "config"
)

// ConfigProvider provides access to the color scheme configuration.
type ConfigProvider interface {
	// GetColorScheme returns the configured override.
	// Expected values: "default", "prefer-dark", "prefer-light", "dark", "light"
	GetColorScheme() string
}

// callbackWrapper gives each callback an identity for removal.
type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// Resolver implements port.ColorSchemeResolver.
// Detectors are kept sorted by priority, highest first.
type Resolver struct {
	mu        sync.RWMutex
	config    ConfigProvider
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	callbacks []*callbackWrapper
}

// NewResolver creates a new color scheme resolver.
// config may be nil, in which case only detectors are consulted.
func NewResolver(config ConfigProvider) *Resolver {
	return &Resolver{
		config:    config,
		detectors: make([]port.ColorSchemeDetector, 0),
		current: port.ColorSchemePreference{
			Mode:   appearance.ModeDefault,
			Source: sourceFallback,
		},
	}
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked()
}

// Current returns the preference computed by the last Refresh.
func (r *Resolver) Current() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// resolveLocked requires at least the read lock.
func (r *Resolver) resolveLocked() port.ColorSchemePreference {
	if mode, ok := r.configOverride(); ok {
		return port.ColorSchemePreference{Mode: mode, Source: sourceConfig}
	}

	for _, detector := range r.detectors {
		if !detector.Available() {
			continue
		}
		if mode, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{Mode: mode, Source: detector.Name()}
		}
	}

	return port.ColorSchemePreference{
		Mode:   appearance.ModeDefault,
		Source: sourceFallback,
	}
}

// configOverride reports a forced mode. "default", empty and unknown values
// defer to the detectors.
func (r *Resolver) configOverride() (appearance.Mode, bool) {
	if r.config == nil {
		return appearance.ModeDefault, false
	}
	mode, err := appearance.ParseMode(r.config.GetColorScheme())
	if err != nil || mode == appearance.ModeDefault {
		return appearance.ModeDefault, false
	}
	return mode, true
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.detectors = append(r.detectors, detector)
	sort.SliceStable(r.detectors, func(i, j int) bool {
		return r.detectors[i].Priority() > r.detectors[j].Priority()
	})
}

// Refresh implements port.ColorSchemeResolver.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	r.mu.Lock()
	next := r.resolveLocked()
	changed := next.Mode != r.current.Mode
	r.current = next

	var callbacks []*callbackWrapper
	if changed {
		callbacks = make([]*callbackWrapper, len(r.callbacks))
		copy(callbacks, r.callbacks)
	}
	r.mu.Unlock()

	// Callbacks may call back into the resolver.
	for _, cb := range callbacks {
		cb.fn(next)
	}
	return next
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}
