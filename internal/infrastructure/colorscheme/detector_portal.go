package colorscheme

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/darkwatch/pkg/appearance"
)

const (
	detectorNamePortal = "portal"
	priorityPortal     = 100
	portalTimeout      = time.Second
)

// ModeReader is satisfied by *appearance.Client.
type ModeReader interface {
	Detect(ctx context.Context) (appearance.Mode, error)
}

// PortalDetector asks the desktop portal. While a subscription is running the
// pushed value is used instead of a fresh bus round trip.
type PortalDetector struct {
	base    context.Context
	reader  ModeReader
	timeout time.Duration

	mu     sync.Mutex
	pushed *appearance.Mode
}

// NewPortalDetector wraps reader. Each Detect derives its context from base,
// which carries the logger, and is bounded by one second unless a value has
// been pushed with Set.
func NewPortalDetector(base context.Context, reader ModeReader) *PortalDetector {
	return &PortalDetector{base: base, reader: reader, timeout: portalTimeout}
}

// Name implements port.ColorSchemeDetector.
func (*PortalDetector) Name() string {
	return detectorNamePortal
}

// Priority implements port.ColorSchemeDetector.
func (*PortalDetector) Priority() int {
	return priorityPortal
}

// Available implements port.ColorSchemeDetector.
func (d *PortalDetector) Available() bool {
	return d.reader != nil
}

// Set records a value delivered by a subscription.
func (d *PortalDetector) Set(mode appearance.Mode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pushed = &mode
}

// Detect implements port.ColorSchemeDetector.
func (d *PortalDetector) Detect() (appearance.Mode, bool) {
	d.mu.Lock()
	pushed := d.pushed
	d.mu.Unlock()
	if pushed != nil {
		return *pushed, true
	}

	ctx, cancel := context.WithTimeout(d.base, d.timeout)
	defer cancel()

	mode, err := d.reader.Detect(ctx)
	if err != nil {
		return appearance.ModeDefault, false
	}
	return mode, true
}
