package port

import (
	"context"

	"github.com/bnema/darkwatch/pkg/appearance"
)

// AppearanceSource reads and follows the desktop color scheme.
// *appearance.Client implements it.
type AppearanceSource interface {
	// Detect returns the current color scheme.
	Detect(ctx context.Context) (appearance.Mode, error)

	// Subscribe delivers the current color scheme synchronously, then every
	// change until ctx is done.
	Subscribe(ctx context.Context, fn func(appearance.Mode)) error
}

// ColorSchemeSink accepts modes pushed by a subscription so detectors can
// answer without another bus round trip.
type ColorSchemeSink interface {
	Set(mode appearance.Mode)
}
