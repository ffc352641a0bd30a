package port

import (
	"context"

	"github.com/bnema/darkwatch/pkg/appearance"
)

// HookRunner runs the user's commands for a color scheme.
type HookRunner interface {
	Run(ctx context.Context, mode appearance.Mode) error
}
