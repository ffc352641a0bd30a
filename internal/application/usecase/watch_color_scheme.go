package usecase

import (
	"context"
	"time"

	"github.com/bnema/darkwatch/internal/application/port"
	"github.com/bnema/darkwatch/internal/logging"
	"github.com/bnema/darkwatch/pkg/appearance"
)

const updateBuffer = 16

// ColorSchemeUpdate is emitted for every mode the portal delivers and for
// every reload.
type ColorSchemeUpdate struct {
	At time.Time
	// Delivered is the raw portal value.
	Delivered appearance.Mode
	// Resolved applies the config override and fallback detectors.
	Resolved port.ColorSchemePreference
	// Changed is true when Resolved.Mode differs from the previous update.
	// The first update always counts as a change.
	Changed bool
	// Reload is true when a config reload rather than the portal triggered
	// the update.
	Reload bool
}

// HookResult reports the outcome of the hooks run for a mode.
type HookResult struct {
	Mode appearance.Mode
	Err  error
}

// WatchColorSchemeInput holds the callbacks for a watch session.
// Callbacks run on the goroutine that called Execute.
type WatchColorSchemeInput struct {
	RunHooks bool
	OnUpdate func(ColorSchemeUpdate)
	OnHooks  func(HookResult)
}

// WatchColorSchemeUseCase follows the portal and runs hooks whenever the
// resolved mode changes.
type WatchColorSchemeUseCase struct {
	source   port.AppearanceSource
	sink     port.ColorSchemeSink
	resolver port.ColorSchemeResolver
	hooks    port.HookRunner
	reload   chan struct{}
	now      func() time.Time
}

// NewWatchColorSchemeUseCase creates a new watch use case. sink and hooks may
// be nil.
func NewWatchColorSchemeUseCase(
	source port.AppearanceSource,
	sink port.ColorSchemeSink,
	resolver port.ColorSchemeResolver,
	hooks port.HookRunner,
) *WatchColorSchemeUseCase {
	return &WatchColorSchemeUseCase{
		source:   source,
		sink:     sink,
		resolver: resolver,
		hooks:    hooks,
		reload:   make(chan struct{}, 1),
		now:      time.Now,
	}
}

// Reload asks a running Execute to resolve again, e.g. after the config file
// changed. Calls made while a reload is pending are merged.
func (uc *WatchColorSchemeUseCase) Reload() {
	select {
	case uc.reload <- struct{}{}:
	default:
	}
}

type watchState struct {
	delivered appearance.Mode
	seen      bool
	resolved  appearance.Mode
	hooked    *appearance.Mode
}

// Execute subscribes and blocks until ctx is done. It fails only when the
// subscription cannot be set up.
func (uc *WatchColorSchemeUseCase) Execute(ctx context.Context, input WatchColorSchemeInput) error {
	log := logging.FromContext(ctx)

	modes := make(chan appearance.Mode, updateBuffer)
	err := uc.source.Subscribe(ctx, func(mode appearance.Mode) {
		select {
		case modes <- mode:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return err
	}

	unregister := uc.resolver.OnChange(func(pref port.ColorSchemePreference) {
		log.Info().Str("mode", pref.Mode.String()).Str("source", pref.Source).Msg("color scheme changed")
	})
	defer unregister()

	var state watchState
	for {
		select {
		case <-ctx.Done():
			return nil

		case mode := <-modes:
			if uc.sink != nil {
				uc.sink.Set(mode)
			}
			state.delivered = mode
			uc.update(ctx, input, &state, false)

		case <-uc.reload:
			if !state.seen {
				continue
			}
			log.Debug().Msg("re-resolving after reload")
			uc.update(ctx, input, &state, true)
		}
	}
}

func (uc *WatchColorSchemeUseCase) update(ctx context.Context, input WatchColorSchemeInput, state *watchState, reload bool) {
	pref := uc.resolver.Refresh()

	u := ColorSchemeUpdate{
		At:        uc.now(),
		Delivered: state.delivered,
		Resolved:  pref,
		Changed:   !state.seen || pref.Mode != state.resolved,
		Reload:    reload,
	}
	state.seen = true
	state.resolved = pref.Mode

	if input.OnUpdate != nil {
		input.OnUpdate(u)
	}

	if !input.RunHooks || uc.hooks == nil {
		return
	}
	if state.hooked != nil && *state.hooked == pref.Mode {
		return
	}

	mode := pref.Mode
	state.hooked = &mode
	err := uc.hooks.Run(ctx, mode)
	if input.OnHooks != nil {
		input.OnHooks(HookResult{Mode: mode, Err: err})
	}
}
