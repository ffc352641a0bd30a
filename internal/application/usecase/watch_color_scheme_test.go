package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/darkwatch/internal/application/port"
	"github.com/bnema/darkwatch/internal/application/port/mocks"
	"github.com/bnema/darkwatch/internal/application/usecase"
	"github.com/bnema/darkwatch/pkg/appearance"
)

const waitTimeout = 2 * time.Second

type recordingSink struct {
	mu    sync.Mutex
	modes []appearance.Mode
}

func (s *recordingSink) Set(mode appearance.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes = append(s.modes, mode)
}

func (s *recordingSink) got() []appearance.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]appearance.Mode(nil), s.modes...)
}

// subscribeDelivering makes Subscribe deliver first synchronously and the
// rest from another goroutine, like the real client.
func subscribeDelivering(first appearance.Mode, rest ...appearance.Mode) func(context.Context, func(appearance.Mode)) error {
	return func(_ context.Context, fn func(appearance.Mode)) error {
		fn(first)
		go func() {
			for _, m := range rest {
				fn(m)
			}
		}()
		return nil
	}
}

func pref(mode appearance.Mode, source string) port.ColorSchemePreference {
	return port.ColorSchemePreference{Mode: mode, Source: source}
}

type watchRun struct {
	cancel  context.CancelFunc
	done    chan error
	updates chan usecase.ColorSchemeUpdate
	hooks   chan usecase.HookResult
}

func startWatch(t *testing.T, uc *usecase.WatchColorSchemeUseCase, runHooks bool) *watchRun {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	r := &watchRun{
		cancel:  cancel,
		done:    make(chan error, 1),
		updates: make(chan usecase.ColorSchemeUpdate, 16),
		hooks:   make(chan usecase.HookResult, 16),
	}
	go func() {
		r.done <- uc.Execute(ctx, usecase.WatchColorSchemeInput{
			RunHooks: runHooks,
			OnUpdate: func(u usecase.ColorSchemeUpdate) { r.updates <- u },
			OnHooks:  func(h usecase.HookResult) { r.hooks <- h },
		})
	}()
	t.Cleanup(cancel)
	return r
}

func (r *watchRun) nextUpdate(t *testing.T) usecase.ColorSchemeUpdate {
	t.Helper()
	select {
	case u := <-r.updates:
		return u
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for update")
		return usecase.ColorSchemeUpdate{}
	}
}

func (r *watchRun) nextHooks(t *testing.T) usecase.HookResult {
	t.Helper()
	select {
	case h := <-r.hooks:
		return h
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for hooks")
		return usecase.HookResult{}
	}
}

func (r *watchRun) stop(t *testing.T) {
	t.Helper()
	r.cancel()
	select {
	case err := <-r.done:
		require.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("Execute did not return after cancel")
	}
}

func TestWatchColorScheme_DeliversUpdatesAndRunsHooks(t *testing.T) {
	source := mocks.NewMockAppearanceSource(t)
	resolver := mocks.NewMockColorSchemeResolver(t)
	hooks := mocks.NewMockHookRunner(t)
	sink := &recordingSink{}

	source.EXPECT().Subscribe(mock.Anything, mock.Anything).
		RunAndReturn(subscribeDelivering(appearance.ModeDark, appearance.ModeDark, appearance.ModeLight))
	resolver.EXPECT().OnChange(mock.Anything).Return(func() {})
	resolver.EXPECT().Refresh().Return(pref(appearance.ModeDark, "portal")).Twice()
	resolver.EXPECT().Refresh().Return(pref(appearance.ModeLight, "portal")).Once()
	hooks.EXPECT().Run(mock.Anything, appearance.ModeDark).Return(nil).Once()
	hooks.EXPECT().Run(mock.Anything, appearance.ModeLight).Return(errors.New("exit status 1")).Once()

	uc := usecase.NewWatchColorSchemeUseCase(source, sink, resolver, hooks)
	run := startWatch(t, uc, true)

	first := run.nextUpdate(t)
	assert.True(t, first.Changed)
	assert.Equal(t, appearance.ModeDark, first.Delivered)
	assert.Equal(t, usecase.HookResult{Mode: appearance.ModeDark}, run.nextHooks(t))

	// Repeated values are delivered but do not rerun hooks.
	second := run.nextUpdate(t)
	assert.False(t, second.Changed)

	third := run.nextUpdate(t)
	assert.True(t, third.Changed)
	assert.Equal(t, appearance.ModeLight, third.Resolved.Mode)
	lightHooks := run.nextHooks(t)
	assert.Equal(t, appearance.ModeLight, lightHooks.Mode)
	assert.EqualError(t, lightHooks.Err, "exit status 1")

	run.stop(t)
	assert.Equal(t, []appearance.Mode{appearance.ModeDark, appearance.ModeDark, appearance.ModeLight}, sink.got())
}

func TestWatchColorScheme_HooksDisabled(t *testing.T) {
	source := mocks.NewMockAppearanceSource(t)
	resolver := mocks.NewMockColorSchemeResolver(t)
	hooks := mocks.NewMockHookRunner(t)

	source.EXPECT().Subscribe(mock.Anything, mock.Anything).RunAndReturn(subscribeDelivering(appearance.ModeLight))
	resolver.EXPECT().OnChange(mock.Anything).Return(func() {})
	resolver.EXPECT().Refresh().Return(pref(appearance.ModeLight, "portal"))

	uc := usecase.NewWatchColorSchemeUseCase(source, nil, resolver, hooks)
	run := startWatch(t, uc, false)

	assert.Equal(t, appearance.ModeLight, run.nextUpdate(t).Resolved.Mode)
	run.stop(t)
	hooks.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestWatchColorScheme_ReloadReresolves(t *testing.T) {
	source := mocks.NewMockAppearanceSource(t)
	resolver := mocks.NewMockColorSchemeResolver(t)

	source.EXPECT().Subscribe(mock.Anything, mock.Anything).RunAndReturn(subscribeDelivering(appearance.ModeLight))
	resolver.EXPECT().OnChange(mock.Anything).Return(func() {})
	resolver.EXPECT().Refresh().Return(pref(appearance.ModeLight, "portal")).Once()
	resolver.EXPECT().Refresh().Return(pref(appearance.ModeDark, "config")).Once()

	uc := usecase.NewWatchColorSchemeUseCase(source, nil, resolver, nil)
	run := startWatch(t, uc, true)

	first := run.nextUpdate(t)
	assert.False(t, first.Reload)

	uc.Reload()
	reloaded := run.nextUpdate(t)
	assert.True(t, reloaded.Reload)
	assert.True(t, reloaded.Changed)
	assert.Equal(t, appearance.ModeLight, reloaded.Delivered)
	assert.Equal(t, pref(appearance.ModeDark, "config"), reloaded.Resolved)

	run.stop(t)
}

func TestWatchColorScheme_SubscribeFailure(t *testing.T) {
	source := mocks.NewMockAppearanceSource(t)
	resolver := mocks.NewMockColorSchemeResolver(t)
	source.EXPECT().Subscribe(mock.Anything, mock.Anything).Return(appearance.ErrRegister)

	uc := usecase.NewWatchColorSchemeUseCase(source, nil, resolver, nil)
	err := uc.Execute(context.Background(), usecase.WatchColorSchemeInput{})

	require.ErrorIs(t, err, appearance.ErrRegister)
}
