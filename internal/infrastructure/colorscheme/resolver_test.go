package colorscheme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/darkwatch/internal/application/port"
	"github.com/bnema/darkwatch/pkg/appearance"
)

type mockConfigProvider struct {
	scheme string
}

func (m *mockConfigProvider) GetColorScheme() string {
	return m.scheme
}

type mockDetector struct {
	name      string
	priority  int
	available bool
	mode      appearance.Mode
	detectOk  bool
}

func (m *mockDetector) Name() string                    { return m.name }
func (m *mockDetector) Priority() int                   { return m.priority }
func (m *mockDetector) Available() bool                 { return m.available }
func (m *mockDetector) Detect() (appearance.Mode, bool) { return m.mode, m.detectOk }

func TestResolver_ConfigOverride(t *testing.T) {
	tests := []struct {
		name        string
		configValue string
		wantMode    appearance.Mode
		wantSource  string
	}{
		{name: "prefer-dark", configValue: "prefer-dark", wantMode: appearance.ModeDark, wantSource: "config"},
		{name: "dark", configValue: "dark", wantMode: appearance.ModeDark, wantSource: "config"},
		{name: "prefer-light", configValue: "prefer-light", wantMode: appearance.ModeLight, wantSource: "config"},
		{name: "light upper case", configValue: "LIGHT", wantMode: appearance.ModeLight, wantSource: "config"},
		{name: "default falls through", configValue: "default", wantMode: appearance.ModeDark, wantSource: "test"},
		{name: "empty falls through", configValue: "", wantMode: appearance.ModeDark, wantSource: "test"},
		{name: "unknown falls through", configValue: "sepia", wantMode: appearance.ModeDark, wantSource: "test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(&mockConfigProvider{scheme: tt.configValue})
			resolver.RegisterDetector(&mockDetector{
				name:      "test",
				priority:  50,
				available: true,
				mode:      appearance.ModeDark,
				detectOk:  true,
			})

			pref := resolver.Resolve()

			assert.Equal(t, tt.wantMode, pref.Mode)
			assert.Equal(t, tt.wantSource, pref.Source)
		})
	}
}

func TestResolver_DetectorPriority(t *testing.T) {
	resolver := NewResolver(&mockConfigProvider{scheme: "default"})

	// Registration order must not matter.
	resolver.RegisterDetector(&mockDetector{name: "low", priority: 10, available: true, mode: appearance.ModeDark, detectOk: true})
	resolver.RegisterDetector(&mockDetector{name: "high", priority: 100, available: true, mode: appearance.ModeLight, detectOk: true})

	pref := resolver.Resolve()

	assert.Equal(t, appearance.ModeLight, pref.Mode)
	assert.Equal(t, "high", pref.Source)
}

func TestResolver_SkipsUnavailableAndFailedDetectors(t *testing.T) {
	resolver := NewResolver(nil)

	resolver.RegisterDetector(&mockDetector{name: "unavailable", priority: 100, available: false, mode: appearance.ModeLight, detectOk: true})
	resolver.RegisterDetector(&mockDetector{name: "failing", priority: 50, available: true, detectOk: false})
	resolver.RegisterDetector(&mockDetector{name: "working", priority: 10, available: true, mode: appearance.ModeDark, detectOk: true})

	pref := resolver.Resolve()

	assert.Equal(t, appearance.ModeDark, pref.Mode)
	assert.Equal(t, "working", pref.Source)
}

func TestResolver_Fallback(t *testing.T) {
	resolver := NewResolver(&mockConfigProvider{scheme: "default"})

	pref := resolver.Resolve()
	assert.Equal(t, appearance.ModeDefault, pref.Mode)
	assert.Equal(t, "fallback", pref.Source)

	resolver.RegisterDetector(&mockDetector{name: "fail", priority: 100, available: true, detectOk: false})

	pref = resolver.Resolve()
	assert.Equal(t, appearance.ModeDefault, pref.Mode)
	assert.Equal(t, "fallback", pref.Source)
}

func TestResolver_OnChange(t *testing.T) {
	resolver := NewResolver(nil)
	detector := &mockDetector{name: "test", priority: 50, available: true, mode: appearance.ModeDefault, detectOk: true}
	resolver.RegisterDetector(detector)

	var got []port.ColorSchemePreference
	resolver.OnChange(func(pref port.ColorSchemePreference) {
		got = append(got, pref)
	})

	// Same mode as the initial fallback, only the source differs.
	resolver.Refresh()
	assert.Empty(t, got)
	assert.Equal(t, "test", resolver.Current().Source)

	detector.mode = appearance.ModeLight
	resolver.Refresh()
	resolver.Refresh()
	require.Len(t, got, 1)
	assert.Equal(t, appearance.ModeLight, got[0].Mode)

	detector.mode = appearance.ModeDark
	pref := resolver.Refresh()
	require.Len(t, got, 2)
	assert.Equal(t, appearance.ModeDark, got[1].Mode)
	assert.True(t, pref.PrefersDark())
}

func TestResolver_OnChangeUnregister(t *testing.T) {
	resolver := NewResolver(nil)
	detector := &mockDetector{name: "test", priority: 50, available: true, mode: appearance.ModeLight, detectOk: true}
	resolver.RegisterDetector(detector)

	var callbackCount int
	unregister := resolver.OnChange(func(port.ColorSchemePreference) {
		callbackCount++
	})

	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)

	unregister()

	detector.mode = appearance.ModeDark
	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)
}

func TestResolver_CallbackMayReenter(t *testing.T) {
	resolver := NewResolver(nil)
	resolver.RegisterDetector(&mockDetector{name: "test", priority: 50, available: true, mode: appearance.ModeDark, detectOk: true})

	var inner port.ColorSchemePreference
	resolver.OnChange(func(port.ColorSchemePreference) {
		inner = resolver.Current()
	})

	resolver.Refresh()
	assert.Equal(t, appearance.ModeDark, inner.Mode)
}

func TestResolver_ConcurrentAccess(_ *testing.T) {
	resolver := NewResolver(&mockConfigProvider{scheme: "default"})
	resolver.RegisterDetector(&mockDetector{name: "test", priority: 50, available: true, mode: appearance.ModeLight, detectOk: true})

	var wg sync.WaitGroup
	const goroutines = 10

	for i := 0; i < goroutines; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Resolve()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Refresh()
			}
		}()
		go func(id int) {
			defer wg.Done()
			mode := appearance.ModeLight
			if id%2 == 0 {
				mode = appearance.ModeDark
			}
			resolver.RegisterDetector(&mockDetector{name: "concurrent", priority: id, available: true, mode: mode, detectOk: true})
		}(i)
	}

	wg.Wait()
}

func TestResolver_ImplementsInterface(t *testing.T) {
	var resolver port.ColorSchemeResolver = NewResolver(nil)
	require.NotNil(t, resolver)
}
