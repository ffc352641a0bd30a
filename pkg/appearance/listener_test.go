package appearance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 2 * time.Second

func modernPortal(raw uint32) *fakeObject {
	return newFakeObject().reply(readOneMethod, dbus.MakeVariant(raw))
}

func recv(t *testing.T, got <-chan Mode) Mode {
	t.Helper()
	select {
	case m := <-got:
		return m
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for callback")
		return ModeDefault
	}
}

func assertNoCallback(t *testing.T, got <-chan Mode) {
	t.Helper()
	select {
	case m := <-got:
		t.Fatalf("unexpected callback with %s", m)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribe_InitialValueIsSynchronous(t *testing.T) {
	readConn := newFakeConn(modernPortal(2))
	signalConn := newFakeConn(newFakeObject())
	client := newTestClient(&fakeDialer{conns: []*fakeConn{readConn, signalConn}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Mode, 8)
	require.NoError(t, client.Subscribe(ctx, func(m Mode) { got <- m }))

	require.Len(t, got, 1, "initial value must be delivered before Subscribe returns")
	assert.Equal(t, ModeLight, <-got)
	assert.True(t, readConn.isClosed())
	assert.False(t, signalConn.isClosed())
	assertNoCallback(t, got)
}

func TestSubscribe_MatchesOnlyPortalSender(t *testing.T) {
	signalConn := newFakeConn(newFakeObject())
	client := newTestClient(&fakeDialer{conns: []*fakeConn{newFakeConn(modernPortal(0)), signalConn}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, client.Subscribe(ctx, func(Mode) {}))

	opts := signalConn.matchOptions()
	assert.Contains(t, opts, dbus.WithMatchSender(portalDestination))
	assert.Contains(t, opts, dbus.WithMatchObjectPath(portalPath))
	assert.Contains(t, opts, dbus.WithMatchInterface(settingsInterface))
	assert.Contains(t, opts, dbus.WithMatchMember(settingChangedMember))
}

func TestSubscribe_FiltersAndOrdersSignals(t *testing.T) {
	signalConn := newFakeConn(newFakeObject())
	client := newTestClient(&fakeDialer{conns: []*fakeConn{newFakeConn(modernPortal(0)), signalConn}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Mode, 16)
	require.NoError(t, client.Subscribe(ctx, func(m Mode) { got <- m }))
	assert.Equal(t, ModeDefault, recv(t, got))

	// Unrelated settings share the same signal.
	signalConn.emit(settingChanged("org.gnome.desktop.interface", ColorSchemeKey, uint32(1)))
	signalConn.emit(settingChanged(Namespace, "accent-color", uint32(1)))
	signalConn.emit(settingChanged(Namespace, "color-scheme ", uint32(1)))
	// Wrong value types never reach the callback.
	signalConn.emit(settingChanged(Namespace, ColorSchemeKey, "prefer-dark"))
	signalConn.emit(settingChanged(Namespace, ColorSchemeKey, int32(1)))
	// Malformed bodies and foreign signals are dropped.
	signalConn.emit(&dbus.Signal{Name: settingChangedSignal, Body: []any{Namespace, ColorSchemeKey}})
	signalConn.emit(&dbus.Signal{Name: "org.freedesktop.DBus.NameAcquired", Body: []any{":1.42"}})
	signalConn.emit(nil)

	signalConn.emit(settingChanged(Namespace, ColorSchemeKey, uint32(2)))
	signalConn.emit(settingChanged(Namespace, ColorSchemeKey, uint32(1)))
	signalConn.emit(settingChanged(Namespace, ColorSchemeKey, uint32(1)))
	signalConn.emit(settingChanged(Namespace, ColorSchemeKey, uint64(7)))

	assert.Equal(t, ModeLight, recv(t, got))
	assert.Equal(t, ModeDark, recv(t, got))
	assert.Equal(t, ModeDark, recv(t, got), "identical values are not coalesced")
	assert.Equal(t, ModeDefault, recv(t, got))
	assertNoCallback(t, got)
}

func TestSubscribe_SurvivesDroppedConnection(t *testing.T) {
	first := newFakeConn(newFakeObject())
	second := newFakeConn(newFakeObject())
	dialer := &fakeDialer{conns: []*fakeConn{newFakeConn(modernPortal(1)), first, second}}
	client := newTestClient(dialer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Mode, 8)
	require.NoError(t, client.Subscribe(ctx, func(m Mode) { got <- m }))
	assert.Equal(t, ModeDark, recv(t, got))

	first.drop()

	select {
	case <-second.registered:
	case <-time.After(waitTimeout):
		t.Fatal("listener did not reconnect")
	}

	second.emit(settingChanged(Namespace, ColorSchemeKey, uint32(2)))
	assert.Equal(t, ModeLight, recv(t, got))
	assert.True(t, first.isClosed())
}

func TestSubscribe_InitialReadFailureRegistersNothing(t *testing.T) {
	signalConn := newFakeConn(newFakeObject())
	dialer := &fakeDialer{conns: []*fakeConn{
		newFakeConn(newFakeObject().fail(readOneMethod, errors.New("timeout"))),
		signalConn,
	}}
	client := newTestClient(dialer)

	called := false
	err := client.Subscribe(context.Background(), func(Mode) { called = true })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRead)
	assert.False(t, called)
	assert.Equal(t, 1, dialer.dials)
}

func TestSubscribe_RegistrationFailure(t *testing.T) {
	matchErr := errors.New("access denied")
	signalConn := newFakeConn(newFakeObject())
	signalConn.matchErr = matchErr
	client := newTestClient(&fakeDialer{conns: []*fakeConn{newFakeConn(modernPortal(1)), signalConn}})

	var modes []Mode
	err := client.Subscribe(context.Background(), func(m Mode) { modes = append(modes, m) })

	assert.ErrorIs(t, err, ErrRegister)
	assert.ErrorIs(t, err, matchErr)
	assert.Equal(t, []Mode{ModeDark}, modes)
	assert.True(t, signalConn.isClosed())
}

func TestSubscribe_CancelStopsListener(t *testing.T) {
	signalConn := newFakeConn(newFakeObject())
	client := newTestClient(&fakeDialer{conns: []*fakeConn{newFakeConn(modernPortal(1)), signalConn}})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, client.Subscribe(ctx, func(Mode) {}))

	cancel()

	assert.Eventually(t, signalConn.isClosed, waitTimeout, 5*time.Millisecond)
}

func TestSettingChanged_Uint(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   uint64
		wantOK bool
	}{
		{name: "uint32", value: uint32(2), want: 2, wantOK: true},
		{name: "byte", value: byte(1), want: 1, wantOK: true},
		{name: "uint16", value: uint16(1), want: 1, wantOK: true},
		{name: "uint64", value: uint64(1 << 40), want: 1 << 40, wantOK: true},
		{name: "nested variant", value: dbus.MakeVariant(uint32(1)), want: 1, wantOK: true},
		{name: "signed", value: int32(1), wantOK: false},
		{name: "string", value: "dark", wantOK: false},
		{name: "bool", value: true, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := SettingChanged{Namespace: Namespace, Key: ColorSchemeKey, Value: dbus.MakeVariant(tt.value)}
			got, ok := changed.Uint()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSettingChanged(t *testing.T) {
	_, ok := parseSettingChanged([]any{Namespace, ColorSchemeKey, uint32(1)})
	assert.False(t, ok, "value must arrive as a variant")

	_, ok = parseSettingChanged([]any{1, ColorSchemeKey, dbus.MakeVariant(uint32(1))})
	assert.False(t, ok)

	changed, ok := parseSettingChanged([]any{Namespace, ColorSchemeKey, dbus.MakeVariant(uint32(1))})
	require.True(t, ok)
	assert.True(t, changed.isColorScheme())
}
