package appearance

import (
	"context"
	"errors"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/darkwatch/internal/logging"
)

const signalBuffer = 16

var errSignalsClosed = errors.New("signal channel closed")

// SettingChanged is the payload of the portal's SettingChanged signal.
type SettingChanged struct {
	Namespace string
	Key       string
	Value     dbus.Variant
}

// parseSettingChanged decodes a (s, s, v) signal body.
func parseSettingChanged(body []any) (SettingChanged, bool) {
	if len(body) != 3 {
		return SettingChanged{}, false
	}
	namespace, ok := body[0].(string)
	if !ok {
		return SettingChanged{}, false
	}
	key, ok := body[1].(string)
	if !ok {
		return SettingChanged{}, false
	}
	value, ok := body[2].(dbus.Variant)
	if !ok {
		return SettingChanged{}, false
	}
	return SettingChanged{Namespace: namespace, Key: key, Value: value}, true
}

// Uint reports the value as an unsigned integer if it holds one of any width.
func (s SettingChanged) Uint() (uint64, bool) {
	value := s.Value.Value()
	for {
		v, ok := value.(dbus.Variant)
		if !ok {
			break
		}
		value = v.Value()
	}

	switch v := value.(type) {
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	default:
		return 0, false
	}
}

func (s SettingChanged) isColorScheme() bool {
	return s.Namespace == Namespace && s.Key == ColorSchemeKey
}

// listener owns one connection and forwards color-scheme changes to handler.
// Only the goroutine running run touches conn and signals after register.
type listener struct {
	dial         Dialer
	pollInterval time.Duration
	handler      func(Mode)

	conn    Conn
	signals chan *dbus.Signal
}

// register dials a fresh connection and adds the SettingChanged match. Only
// signals sent by the portal itself are delivered.
func (l *listener) register(ctx context.Context) error {
	conn, err := l.dial(ctx)
	if err != nil {
		return &Error{Kind: ErrorKindConnect, Err: err}
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchSender(portalDestination),
		dbus.WithMatchObjectPath(portalPath),
		dbus.WithMatchInterface(settingsInterface),
		dbus.WithMatchMember(settingChangedMember),
	); err != nil {
		_ = conn.Close()
		return &Error{Kind: ErrorKindRegister, Op: settingChangedSignal, Err: err}
	}

	signals := make(chan *dbus.Signal, signalBuffer)
	conn.Signal(signals)

	l.conn = conn
	l.signals = signals
	return nil
}

func (l *listener) close() {
	if l.conn != nil {
		_ = l.conn.Close()
	}
	l.conn = nil
	l.signals = nil
}

// run processes signals until ctx is done. Failed iterations are logged and
// the loop carries on.
func (l *listener) run(ctx context.Context) {
	log := logging.FromContext(ctx)
	defer l.close()

	for ctx.Err() == nil {
		if err := l.step(ctx); err != nil && ctx.Err() == nil {
			log.Debug().Err(err).Msg("setting changed listener iteration failed")
		}
	}
}

// step waits at most pollInterval for one signal.
func (l *listener) step(ctx context.Context) error {
	timer := time.NewTimer(l.pollInterval)
	defer timer.Stop()

	if l.signals == nil {
		// Lost the connection earlier. Back off for one interval before redialling.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		return l.register(ctx)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	case sig, ok := <-l.signals:
		if !ok {
			l.close()
			return errSignalsClosed
		}
		l.dispatch(sig)
		return nil
	}
}

func (l *listener) dispatch(sig *dbus.Signal) {
	if sig == nil || sig.Name != settingChangedSignal {
		return
	}
	changed, ok := parseSettingChanged(sig.Body)
	if !ok || !changed.isColorScheme() {
		return
	}
	raw, ok := changed.Uint()
	if !ok {
		return
	}
	l.handler(modeFromWire(raw))
}
