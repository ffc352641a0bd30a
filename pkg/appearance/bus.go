package appearance

import (
	"context"

	"github.com/godbus/dbus/v5"
)

const (
	portalDestination = "org.freedesktop.portal.Desktop"
	portalPath        = dbus.ObjectPath("/org/freedesktop/portal/desktop")

	settingsInterface    = "org.freedesktop.portal.Settings"
	settingChangedMember = "SettingChanged"
	settingChangedSignal = settingsInterface + "." + settingChangedMember

	readOneMethod     = settingsInterface + ".ReadOne"
	readMethod        = settingsInterface + ".Read"
	propertiesGet     = "org.freedesktop.DBus.Properties.Get"
	versionProperty   = "version"
	readOneMinVersion = 2
)

const (
	// Namespace is the portal settings namespace holding the color scheme.
	Namespace = "org.freedesktop.appearance"
	// ColorSchemeKey is the key of the color scheme inside Namespace.
	ColorSchemeKey = "color-scheme"
)

// Conn is the part of *dbus.Conn used by this package.
type Conn interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	AddMatchSignal(options ...dbus.MatchOption) error
	Signal(ch chan<- *dbus.Signal)
	Close() error
}

// Dialer opens a new connection to the session bus. The connection belongs
// to the caller, which closes it.
type Dialer func(ctx context.Context) (Conn, error)

// DialSession opens a private session bus connection. The connection is
// closed when ctx is done.
func DialSession(ctx context.Context) (Conn, error) {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return conn, nil
}
