package appearance

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/darkwatch/internal/logging"
)

// settingsClient reads the color scheme from the portal Settings interface.
type settingsClient struct {
	dial    Dialer
	timeout time.Duration
}

// readCurrent opens its own connection, reads the color scheme and closes
// the connection again.
func (c *settingsClient) readCurrent(ctx context.Context) (Mode, error) {
	conn, err := c.dial(ctx)
	if err != nil {
		return ModeDefault, &Error{Kind: ErrorKindConnect, Err: err}
	}
	defer func() {
		_ = conn.Close()
	}()

	return c.read(ctx, conn.Object(portalDestination, portalPath))
}

// read tries ReadOne first. Portals older than version 2 only implement Read,
// which wraps the value in one more variant, so the version property decides
// whether Read is worth trying.
func (c *settingsClient) read(ctx context.Context, obj dbus.BusObject) (Mode, error) {
	log := logging.FromContext(ctx)

	raw, err := c.readOne(ctx, obj)
	if err == nil {
		return ModeFromUint32(raw), nil
	}

	version, verr := c.version(ctx, obj)
	if verr != nil {
		log.Debug().Err(verr).Msg("portal settings version unavailable")
		return ModeDefault, &Error{Kind: ErrorKindRead, Op: readOneMethod, Err: err}
	}
	if version >= readOneMinVersion {
		return ModeDefault, &Error{Kind: ErrorKindRead, Op: readOneMethod, Err: err}
	}

	log.Debug().
		Err(err).
		Uint32("version", version).
		Msg("ReadOne failed, falling back to legacy Read")

	raw, err = c.readLegacy(ctx, obj)
	if err != nil {
		return ModeDefault, &Error{Kind: ErrorKindRead, Op: readMethod, Err: err}
	}
	return ModeFromUint32(raw), nil
}

func (c *settingsClient) call(ctx context.Context, obj dbus.BusObject, method string, args ...any) *dbus.Call {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return obj.CallWithContext(ctx, method, 0, args...)
}

// readOne expects v(u).
func (c *settingsClient) readOne(ctx context.Context, obj dbus.BusObject) (uint32, error) {
	var value dbus.Variant
	if err := c.call(ctx, obj, readOneMethod, Namespace, ColorSchemeKey).Store(&value); err != nil {
		return 0, err
	}
	return variantUint32(value)
}

// readLegacy expects v(v(u)).
func (c *settingsClient) readLegacy(ctx context.Context, obj dbus.BusObject) (uint32, error) {
	var outer dbus.Variant
	if err := c.call(ctx, obj, readMethod, Namespace, ColorSchemeKey).Store(&outer); err != nil {
		return 0, err
	}
	inner, ok := outer.Value().(dbus.Variant)
	if !ok {
		return 0, fmt.Errorf("%w: Read returned %s, want v", ErrUnexpectedValue, outer.Signature())
	}
	return variantUint32(inner)
}

func (c *settingsClient) version(ctx context.Context, obj dbus.BusObject) (uint32, error) {
	var value dbus.Variant
	if err := c.call(ctx, obj, propertiesGet, settingsInterface, versionProperty).Store(&value); err != nil {
		return 0, err
	}
	return variantUint32(value)
}

func variantUint32(v dbus.Variant) (uint32, error) {
	raw, ok := v.Value().(uint32)
	if !ok {
		return 0, fmt.Errorf("%w: got %s, want u", ErrUnexpectedValue, v.Signature())
	}
	return raw, nil
}
