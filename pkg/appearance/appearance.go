// Package appearance reports the desktop's preferred color scheme through the
// XDG Desktop Portal Settings interface and notifies callers when it changes.
//
// Upstream API documentation can be found at
// https://flatpak.github.io/xdg-desktop-portal/docs/doc-org.freedesktop.portal.Settings.html.
package appearance

import (
	"context"
	"time"
)

const (
	// DefaultCallTimeout bounds every method call made to the portal.
	DefaultCallTimeout = 100 * time.Millisecond
	// DefaultPollInterval bounds how long the listener waits per iteration.
	DefaultPollInterval = time.Second
)

// Config tunes a Client. Zero values select the defaults.
type Config struct {
	CallTimeout  time.Duration
	PollInterval time.Duration
	// Dial opens bus connections. Defaults to DialSession.
	Dial Dialer
}

// Client reads and watches the portal color scheme. Every Detect and
// Subscribe call uses its own connection.
type Client struct {
	settings     *settingsClient
	dial         Dialer
	pollInterval time.Duration
}

// New creates a Client from cfg.
func New(cfg Config) *Client {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultCallTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Dial == nil {
		cfg.Dial = DialSession
	}

	return &Client{
		settings:     &settingsClient{dial: cfg.Dial, timeout: cfg.CallTimeout},
		dial:         cfg.Dial,
		pollInterval: cfg.PollInterval,
	}
}

// Detect returns the current color scheme.
func (c *Client) Detect(ctx context.Context) (Mode, error) {
	return c.settings.readCurrent(ctx)
}

// Subscribe calls fn with the current color scheme before returning, then
// keeps calling it from a background goroutine for every color-scheme change
// the portal broadcasts, in the order received. Repeated identical values are
// delivered as they arrive.
//
// The subscription lives until ctx is done; pass a context that is never
// cancelled to keep it for the life of the process. fn must be safe to call
// from another goroutine and should return promptly.
//
// Subscribe fails only if the initial read or the signal registration fails.
// Later bus errors are logged and the listener reconnects.
func (c *Client) Subscribe(ctx context.Context, fn func(Mode)) error {
	mode, err := c.Detect(ctx)
	if err != nil {
		return err
	}
	fn(mode)

	l := &listener{
		dial:         c.dial,
		pollInterval: c.pollInterval,
		handler:      fn,
	}
	if err := l.register(ctx); err != nil {
		return err
	}

	go l.run(ctx)
	return nil
}

var defaultClient = New(Config{})

// Detect returns the current color scheme using the session bus.
func Detect(ctx context.Context) (Mode, error) {
	return defaultClient.Detect(ctx)
}

// Subscribe is Client.Subscribe on the session bus.
func Subscribe(ctx context.Context, fn func(Mode)) error {
	return defaultClient.Subscribe(ctx, fn)
}
