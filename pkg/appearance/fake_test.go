package appearance

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
)

var errUnknownMethod = dbus.NewError("org.freedesktop.DBus.Error.UnknownMethod", []any{"No such method"})

type fakeReply struct {
	body []any
	err  error
}

// fakeObject answers portal method calls from a table keyed by member name.
type fakeObject struct {
	dbus.BusObject

	mu      sync.Mutex
	replies map[string]fakeReply
	calls   []string
}

func newFakeObject() *fakeObject {
	return &fakeObject{replies: make(map[string]fakeReply)}
}

func (o *fakeObject) reply(method string, body ...any) *fakeObject {
	o.replies[method] = fakeReply{body: body}
	return o
}

func (o *fakeObject) fail(method string, err error) *fakeObject {
	o.replies[method] = fakeReply{err: err}
	return o
}

func (o *fakeObject) CallWithContext(ctx context.Context, method string, _ dbus.Flags, args ...any) *dbus.Call {
	o.mu.Lock()
	o.calls = append(o.calls, method)
	r, ok := o.replies[method]
	o.mu.Unlock()

	call := &dbus.Call{Method: method, Args: args}
	switch {
	case ctx.Err() != nil:
		call.Err = ctx.Err()
	case !ok:
		call.Err = errUnknownMethod
	default:
		call.Body = r.body
		call.Err = r.err
	}
	return call
}

func (o *fakeObject) calledMethods() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.calls...)
}

// fakeConn stands in for a private session bus connection.
type fakeConn struct {
	obj      *fakeObject
	matchErr error

	mu         sync.Mutex
	signals    chan<- *dbus.Signal
	closed     bool
	matches    []dbus.MatchOption
	registered chan struct{}
}

func newFakeConn(obj *fakeObject) *fakeConn {
	return &fakeConn{obj: obj, registered: make(chan struct{})}
}

func (c *fakeConn) Object(string, dbus.ObjectPath) dbus.BusObject {
	return c.obj
}

func (c *fakeConn) AddMatchSignal(options ...dbus.MatchOption) error {
	c.mu.Lock()
	c.matches = append(c.matches, options...)
	c.mu.Unlock()
	return c.matchErr
}

func (c *fakeConn) matchOptions() []dbus.MatchOption {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]dbus.MatchOption{}, c.matches...)
}

func (c *fakeConn) Signal(ch chan<- *dbus.Signal) {
	c.mu.Lock()
	c.signals = ch
	c.mu.Unlock()
	close(c.registered)
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *fakeConn) emit(sig *dbus.Signal) {
	c.mu.Lock()
	ch := c.signals
	c.mu.Unlock()
	ch <- sig
}

// drop simulates the bus closing the connection's signal channel.
func (c *fakeConn) drop() {
	c.mu.Lock()
	ch := c.signals
	c.mu.Unlock()
	close(ch)
}

// fakeDialer hands out conns in order and fails once they run out.
type fakeDialer struct {
	mu    sync.Mutex
	conns []*fakeConn
	err   error
	dials int
}

func (d *fakeDialer) dial(context.Context) (Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dials++
	if d.err != nil {
		return nil, d.err
	}
	if len(d.conns) == 0 {
		return nil, errors.New("no more connections")
	}
	conn := d.conns[0]
	d.conns = d.conns[1:]
	return conn, nil
}

func settingChanged(namespace, key string, value any) *dbus.Signal {
	return &dbus.Signal{
		Path: portalPath,
		Name: settingChangedSignal,
		Body: []any{namespace, key, dbus.MakeVariant(value)},
	}
}

func newTestClient(d *fakeDialer) *Client {
	return New(Config{
		CallTimeout:  50 * time.Millisecond,
		PollInterval: 10 * time.Millisecond,
		Dial:         d.dial,
	})
}
