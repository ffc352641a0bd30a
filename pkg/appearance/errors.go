package appearance

import "errors"

var (
	// ErrConnect indicates the session bus could not be reached.
	ErrConnect = errors.New("connect to session bus")

	// ErrRead indicates the color-scheme setting could not be read.
	ErrRead = errors.New("read color-scheme setting")

	// ErrRegister indicates the SettingChanged match could not be registered.
	ErrRegister = errors.New("register SettingChanged match")

	// ErrUnexpectedValue indicates the portal answered with a value of the wrong type.
	ErrUnexpectedValue = errors.New("unexpected value from portal")
)

// ErrorKind tells which stage of a Detect or Subscribe call failed.
type ErrorKind int

const (
	ErrorKindConnect ErrorKind = iota + 1
	ErrorKindRead
	ErrorKindRegister
)

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrorKindConnect:
		return ErrConnect
	case ErrorKindRead:
		return ErrRead
	case ErrorKindRegister:
		return ErrRegister
	default:
		return errors.New("appearance error")
	}
}

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindConnect:
		return "connect"
	case ErrorKindRead:
		return "read"
	case ErrorKindRegister:
		return "register"
	default:
		return "unknown"
	}
}

// Error is returned by Detect and Subscribe. It matches both its kind's
// sentinel (ErrConnect, ErrRead, ErrRegister) and the underlying cause with
// errors.Is.
type Error struct {
	Kind ErrorKind
	Op   string // D-Bus member involved, if any
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Op != "" {
		msg += " (" + e.Op + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}
