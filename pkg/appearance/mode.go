package appearance

import (
	"fmt"
	"math"
	"strings"
)

// Mode is the desktop's preferred color appearance.
type Mode uint32

const (
	// ModeDefault means the user expressed no preference.
	ModeDefault Mode = iota
	// ModeDark means the user prefers a dark appearance.
	ModeDark
	// ModeLight means the user prefers a light appearance.
	ModeLight
)

// ModeFromUint32 maps a portal color-scheme value to a Mode.
// Unknown values are treated as no preference.
func ModeFromUint32(raw uint32) Mode {
	switch raw {
	case 1:
		return ModeDark
	case 2:
		return ModeLight
	default:
		return ModeDefault
	}
}

// modeFromWire decodes an unsigned value of any width received in a signal.
func modeFromWire(raw uint64) Mode {
	if raw > math.MaxUint32 {
		return ModeDefault
	}
	return ModeFromUint32(uint32(raw))
}

func (m Mode) String() string {
	switch m {
	case ModeDark:
		return "dark"
	case ModeLight:
		return "light"
	default:
		return "default"
	}
}

// ParseMode parses the names returned by String. It also accepts the
// "prefer-dark" and "prefer-light" spellings used by GNOME settings.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "", "no-preference":
		return ModeDefault, nil
	case "dark", "prefer-dark":
		return ModeDark, nil
	case "light", "prefer-light":
		return ModeLight, nil
	default:
		return ModeDefault, fmt.Errorf("unknown color mode %q", s)
	}
}
