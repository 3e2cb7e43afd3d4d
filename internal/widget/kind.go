package widget

import (
	"fmt"
	"strings"
)

// Kind identifies a widget type.
type Kind int

const (
	// KindEnergy is the electricity cost-per-use calculator.
	KindEnergy Kind = iota

	// KindEV is the EV running-cost calculator with a consumption mode switch.
	KindEV

	// KindEVRegional is the Danish single-language EV calculator. It has no
	// mode switch and always derives consumption from range and battery.
	KindEVRegional
)

// Marker classes recognised on host containers.
const (
	MarkerEnergy     = "elven-kwh-calculator"
	MarkerEV         = "elven-ev-calculator"
	MarkerEVRegional = "elven-ev-calculator-dk"
)

// Kinds lists every widget kind.
//
//nolint:gochecknoglobals // Fixed lookup table.
var Kinds = []Kind{KindEnergy, KindEV, KindEVRegional}

// String returns the short name used on the command line and in JSON output.
func (k Kind) String() string {
	switch k {
	case KindEnergy:
		return "energy"
	case KindEV:
		return "ev"
	case KindEVRegional:
		return "ev-dk"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarkerClass returns the container class that mounts this kind.
func (k Kind) MarkerClass() string {
	switch k {
	case KindEnergy:
		return MarkerEnergy
	case KindEV:
		return MarkerEV
	case KindEVRegional:
		return MarkerEVRegional
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind resolves a kind from its short name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "energy", "kwh":
		return KindEnergy, nil
	case "ev", "full":
		return KindEV, nil
	case "ev-dk", "dk", "regional":
		return KindEVRegional, nil
	default:
		return KindEnergy, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// KindForClass finds the kind whose marker appears in a space-separated
// class attribute.
func KindForClass(class string) (Kind, bool) {
	for _, c := range strings.Fields(class) {
		for _, k := range Kinds {
			if c == k.MarkerClass() {
				return k, true
			}
		}
	}
	return KindEnergy, false
}
