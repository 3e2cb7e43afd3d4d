// Package calc holds the pure arithmetic behind the calculator widgets.
//
// Inputs are already-parsed float64 values. NaN and ±Inf flow through the
// formulas untouched, so one bad field only spoils the results that depend
// on it. Nothing here returns an error for numeric problems.
package calc

import (
	"fmt"
	"strings"
)

// EnergyMode selects the formula branch of the energy-cost calculator.
type EnergyMode int

const (
	// EnergyPerHour assumes the device runs around the clock.
	EnergyPerHour EnergyMode = iota

	// EnergyPerUse derives cost from minutes per use and uses per week.
	EnergyPerUse
)

// EnergyModes lists the energy modes in display order. The first is the default.
//
//nolint:gochecknoglobals // Fixed lookup table.
var EnergyModes = []EnergyMode{EnergyPerHour, EnergyPerUse}

// String returns the short name used by selectors and flags.
func (m EnergyMode) String() string {
	switch m {
	case EnergyPerHour:
		return "hour"
	case EnergyPerUse:
		return "use"
	default:
		return fmt.Sprintf("EnergyMode(%d)", int(m))
	}
}

// Label returns the human readable name of the mode.
func (m EnergyMode) Label() string {
	switch m {
	case EnergyPerHour:
		return "Per Hour"
	case EnergyPerUse:
		return "Per Use"
	default:
		return m.String()
	}
}

// ParseEnergyMode resolves a mode name. Both "use" and "per-use" style
// spellings are accepted, case-insensitively.
func ParseEnergyMode(s string) (EnergyMode, error) {
	switch normalizeMode(s) {
	case "hour", "perhour":
		return EnergyPerHour, nil
	case "use", "peruse":
		return EnergyPerUse, nil
	default:
		return EnergyPerHour, fmt.Errorf("%w: %q (want hour or use)", ErrUnknownMode, s)
	}
}

// EVMode selects how the EV calculator derives consumption.
type EVMode int

const (
	// EVRangeBattery derives kWh per km from battery capacity and range.
	EVRangeBattery EVMode = iota

	// EVUsage takes consumption directly in Wh per km.
	EVUsage
)

// EVModes lists the EV modes in display order. The first is the default.
//
//nolint:gochecknoglobals // Fixed lookup table.
var EVModes = []EVMode{EVRangeBattery, EVUsage}

// String returns the short name used by selectors and flags.
func (m EVMode) String() string {
	switch m {
	case EVRangeBattery:
		return "range"
	case EVUsage:
		return "usage"
	default:
		return fmt.Sprintf("EVMode(%d)", int(m))
	}
}

// Label returns the human readable name of the mode.
func (m EVMode) Label() string {
	switch m {
	case EVRangeBattery:
		return "Range & Battery"
	case EVUsage:
		return "Usage (Wh/km)"
	default:
		return m.String()
	}
}

// ParseEVMode resolves a mode name, case-insensitively.
func ParseEVMode(s string) (EVMode, error) {
	switch normalizeMode(s) {
	case "range", "rangebattery", "battery":
		return EVRangeBattery, nil
	case "usage", "whkm":
		return EVUsage, nil
	default:
		return EVRangeBattery, fmt.Errorf("%w: %q (want range or usage)", ErrUnknownMode, s)
	}
}

// normalizeMode lower-cases s and drops separators so "Per-Use", "per_use"
// and "peruse" compare equal.
func normalizeMode(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "", "&", "", "/", "").Replace(s)
}
