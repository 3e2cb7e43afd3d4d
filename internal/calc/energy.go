package calc

import "math"

// EnergyInput holds the parsed fields of the energy-cost calculator.
// Minutes and TimesPerWeek are only read in EnergyPerUse mode.
type EnergyInput struct {
	Mode         EnergyMode
	Watt         float64
	Price        float64
	Minutes      float64
	TimesPerWeek float64
}

// EnergyResult is the derived cost set, in currency units.
// PerUse is NaN outside EnergyPerUse mode.
type EnergyResult struct {
	PerHour  float64
	PerUse   float64
	PerDay   float64
	PerWeek  float64
	PerMonth float64
	PerYear  float64
}

// Energy computes running costs for a device drawing in.Watt at in.Price
// per kWh.
//
// In EnergyPerHour mode the device is assumed to run continuously:
// daily = hourly × 24 and weekly = daily × 7. In EnergyPerUse mode:
// per use = minutes/60 × hourly, weekly = per use × times per week and
// daily = weekly / 7. Both modes then scale daily by DaysPerMonth and
// DaysPerYear.
func Energy(in EnergyInput) EnergyResult {
	hourly := in.Watt / WattsPerKilowatt * in.Price

	res := EnergyResult{PerHour: hourly}

	switch in.Mode {
	case EnergyPerUse:
		res.PerUse = in.Minutes / MinutesPerHour * hourly
		res.PerWeek = res.PerUse * in.TimesPerWeek
		res.PerDay = res.PerWeek / DaysPerWeek
	case EnergyPerHour:
		res.PerUse = math.NaN()
		res.PerDay = hourly * HoursPerDay
		res.PerWeek = res.PerDay * DaysPerWeek
	default:
		nan := math.NaN()
		res.PerUse, res.PerDay, res.PerWeek = nan, nan, nan
	}

	res.PerMonth = res.PerDay * DaysPerMonth
	res.PerYear = res.PerDay * DaysPerYear

	return res
}
