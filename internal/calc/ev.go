package calc

import "math"

// EVInput holds the parsed fields of the EV-cost calculator.
//
// Range and BatteryKWh are read in EVRangeBattery mode, WhPerKm in EVUsage
// mode. The fuel-car fields are always read.
type EVInput struct {
	Mode       EVMode
	RangeKm    float64
	BatteryKWh float64
	WhPerKm    float64
	KmPerYear  float64
	Price      float64
	FuelKmpl   float64
	FuelPrice  float64
}

// EVResult is the derived annual comparison.
type EVResult struct {
	KWhPerKm       float64
	AnnualKWh      float64
	AnnualCostEV   float64
	AnnualLiters   float64
	AnnualCostFuel float64
	// AnnualSaving is fuel cost minus EV cost. It is negative when the
	// fuel car is cheaper.
	AnnualSaving float64
}

// EV compares a year of electric driving with a fuel car covering the same
// distance. Zero range or zero fuel efficiency yield ±Inf or NaN in the
// affected results only.
func EV(in EVInput) EVResult {
	var res EVResult

	switch in.Mode {
	case EVRangeBattery:
		res.KWhPerKm = in.BatteryKWh / in.RangeKm
	case EVUsage:
		res.KWhPerKm = in.WhPerKm / WattsPerKilowatt
	default:
		res.KWhPerKm = math.NaN()
	}

	res.AnnualKWh = res.KWhPerKm * in.KmPerYear
	res.AnnualCostEV = res.AnnualKWh * in.Price

	res.AnnualLiters = in.KmPerYear / in.FuelKmpl
	res.AnnualCostFuel = res.AnnualLiters * in.FuelPrice

	res.AnnualSaving = res.AnnualCostFuel - res.AnnualCostEV

	return res
}
