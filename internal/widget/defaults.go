package widget

// Fallback field contents used when a container supplies no default.
const (
	FallbackEnergyPrice  = "2,50"
	FallbackWatt         = "100"
	FallbackMinutes      = "30"
	FallbackTimesPerWeek = "3"
	FallbackRange        = "450"
	FallbackBattery      = "77"
	FallbackWhPerKm      = "170"
	FallbackDriving      = "20000"
	FallbackFuelKmpl     = "15"
	FallbackEVPrice      = "2,50"
	FallbackFuelPrice    = "14,50"
	FallbackFuelPriceDK  = "13,00"
)

// MaxFieldValueLen is the longest raw field text hosts accept, in bytes.
const MaxFieldValueLen = 1024

// currencyUnit is appended to every cost result.
const currencyUnit = "kr."

// Field names of the energy widget.
const (
	FieldWatt    = "watt"
	FieldPrice   = "price"
	FieldMinutes = "minutes"
	FieldTimes   = "times"
)

// Field names of the EV widgets. FieldPrice is shared.
const (
	FieldRange     = "range"
	FieldBattery   = "battery"
	FieldWhPerKm   = "wh-km"
	FieldDriving   = "driving"
	FieldFuelKmpl  = "fuel-kmpl"
	FieldFuelPrice = "fuel-price"
)

// Result keys.
const (
	ResultPerUse         = "per_use"
	ResultPerDay         = "per_day"
	ResultPerWeek        = "per_week"
	ResultPerMonth       = "per_month"
	ResultPerYear        = "per_year"
	ResultKWhPerKm       = "kwh_per_km"
	ResultAnnualKWh      = "annual_kwh"
	ResultAnnualCostEV   = "annual_cost_ev"
	ResultAnnualCostFuel = "annual_cost_fuel"
	ResultAnnualSaving   = "annual_saving"
)

// DefaultAttributes maps each kind to the container attributes it reads.
//
//nolint:gochecknoglobals // Fixed lookup table.
var DefaultAttributes = map[Kind][]string{
	KindEnergy:     {AttrDefaultPrice, AttrDefaultWatt},
	KindEV:         {AttrDefaultPrice, AttrDefaultFuelPrice},
	KindEVRegional: {AttrDefaultPrice, AttrDefaultFuelPrice},
}
