package calc

// Time conversion constants.
//
// DaysPerYear is the average Gregorian year so monthly and yearly figures
// absorb leap years without looking at the calendar.
const (
	MinutesPerHour = 60.0
	HoursPerDay    = 24.0
	DaysPerWeek    = 7.0
	DaysPerYear    = 365.25
	MonthsPerYear  = 12.0

	// DaysPerMonth is the average month length, 30.4375 days.
	DaysPerMonth = DaysPerYear / MonthsPerYear
)

// WattsPerKilowatt converts W to kW and Wh to kWh.
const WattsPerKilowatt = 1000.0

// Display precision for each result family.
const (
	// CurrencyDigits is the fractional digit count for energy cost results.
	CurrencyDigits = 2

	// ConsumptionDigits is the fractional digit count for kWh per km.
	ConsumptionDigits = 3

	// TotalDigits is the fractional digit count for annual EV totals.
	TotalDigits = 0
)
