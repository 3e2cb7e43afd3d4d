package widget

import (
	"fmt"

	"github.com/rshade/elvencalc/internal/binder"
	"github.com/rshade/elvencalc/internal/calc"
)

// Visibility groups of the EV widget.
const (
	groupRange = "range"
	groupUsage = "usage"
)

// evText holds the user-facing strings of one EV variant.
type evText struct {
	title          string
	rangeLabel     string
	batteryLabel   string
	whKmLabel      string
	drivingLabel   string
	priceLabel     string
	fuelKmplLabel  string
	fuelPriceLabel string
	evSection      string
	fuelSection    string
	kwhKm          string
	annualKWh      string
	costEV         string
	costFuel       string
	saving         string
	kwhKmUnit      string
}

//nolint:gochecknoglobals // Fixed display strings.
var (
	evTextEN = evText{
		title:          "EV Calculator",
		rangeLabel:     "EV Range (km)",
		batteryLabel:   "Battery Capacity (kWh)",
		whKmLabel:      "Usage (Wh/km)",
		drivingLabel:   "Annual Driving (km)",
		priceLabel:     "Electricity Price (kr./kWh)",
		fuelKmplLabel:  "Fuel Car (km/l)",
		fuelPriceLabel: "Fuel Price (kr./l)",
		evSection:      "Result (EV)",
		fuelSection:    "Compare with Fuel Car",
		kwhKm:          "Usage",
		annualKWh:      "Annual Usage",
		costEV:         "Annual Cost (EV)",
		costFuel:       "Annual Cost (Fuel)",
		saving:         "Your Annual Savings",
		kwhKmUnit:      "kWh per km",
	}

	evTextDA = evText{
		title:          "Elbilberegner",
		rangeLabel:     "Rækkevidde (km)",
		batteryLabel:   "Batterikapacitet (kWh)",
		drivingLabel:   "Årlig kørsel (km)",
		priceLabel:     "Elpris (kr./kWh)",
		fuelKmplLabel:  "Benzinbil (km/l)",
		fuelPriceLabel: "Brændstofpris (kr./l)",
		evSection:      "Resultat (elbil)",
		fuelSection:    "Sammenlign med benzinbil",
		kwhKm:          "Forbrug",
		annualKWh:      "Årligt forbrug",
		costEV:         "Årlig udgift (elbil)",
		costFuel:       "Årlig udgift (benzin)",
		saving:         "Din årlige besparelse",
		kwhKmUnit:      "kWh pr. km",
	}
)

// EV is the EV running-cost calculator. The regional variant has no mode
// switch and no Wh/km field.
type EV struct {
	base
	regional bool
	text     evText
	result   calc.EVResult
}

func newEV(c Container, regional bool) (*EV, error) {
	w := &EV{regional: regional, text: evTextEN}
	kind := KindEV
	fuelFallback := FallbackFuelPrice
	if regional {
		w.text = evTextDA
		kind = KindEVRegional
		fuelFallback = FallbackFuelPriceDK
	}
	w.base = base{id: c.ID, kind: kind, title: w.text.title}

	b := binder.New(func(*binder.Binder) { w.recompute() })

	fields := []binder.Field{
		{
			Name: FieldRange, Label: w.text.rangeLabel, Placeholder: "e.g. 450",
			Group: groupRange, Value: FallbackRange,
		},
		{
			Name: FieldBattery, Label: w.text.batteryLabel, Placeholder: "e.g. 77",
			Group: groupRange, Value: FallbackBattery,
		},
	}
	if !regional {
		modes := make([]string, 0, len(calc.EVModes))
		for _, m := range calc.EVModes {
			modes = append(modes, m.String())
		}
		if err := b.AddSelector(modeSelector, modes...); err != nil {
			return nil, err
		}
		fields = append(fields, binder.Field{
			Name: FieldWhPerKm, Label: w.text.whKmLabel, Placeholder: "e.g. 170",
			Group: groupUsage, Value: FallbackWhPerKm,
		})
	}
	fields = append(fields,
		binder.Field{
			Name: FieldDriving, Label: w.text.drivingLabel, Placeholder: "e.g. 20000",
			Value: FallbackDriving,
		},
		binder.Field{
			Name: FieldPrice, Label: w.text.priceLabel, Placeholder: "e.g. 2,50",
			Value: withDefault(c, AttrDefaultPrice, FallbackEVPrice),
		},
		binder.Field{
			Name: FieldFuelKmpl, Label: w.text.fuelKmplLabel, Placeholder: "e.g. 15",
			Value: FallbackFuelKmpl,
		},
		binder.Field{
			Name: FieldFuelPrice, Label: w.text.fuelPriceLabel, Placeholder: "e.g. " + fuelFallback,
			Value: withDefault(c, AttrDefaultFuelPrice, fuelFallback),
		},
	)
	if err := bindFields(b, fields...); err != nil {
		return nil, fmt.Errorf("binding %s widget %s: %w", kind, c.ID, err)
	}

	b.AddRule(groupRange, func(*binder.Binder) bool { return w.Mode() == calc.EVRangeBattery })
	b.AddRule(groupUsage, func(*binder.Binder) bool { return w.Mode() == calc.EVUsage })

	w.binder = b
	b.Start()
	return w, nil
}

// Mode returns the active consumption mode. The regional variant is always
// calc.EVRangeBattery.
func (w *EV) Mode() calc.EVMode {
	if w.regional {
		return calc.EVRangeBattery
	}
	m, err := calc.ParseEVMode(w.binder.Selected(modeSelector))
	if err != nil {
		return calc.EVModes[0]
	}
	return m
}

// Result returns the numeric results of the last recompute.
func (w *EV) Result() calc.EVResult {
	return w.result
}

// Modes implements Widget.
func (w *EV) Modes() []ModeOption {
	if w.regional {
		return nil
	}
	current := w.Mode()
	out := make([]ModeOption, 0, len(calc.EVModes))
	for _, m := range calc.EVModes {
		out = append(out, ModeOption{Value: m.String(), Label: m.Label(), Selected: m == current})
	}
	return out
}

// SelectMode implements Widget.
func (w *EV) SelectMode(mode string) error {
	if w.regional {
		return fmt.Errorf("%w: %s", ErrNoModeSwitch, w.kind)
	}
	m, err := calc.ParseEVMode(mode)
	if err != nil {
		return err
	}
	return w.binder.Select(modeSelector, m.String())
}

// Snapshot implements Widget.
func (w *EV) Snapshot() Snapshot {
	return w.snapshot(w.Mode().String())
}

// recompute re-parses every relevant field and rewrites the result rows.
func (w *EV) recompute() {
	in := calc.EVInput{
		Mode:       w.Mode(),
		RangeKm:    w.parse(FieldRange),
		BatteryKWh: w.parse(FieldBattery),
		WhPerKm:    w.parse(FieldWhPerKm),
		KmPerYear:  w.parse(FieldDriving),
		Price:      w.parse(FieldPrice),
		FuelKmpl:   w.parse(FieldFuelKmpl),
		FuelPrice:  w.parse(FieldFuelPrice),
	}

	w.result = calc.EV(in)

	t := w.text
	w.rows = []ResultRow{
		row(ResultKWhPerKm, t.evSection, t.kwhKm, t.kwhKmUnit, w.result.KWhPerKm, calc.ConsumptionDigits, true),
		row(ResultAnnualKWh, t.evSection, t.annualKWh, "kWh", w.result.AnnualKWh, calc.TotalDigits, true),
		row(ResultAnnualCostEV, t.evSection, t.costEV, currencyUnit, w.result.AnnualCostEV, calc.TotalDigits, true),
		row(ResultAnnualCostFuel, t.fuelSection, t.costFuel, currencyUnit,
			w.result.AnnualCostFuel, calc.TotalDigits, true),
		row(ResultAnnualSaving, t.fuelSection, t.saving, currencyUnit, w.result.AnnualSaving, calc.TotalDigits, true),
	}
}
