package widget

import (
	"fmt"
	"math"

	"github.com/rshade/elvencalc/internal/binder"
	"github.com/rshade/elvencalc/internal/calc"
)

// groupPerUse holds the fields only shown in per-use mode.
const groupPerUse = "per-use"

// Energy is the electricity cost calculator.
type Energy struct {
	base
	result calc.EnergyResult
}

func newEnergy(c Container) (*Energy, error) {
	w := &Energy{base: base{id: c.ID, kind: KindEnergy, title: "KWH Calculator"}}
	b := binder.New(func(*binder.Binder) { w.recompute() })

	modes := make([]string, 0, len(calc.EnergyModes))
	for _, m := range calc.EnergyModes {
		modes = append(modes, m.String())
	}
	if err := b.AddSelector(modeSelector, modes...); err != nil {
		return nil, err
	}

	err := bindFields(b,
		binder.Field{
			Name: FieldWatt, Label: "Watt (W)", Placeholder: "e.g. 100",
			Value: withDefault(c, AttrDefaultWatt, FallbackWatt),
		},
		binder.Field{
			Name: FieldPrice, Label: "Price (kr./kWh)", Placeholder: "e.g. 2,50",
			Value: withDefault(c, AttrDefaultPrice, FallbackEnergyPrice),
		},
		binder.Field{
			Name: FieldMinutes, Label: "Minutes per use", Placeholder: "e.g. 30",
			Group: groupPerUse, Value: FallbackMinutes,
		},
		binder.Field{
			Name: FieldTimes, Label: "Times per week", Placeholder: "e.g. 3",
			Group: groupPerUse, Value: FallbackTimesPerWeek,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("binding energy widget %s: %w", c.ID, err)
	}

	b.AddRule(groupPerUse, func(*binder.Binder) bool { return w.Mode() == calc.EnergyPerUse })

	w.binder = b
	b.Start()
	return w, nil
}

// Mode returns the active calculation mode.
func (w *Energy) Mode() calc.EnergyMode {
	m, err := calc.ParseEnergyMode(w.binder.Selected(modeSelector))
	if err != nil {
		return calc.EnergyModes[0]
	}
	return m
}

// Result returns the numeric results of the last recompute.
func (w *Energy) Result() calc.EnergyResult {
	return w.result
}

// Modes implements Widget.
func (w *Energy) Modes() []ModeOption {
	current := w.Mode()
	out := make([]ModeOption, 0, len(calc.EnergyModes))
	for _, m := range calc.EnergyModes {
		out = append(out, ModeOption{Value: m.String(), Label: m.Label(), Selected: m == current})
	}
	return out
}

// SelectMode implements Widget. Aliases such as "per-use" are accepted.
func (w *Energy) SelectMode(mode string) error {
	m, err := calc.ParseEnergyMode(mode)
	if err != nil {
		return err
	}
	return w.binder.Select(modeSelector, m.String())
}

// Snapshot implements Widget.
func (w *Energy) Snapshot() Snapshot {
	return w.snapshot(w.Mode().String())
}

// recompute re-parses every relevant field and rewrites the result rows.
func (w *Energy) recompute() {
	in := calc.EnergyInput{
		Mode:         w.Mode(),
		Watt:         w.parse(FieldWatt),
		Price:        w.parse(FieldPrice),
		Minutes:      math.NaN(),
		TimesPerWeek: math.NaN(),
	}
	perUse := in.Mode == calc.EnergyPerUse
	if perUse {
		in.Minutes = w.parse(FieldMinutes)
		in.TimesPerWeek = w.parse(FieldTimes)
	}

	w.result = calc.Energy(in)

	const section = "Results"
	digits := calc.CurrencyDigits
	w.rows = []ResultRow{
		row(ResultPerUse, section, "Price per use", currencyUnit, w.result.PerUse, digits, perUse),
		row(ResultPerDay, section, "Price per day", currencyUnit, w.result.PerDay, digits, true),
		row(ResultPerWeek, section, "Price per week", currencyUnit, w.result.PerWeek, digits, true),
		row(ResultPerMonth, section, "Price per month", currencyUnit, w.result.PerMonth, digits, true),
		row(ResultPerYear, section, "Price per year", currencyUnit, w.result.PerYear, digits, true),
	}
}
