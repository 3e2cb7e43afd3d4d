package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/elvencalc/internal/widget"
)

// EV calculator variants.
const (
	variantFull     = "full"
	variantRegional = "dk"
)

// NewEVCmd creates the "ev" command comparing an EV with a fuel car.
func NewEVCmd() *cobra.Command {
	var (
		variant     string
		mode        string
		sets        []string
		interactive bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "ev",
		Short: "Annual running cost of an EV versus a fuel car",
		Long: `Compare a year of electric driving with a fuel car covering the same distance.

Consumption comes from range and battery capacity (mode range) or directly
from Wh per km (mode usage). The dk variant is the Danish calculator; it
always uses range and battery and defaults the fuel price to 13,00.`,
		Example: `  # Default comparison
  elvencalc ev

  # Known consumption of 165 Wh/km
  elvencalc ev --mode usage --wh-km 165

  # Danish variant with today's fuel price
  elvencalc ev --variant dk --fuel-price 12,89`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := evKind(variant)
			if err != nil {
				return err
			}
			if kind == widget.KindEVRegional && (mode != "" || cmd.Flags().Changed(widget.FieldWhPerKm)) {
				return fmt.Errorf("the %s variant has no mode switch: --mode and --wh-km are not supported", variantRegional)
			}

			edits, err := flagEdits(cmd, []string{
				widget.FieldRange, widget.FieldBattery, widget.FieldWhPerKm,
				widget.FieldDriving, widget.FieldFuelKmpl,
			}, sets)
			if err != nil {
				return err
			}

			return executeCalculator(cmd, CalculatorParams{
				Kind: kind,
				Attributes: flagAttributes(cmd, kind, map[string]string{
					widget.FieldPrice:     widget.AttrDefaultPrice,
					widget.FieldFuelPrice: widget.AttrDefaultFuelPrice,
				}),
				Mode:        mode,
				Edits:       edits,
				Interactive: interactive,
				Output:      output,
			})
		},
	}

	cmd.Flags().StringVar(&variant, "variant", variantFull, "calculator variant: full or dk")
	cmd.Flags().StringVar(&mode, "mode", "", "consumption mode: range or usage (default range)")
	cmd.Flags().String(widget.FieldRange, "", "EV range in km (default 450)")
	cmd.Flags().String(widget.FieldBattery, "", "battery capacity in kWh (default 77)")
	cmd.Flags().String(widget.FieldWhPerKm, "", "consumption in Wh per km, usage mode only (default 170)")
	cmd.Flags().String(widget.FieldDriving, "", "km driven per year (default 20000)")
	cmd.Flags().String(widget.FieldPrice, "", "electricity price per kWh (default 2,50)")
	cmd.Flags().String(widget.FieldFuelKmpl, "", "fuel car km per litre (default 15)")
	cmd.Flags().String(widget.FieldFuelPrice, "", "fuel price per litre (default 14,50; dk 13,00)")
	addCalculatorFlags(cmd, &sets, &interactive, &output)

	return cmd
}

func evKind(variant string) (widget.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(variant)) {
	case variantFull, "":
		return widget.KindEV, nil
	case variantRegional:
		return widget.KindEVRegional, nil
	default:
		return widget.KindEV, fmt.Errorf("unknown variant %q (want %s or %s)", variant, variantFull, variantRegional)
	}
}
