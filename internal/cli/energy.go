package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/elvencalc/internal/widget"
)

// NewEnergyCmd creates the "energy" command for appliance running costs.
//
// --watt and --price act as the container's default attributes; --minutes,
// --times and --set are field edits applied after mount, each one a
// value-change event.
func NewEnergyCmd() *cobra.Command {
	var (
		mode        string
		sets        []string
		interactive bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Electricity cost of an appliance",
		Long: `Calculate what an appliance costs to run per use, day, week, month and year.

Modes:
  hour  the appliance runs continuously
  use   the appliance runs --minutes per use, --times per week

Numbers use the Danish convention ("1.234,50"); US style ("1,234.50") is
also accepted.`,
		Example: `  # 100 W bulb left on at 2,50 kr./kWh
  elvencalc energy --watt 100 --price 2,50

  # Washing machine: 2000 W, 90 minutes, 4 times a week
  elvencalc energy --watt 2000 --mode use --minutes 90 --times 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			edits, err := flagEdits(cmd, []string{widget.FieldMinutes, widget.FieldTimes}, sets)
			if err != nil {
				return err
			}

			return executeCalculator(cmd, CalculatorParams{
				Kind: widget.KindEnergy,
				Attributes: flagAttributes(cmd, widget.KindEnergy, map[string]string{
					widget.FieldWatt:  widget.AttrDefaultWatt,
					widget.FieldPrice: widget.AttrDefaultPrice,
				}),
				Mode:        mode,
				Edits:       edits,
				Interactive: interactive,
				Output:      output,
			})
		},
	}

	cmd.Flags().String(widget.FieldWatt, "", "appliance power in watt (default 100)")
	cmd.Flags().String(widget.FieldPrice, "", "electricity price per kWh (default 2,50)")
	cmd.Flags().StringVar(&mode, "mode", "", "calculation mode: hour or use (default hour)")
	cmd.Flags().String(widget.FieldMinutes, "", "minutes per use, use mode only (default 30)")
	cmd.Flags().String(widget.FieldTimes, "", "uses per week, use mode only (default 3)")
	addCalculatorFlags(cmd, &sets, &interactive, &output)

	return cmd
}

// addCalculatorFlags registers the flags every calculator command shares.
func addCalculatorFlags(cmd *cobra.Command, sets *[]string, interactive *bool, output *string) {
	cmd.Flags().StringArrayVar(sets, "set", nil, "field edit key=value, applied in order (repeatable)")
	cmd.Flags().BoolVar(interactive, "interactive", false, "edit the calculator in an interactive TUI")
	cmd.Flags().StringVar(output, "output", "", "output format: table, json or ndjson (default from config)")
}
