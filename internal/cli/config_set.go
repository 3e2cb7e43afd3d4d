package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/elvencalc/internal/config"
)

// NewConfigSetCmd creates the config set command. Values are validated
// before the global config file is written.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value in the global config file",
		Long: `Sets a configuration value in ~/.elvencalc/config.yaml.

Keys:
  output.default_format      table, json or ndjson
  logging.level              trace, debug, info, warn or error
  logging.format             json or console
  logging.file               log file path, empty for stderr
  widgets.energy.price       default electricity price per kWh
  widgets.energy.watt        default appliance power
  widgets.ev.price           default electricity price per kWh
  widgets.ev.fuel_price      default fuel price per litre
  widgets.ev_dk.price        same, Danish EV calculator
  widgets.ev_dk.fuel_price   same, Danish EV calculator`,
		Example: `  elvencalc config set widgets.energy.price 2,10
  elvencalc config set output.default_format json`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}
