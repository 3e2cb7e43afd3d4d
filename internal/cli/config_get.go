package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/elvencalc/internal/config"
)

// NewConfigGetCmd creates the config get command. It reports the effective
// value: global file, project overlay and environment applied.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print a configuration value",
		Example: `  elvencalc config get widgets.energy.price
  elvencalc config get output.default_format`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}
}
