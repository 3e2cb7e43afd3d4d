package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/elvencalc/internal/config"
)

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every configuration value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			values := cfg.List()

			switch output {
			case outputFormatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(values)
			case outputFormatTable, "":
				for _, k := range cfg.Keys() {
					v := values[k]
					if v == "" {
						v = "(unset)"
					}
					cmd.Printf("%-26s %s\n", k, v)
				}
				return nil
			default:
				return fmt.Errorf("unsupported output format %q (want table or json)", output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", outputFormatTable, "output format: table or json")
	return cmd
}
