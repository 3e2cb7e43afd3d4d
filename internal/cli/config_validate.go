package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rshade/elvencalc/internal/config"
	"github.com/rshade/elvencalc/internal/locale"
	"github.com/rshade/elvencalc/internal/widget"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the global ~/.elvencalc/config.yaml,
the project overlay when there is one, and environment overrides.

This includes:
- YAML syntax of the global config file
- Output format and log level and format
- Widget defaults, which must parse as numbers`,
		Example: `  # Validate current configuration
  elvencalc config validate

  # Validate and show the parsed widget defaults
  elvencalc config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	// New swallows file errors; reload to surface syntax problems.
	probe := config.Default()
	if dir, err := config.GetConfigDir(); err == nil {
		probe.SetConfigPath(filepath.Join(dir, "config.yaml"))
		if err = probe.Load(); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	if dir := config.GetResolvedProjectDir(); dir != "" {
		cmd.Printf("  Project directory: %s\n", dir)
	}

	printWidgetDefaults(cmd, cfg)
}

// printWidgetDefaults prints each configured widget default with its parsed value.
func printWidgetDefaults(cmd *cobra.Command, cfg *config.Config) {
	found := false
	for _, kind := range widget.Kinds {
		attrs := cfg.Widgets.For(kind).Attributes()
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, attr := range names {
			raw := attrs[attr]
			if !found {
				cmd.Println("  Widget defaults:")
				found = true
			}
			cmd.Printf("    - %s %s: %q = %s\n", kind, attr, raw, locale.Format(locale.Parse(raw), 2)) //nolint:mnd // two decimals
		}
	}
	if !found {
		cmd.Println("  No widget defaults configured")
	}
}
