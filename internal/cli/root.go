package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/elvencalc/internal/config"
	"github.com/rshade/elvencalc/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the elvencalc CLI.
// It wires up project config resolution, logging, tracing and the
// calculator, page, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		projectDir string
	)

	cmd := &cobra.Command{
		Use:     "elvencalc",
		Short:   "Electricity and EV running-cost calculators",
		Long:    "elvencalc: Danish-locale calculators for appliance electricity cost and EV versus fuel-car running cost",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Context() == nil {
				cmd.SetContext(context.Background())
			}

			wd, _ := os.Getwd()
			config.SetResolvedProjectDir(config.ResolveProjectDir(cmd.Context(), projectDir, wd))

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", "",
		"project directory holding .elvencalc/config.yaml (default: search upward from the working directory)")
	cmd.AddCommand(NewEnergyCmd(), NewEVCmd(), NewPageCmd(), newConfigCmd(), newVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Running cost of a 2000 W heater used 45 minutes, 5 times a week
  elvencalc energy --watt 2000 --mode use --minutes 45 --times 5

  # EV versus fuel car with a custom electricity price
  elvencalc ev --price 1,95 --driving 15000

  # Regional EV calculator as JSON
  elvencalc ev --variant dk --output json

  # Edit calculators interactively
  elvencalc energy --interactive

  # Run every calculator embedded in a page
  elvencalc page post.md

  # Set a default electricity price
  elvencalc config set widgets.energy.price 2,10`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}

// newVersionCmd prints the build version.
func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the elvencalc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("elvencalc version %s\n", ver)
		},
	}
}
