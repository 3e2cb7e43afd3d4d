package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/elvencalc/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// When a project directory was resolved (without --global), it creates a
// project-local .elvencalc/ directory with config.yaml and .gitignore.
// Otherwise, it creates the global ~/.elvencalc/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

With --project-dir, ELVENCALC_PROJECT_DIR or an existing .elvencalc directory
above the working directory, creates project-local configuration at
$PROJECT/.elvencalc/config.yaml with a .gitignore for log files.
Use --global to force global configuration initialization even inside a project.`,
		Example: `  # Create global configuration
  elvencalc config init

  # Create project-local configuration for a site
  elvencalc config init --project-dir ./site

  # Create configuration, overwriting existing
  elvencalc config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := config.GetResolvedProjectDir()

			if projectDir != "" && !global {
				return initProjectConfig(cmd, projectDir, force)
			}

			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "force global configuration init even inside a project")

	return cmd
}

// errConfigExists is returned when init would overwrite a file without --force.
var errConfigExists = errors.New( //nolint:gochecknoglobals // sentinel
	"configuration file already exists, use --force to overwrite")

// checkNotExists fails when path exists or cannot be inspected. On a
// terminal the user may agree to overwrite instead.
func checkNotExists(cmd *cobra.Command, path string) error {
	_, err := os.Stat(path)
	if err == nil {
		if ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), path, isTerminal(os.Stdin)).Accepted {
			return nil
		}
		return errConfigExists
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}

// initProjectConfig creates project-local config at projectDir/config.yaml with .gitignore.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, "config.yaml")

	if !force {
		if err := checkNotExists(cmd, configPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(projectDir, 0o750); err != nil {
		return fmt.Errorf("failed to create project config directory: %w", err)
	}

	cfg := config.Default()
	cfg.SetConfigPath(configPath)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	// Never overwrites an existing .gitignore.
	created, err := config.EnsureGitignore(projectDir, config.GetGlobalConfig().Logging.File)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore to keep log files out of version control\n")
	}

	return nil
}

// initGlobalConfig creates global config at ~/.elvencalc/config.yaml.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(dir, "config.yaml")

	if !force {
		if err = checkNotExists(cmd, configPath); err != nil {
			return err
		}
	}

	if err = config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := config.Default()
	cfg.SetConfigPath(configPath)
	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", configPath)

	return nil
}
