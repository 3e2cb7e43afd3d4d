package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/elvencalc/internal/config"
)

func TestConfigSetGet_RoundTrip(t *testing.T) {
	globalDir := setupCLITest(t)

	output, err := runRoot(t, "config", "set", "widgets.energy.price", "2,10")
	require.NoError(t, err)
	assert.Contains(t, output, "Set widgets.energy.price = 2,10")

	data, err := os.ReadFile(filepath.Join(globalDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2,10")

	config.ResetGlobalConfigForTest()
	output, err = runRoot(t, "config", "get", "widgets.energy.price")
	require.NoError(t, err)
	assert.Equal(t, "2,10", strings.TrimSpace(output))
}

func TestConfigSet_RejectsInvalid(t *testing.T) {
	globalDir := setupCLITest(t)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "widgets.energy.colour", "red"},
		{"bad format", "output.default_format", "xml"},
		{"bad level", "logging.level", "loud"},
		{"not a number", "widgets.ev.price", "1-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRoot(t, "config", "set", tt.key, tt.value)
			require.Error(t, err)
		})
	}

	_, statErr := os.Stat(filepath.Join(globalDir, "config.yaml"))
	assert.True(t, os.IsNotExist(statErr), "nothing should be written on error")
}

func TestConfigGet_UnknownKey(t *testing.T) {
	setupCLITest(t)

	_, err := runRoot(t, "config", "get", "plugins.aws")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestConfigList(t *testing.T) {
	setupCLITest(t)

	output, err := runRoot(t, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "output.default_format")
	assert.Contains(t, output, "widgets.ev_dk.fuel_price")
	assert.Contains(t, output, "(unset)")

	output, err = runRoot(t, "config", "list", "--output", "json")
	require.NoError(t, err)
	var values map[string]string
	require.NoError(t, json.Unmarshal([]byte(output), &values))
	assert.Equal(t, "table", values["output.default_format"])
	assert.Equal(t, "info", values["logging.level"])
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		setupCLITest(t)

		output, err := runRoot(t, "config", "validate", "--verbose")
		require.NoError(t, err)
		assert.Contains(t, output, "Configuration is valid")
		assert.Contains(t, output, "No widget defaults configured")
	})

	t.Run("widget defaults are listed", func(t *testing.T) {
		globalDir := setupCLITest(t)
		yaml := "widgets:\n  energy:\n    price: \"1.234,50\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte(yaml), 0o600))

		output, err := runRoot(t, "config", "validate", "-v")
		require.NoError(t, err)
		assert.Contains(t, output, "1.234,50")
	})

	t.Run("broken yaml fails", func(t *testing.T) {
		globalDir := setupCLITest(t)
		require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte("output: [\n"), 0o600))

		_, err := runRoot(t, "config", "validate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration validation failed")
	})

	t.Run("invalid widget default fails", func(t *testing.T) {
		globalDir := setupCLITest(t)
		yaml := "widgets:\n  ev:\n    fuel_price: \"1-2\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte(yaml), 0o600))

		_, err := runRoot(t, "config", "validate")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
