package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/elvencalc/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Output: config.OutputConfig{DefaultFormat: "table"},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Widgets: config.WidgetsConfig{
			Energy: config.WidgetDefaults{Price: "2,50", Watt: "100"},
			EV:     config.WidgetDefaults{Price: "2,50", FuelPrice: "14,50"},
		},
	}
}

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, "2,50", target.Widgets.Energy.Price)
}

func TestShallowMergeYAML_SectionIsReplacedWhole(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
widgets:
  ev_dk:
    fuel_price: "12,75"
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "12,75", target.Widgets.EVRegional.FuelPrice)
	assert.Empty(t, target.Widgets.Energy.Price, "widgets section was fully replaced")
	assert.Empty(t, target.Widgets.EV.FuelPrice)
}

func TestShallowMergeYAML_MultipleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: ndjson
logging:
  level: debug
  format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "ndjson", target.Output.DefaultFormat)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
	assert.Equal(t, "100", target.Widgets.Energy.Watt)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  something: true
output:
  default_format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "json", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_EmptyAndCommentOnly(t *testing.T) {
	for name, content := range map[string]string{
		"empty":   "",
		"comment": "# this file is intentionally empty\n",
	} {
		t.Run(name, func(t *testing.T) {
			target := newDefaultTarget()
			original := *target

			require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, content)))

			assert.Equal(t, original.Output, target.Output)
			assert.Equal(t, original.Logging, target.Logging)
			assert.Equal(t, original.Widgets, target.Widgets)
		})
	}
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "{{{{not valid yaml at all"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing overlay YAML")

	err = config.ShallowMergeYAML(newDefaultTarget(), "/nonexistent/path/overlay.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading overlay file")

	err = config.ShallowMergeYAML(nil, "/nonexistent/path/overlay.yaml")
	require.Error(t, err)
}
