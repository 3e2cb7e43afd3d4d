// Package config loads, validates and persists elvencalc settings.
//
// Settings come from $ELVENCALC_HOME/config.yaml (default
// ~/.elvencalc/config.yaml), optionally overlaid by a project-local
// .elvencalc/config.yaml, then by ELVENCALC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/elvencalc/internal/locale"
	"github.com/rshade/elvencalc/internal/widget"
)

// Output formats accepted by output.default_format and --output.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Environment overrides.
const (
	EnvHome       = "ELVENCALC_HOME"
	EnvProjectDir = "ELVENCALC_PROJECT_DIR"
	EnvLogLevel   = "ELVENCALC_LOG_LEVEL"
	EnvLogFormat  = "ELVENCALC_LOG_FORMAT"
	EnvOutput     = "ELVENCALC_OUTPUT_FORMAT"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by Get, Set and Validate.
const (
	ErrUnknownKey    = constError("unknown configuration key")
	ErrInvalidValue  = constError("invalid configuration value")
	ErrInvalidConfig = constError("invalid configuration")
)

// Config is the complete elvencalc configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Widgets WidgetsConfig `yaml:"widgets"`

	configPath string
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// WidgetsConfig holds per-kind container defaults. Values are raw field
// text in the same locale the widgets parse, e.g. "2,50".
type WidgetsConfig struct {
	Energy     WidgetDefaults `yaml:"energy"`
	EV         WidgetDefaults `yaml:"ev"`
	EVRegional WidgetDefaults `yaml:"ev_dk"`
}

// WidgetDefaults mirrors the data-default-* attributes of a container.
type WidgetDefaults struct {
	Price     string `yaml:"price,omitempty"`
	Watt      string `yaml:"watt,omitempty"`
	FuelPrice string `yaml:"fuel_price,omitempty"`
}

// For returns the defaults configured for kind.
func (w WidgetsConfig) For(kind widget.Kind) WidgetDefaults {
	switch kind {
	case widget.KindEV:
		return w.EV
	case widget.KindEVRegional:
		return w.EVRegional
	default:
		return w.Energy
	}
}

// Attributes converts the defaults into container attributes, skipping
// empty values.
func (d WidgetDefaults) Attributes() map[string]string {
	attrs := make(map[string]string)
	if d.Price != "" {
		attrs[widget.AttrDefaultPrice] = d.Price
	}
	if d.Watt != "" {
		attrs[widget.AttrDefaultWatt] = d.Watt
	}
	if d.FuelPrice != "" {
		attrs[widget.AttrDefaultFuelPrice] = d.FuelPrice
	}
	return attrs
}

// Default returns a Config with built-in defaults and no file behind it.
func Default() *Config {
	return &Config{
		Output:  OutputConfig{DefaultFormat: FormatTable},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// New returns the global configuration: defaults, overlaid by the config
// file if one exists, then by environment variables. A broken config file
// leaves the defaults in place; Validate and Load report such problems.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err == nil {
		cfg.configPath = filepath.Join(dir, "config.yaml")
		_ = cfg.Load()
	}

	cfg.applyEnv()
	return cfg
}

// ConfigPath returns the file Load and Save use.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath points Load and Save at path.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load reads the config file over the current values. A missing file is
// not an error.
func (c *Config) Load() error {
	if c.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(c.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", c.configPath, err)
	}

	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes the configuration to its config path, creating the
// directory when needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no config path set")
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.DefaultFormat = v
	}
}

// keyRef binds a dotted key to the string field it names.
type keyRef struct {
	key string
	ptr *string
}

func (c *Config) keys() []keyRef {
	return []keyRef{
		{"output.default_format", &c.Output.DefaultFormat},
		{"logging.level", &c.Logging.Level},
		{"logging.format", &c.Logging.Format},
		{"logging.file", &c.Logging.File},
		{"widgets.energy.price", &c.Widgets.Energy.Price},
		{"widgets.energy.watt", &c.Widgets.Energy.Watt},
		{"widgets.ev.price", &c.Widgets.EV.Price},
		{"widgets.ev.fuel_price", &c.Widgets.EV.FuelPrice},
		{"widgets.ev_dk.price", &c.Widgets.EVRegional.Price},
		{"widgets.ev_dk.fuel_price", &c.Widgets.EVRegional.FuelPrice},
	}
}

func (c *Config) lookup(key string) (*string, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, k := range c.keys() {
		if k.key == key {
			return k.ptr, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Get returns the value of a dotted key such as "logging.level".
func (c *Config) Get(key string) (string, error) {
	ptr, err := c.lookup(key)
	if err != nil {
		return "", err
	}
	return *ptr, nil
}

// Set assigns a dotted key after validating the value for that key.
func (c *Config) Set(key, value string) error {
	ptr, err := c.lookup(key)
	if err != nil {
		return err
	}

	probe := *c
	probePtr, _ := probe.lookup(key)
	*probePtr = value
	if err = probe.Validate(); err != nil {
		return fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, key, value, err)
	}

	*ptr = value
	return nil
}

// List returns every dotted key with its current value, sorted by key.
func (c *Config) List() map[string]string {
	out := make(map[string]string)
	for _, k := range c.keys() {
		out[k.key] = *k.ptr
	}
	return out
}

// Keys returns every settable dotted key in sorted order.
func (c *Config) Keys() []string {
	refs := c.keys()
	out := make([]string, 0, len(refs))
	for _, k := range refs {
		out = append(out, k.key)
	}
	sort.Strings(out)
	return out
}

// Validate checks the output format, the log level and format, and that
// every widget default parses to a finite number.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		errs = append(errs, fmt.Errorf("output.default_format %q must be table, json or ndjson",
			c.Output.DefaultFormat))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not a log level", c.Logging.Level))
	}

	switch c.Logging.Format {
	case "json", "console", "":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be json or console", c.Logging.Format))
	}

	for _, k := range c.keys() {
		if !strings.HasPrefix(k.key, "widgets.") || *k.ptr == "" {
			continue
		}
		v := locale.Parse(*k.ptr)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s %q is not a number", k.key, *k.ptr))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
