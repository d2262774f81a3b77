package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cursedclient/cursedclient/internal/probe"
)

// Duration wraps time.Duration with YAML support for values like "50ms".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the root of the client configuration. Every field is optional;
// zero values fall back to compiled-in defaults.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Driver  DriverConfig  `yaml:"driver"`
	Tables  TablesConfig  `yaml:"tables"`
}

// LoggingConfig selects log level and output style.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	HumanReadable *bool  `yaml:"human_readable"`
}

// DriverConfig bounds the poll loop.
type DriverConfig struct {
	MaxTicks     int      `yaml:"max_ticks" validate:"omitempty,min=1"`
	TickInterval Duration `yaml:"tick_interval"`
}

// TablesConfig overrides the candidate name tables. An empty list keeps
// the compiled-in candidates for that slot.
type TablesConfig struct {
	WindowAccessors []string            `yaml:"window_accessors" validate:"omitempty,dive,required"`
	HandleMethods   []string            `yaml:"handle_methods" validate:"omitempty,dive,required"`
	HandleFields    []string            `yaml:"handle_fields" validate:"omitempty,dive,required"`
	VersionTypes    []VersionTypeConfig `yaml:"version_types" validate:"omitempty,dive"`
}

// VersionTypeConfig mirrors probe.VersionType in configuration form.
type VersionTypeConfig struct {
	Name          string   `yaml:"name" validate:"required"`
	VersionObject []string `yaml:"version_object" validate:"omitempty,dive,required"`
	NameAccessors []string `yaml:"name_accessors" validate:"omitempty,dive,required"`
	NameFields    []string `yaml:"name_fields" validate:"omitempty,dive,required"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Driver: DriverConfig{
			TickInterval: Duration(50 * time.Millisecond),
		},
	}
}

// ProbeTables materializes the effective candidate tables, overlaying any
// configured overrides onto the compiled-in defaults.
func (c *Config) ProbeTables() probe.Tables {
	tables := probe.DefaultTables()
	if len(c.Tables.WindowAccessors) > 0 {
		tables.WindowAccessors = c.Tables.WindowAccessors
	}
	if len(c.Tables.HandleMethods) > 0 {
		tables.HandleMethods = c.Tables.HandleMethods
	}
	if len(c.Tables.HandleFields) > 0 {
		tables.HandleFields = c.Tables.HandleFields
	}
	if len(c.Tables.VersionTypes) > 0 {
		types := make([]probe.VersionType, 0, len(c.Tables.VersionTypes))
		for _, vt := range c.Tables.VersionTypes {
			types = append(types, probe.VersionType{
				Name:          vt.Name,
				VersionObject: vt.VersionObject,
				NameAccessors: vt.NameAccessors,
				NameFields:    vt.NameFields,
			})
		}
		tables.VersionTypes = types
	}
	return tables
}

// TickInterval returns the effective tick interval.
func (c *Config) TickInterval() time.Duration {
	if c.Driver.TickInterval <= 0 {
		return 50 * time.Millisecond
	}
	return c.Driver.TickInterval.Std()
}

// HumanReadable reports whether console output was requested, falling
// back to the supplied default when unset.
func (c *Config) HumanReadable(fallback bool) bool {
	if c.Logging.HumanReadable == nil {
		return fallback
	}
	return *c.Logging.HumanReadable
}
