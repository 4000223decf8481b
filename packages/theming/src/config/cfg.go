// Package config loads theming configuration: the role palette and logging
// options.
package config

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"themec-go/packages/theming/src/theme"
)

// Palette wraps a theme so the role mapping can be read from YAML with its
// declaration order intact.
type Palette struct {
	*theme.Theme
}

// UnmarshalYAML decodes a YAML mapping of role name to default value,
// preserving the order roles appear in the document.
func (p *Palette) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("palette: expected a mapping, got %s at line %d", value.Tag, value.Line)
	}
	t := theme.New()
	for i := 0; i+1 < len(value.Content); i += 2 {
		t.Set(theme.Role(value.Content[i].Value), value.Content[i+1].Value)
	}
	p.Theme = t
	return nil
}

// Config is the full themec configuration.
type Config struct {
	Palette Palette       `yaml:"palette"`
	Logging LoggingConfig `yaml:"logging"`
}

func defaults() *Config {
	return &Config{
		Palette: Palette{Theme: theme.Baseline()},
		Logging: LoggingConfig{Level: "normal"},
	}
}

// LoadConfiguration reads configuration from path. An empty path returns the
// defaults: the baseline palette and normal logging.
func LoadConfiguration(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	if cfg.Palette.Theme == nil {
		cfg.Palette.Theme = theme.Baseline()
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	var errs error
	switch cfg.Logging.Level {
	case "", "none", "normal", "debug":
	default:
		errs = multierr.Append(errs, fmt.Errorf("logging level %q: expected none, normal or debug", cfg.Logging.Level))
	}
	for _, role := range cfg.Palette.Roles() {
		if v, _ := cfg.Palette.Lookup(string(role)); v == "" {
			errs = multierr.Append(errs, fmt.Errorf("palette role %q has an empty value", role))
		}
	}
	return errs
}
