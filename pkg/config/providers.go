package config

import "time"

// DestinationConfig describes an outbound HTTP target addressed by name.
type DestinationConfig struct {
	Name    string            `mapstructure:"name"`
	BaseURL string            `mapstructure:"base_url"`
	Headers map[string]string `mapstructure:"headers"`
	Timeout time.Duration     `mapstructure:"timeout"`
}

// DestinationsConfig represents the configuration for all destinations
type DestinationsConfig struct {
	Destinations map[string]DestinationConfig `mapstructure:"destinations"`
}

func (c DestinationsConfig) Lookup(name string) (DestinationConfig, bool) {
	d, ok := c.Destinations[name]
	if !ok {
		return DestinationConfig{}, false
	}
	if d.Name == "" {
		d.Name = name
	}
	if d.Timeout <= 0 {
		d.Timeout = 30 * time.Second
	}
	return d, true
}
