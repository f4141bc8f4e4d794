package channeladapter

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrLoadingConfigFailed is returned when adapter configuration cannot be parsed.
var ErrLoadingConfigFailed = errors.New("loading channel adapter config failed")

// Config is the YAML-loadable configuration of a ChannelAdapter.
//
// An empty allow-list means no type filtering: all events are forwarded.
// A zero dispatch pool size means unbounded dispatch goroutines.
type Config struct {
	AllowedEventTypes []string `yaml:"allowed_event_types"`
	DispatchPoolSize  int      `yaml:"dispatch_pool_size"`
}

// LoadConfig parses a Config from YAML data.
func LoadConfig(data []byte) (Config, error) {
	var config Config

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Join(ErrLoadingConfigFailed, err)
	}

	if config.DispatchPoolSize < 0 {
		return Config{}, errors.Join(ErrLoadingConfigFailed, ErrInvalidPoolSize)
	}

	return config, nil
}

// Filter derives the filter policy from the configuration:
// NoFilter for an empty allow-list, a TypeFilter otherwise.
func (c Config) Filter() EventFilter {
	if len(c.AllowedEventTypes) == 0 {
		return NoFilter{}
	}

	return NewTypeFilter(c.AllowedEventTypes...)
}

// Options derives the adapter options from the configuration.
func (c Config) Options() []Option {
	options := []Option{WithFilter(c.Filter())}

	if c.DispatchPoolSize > 0 {
		options = append(options, WithDispatchPoolSize(c.DispatchPoolSize))
	}

	return options
}
