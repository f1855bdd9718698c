package f1telemetry

import (
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	HTTPPort uint16 `yaml:"http_port"`

	// GridPoints is the resolution of the shared comparison axis. Zero
	// means the engine default.
	GridPoints int `yaml:"grid_points"`

	// CacheDir holds cached upstream responses. Empty disables caching.
	CacheDir string `yaml:"cache_dir"`

	// CircuitsFile points at the circuits ini catalog. Empty disables
	// circuit annotation.
	CircuitsFile string `yaml:"circuits_file"`

	Provider ProviderConfig `yaml:"provider"`
}

type ProviderConfig struct {
	BaseURL               string `yaml:"base_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

func (p ProviderConfig) RequestTimeout() time.Duration {
	if p.RequestTimeoutSeconds <= 0 {
		return 2 * time.Minute
	}

	return time.Duration(p.RequestTimeoutSeconds) * time.Second
}

func ConfigDefault() *Config {
	return &Config{
		HTTPPort: 8772,
		CacheDir: "./cache",
		Provider: ProviderConfig{
			RequestTimeoutSeconds: 120,
		},
	}
}

func ReadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)

	if err != nil {
		return nil, err
	}

	config := ConfigDefault()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}
