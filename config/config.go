package config

import (
	"fmt"
	"io/ioutil"

	"github.com/gookit/validate"
	yaml "gopkg.in/yaml.v2"
)

// Config carries the static engine configuration: the instrument set the
// engine trades and the log level. The instrument list is fixed for the
// process lifetime.
type Config struct {
	Instruments []string `yaml:"instruments" validate:"required|minLen:1"`
	LogLevel    string   `yaml:"log_level"`
}

// LoadConfig reads and validates a yaml configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	v := validate.Struct(&cfg)
	if !v.Validate() {
		return nil, fmt.Errorf("invalid config: %s", v.Errors.One())
	}

	for _, instrument := range cfg.Instruments {
		if instrument == "" {
			return nil, fmt.Errorf("invalid config: empty instrument name")
		}
	}

	return &cfg, nil
}
