package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rmera/poscen"
)

// Config holds the settings that can be given in a YAML file with --config.
// Flags given explicitly on the command line take precedence over it.
type Config struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	CheckCounts bool   `yaml:"check_counts"`
	Verbose     bool   `yaml:"verbose"`
}

// DefaultConfig returns the configuration used when neither flags nor a
// config file say otherwise.
func DefaultConfig() *Config {
	return &Config{
		Input:  poscen.DefaultInput,
		Output: poscen.DefaultOutput,
	}
}

// LoadConfig reads the YAML file at path on top of the defaults.
// Unknown keys are an error, so typos don't go unnoticed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Input == "" || cfg.Output == "" {
		return nil, fmt.Errorf("config %s: input and output can't be empty", path)
	}
	return cfg, nil
}

// Options converts the configuration into the options for poscen.CenterFile.
func (c *Config) Options() *poscen.Options {
	return &poscen.Options{
		CheckCounts: c.CheckCounts,
		Verbose:     c.Verbose,
	}
}
