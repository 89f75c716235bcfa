package audio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads synthesis tunables from a YAML file, applied on top of
// the defaults so a file only needs the fields it changes.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("config %s: sampleRate must be positive", path)
	}
	if len(cfg.ReverbDelaysMs) == 0 {
		return nil, fmt.Errorf("config %s: reverbDelaysMs must not be empty", path)
	}
	return &cfg, nil
}
