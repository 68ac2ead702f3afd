package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// ProjectConfig mirrors namesetl.yaml. Pointer fields distinguish "unset"
// from an explicit zero value.
type ProjectConfig struct {
	SourceURL  string       `yaml:"source_url,omitempty"`
	CSVPath    string       `yaml:"csv_path,omitempty"`
	StorePath  string       `yaml:"store_path,omitempty"`
	SkipHeader *bool        `yaml:"skip_header,omitempty"`
	Timeout    string       `yaml:"timeout,omitempty"`
	Retries    *int         `yaml:"retries,omitempty"`
	Server     ServerConfig `yaml:"server,omitempty"`
}

const ConfigFileName = "namesetl.yaml"

// TimeoutDuration parses Timeout. Zero is returned when it is unset.
func (c *ProjectConfig) TimeoutDuration() (time.Duration, error) {
	if c == nil || c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// Load reads namesetl.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads the config file at path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg as namesetl.yaml in dir, replacing any existing file.
func Save(dir string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0644)
}
