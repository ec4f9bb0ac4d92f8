package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is the application-wide YAML configuration.
type Config struct {
	Logger   Logger   `yaml:"logger"`
	Analyser Analyser `yaml:"analyser"`
}

// Logger holds logging settings.
type Logger struct {
	Level string `yaml:"level"`
}

// Analyser holds defaults for document analysis runs.
type Analyser struct {
	// Workers bounds the number of documents analysed concurrently.
	Workers int `yaml:"workers"`
	// SeverityGate is the finding severity at or above which the analyse
	// command exits non-zero.
	SeverityGate string `yaml:"severity_gate"`
	// AllowedURLPatterns overrides the URL shapes the hardcoded-URL check
	// accepts. Empty keeps the built-in platform-host defaults.
	AllowedURLPatterns []string `yaml:"allowed_url_patterns"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *Config {
	return &Config{
		Logger: Logger{Level: "INFO"},
		Analyser: Analyser{
			Workers:      1,
			SeverityGate: "critical",
		},
	}
}

// ValidateConfigPath checks that the path exists and is a regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes a YAML file into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the configuration file and fills unset fields with
// defaults. A missing optional file is not an error; callers that require
// the file should stat it first.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if err := LoadYAML(configPath, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	cfg.Logger.Level = SetThen(cfg.Logger.Level, defaults.Logger.Level)
	cfg.Analyser.Workers = SetThen(cfg.Analyser.Workers, defaults.Analyser.Workers)
	cfg.Analyser.SeverityGate = SetThen(cfg.Analyser.SeverityGate, defaults.Analyser.SeverityGate)
}
