package config

import (
	"fmt"
	"strings"
)

var validSeverities = map[string]struct{}{
	"low":      {},
	"medium":   {},
	"high":     {},
	"critical": {},
}

// ValidateConfig checks if the global configuration has valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := validateAnalyser(&cfg.Analyser); err != nil {
		return fmt.Errorf("YAML global config: analyser directive is invalid: %w", err)
	}
	return nil
}

func validateAnalyser(a *Analyser) error {
	if a == nil {
		return fmt.Errorf("analyser configuration is nil")
	}
	if a.Workers < 1 || a.Workers > 128 {
		return fmt.Errorf("workers must be between 1 and 128: %d", a.Workers)
	}
	if _, ok := validSeverities[strings.ToLower(a.SeverityGate)]; !ok {
		return fmt.Errorf("severity_gate must be one of low, medium, high, critical: %q", a.SeverityGate)
	}
	return nil
}
