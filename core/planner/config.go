package planner

import "fmt"

// Config defines the engine safety bounds. Both are defenses against
// combinatorial blow-up on adversarial inputs; hitting either returns the
// best schedule found so far rather than failing.
type Config struct {
	// MaxExpansions caps the number of frontier nodes expanded per run.
	MaxExpansions int `json:"max_expansions"`
	// TimeoutSeconds is the wall-clock bound per run. Zero disables it.
	TimeoutSeconds float64 `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.MaxExpansions == 0 {
		c.MaxExpansions = 200000
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 10
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.MaxExpansions < 0 {
		return fmt.Errorf("max_expansions must be non-negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be non-negative")
	}
	return nil
}
