package config

import (
	"fmt"

	"trailcut/internal/vibes"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAssembly(); err != nil {
		return err
	}
	if err := c.validateLLM(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAssembly() error {
	if _, err := vibes.Lookup(c.Assembly.DefaultVibe); err != nil {
		return fmt.Errorf("assembly.default_vibe: %w", err)
	}
	return nil
}

func (c *Config) validateLLM() error {
	if c.LLM.TimeoutSeconds <= 0 {
		return fmt.Errorf("llm.timeout_seconds must be positive, got %d", c.LLM.TimeoutSeconds)
	}
	return nil
}
