package config

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/leapgrid/internal/cli/output"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ResultPath == "" {
		return fmt.Errorf("result is required")
	}
	if !output.OutputMode(c.OutputFormat).Valid() {
		return fmt.Errorf("unknown output format %q", c.OutputFormat)
	}
	if c.Measure != nil {
		if err := c.Measure.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateResultFile checks that the result file exists.
func (c *Config) ValidateResultFile() error {
	if _, err := os.Stat(c.ResultPath); os.IsNotExist(err) {
		return fmt.Errorf("result file does not exist: %s\nHint: Create the file or use --result to specify a different path", c.ResultPath)
	}
	return nil
}
