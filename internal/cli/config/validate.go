package config

import "fmt"

var validFormats = map[string]struct{}{
	"pandas":          {},
	"polars":          {},
	"vector":          {},
	"vector-vertical": {},
}

var validOutputs = map[string]struct{}{
	"auto":     {},
	"text":     {},
	"markdown": {},
	"json":     {},
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if _, ok := validFormats[c.Format]; !ok {
		return fmt.Errorf("invalid format %q (want pandas, polars, vector, or vector-vertical)", c.Format)
	}
	if _, ok := validOutputs[c.OutputFormat]; !ok {
		return fmt.Errorf("invalid output mode %q (want auto, text, markdown, or json)", c.OutputFormat)
	}
	if c.MaxRows < 0 {
		return fmt.Errorf("max_rows must not be negative, got %d", c.MaxRows)
	}
	if c.Indent < 1 {
		return fmt.Errorf("indent must be at least 1, got %d", c.Indent)
	}
	if c.TruncateThreshold < 1 {
		return fmt.Errorf("truncate_threshold must be at least 1, got %d", c.TruncateThreshold)
	}
	return nil
}
