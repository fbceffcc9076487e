package config

import (
	"errors"
	"fmt"
	"strings"
)

var validOutputFormats = []string{"json", "csv", "tsv", "table"}

var validLogFormats = []string{"console", "json"}

// Validate checks the configuration for structural problems. It does not
// verify that the naming style exists; the naming package reports that at
// the point the style is resolved.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Paths.ArchiveRoot) == "" {
		problems = append(problems, "paths.archive_root must be set")
	}
	if c.Naming.Style == "" {
		problems = append(problems, "naming.style must be set")
	}
	if c.Naming.MaxHierarchyDepth <= 0 {
		problems = append(problems, "naming.max_hierarchy_depth must be positive")
	}
	if c.Naming.MaxPathLength <= 0 {
		problems = append(problems, "naming.max_path_length must be positive")
	}
	if c.LLM.TimeoutSeconds <= 0 {
		problems = append(problems, "llm.timeout_seconds must be positive")
	}
	if c.Extraction.MaxBytes <= 0 {
		problems = append(problems, "extraction.max_bytes must be positive")
	}
	if !contains(validOutputFormats, c.Output.Format) {
		problems = append(problems, fmt.Sprintf("output.format must be one of %s", strings.Join(validOutputFormats, ", ")))
	}
	if !contains(validLogFormats, c.Logging.Format) {
		problems = append(problems, fmt.Sprintf("logging.format must be one of %s", strings.Join(validLogFormats, ", ")))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
