package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeNaming()
	if err := c.normalizeTaxonomy(); err != nil {
		return err
	}
	c.normalizeLLM()
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.ArchiveRoot, err = expandPath(c.Paths.ArchiveRoot); err != nil {
		return fmt.Errorf("paths.archive_root: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeNaming() {
	c.Naming.Style = strings.ToLower(strings.TrimSpace(c.Naming.Style))
	if c.Naming.Style == "" {
		c.Naming.Style = defaultNamingStyle
	}
	if c.Naming.MaxHierarchyDepth == 0 {
		c.Naming.MaxHierarchyDepth = defaultMaxHierarchyDepth
	}
	if c.Naming.MaxPathLength == 0 {
		c.Naming.MaxPathLength = defaultMaxPathLength
	}
}

func (c *Config) normalizeTaxonomy() error {
	c.Taxonomy.OverridePath = strings.TrimSpace(c.Taxonomy.OverridePath)
	if c.Taxonomy.OverridePath == "" {
		return nil
	}
	expanded, err := expandPath(c.Taxonomy.OverridePath)
	if err != nil {
		return fmt.Errorf("taxonomy.override_path: %w", err)
	}
	c.Taxonomy.OverridePath = expanded
	return nil
}

func (c *Config) normalizeLLM() {
	if c.LLM.APIKey == "" {
		if value, ok := os.LookupEnv("DOCKET_LLM_API_KEY"); ok {
			c.LLM.APIKey = value
		}
	}
	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = defaultLLMBaseURL
	}
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	if c.LLM.Model == "" {
		c.LLM.Model = defaultLLMModel
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = defaultLLMTimeoutSeconds
	}
	if c.Extraction.MaxBytes == 0 {
		c.Extraction.MaxBytes = defaultExtractMaxBytes
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
