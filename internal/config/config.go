package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	ArchiveRoot string `toml:"archive_root"`
	LogDir      string `toml:"log_dir"`
	CacheDir    string `toml:"cache_dir"`
}

// Naming contains the path construction rules.
type Naming struct {
	Style             string `toml:"style"`
	MaxHierarchyDepth int    `toml:"max_hierarchy_depth"`
	MaxPathLength     int    `toml:"max_path_length"`
}

// Taxonomy contains vocabulary resolution settings.
type Taxonomy struct {
	// Strict makes an unresolved category or doctype a hard failure instead
	// of substituting "other".
	Strict bool `toml:"strict"`
	// OverridePath optionally points at a YAML or JSON vocabulary file that
	// replaces the built-in defaults wholesale. Load failures fall back to
	// the defaults silently; startup never blocks on a bad override.
	OverridePath string `toml:"override_path"`
}

// LLM contains connection settings for the classification model.
type LLM struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	Referer        string `toml:"referer"`
	Title          string `toml:"title"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Extraction contains text extraction settings.
type Extraction struct {
	// MaxBytes caps how much document text is read and sent to the model.
	MaxBytes int `toml:"max_bytes"`
}

// Cache contains classification cache settings.
type Cache struct {
	Enabled bool `toml:"enabled"`
}

// Output contains result presentation settings.
type Output struct {
	Format string `toml:"format"`
}

// Logging contains log output settings.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for docket.
//
// Configuration sections by subsystem:
//   - Paths: archive root, log and cache directories
//   - Naming: naming style and structural path limits
//   - Taxonomy: strict/fallback policy and optional vocabulary override
//   - LLM: connection settings for the classification model
//   - Extraction: text extraction limits
//   - Cache: classification cache toggle
//   - Output: default result format
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Naming     Naming     `toml:"naming"`
	Taxonomy   Taxonomy   `toml:"taxonomy"`
	LLM        LLM        `toml:"llm"`
	Extraction Extraction `toml:"extraction"`
	Cache      Cache      `toml:"cache"`
	Output     Output     `toml:"output"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/docket/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("docket.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories docket writes to.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, c.Paths.CacheDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// PdftotextBinary returns the executable used for PDF text extraction.
func (c *Config) PdftotextBinary() string {
	return "pdftotext"
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
