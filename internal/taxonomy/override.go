package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile parses a vocabulary definition from a YAML or JSON file and
// compiles it. YAML is a superset of JSON, so both formats go through the
// same decoder.
func LoadFile(path string) (*Vocabulary, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("taxonomy file: empty path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file %s: %w", path, err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse taxonomy file %s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	v := Compile(def)
	if len(v.Domains) == 0 {
		return nil, fmt.Errorf("taxonomy file %s: no domains defined", path)
	}
	if len(v.Doctypes) == 0 {
		return nil, fmt.Errorf("taxonomy file %s: no doctypes defined", path)
	}
	return v, nil
}

// TryLoad returns the vocabulary at path, or nil when the path is empty, the
// file is missing, or it fails to parse. Startup never blocks on a bad
// override; callers fall back to the built-in defaults.
func TryLoad(path string) *Vocabulary {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	v, err := LoadFile(path)
	if err != nil {
		return nil
	}
	return v
}
