package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPatterns reads a pattern catalog from a YAML file. Patterns come back
// normalized, ready for matching. Errors here are the one place the matching
// stack fails loudly; everything after load is total.
func LoadPatterns(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read pattern catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse pattern catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("pattern catalog %s: %w", path, err)
	}
	return c.normalized(), nil
}
