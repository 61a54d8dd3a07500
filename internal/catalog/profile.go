package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
)

// Profile is a stored candidate configuration. The engine only reads its
// categories and tags; Payload is opaque and carried through for whoever
// acts on a match.
type Profile struct {
	Name    string         `json:"name" yaml:"name"`
	Build   CategoryID     `json:"build" yaml:"build"`
	Weapon  CategoryID     `json:"weapon,omitempty" yaml:"weapon,omitempty"`
	Style   CategoryID     `json:"style,omitempty" yaml:"style,omitempty"`
	Tags    []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Payload map[string]any `json:"payload,omitempty" yaml:"payload,omitempty"`
}

type profileFile struct {
	Profiles []Profile `json:"profiles"`
}

// LoadProfiles reads a profile catalog from a JSON file.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile catalog: %w", err)
	}
	var pf profileFile
	if err := sonic.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse profile catalog %s: %w", path, err)
	}
	if err := ValidateProfiles(pf.Profiles); err != nil {
		return nil, fmt.Errorf("profile catalog %s: %w", path, err)
	}
	return pf.Profiles, nil
}

// SaveProfiles writes profiles back to the same JSON shape LoadProfiles
// reads, so a save/load round trip reproduces every field.
func SaveProfiles(path string, profiles []Profile) error {
	if err := ValidateProfiles(profiles); err != nil {
		return err
	}
	data, err := sonic.ConfigDefault.MarshalIndent(profileFile{Profiles: profiles}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write profile catalog: %w", err)
	}
	return nil
}

// ValidateProfiles checks profile catalog shape once at load time.
func ValidateProfiles(profiles []Profile) error {
	seen := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		if strings.TrimSpace(p.Name) == "" {
			return errors.New("profile name must be set")
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("duplicate profile %q", p.Name)
		}
		seen[p.Name] = struct{}{}
		if strings.TrimSpace(string(p.Build)) == "" {
			return fmt.Errorf("profile %q: build must be set", p.Name)
		}
	}
	return nil
}
