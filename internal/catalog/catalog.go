// Package catalog holds the static matching catalogs: pattern spaces and
// candidate profiles. Catalogs are loaded once (or reloaded wholesale) and
// treated as immutable by everything downstream.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/loadout-gg/loadout/internal/textnorm"
)

// CategoryID identifies one classification bucket within a space.
type CategoryID string

// Unknown is the sentinel returned when nothing matches. It is never a valid
// catalog entry.
const Unknown CategoryID = "unknown"

// Well-known space names. Detection reads these three; extra spaces in a
// catalog are allowed and simply ignored by the engine.
const (
	SpaceBuild  = "build"
	SpaceWeapon = "weapon"
	SpaceStyle  = "style"
)

// Category is a bucket with its ordered substring patterns.
type Category struct {
	ID       CategoryID `yaml:"id" json:"id"`
	Patterns []string   `yaml:"patterns" json:"patterns"`
}

// Space is an ordered category list. Declaration order is the deterministic
// tie-break order for scoring.
type Space struct {
	Name       string     `yaml:"name" json:"name"`
	Categories []Category `yaml:"categories" json:"categories"`
}

// Catalog is the full ordered set of pattern spaces.
type Catalog struct {
	Spaces []Space `yaml:"spaces" json:"spaces"`
}

// PatternsFor returns the patterns of id, or nil when the category is absent.
func (s Space) PatternsFor(id CategoryID) []string {
	for _, c := range s.Categories {
		if c.ID == id {
			return c.Patterns
		}
	}
	return nil
}

// Category returns the category with the given id.
func (s Space) Category(id CategoryID) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Parse maps a raw string onto a declared category id, falling back to
// Unknown. It never errors: unrecognized input is a normal outcome.
func (s Space) Parse(raw string) CategoryID {
	n := CategoryID(textnorm.Normalize(raw))
	for _, c := range s.Categories {
		if c.ID == n {
			return c.ID
		}
	}
	return Unknown
}

// Space returns the space with the given name.
func (c Catalog) Space(name string) (Space, bool) {
	for _, s := range c.Spaces {
		if s.Name == name {
			return s, true
		}
	}
	return Space{}, false
}

// Validate checks the catalog shape. It is called once at load time; scoring
// itself never errors.
func (c Catalog) Validate() error {
	seenSpaces := make(map[string]struct{}, len(c.Spaces))
	for _, s := range c.Spaces {
		if strings.TrimSpace(s.Name) == "" {
			return errors.New("space name must be set")
		}
		if _, dup := seenSpaces[s.Name]; dup {
			return fmt.Errorf("duplicate space %q", s.Name)
		}
		seenSpaces[s.Name] = struct{}{}

		seenCats := make(map[CategoryID]struct{}, len(s.Categories))
		for _, cat := range s.Categories {
			if strings.TrimSpace(string(cat.ID)) == "" {
				return fmt.Errorf("space %q: category id must be set", s.Name)
			}
			if cat.ID == Unknown {
				return fmt.Errorf("space %q: %q is reserved", s.Name, Unknown)
			}
			if _, dup := seenCats[cat.ID]; dup {
				return fmt.Errorf("space %q: duplicate category %q", s.Name, cat.ID)
			}
			seenCats[cat.ID] = struct{}{}
			if len(cat.Patterns) == 0 {
				return fmt.Errorf("space %q: category %q has no patterns", s.Name, cat.ID)
			}
			for _, p := range cat.Patterns {
				if strings.TrimSpace(p) == "" {
					return fmt.Errorf("space %q: category %q has an empty pattern", s.Name, cat.ID)
				}
			}
		}
	}
	return nil
}

// normalized returns a copy with every pattern canonicalized, so matching
// never depends on how patterns were typed in the file.
func (c Catalog) normalized() Catalog {
	out := Catalog{Spaces: make([]Space, 0, len(c.Spaces))}
	for _, s := range c.Spaces {
		ns := Space{Name: s.Name, Categories: make([]Category, 0, len(s.Categories))}
		for _, cat := range s.Categories {
			nc := Category{ID: cat.ID, Patterns: make([]string, 0, len(cat.Patterns))}
			for _, p := range cat.Patterns {
				nc.Patterns = append(nc.Patterns, textnorm.Normalize(p))
			}
			ns.Categories = append(ns.Categories, nc)
		}
		out.Spaces = append(out.Spaces, ns)
	}
	return out
}
