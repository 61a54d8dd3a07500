package engine

import (
	"github.com/loadout-gg/loadout/internal/catalog"
	"github.com/loadout-gg/loadout/internal/textnorm"
)

// Confidence measures how strongly attrs support the chosen build and weapon
// categories. Each attribute earns one hit per space it matches, so an
// attribute matching both spaces counts twice and the denominator is twice
// the attribute count. The result is clamped to [0,1]; an empty attribute
// set is exactly 0.
func Confidence(attrs AttributeSet, build, weapon catalog.Category) float64 {
	if len(attrs) == 0 {
		return 0
	}
	matches := 0
	for name := range attrs {
		n := textnorm.Normalize(name)
		if matchesAny(n, build.Patterns) {
			matches++
		}
		if matchesAny(n, weapon.Patterns) {
			matches++
		}
	}
	c := float64(matches) / float64(2*len(attrs))
	if c > 1 {
		c = 1
	}
	return c
}

// MatchedAttributes returns the attribute names supporting either chosen
// category, in no particular order.
func MatchedAttributes(attrs AttributeSet, build, weapon catalog.Category) []string {
	var out []string
	for name := range attrs {
		n := textnorm.Normalize(name)
		if matchesAny(n, build.Patterns) || matchesAny(n, weapon.Patterns) {
			out = append(out, name)
		}
	}
	return out
}
