// Package engine scores attribute sets against the pattern catalog, ranks
// candidate profiles, and tracks recent detections. Every scoring function
// here is pure: identical inputs and catalogs give identical results, and
// nothing throws: absence of a match is an Unknown category or a nil
// profile, never an error.
package engine

import (
	"strings"

	"github.com/loadout-gg/loadout/internal/catalog"
	"github.com/loadout-gg/loadout/internal/textnorm"
)

// AttributeSet maps a detected attribute name to its level.
type AttributeSet map[string]int

// normalizedNames returns the set of normalized attribute names.
func (a AttributeSet) normalizedNames() map[string]struct{} {
	out := make(map[string]struct{}, len(a))
	for name := range a {
		if n := textnorm.Normalize(name); n != "" {
			out[n] = struct{}{}
		}
	}
	return out
}

// ScoreSpace sums attribute levels into every category whose patterns occur
// in the attribute's normalized name. One attribute feeds every category it
// matches; fan-out is intentional, the score measures support.
// Categories that score zero are omitted; BestCategory is the companion
// accessor for callers that only want the winner.
func ScoreSpace(attrs AttributeSet, space catalog.Space) map[catalog.CategoryID]int {
	scores := make(map[catalog.CategoryID]int)
	for name, level := range attrs {
		if level <= 0 {
			continue
		}
		n := textnorm.Normalize(name)
		if n == "" {
			continue
		}
		for _, cat := range space.Categories {
			if matchesAny(n, cat.Patterns) {
				scores[cat.ID] += level
			}
		}
	}
	return scores
}

// BestCategory returns the highest-scoring category of the space. Ties keep
// the first-declared category; no positive score yields catalog.Unknown.
func BestCategory(attrs AttributeSet, space catalog.Space) (catalog.CategoryID, int) {
	scores := ScoreSpace(attrs, space)
	best := catalog.Unknown
	bestScore := 0
	for _, cat := range space.Categories {
		if s := scores[cat.ID]; s > bestScore {
			best = cat.ID
			bestScore = s
		}
	}
	return best, bestScore
}

func matchesAny(normalized string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}
