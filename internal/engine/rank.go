package engine

import (
	"github.com/loadout-gg/loadout/internal/catalog"
	"github.com/loadout-gg/loadout/internal/textnorm"
)

// Ranking weights. Category agreement dominates; tag overlap is a tiebreaker
// that rewards profiles tuned for the attributes actually on screen.
const (
	weightBuild  = 0.4
	weightWeapon = 0.3
	weightStyle  = 0.2
	weightTags   = 0.1
)

// DefaultMatchThreshold is the minimum winning score a profile must exceed.
const DefaultMatchThreshold = 0.6

// Detection is the category view of one scored attribute set.
type Detection struct {
	Build      catalog.CategoryID
	Weapon     catalog.CategoryID
	Style      catalog.CategoryID
	Attributes AttributeSet
}

// Rank scores every candidate against the detection and returns the best
// one with its score, or nil when no candidate scores strictly above the
// threshold; a score exactly at the threshold is no match. Ties keep the
// first-encountered candidate. A detected Unknown category earns no credit,
// so a degraded (empty) pattern catalog can never produce a profile match.
func Rank(det Detection, profiles []catalog.Profile, threshold float64) (*catalog.Profile, float64) {
	names := det.Attributes.normalizedNames()

	var best *catalog.Profile
	bestScore := 0.0
	for i := range profiles {
		p := &profiles[i]
		score := 0.0
		if det.Build != catalog.Unknown && p.Build == det.Build {
			score += weightBuild
		}
		if det.Weapon != catalog.Unknown && p.Weapon == det.Weapon {
			score += weightWeapon
		}
		if det.Style != catalog.Unknown && p.Style == det.Style {
			score += weightStyle
		}
		score += weightTags * tagOverlap(p.Tags, names)

		if score > bestScore {
			best = p
			bestScore = score
		}
	}

	if best == nil || bestScore <= threshold {
		return nil, bestScore
	}
	return best, bestScore
}

// tagOverlap is |tags ∩ names| / max(|tags|, |names|), and 0 whenever either
// set is empty.
func tagOverlap(tags []string, names map[string]struct{}) float64 {
	if len(tags) == 0 || len(names) == 0 {
		return 0
	}
	tagSet := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if n := textnorm.Normalize(tag); n != "" {
			tagSet[n] = struct{}{}
		}
	}
	if len(tagSet) == 0 {
		return 0
	}
	shared := 0
	for tag := range tagSet {
		if _, ok := names[tag]; ok {
			shared++
		}
	}
	den := len(tagSet)
	if len(names) > den {
		den = len(names)
	}
	return float64(shared) / float64(den)
}
