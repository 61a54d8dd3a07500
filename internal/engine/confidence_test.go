package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loadout-gg/loadout/internal/catalog"
)

func TestConfidenceEmptyAttributes(t *testing.T) {
	build := catalog.Category{ID: "rifleman", Patterns: []string{"rifle"}}
	weapon := catalog.Category{ID: "rifle", Patterns: []string{"rifle"}}
	assert.Equal(t, 0.0, Confidence(AttributeSet{}, build, weapon))
	assert.Equal(t, 0.0, Confidence(nil, build, weapon))
}

func TestConfidenceBothSpacesFullAgreement(t *testing.T) {
	// Two attributes, each matching both category spaces: 4 hits over 2*2.
	build := catalog.Category{ID: "rifleman", Patterns: []string{"rifle", "marksman"}}
	weapon := catalog.Category{ID: "rifle", Patterns: []string{"rifle", "marksman"}}
	attrs := AttributeSet{"Rifle Weapons": 4, "Marksman": 3}
	assert.Equal(t, 1.0, Confidence(attrs, build, weapon))
}

func TestConfidenceSingleSpace(t *testing.T) {
	build := catalog.Category{ID: "rifleman", Patterns: []string{"rifle"}}
	weapon := catalog.Category{} // unknown: no patterns, no hits
	attrs := AttributeSet{"Rifle Weapons": 4, "Cooking": 1}
	// One of two attributes matches one of two spaces: 1 / (2*2).
	assert.Equal(t, 0.25, Confidence(attrs, build, weapon))
}

func TestConfidenceZeroWhenNothingMatches(t *testing.T) {
	build := catalog.Category{ID: "rifleman", Patterns: []string{"rifle"}}
	weapon := catalog.Category{ID: "rifle", Patterns: []string{"rifle"}}
	attrs := AttributeSet{"Cooking": 5}
	assert.Equal(t, 0.0, Confidence(attrs, build, weapon))
	assert.Empty(t, MatchedAttributes(attrs, build, weapon))
}

func TestMatchedAttributes(t *testing.T) {
	build := catalog.Category{ID: "rifleman", Patterns: []string{"rifle"}}
	weapon := catalog.Category{ID: "pistol", Patterns: []string{"pistol"}}
	attrs := AttributeSet{"Rifle Weapons": 4, "Pistol Speed": 2, "Cooking": 1}
	matched := MatchedAttributes(attrs, build, weapon)
	assert.ElementsMatch(t, []string{"Rifle Weapons", "Pistol Speed"}, matched)
}
