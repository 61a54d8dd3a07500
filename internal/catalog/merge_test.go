package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeReplacesInPlaceAndAppends(t *testing.T) {
	base := Catalog{Spaces: []Space{{
		Name: SpaceBuild,
		Categories: []Category{
			{ID: "rifleman", Patterns: []string{"rifle"}},
			{ID: "medic", Patterns: []string{"medic"}},
		},
	}}}
	override := Catalog{Spaces: []Space{{
		Name: SpaceBuild,
		Categories: []Category{
			{ID: "medic", Patterns: []string{"medic", "doctor"}},
			{ID: "smuggler", Patterns: []string{"smuggl"}},
		},
	}}}

	merged := Merge(base, override)
	builds, ok := merged.Space(SpaceBuild)
	require.True(t, ok)

	// Overridden category keeps its base position; new one appends.
	require.Len(t, builds.Categories, 3)
	assert.Equal(t, CategoryID("rifleman"), builds.Categories[0].ID)
	assert.Equal(t, CategoryID("medic"), builds.Categories[1].ID)
	assert.Equal(t, []string{"medic", "doctor"}, builds.Categories[1].Patterns)
	assert.Equal(t, CategoryID("smuggler"), builds.Categories[2].ID)

	// Inputs stay untouched.
	assert.Equal(t, []string{"medic"}, base.Spaces[0].Categories[1].Patterns)
}

func TestMergeAppendsNewSpaces(t *testing.T) {
	base := Catalog{Spaces: []Space{{Name: SpaceBuild, Categories: []Category{{ID: "medic", Patterns: []string{"medic"}}}}}}
	override := Catalog{Spaces: []Space{{Name: "stance", Categories: []Category{{ID: "kneeling", Patterns: []string{"kneel"}}}}}}

	merged := Merge(base, override)
	require.Len(t, merged.Spaces, 2)
	assert.Equal(t, SpaceBuild, merged.Spaces[0].Name)
	assert.Equal(t, "stance", merged.Spaces[1].Name)
}

func TestMergeProfiles(t *testing.T) {
	base := []Profile{
		{Name: "a", Build: "rifleman"},
		{Name: "b", Build: "medic"},
	}
	override := []Profile{
		{Name: "b", Build: "medic", Tags: []string{"buffs"}},
		{Name: "c", Build: "swordsman"},
	}

	merged := MergeProfiles(base, override)
	require.Len(t, merged, 3)
	assert.Equal(t, "a", merged[0].Name)
	assert.Equal(t, "b", merged[1].Name)
	assert.Equal(t, []string{"buffs"}, merged[1].Tags)
	assert.Equal(t, "c", merged[2].Name)
}
