package catalog

// Defaults is the built-in pattern catalog. A file-based catalog is layered
// on top of it with Merge; running with no catalog files at all still yields
// a working engine.
func Defaults() Catalog {
	return Catalog{Spaces: []Space{
		{
			Name: SpaceBuild,
			Categories: []Category{
				{ID: "rifleman", Patterns: []string{"rifle", "marksman", "sharpshooter"}},
				{ID: "pistoleer", Patterns: []string{"pistol", "gunslinger"}},
				{ID: "carbineer", Patterns: []string{"carbine"}},
				{ID: "swordsman", Patterns: []string{"sword", "blade"}},
				{ID: "fencer", Patterns: []string{"fencing", "fencer"}},
				{ID: "pikeman", Patterns: []string{"polearm", "pike", "lance"}},
				{ID: "medic", Patterns: []string{"medic", "doctor", "healing", "first aid"}},
				{ID: "brawler", Patterns: []string{"brawler", "unarmed", "street"}},
			},
		},
		{
			Name: SpaceWeapon,
			Categories: []Category{
				{ID: "rifle", Patterns: []string{"rifle"}},
				{ID: "pistol", Patterns: []string{"pistol"}},
				{ID: "carbine", Patterns: []string{"carbine"}},
				{ID: "one_hand_sword", Patterns: []string{"one-handed", "one hand", "sword"}},
				{ID: "polearm", Patterns: []string{"polearm", "pike", "lance"}},
				{ID: "unarmed", Patterns: []string{"unarmed", "fist"}},
			},
		},
		{
			Name: SpaceStyle,
			Categories: []Category{
				{ID: "ranged", Patterns: []string{"rifle", "pistol", "carbine", "marksman", "ranged"}},
				{ID: "melee", Patterns: []string{"sword", "polearm", "unarmed", "brawler", "melee"}},
				{ID: "support", Patterns: []string{"medic", "doctor", "healing", "support"}},
			},
		},
	}}
}

// DefaultProfiles are the built-in candidate profiles. File-based profiles
// are layered on top with MergeProfiles.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Name:   "rifleman_dps",
			Build:  "rifleman",
			Weapon: "rifle",
			Style:  "ranged",
			Tags:   []string{"rifle", "marksman", "burst"},
			Payload: map[string]any{
				"abilities": []any{"aim", "headshot", "overcharge"},
				"range":     64,
			},
		},
		{
			Name:   "pistoleer_skirmish",
			Build:  "pistoleer",
			Weapon: "pistol",
			Style:  "ranged",
			Tags:   []string{"pistol", "mobility"},
			Payload: map[string]any{
				"abilities": []any{"quickdraw", "dodge"},
				"range":     32,
			},
		},
		{
			Name:   "swordsman_frontline",
			Build:  "swordsman",
			Weapon: "one_hand_sword",
			Style:  "melee",
			Tags:   []string{"sword", "defense"},
			Payload: map[string]any{
				"abilities": []any{"lunge", "parry"},
				"range":     4,
			},
		},
		{
			Name:   "combat_medic",
			Build:  "medic",
			Style:  "support",
			Tags:   []string{"healing", "buffs"},
			Payload: map[string]any{
				"abilities": []any{"heal wound", "stim"},
			},
		},
	}
}
