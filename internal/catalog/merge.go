package catalog

// Merge layers override on top of base and returns a new catalog; neither
// input is mutated. A category in override replaces the base category with
// the same id in place (keeping base declaration order, and with it the
// tie-break order); new categories and spaces append in their declared order.
func Merge(base, override Catalog) Catalog {
	out := Catalog{Spaces: make([]Space, 0, len(base.Spaces))}

	overrideSpaces := make(map[string]Space, len(override.Spaces))
	for _, s := range override.Spaces {
		overrideSpaces[s.Name] = s
	}

	for _, bs := range base.Spaces {
		os, ok := overrideSpaces[bs.Name]
		if !ok {
			out.Spaces = append(out.Spaces, copySpace(bs))
			continue
		}
		out.Spaces = append(out.Spaces, mergeSpace(bs, os))
	}

	for _, os := range override.Spaces {
		if _, ok := base.Space(os.Name); !ok {
			out.Spaces = append(out.Spaces, copySpace(os))
		}
	}
	return out
}

func mergeSpace(base, override Space) Space {
	out := Space{Name: base.Name, Categories: make([]Category, 0, len(base.Categories))}

	overrideCats := make(map[CategoryID]Category, len(override.Categories))
	for _, c := range override.Categories {
		overrideCats[c.ID] = c
	}

	for _, bc := range base.Categories {
		if oc, ok := overrideCats[bc.ID]; ok {
			out.Categories = append(out.Categories, copyCategory(oc))
		} else {
			out.Categories = append(out.Categories, copyCategory(bc))
		}
	}
	for _, oc := range override.Categories {
		if _, ok := base.Category(oc.ID); !ok {
			out.Categories = append(out.Categories, copyCategory(oc))
		}
	}
	return out
}

// MergeProfiles layers override profiles on top of base by name: same name
// replaces in place, new names append in declared order.
func MergeProfiles(base, override []Profile) []Profile {
	out := make([]Profile, 0, len(base)+len(override))

	overrideByName := make(map[string]Profile, len(override))
	for _, p := range override {
		overrideByName[p.Name] = p
	}
	baseNames := make(map[string]struct{}, len(base))

	for _, bp := range base {
		baseNames[bp.Name] = struct{}{}
		if op, ok := overrideByName[bp.Name]; ok {
			out = append(out, op)
		} else {
			out = append(out, bp)
		}
	}
	for _, op := range override {
		if _, ok := baseNames[op.Name]; !ok {
			out = append(out, op)
		}
	}
	return out
}

func copySpace(s Space) Space {
	out := Space{Name: s.Name, Categories: make([]Category, 0, len(s.Categories))}
	for _, c := range s.Categories {
		out.Categories = append(out.Categories, copyCategory(c))
	}
	return out
}

func copyCategory(c Category) Category {
	out := Category{ID: c.ID, Patterns: make([]string, len(c.Patterns))}
	copy(out.Patterns, c.Patterns)
	return out
}
