package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/loadout-gg/loadout/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate the matching catalogs",
}

var catalogLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Load the configured catalogs and cross-check profile categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.NewStore(cfg.Catalog.Patterns, cfg.Catalog.Profiles)
		if err != nil {
			return err
		}

		patterns := store.Patterns()
		profiles := store.Profiles()
		out := cmd.OutOrStdout()

		for _, space := range patterns.Spaces {
			fmt.Fprintf(out, "space %-8s %d categories\n", space.Name, len(space.Categories))
		}
		fmt.Fprintf(out, "profiles %d\n", len(profiles))

		// Profiles referencing undeclared categories still rank (they just
		// never earn that weight), but they are almost always typos.
		warnings := 0
		for _, p := range profiles {
			warnings += checkRef(out, patterns, p.Name, catalog.SpaceBuild, p.Build)
			warnings += checkRef(out, patterns, p.Name, catalog.SpaceWeapon, p.Weapon)
			warnings += checkRef(out, patterns, p.Name, catalog.SpaceStyle, p.Style)
		}
		if warnings > 0 {
			return fmt.Errorf("%d unresolved category reference(s)", warnings)
		}
		fmt.Fprintln(out, "ok")
		return nil
	},
}

func checkRef(out io.Writer, patterns catalog.Catalog, profile, spaceName string, id catalog.CategoryID) int {
	if id == "" {
		return 0
	}
	space, ok := patterns.Space(spaceName)
	if !ok {
		fmt.Fprintf(out, "warning: profile %s references space %s which is not declared\n", profile, spaceName)
		return 1
	}
	if _, found := space.Category(id); !found {
		fmt.Fprintf(out, "warning: profile %s references unknown %s category %q\n", profile, spaceName, id)
		return 1
	}
	return 0
}

func init() {
	catalogCmd.AddCommand(catalogLintCmd)
}
