package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/loadout-gg/loadout/internal/catalog"
	"github.com/loadout-gg/loadout/internal/engine"
)

var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Run one detection over OCR text from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		store, err := catalog.NewStore(cfg.Catalog.Patterns, cfg.Catalog.Profiles)
		if err != nil {
			return fmt.Errorf("load catalogs: %w", err)
		}

		eng := engine.New(store, engine.Options{
			MatchThreshold: cfg.Engine.MatchThreshold,
			HistorySize:    cfg.Engine.HistorySize,
			ChangeEpsilon:  cfg.Engine.ChangeEpsilon,
		})

		res, _ := eng.DetectText(string(data))
		out, err := sonic.ConfigDefault.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
