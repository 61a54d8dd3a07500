package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/loadout-gg/loadout/internal/catalog"
	"github.com/loadout-gg/loadout/internal/engine"
	"github.com/loadout-gg/loadout/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the detection HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.NewStore(cfg.Catalog.Patterns, cfg.Catalog.Profiles)
		if err != nil {
			return fmt.Errorf("load catalogs: %w", err)
		}
		defer store.Close()

		if cfg.Catalog.Watch {
			if err := store.Watch(cmd.Context()); err != nil {
				log.Warn().Err(err).Msg("catalog watching disabled")
			}
		}

		eng := engine.New(store, engine.Options{
			MatchThreshold: cfg.Engine.MatchThreshold,
			HistorySize:    cfg.Engine.HistorySize,
			ChangeEpsilon:  cfg.Engine.ChangeEpsilon,
		})

		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		srv := server.New(cfg, store, eng)
		log.Info().Str("addr", addr).Str("version", Version).Msg("loadout listening")
		return srv.Start(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "HTTP listen address (overrides config)")
}
