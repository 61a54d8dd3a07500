// Package cli provides the command-line interface for loadout.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loadout-gg/loadout/internal/config"
	"github.com/loadout-gg/loadout/internal/logging"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	cfgPath  string
	cfg      *config.Config
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "loadout",
	Short: "Build and profile detection for OCR'd game state",
	Long: `Loadout scores attribute sets parsed from OCR text against configured
category catalogs, ranks candidate profiles, and tracks recent detections.

Catalogs are plain files: a YAML pattern catalog and a JSON profile catalog,
both layered over sensible built-ins.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", cfgPath, err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config %s: %w", cfgPath, err)
		}
		closeLog, err = logging.Setup(cfg.Logging)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeLog != nil {
			closeLog()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "loadout.yaml", "path to config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(catalogCmd)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
