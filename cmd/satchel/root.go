// Root command: flag wiring and store lifecycle. The stores are opened
// once in PersistentPreRunE and closed in PersistentPostRunE so every
// subcommand works against the same pair of handles.
package main

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/paths"
	"github.com/mesh-intelligence/satchel/pkg/satchel"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// stores is the process-wide handle pair, set by the root pre-run.
var stores *satchel.Stores

// storeConfig is the resolved store configuration, kept for reporting.
var storeConfig types.Config

// logger backs the stores; a no-op unless --verbose.
var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:     "satchel",
	Short:   "Satchel organizes a curated notes corpus into tasks, ideas, and projects",
	Version: satchel.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version needs no stores.
		if cmd.Name() == "version" {
			return nil
		}

		cfg, err := loadStoreConfig()
		if err != nil {
			return err
		}
		storeConfig = cfg

		logger = zap.NewNop()
		if flagVerbose {
			if logger, err = zap.NewDevelopment(); err != nil {
				return err
			}
		}

		stores, err = satchel.Open(cfg, logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if stores == nil {
			return nil
		}
		return stores.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory holding the store databases (default: $(CWD)/.satchel-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(choreCmd)
	rootCmd.AddCommand(ideaCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(corpusCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(unlinkCmd)
	rootCmd.AddCommand(attachCmd)
}

func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

func resolveDataDir(configValue string) (string, error) {
	return paths.ResolveDataDir(flagDataDir, configValue)
}
