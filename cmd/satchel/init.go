package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// effectiveConfig is the resolved configuration printed by init.
type effectiveConfig struct {
	ConfigDir  string `yaml:"config_dir"`
	CorpusPath string `yaml:"corpus_path"`
	OrgPath    string `yaml:"org_path"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the satchel stores",
	Long: `Init creates the configuration directory, a default config.yaml, and
both store databases with their schema applied. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The stores are already open: the root pre-run created the
		// config and applied both schemas. Report where things landed.
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		eff := effectiveConfig{
			ConfigDir:  configDir,
			CorpusPath: storeConfig.CorpusPath,
			OrgPath:    storeConfig.OrgPath,
		}
		out, err := yaml.Marshal(&eff)
		if err != nil {
			return err
		}
		fmt.Println("Satchel initialized")
		fmt.Print(string(out))
		return nil
	},
}
