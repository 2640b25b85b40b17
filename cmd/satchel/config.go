// Config loading for the satchel CLI. A config.yaml in the resolved
// config directory can pin the data directory or the individual store
// paths; flags override it.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir    = "data_dir"
	cfgKeyCorpusPath = "corpus_path"
	cfgKeyOrgPath    = "org_path"

	// Store filenames inside the data directory when no explicit path is
	// configured.
	corpusFileName = "corpus.db"
	orgFileName    = "organizer.db"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Satchel CLI configuration

# Data directory holding both store databases
# (optional; overridable by --data-dir flag)
# data_dir:

# Explicit store paths; these win over data_dir when set.
# corpus_path:
# org_path:
`

// loadStoreConfig resolves the config directory, loads config.yaml, and
// derives the two store paths.
func loadStoreConfig() (types.Config, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfigFile(configDir)
	if err != nil {
		return types.Config{}, err
	}

	dataDir, err := resolveDataDir(v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("create data dir: %w", err)
	}

	cfg := types.Config{
		CorpusPath: filepath.Join(dataDir, corpusFileName),
		OrgPath:    filepath.Join(dataDir, orgFileName),
	}
	if p := v.GetString(cfgKeyCorpusPath); p != "" {
		cfg.CorpusPath = p
	}
	if p := v.GetString(cfgKeyOrgPath); p != "" {
		cfg.OrgPath = p
	}
	return cfg, nil
}

// loadConfigFile reads config.yaml with Viper, creating the directory and
// a default file on first run. A missing config.yaml is not an error.
func loadConfigFile(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
