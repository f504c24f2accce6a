package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/quirk/internal/sqlite"
)

// configFile is the structure of config.yaml as written by init.
type configFile struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
	OnError string `yaml:"on_error,omitempty"`
}

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the widget store",
		Long: "Create the configuration and data directories, then initialize the widget store.\n" +
			"A --data-dir given here is recorded in config.yaml for later commands.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	configDir, err := a.resolveConfigDir()
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}

	cfg, err := a.storeConfig()
	if err != nil {
		return sysError("%w", err)
	}

	if a.flags.dataDir != "" {
		if err := recordDataDir(filepath.Join(configDir, configFileExt), cfg.DataDir); err != nil {
			return sysError("write config: %w", err)
		}
	}

	store := sqlite.NewBackend()
	if err := store.Attach(cfg); err != nil {
		return sysError("initialize store: %w", err)
	}
	if err := store.Detach(); err != nil {
		return sysError("finalize store: %w", err)
	}

	a.logger.Debug("initialized store", slog.String("data_dir", cfg.DataDir))
	fmt.Fprintln(cmd.OutOrStdout(), "Widget store initialized in", cfg.DataDir)
	return nil
}

// recordDataDir stores dataDir in config.yaml unless the file already names
// a data directory.
func recordDataDir(path, dataDir string) error {
	var cfg configFile
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.DataDir != "" {
		return nil
	}
	if cfg.Backend == "" {
		cfg.Backend = "sqlite"
	}
	cfg.DataDir = dataDir

	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, out, 0o644)
}
