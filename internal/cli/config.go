package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/quirk/internal/paths"
	"github.com/mesh-intelligence/quirk/pkg/quirk"
	"github.com/mesh-intelligence/quirk/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"
	cfgKeyOnError = "on_error"
)

// Values accepted for on_error.
const (
	onErrorLog    = "log"
	onErrorStrict = "strict"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# quirk CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# What a rejected property assignment does:
#   log    - log it and keep applying (default)
#   strict - stop and exit with an error
on_error: log
`

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyOnError, onErrorLog)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates config.yaml if it does not exist.
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

func (a *app) resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(a.flags.configDir)
}

func (a *app) resolveDataDir() (string, error) {
	var fromConfig string
	if a.config != nil {
		fromConfig = a.config.GetString(cfgKeyDataDir)
	}
	return paths.ResolveDataDir(a.flags.dataDir, fromConfig)
}

// storeConfig builds the Store config from config.yaml and flags.
func (a *app) storeConfig() (types.Config, error) {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return types.Config{
		Backend: a.config.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}, nil
}

// errorHandler returns the quirk Handler selected by on_error.
func (a *app) errorHandler() (quirk.Handler, error) {
	switch mode := a.config.GetString(cfgKeyOnError); mode {
	case onErrorLog, "":
		return quirk.NewLogHandler(a.logger), nil
	case onErrorStrict:
		return quirk.StrictHandler, nil
	default:
		return nil, fmt.Errorf("unknown on_error value %q (valid: %s, %s)", mode, onErrorLog, onErrorStrict)
	}
}
