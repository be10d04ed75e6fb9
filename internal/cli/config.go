// Config loading for the shelf CLI.
package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix namespaces environment overrides, e.g. SHELF_BACKEND.
	envPrefix = "SHELF"

	// dotEnvFile is loaded from the working directory when present.
	dotEnvFile = ".env"
)

// Config keys, shared by config.yaml, the environment and flags.
const (
	cfgKeyBackend  = "backend"
	cfgKeyLogLevel = "log_level"
	cfgKeyJSON     = "json"
)

// flagForKey maps config keys to the persistent flag that overrides them.
var flagForKey = map[string]string{
	cfgKeyBackend:  "backend",
	cfgKeyLogLevel: "log-level",
	cfgKeyJSON:     "json",
}

// loadDotEnv copies variables from a .env file into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// loadConfig resolves the effective configuration using Viper with the
// precedence flag > SHELF_* env > config.yaml in configDir > defaults.
// A missing config.yaml is not an error.
func loadConfig(cmd *cobra.Command, configDir string) (types.Config, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyJSON, def.JSON)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for key, name := range flagForKey {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return types.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Backend:  v.GetString(cfgKeyBackend),
		LogLevel: v.GetString(cfgKeyLogLevel),
		JSON:     v.GetBool(cfgKeyJSON),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
