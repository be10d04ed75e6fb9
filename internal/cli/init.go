package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	LogLevel string `yaml:"log_level"`
	JSON     bool   `yaml:"json"`
}

func newInitCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the shelf configuration directory and config.yaml",
		Long: `Create the configuration directory and write config.yaml with the
effective settings if the file does not exist yet. Running init again leaves
an existing config.yaml untouched.`,
		Args: cobra.NoArgs,
		RunE: s.runInit,
	}
}

func (s *session) runInit(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	configPath := filepath.Join(s.configDir, configFileExt)
	created, err := writeConfigIfMissing(configPath, s.config)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	s.logger.Info("init", "config", configPath, "created", created)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Shelf initialized successfully")
	fmt.Fprintln(out, "  config:", configPath)
	return nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. If it already exists, it is left alone and created is false.
func writeConfigIfMissing(path string, cfg types.Config) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		Backend:  cfg.Backend,
		LogLevel: cfg.LogLevel,
		JSON:     cfg.JSON,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
