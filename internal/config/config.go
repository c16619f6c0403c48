package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath = "COMMITCHAT_CONFIG"
	fileName      = "config.yaml"
	appDir        = "commitchat"
)

// Config holds the user settings. Values from the config file are overridden
// by command line flags.
type Config struct {
	LogLevel       string `yaml:"log_level"`
	CopyOnFinish   bool   `yaml:"copy_on_finish"`
	CommitOnFinish bool   `yaml:"commit_on_finish"`
	Plain          bool   `yaml:"plain"`
	Transcript     string `yaml:"transcript"`
}

func Default() Config {
	return Config{LogLevel: zerolog.InfoLevel.String()}
}

// Path returns the config file location: $COMMITCHAT_CONFIG, or
// commitchat/config.yaml under the user config dir.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel; an empty value means info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
