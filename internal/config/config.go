package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/loomcms/cli/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	// All operations must happen to the configuration file,
	// so they must operate on separate Viper instances.
	v *viper.Viper

	LogLevel           logger.LogLevel `mapstructure:"log_level" json:"log_level"`
	DisableUpdateCheck bool            `mapstructure:"disable_update_check" json:"disable_update_check"`
}

func newConfigViper() (*viper.Viper, error) {
	v := viper.New()

	dir, err := GetLoomConfigDir()
	if err != nil {
		return nil, err
	}

	// Bind to environment variables of the same name
	v.SetEnvPrefix("LOOM_CLI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := filepath.Join(dir, "config.json")
	v.SetConfigFile(configFile)
	v.SetConfigType("json")

	// Defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("disable_update_check", false)

	return v, nil
}

func LoadConfig() (*Config, error) {
	v, err := newConfigViper()
	if err != nil {
		return nil, err
	}

	cfg := Config{v: v}

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := v.Unmarshal(&cfg); err != nil {
				return nil, err
			}

			return &cfg, nil
		}

		return nil, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case logger.LogLevelDebug, logger.LogLevelInfo:
		return nil
	default:
		return fmt.Errorf("invalid log level: %v", c.LogLevel)
	}
}

func (c *Config) Save() error {
	c.v.Set("log_level", c.LogLevel)
	c.v.Set("disable_update_check", c.DisableUpdateCheck)

	return c.v.WriteConfig()
}

// GetLoomConfigDir returns the path to the loom config directory
func GetLoomConfigDir() (string, error) {
	homeDir, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "loom"), nil
}

// userHomeDir returns the home directory of the original user
// (the user who invoked the command, not the effective user when running with sudo).
// This ensures that config files work both with and without sudo.
func userHomeDir() (string, error) {
	// SUDO_USER contains the original user when running under sudo
	sudoUser := os.Getenv("SUDO_USER")
	if sudoUser != "" {
		u, err := user.Lookup(sudoUser)
		if err != nil {
			return "", fmt.Errorf("failed to lookup original user %s: %w", sudoUser, err)
		}
		return u.HomeDir, nil
	}

	return os.UserHomeDir()
}
