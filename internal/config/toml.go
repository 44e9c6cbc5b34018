// Package config provides configuration helpers and TOML parsing.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// LogLevelEnv overrides the [log] level setting.
const LogLevelEnv = "TUIDLE_LOG_LEVEL"

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
	Log  LogConfig  `toml:"log"`
}

// GameConfig maps play-related settings.
type GameConfig struct {
	Mode       *string `toml:"mode"`
	WordList   *string `toml:"word-list"`
	Dictionary *string `toml:"dictionary"`
	Record     *bool   `toml:"record"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// LoadEnv loads KEY=VALUE pairs from a .env file without overriding variables
// already set. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LogLevel resolves the log level: environment, then config, then fallback.
func (c FileConfig) LogLevel(fallback string) string {
	if v := os.Getenv(LogLevelEnv); v != "" {
		return v
	}
	if c.Log.Level != nil && *c.Log.Level != "" {
		return *c.Log.Level
	}
	return fallback
}
