/*
Package config manages TOML config for the tokenflow engine.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/AlexanderKh/tokenflow/internal/utils"
	"github.com/AlexanderKh/tokenflow/pkg/suggest"
)

// Config holds the entire config structure
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Vocab  VocabConfig  `toml:"vocab"`
	Server ServerConfig `toml:"server"`
}

// EditorConfig has the trigger and suggestion list options.
type EditorConfig struct {
	Trigger        string `toml:"trigger"`
	MaxSuggestions int    `toml:"max_suggestions"`
}

// VocabConfig holds the candidate vocabulary, in relevance order.
type VocabConfig struct {
	Words []string `toml:"words"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxPartial int  `toml:"max_partial"`
	Greeting   bool `toml:"greeting"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			Trigger:        "<>",
			MaxSuggestions: suggest.DefaultLimit,
		},
		Vocab: VocabConfig{
			Words: suggest.DefaultVocabulary(),
		},
		Server: ServerConfig{
			MaxPartial: 60,
			Greeting:   true,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/tokenflow
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execPath, execErr := os.Executable()
		if execErr != nil {
			return "", execErr
		}
		return filepath.Dir(execPath), nil
	}
	return filepath.Join(homeDir, ".config", "tokenflow"), nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/tokenflow/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); err != nil {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file. Missing keys keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, err
	}
	config.Validate()
	return config, nil
}

// SaveConfig writes the config as TOML.
func SaveConfig(config *Config, configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(config)
}

// Validate clamps nonsense values back to defaults, warning about each.
func (c *Config) Validate() {
	def := DefaultConfig()

	if !utils.IsValidTrigger(c.Editor.Trigger) {
		log.Warnf("Invalid trigger %q, using default %q", c.Editor.Trigger, def.Editor.Trigger)
		c.Editor.Trigger = def.Editor.Trigger
	}
	if c.Editor.MaxSuggestions <= 0 {
		log.Warnf("Invalid max_suggestions %d, using default %d", c.Editor.MaxSuggestions, def.Editor.MaxSuggestions)
		c.Editor.MaxSuggestions = def.Editor.MaxSuggestions
	}
	if len(c.Vocab.Words) == 0 {
		c.Vocab.Words = def.Vocab.Words
	}
	if c.Server.MaxPartial <= 0 {
		c.Server.MaxPartial = def.Server.MaxPartial
	}
}
