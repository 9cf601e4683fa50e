// Package config handles configuration loading and management for songsmith.
// It supports XDG config paths, project-level overrides, .env files and
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ShayCichocki/songsmith/pkg/models"
)

const appName = "songsmith"

// Config holds all configuration for songsmith.
type Config struct {
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Assist    AssistConfig    `mapstructure:"assist"`
	Defaults  DefaultsConfig  `mapstructure:"defaults"`
	Style     StyleConfig     `mapstructure:"style"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Share     ShareConfig     `mapstructure:"share"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	TUI       TUIConfig       `mapstructure:"tui"`
	Log       LogConfig       `mapstructure:"log"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// AssistConfig holds settings for the style-prompt enhancer.
type AssistConfig struct {
	Model      string `mapstructure:"model"`
	MaxTokens  int    `mapstructure:"max_tokens"`
	UseBedrock bool   `mapstructure:"use_bedrock"`
	AWSRegion  string `mapstructure:"aws_region"`
	AWSProfile string `mapstructure:"aws_profile"`
}

// DefaultsConfig holds the initial selector values for the tools.
type DefaultsConfig struct {
	Structure  string `mapstructure:"structure"`
	VocalMode  string `mapstructure:"vocal_mode"`
	VowelLevel int    `mapstructure:"vowel_level"`
	Locale     string `mapstructure:"locale"`
}

// StyleConfig holds style prompt settings.
type StyleConfig struct {
	// MaxLength caps the style prompt; 0 disables the cap.
	MaxLength int `mapstructure:"max_length"`
}

// StorageConfig selects the library database.
type StorageConfig struct {
	// Driver is "sqlite" (pure Go) or "sqlite3" (cgo).
	Driver string `mapstructure:"driver"`
	// Path overrides the default database location.
	Path string `mapstructure:"path"`
}

// ShareConfig holds share-link settings.
type ShareConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	MaxAudioBytes int64  `mapstructure:"max_audio_bytes"`
}

// CatalogConfig points at the user's catalog extension file.
type CatalogConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// TUIConfig holds TUI display settings.
type TUIConfig struct {
	RefreshRate time.Duration `mapstructure:"refresh_rate"`
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Path  string `mapstructure:"path"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (ANTHROPIC_API_KEY, SONGSMITH_*), including a .env file
// 2. Project config (.songsmith.yaml in current directory or parent)
// 3. User config (~/.config/songsmith/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	bindEnv(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(userConfigDir, "config.yaml"))

	v.Set("anthropic.api_key", cfg.Anthropic.APIKey)
	v.Set("assist.model", cfg.Assist.Model)
	v.Set("assist.max_tokens", cfg.Assist.MaxTokens)
	v.Set("assist.use_bedrock", cfg.Assist.UseBedrock)
	v.Set("assist.aws_region", cfg.Assist.AWSRegion)
	v.Set("assist.aws_profile", cfg.Assist.AWSProfile)
	v.Set("defaults.structure", cfg.Defaults.Structure)
	v.Set("defaults.vocal_mode", cfg.Defaults.VocalMode)
	v.Set("defaults.vowel_level", cfg.Defaults.VowelLevel)
	v.Set("defaults.locale", cfg.Defaults.Locale)
	v.Set("style.max_length", cfg.Style.MaxLength)
	v.Set("storage.driver", cfg.Storage.Driver)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("share.base_url", cfg.Share.BaseURL)
	v.Set("share.max_audio_bytes", cfg.Share.MaxAudioBytes)
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("catalog.watch", cfg.Catalog.Watch)
	v.Set("tui.refresh_rate", cfg.TUI.RefreshRate.String())
	v.Set("log.debug", cfg.Log.Debug)
	v.Set("log.path", cfg.Log.Path)

	return v.WriteConfig()
}

// Validate checks enum-like settings.
func (c *Config) Validate() error {
	if !models.StructureType(c.Defaults.Structure).Valid() {
		return fmt.Errorf("defaults.structure: unknown structure %q", c.Defaults.Structure)
	}
	if !models.VocalMode(c.Defaults.VocalMode).Valid() {
		return fmt.Errorf("defaults.vocal_mode: unknown mode %q", c.Defaults.VocalMode)
	}
	if c.Defaults.VowelLevel < 0 || c.Defaults.VowelLevel > MaxVowelLevel {
		return fmt.Errorf("defaults.vowel_level: must be between 0 and %d", MaxVowelLevel)
	}
	switch c.Storage.Driver {
	case "sqlite", "sqlite3":
	default:
		return fmt.Errorf("storage.driver: expected sqlite or sqlite3, got %q", c.Storage.Driver)
	}
	if c.Style.MaxLength < 0 {
		return fmt.Errorf("style.max_length: must not be negative")
	}
	return nil
}

// MaxVowelLevel bounds the melisma level offered by the tools.
const MaxVowelLevel = 8

// StoragePath returns the configured database path or the XDG default.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(getDataDir(), appName+".db")
}

// CatalogPath returns the user catalog file path.
func (c *Config) CatalogPath() string {
	if c.Catalog.Path != "" {
		return c.Catalog.Path
	}
	return filepath.Join(getUserConfigDir(), "catalog.yaml")
}

// LogPath returns the debug log path.
func (c *Config) LogPath() string {
	if c.Log.Path != "" {
		return c.Log.Path
	}
	return filepath.Join(getDataDir(), "logs", "debug.log")
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("anthropic.api_key", "")

	v.SetDefault("assist.model", "claude-sonnet-4-20250514")
	v.SetDefault("assist.max_tokens", 1024)
	v.SetDefault("assist.use_bedrock", false)
	v.SetDefault("assist.aws_region", "")
	v.SetDefault("assist.aws_profile", "")

	v.SetDefault("defaults.structure", string(models.StructurePop))
	v.SetDefault("defaults.vocal_mode", string(models.VocalEcho))
	v.SetDefault("defaults.vowel_level", 2)
	v.SetDefault("defaults.locale", "en")

	v.SetDefault("style.max_length", 1000)

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.path", "")

	v.SetDefault("share.base_url", "https://songsmith.app/s")
	v.SetDefault("share.max_audio_bytes", 8<<20)

	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.watch", true)

	v.SetDefault("tui.refresh_rate", "100ms")

	v.SetDefault("log.debug", false)
	v.SetDefault("log.path", "")
}

// bindEnv maps SONGSMITH_<SECTION>_<KEY> onto every config key, plus the
// conventional ANTHROPIC_API_KEY.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("SONGSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY", "SONGSMITH_ANTHROPIC_API_KEY")
}

// getUserConfigDir returns the XDG config directory for songsmith.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", appName)
	}
	return filepath.Join(home, ".config", appName)
}

// getDataDir returns the XDG data directory for songsmith.
func getDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, appName)
}

// findProjectConfig searches for .songsmith.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, "."+appName+".yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandEnv expands ${VAR} references in a string.
func expandEnv(s string) string {
	return os.ExpandEnv(s)
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Assist: AssistConfig{
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 1024,
		},
		Defaults: DefaultsConfig{
			Structure:  string(models.StructurePop),
			VocalMode:  string(models.VocalEcho),
			VowelLevel: 2,
			Locale:     "en",
		},
		Style: StyleConfig{
			MaxLength: 1000,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
		},
		Share: ShareConfig{
			BaseURL:       "https://songsmith.app/s",
			MaxAudioBytes: 8 << 20,
		},
		Catalog: CatalogConfig{
			Watch: true,
		},
		TUI: TUIConfig{
			RefreshRate: 100 * time.Millisecond,
		},
	}
}
