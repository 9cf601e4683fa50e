package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/songsmith/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify songsmith configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/songsmith/config.yaml
Project-specific overrides can be placed in .songsmith.yaml`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		out := cmd.OutOrStdout()
		switch len(args) {
		case 0:
			displayAllConfig(out, cfg)
			return nil
		case 1:
			value, err := getConfigValue(cfg, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, value)
			return nil
		default:
			return setConfigKey(out, cfg, args[0], args[1])
		}
	},
}

// configKeys lists the keys shown by displayAllConfig, in order.
var configKeys = []string{
	"anthropic.api_key",
	"assist.model",
	"assist.max_tokens",
	"assist.use_bedrock",
	"assist.aws_region",
	"assist.aws_profile",
	"defaults.structure",
	"defaults.vocal_mode",
	"defaults.vowel_level",
	"defaults.locale",
	"style.max_length",
	"storage.driver",
	"storage.path",
	"share.base_url",
	"share.max_audio_bytes",
	"catalog.path",
	"catalog.watch",
	"tui.refresh_rate",
	"log.debug",
	"log.path",
}

// displayAllConfig prints all configuration values.
func displayAllConfig(w io.Writer, cfg *config.Config) {
	for _, key := range configKeys {
		value, _ := getConfigValue(cfg, key)
		fmt.Fprintf(w, "%s: %s\n", key, value)
	}
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(w io.Writer, cfg *config.Config, key, value string) error {
	if err := setConfigValue(cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	shown := value
	if strings.EqualFold(key, "anthropic.api_key") {
		shown = config.MaskAPIKey(value)
	}
	printStatus(w, "✓", fmt.Sprintf("Set %s = %s", key, shown), color.FgGreen)
	return nil
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "anthropic.api_key":
		k, err := config.GetAPIKey(cfg)
		if err != nil {
			return "(not set)", nil
		}
		return fmt.Sprintf("%s (%s)", config.MaskAPIKey(k), config.GetAPIKeySource(cfg)), nil
	case "assist.model":
		return cfg.Assist.Model, nil
	case "assist.max_tokens":
		return strconv.Itoa(cfg.Assist.MaxTokens), nil
	case "assist.use_bedrock":
		return strconv.FormatBool(cfg.Assist.UseBedrock), nil
	case "assist.aws_region":
		return cfg.Assist.AWSRegion, nil
	case "assist.aws_profile":
		return cfg.Assist.AWSProfile, nil
	case "defaults.structure":
		return cfg.Defaults.Structure, nil
	case "defaults.vocal_mode":
		return cfg.Defaults.VocalMode, nil
	case "defaults.vowel_level":
		return strconv.Itoa(cfg.Defaults.VowelLevel), nil
	case "defaults.locale":
		return cfg.Defaults.Locale, nil
	case "style.max_length":
		return strconv.Itoa(cfg.Style.MaxLength), nil
	case "storage.driver":
		return cfg.Storage.Driver, nil
	case "storage.path":
		return cfg.StoragePath(), nil
	case "share.base_url":
		return cfg.Share.BaseURL, nil
	case "share.max_audio_bytes":
		return strconv.FormatInt(cfg.Share.MaxAudioBytes, 10), nil
	case "catalog.path":
		return cfg.CatalogPath(), nil
	case "catalog.watch":
		return strconv.FormatBool(cfg.Catalog.Watch), nil
	case "tui.refresh_rate":
		return cfg.TUI.RefreshRate.String(), nil
	case "log.debug":
		return strconv.FormatBool(cfg.Log.Debug), nil
	case "log.path":
		return cfg.LogPath(), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "anthropic.api_key":
		cfg.Anthropic.APIKey = value
	case "assist.model":
		cfg.Assist.Model = value
	case "assist.max_tokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for assist.max_tokens: %w", err)
		}
		cfg.Assist.MaxTokens = n
	case "assist.use_bedrock":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for assist.use_bedrock: %w", err)
		}
		cfg.Assist.UseBedrock = b
	case "assist.aws_region":
		cfg.Assist.AWSRegion = value
	case "assist.aws_profile":
		cfg.Assist.AWSProfile = value
	case "defaults.structure":
		cfg.Defaults.Structure = strings.ToLower(value)
	case "defaults.vocal_mode":
		cfg.Defaults.VocalMode = strings.ToLower(value)
	case "defaults.vowel_level":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for defaults.vowel_level: %w", err)
		}
		cfg.Defaults.VowelLevel = n
	case "defaults.locale":
		cfg.Defaults.Locale = value
	case "style.max_length":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for style.max_length: %w", err)
		}
		cfg.Style.MaxLength = n
	case "storage.driver":
		cfg.Storage.Driver = value
	case "storage.path":
		cfg.Storage.Path = value
	case "share.base_url":
		cfg.Share.BaseURL = value
	case "share.max_audio_bytes":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value for share.max_audio_bytes: %w", err)
		}
		cfg.Share.MaxAudioBytes = n
	case "catalog.path":
		cfg.Catalog.Path = value
	case "catalog.watch":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for catalog.watch: %w", err)
		}
		cfg.Catalog.Watch = b
	case "tui.refresh_rate":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for refresh_rate: %w", err)
		}
		cfg.TUI.RefreshRate = d
	case "log.debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for log.debug: %w", err)
		}
		cfg.Log.Debug = b
	case "log.path":
		cfg.Log.Path = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
