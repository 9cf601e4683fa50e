package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/songsmith/internal/config"
	"github.com/ShayCichocki/songsmith/internal/debuglog"
	"github.com/ShayCichocki/songsmith/internal/state"
)

var (
	debugFlag bool
	copyFlag  bool
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

var rootCmd = &cobra.Command{
	Use:   "songsmith",
	Short: "Prompt studio for AI music generation",
	Long: `songsmith assembles style prompts and lyric sheets for AI music
generators and applies small text transforms to lyrics: melisma vowel
extension, background vocal layouts, chord and note interleaving, meta tag
normalization and song structure skeletons.

With no arguments, launches the interactive studio.

Every transform is also available as a subcommand, and results can be
saved to a local library or exchanged as share links.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudio()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write a debug log")
	rootCmd.PersistentFlags().BoolVar(&copyFlag, "copy", false, "Copy the result to the clipboard")

	rootCmd.AddCommand(vowelCmd)
	rootCmd.AddCommand(vocalsCmd)
	rootCmd.AddCommand(chordsCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(skeletonCmd)
	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadConfigOrDefault is used by transform commands, which work without a
// config file.
func loadConfigOrDefault() *config.Config {
	cfg, err := loadConfig()
	if err != nil {
		printStatus(os.Stderr, "⚠", err.Error()+" (using defaults)", color.FgYellow)
		return config.Default()
	}
	return cfg
}

// openLogger installs the debug logger when --debug or log.debug is set.
func openLogger(cfg *config.Config) *debuglog.Logger {
	if !debugFlag && !cfg.Log.Debug {
		return debuglog.Nop()
	}
	l, err := debuglog.New(cfg.LogPath(), "songsmith")
	if err != nil {
		printStatus(os.Stderr, "⚠", fmt.Sprintf("debug log disabled: %v", err), color.FgYellow)
		return debuglog.Nop()
	}
	debuglog.SetDefault(l)
	return l
}

// openStore opens the library database and applies migrations.
func openStore(cfg *config.Config) (*state.DB, error) {
	db, err := state.OpenMigrated(cfg.Storage.Driver, cfg.StoragePath())
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	return db, nil
}

// emit writes a result and copies it when --copy is set.
func emit(cmd *cobra.Command, text string) error {
	fmt.Fprintln(cmd.OutOrStdout(), text)
	if !copyFlag {
		return nil
	}
	if err := copyToClipboard(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	printStatus(cmd.ErrOrStderr(), "✓", "Copied to clipboard", color.FgGreen)
	return nil
}

// printStatus prints a status line with color
func printStatus(w io.Writer, symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Fprintf(w, "%s %s\n", c.Sprint(symbol), message)
}
