package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/songsmith/internal/state"
	"github.com/ShayCichocki/songsmith/pkg/models"
)

var (
	libraryLimit     int
	libraryJSON      bool
	libraryTitle     string
	libraryStyle     string
	libraryLyrics    string
	libraryTags      []string
	libraryOlderThan time.Duration
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage saved prompts",
	Long: `List, show, save, search and delete prompts in the local library.

Prompts are stored in ~/.local/share/songsmith/songsmith.db unless
storage.path is set. IDs can be shortened to any unique prefix.`,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved prompts, newest first",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, db *state.DB, args []string) error {
		prompts, err := db.ListPrompts(libraryLimit)
		if err != nil {
			return err
		}
		return printPrompts(cmd.OutOrStdout(), prompts, libraryJSON)
	}),
}

var librarySearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search titles, styles, lyrics and tags",
	Args:  cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, db *state.DB, args []string) error {
		prompts, err := db.SearchPrompts(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printPrompts(cmd.OutOrStdout(), prompts, libraryJSON)
	}),
}

var libraryShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a saved prompt",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, db *state.DB, args []string) error {
		p, err := findPrompt(db, args[0])
		if err != nil {
			return err
		}
		return printPrompt(cmd.OutOrStdout(), p, libraryJSON)
	}),
}

var librarySaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a style prompt and/or lyric sheet",
	Long: `Save a prompt to the library.

--lyrics takes a file path; use "-" to read the lyric sheet from stdin.`,
	Example: `  songsmith library save --title "Neon Rain" --style "synthwave, 96 bpm" --lyrics song.txt`,
	Args:    cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, db *state.DB, args []string) error {
		lyrics, err := readLyrics(cmd.InOrStdin(), libraryLyrics)
		if err != nil {
			return err
		}
		p := &models.Prompt{
			Title:  libraryTitle,
			Style:  strings.TrimSpace(libraryStyle),
			Lyrics: lyrics,
			Tags:   libraryTags,
		}
		if p.Style == "" && p.Lyrics == "" {
			return fmt.Errorf("nothing to save: pass --style and/or --lyrics")
		}
		if p.Title == "" {
			p.Title = "Untitled"
		}
		if err := db.CreatePrompt(p); err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), "✓", fmt.Sprintf("Saved %s (%s)", p.Title, shortID(p.ID)), color.FgGreen)
		return nil
	}),
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a saved prompt",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, db *state.DB, args []string) error {
		p, err := findPrompt(db, args[0])
		if err != nil {
			return err
		}
		if err := db.DeletePrompt(p.ID); err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), "✓", fmt.Sprintf("Deleted %s", p.Title), color.FgGreen)
		return nil
	}),
}

var libraryPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete prompts not updated recently",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, db *state.DB, args []string) error {
		n, err := db.PurgeOldPrompts(libraryOlderThan)
		if err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), "✓", fmt.Sprintf("Purged %d prompt(s)", n), color.FgGreen)
		return nil
	}),
}

func init() {
	libraryCmd.PersistentFlags().BoolVar(&libraryJSON, "json", false, "Output in JSON format")
	libraryListCmd.Flags().IntVarP(&libraryLimit, "limit", "n", 20, "Maximum prompts to list (0 = all)")

	librarySaveCmd.Flags().StringVarP(&libraryTitle, "title", "t", "", "Prompt title")
	librarySaveCmd.Flags().StringVarP(&libraryStyle, "style", "s", "", "Style prompt")
	librarySaveCmd.Flags().StringVarP(&libraryLyrics, "lyrics", "l", "", "Lyric sheet file, or - for stdin")
	librarySaveCmd.Flags().StringSliceVar(&libraryTags, "tag", nil, "Label for searching (repeatable)")

	libraryPurgeCmd.Flags().DurationVar(&libraryOlderThan, "older-than", 90*24*time.Hour, "Age cutoff")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySearchCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(librarySaveCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
	libraryCmd.AddCommand(libraryPurgeCmd)
}

// withStore opens the library around a command.
func withStore(fn func(cmd *cobra.Command, db *state.DB, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := openLogger(cfg)
		defer log.Close()

		db, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		return fn(cmd, db, args)
	}
}

func findPrompt(db *state.DB, id string) (*models.Prompt, error) {
	p, err := db.FindPrompt(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", state.ErrNotFound, id)
	}
	return p, nil
}

func readLyrics(stdin io.Reader, source string) (string, error) {
	switch source {
	case "":
		return "", nil
	case "-":
		return readLines(stdin)
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return "", fmt.Errorf("read lyrics: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printPrompts(w io.Writer, prompts []models.Prompt, asJSON bool) error {
	if asJSON {
		if prompts == nil {
			prompts = []models.Prompt{}
		}
		return writeJSON(w, prompts)
	}
	if len(prompts) == 0 {
		fmt.Fprintln(w, "No prompts saved yet.")
		return nil
	}
	for _, p := range prompts {
		fmt.Fprintf(w, "%s  %-6s  %-32s  %s\n",
			shortID(p.ID), p.Kind, truncate(p.Title, 32), p.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printPrompt(w io.Writer, p *models.Prompt, asJSON bool) error {
	if asJSON {
		return writeJSON(w, p)
	}
	bold := color.New(color.Bold)
	fmt.Fprintf(w, "%s %s\n", bold.Sprint(p.Title), color.New(color.Faint).Sprint(p.ID))
	fmt.Fprintf(w, "Kind:    %s\n", p.Kind)
	fmt.Fprintf(w, "Updated: %s\n", p.UpdatedAt.Local().Format(time.RFC1123))
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "Tags:    %s\n", strings.Join(p.Tags, ", "))
	}
	if p.Style != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", bold.Sprint("Style"), p.Style)
	}
	if p.Lyrics != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", bold.Sprint("Lyrics"), p.Lyrics)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
