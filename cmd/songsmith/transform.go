package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/songsmith/internal/config"
	"github.com/ShayCichocki/songsmith/internal/style"
	"github.com/ShayCichocki/songsmith/internal/textkit"
	"github.com/ShayCichocki/songsmith/pkg/models"
)

var (
	vowelLevel int
	vowelIndex int

	vocalsBacking string
	vocalsMode    string

	chordsList string
	notesList  string

	tagRules bool

	skeletonList bool

	styleGenres      []string
	styleMoods       []string
	styleInstruments []string
	styleVocal       string
	styleTempo       int
	styleExtra       string
	styleMaxLength   int
)

var vowelCmd = &cobra.Command{
	Use:   "vowel WORD...",
	Short: "Spell a melisma by extending vowels",
	Long: `Extend the first vowel group of each word, e.g. "love" -> "lo-o-ove".

Use --index to extend only one word of a line.`,
	Example: `  songsmith vowel love --level 3
  songsmith vowel "hold me close" --index 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := vowelLevel
		if !cmd.Flags().Changed("level") {
			level = loadConfigOrDefault().Defaults.VowelLevel
		}
		if level > config.MaxVowelLevel {
			return fmt.Errorf("level must be at most %d", config.MaxVowelLevel)
		}
		return emit(cmd, extendVowels(strings.Join(args, " "), level, vowelIndex))
	},
}

var vocalsCmd = &cobra.Command{
	Use:   "vocals MAIN",
	Short: "Combine a lead line with a background vocal",
	Long: `Lay out a lead line and a backing line in parentheses.

Modes:
  echo     lead first, backing after it on the same line
  harmony  backing first
  call     backing on its own line (call and response)`,
	Example: `  songsmith vocals "we run" --backing "run away" --mode call`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := models.VocalMode(vocalsMode)
		if vocalsMode == "" {
			mode = models.VocalMode(loadConfigOrDefault().Defaults.VocalMode)
		}
		if !mode.Valid() {
			return fmt.Errorf("unknown mode %q (want echo, harmony or call)", mode)
		}
		main := ""
		if len(args) == 1 {
			main = args[0]
		}
		return emit(cmd, textkit.FormatBackgroundVocals(main, vocalsBacking, mode))
	},
}

var chordsCmd = &cobra.Command{
	Use:     "chords TEXT...",
	Short:   "Interleave chord symbols with a lyric line",
	Example: `  songsmith chords walking down the empty street --chords "Am, F, C, G"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, textkit.FormatChordLine(strings.Join(args, " "), textkit.ParseSymbols(chordsList)))
	},
}

var notesCmd = &cobra.Command{
	Use:     "notes TEXT...",
	Short:   "Pair each word of a lyric line with a note",
	Example: `  songsmith notes fly me to the moon --notes "C D E"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		notes := strings.Join(textkit.ParseSymbols(notesList), " ")
		return emit(cmd, textkit.InterleaveNotes(strings.Join(args, " "), notes))
	},
}

var tagCmd = &cobra.Command{
	Use:   "tag [TEXT...]",
	Short: "Normalize section descriptions into meta tags",
	Long: `Map free-form descriptions to canonical bracketed meta tags.

Each argument becomes one tag. With no arguments, each line of stdin
becomes one tag.`,
	Example: `  songsmith tag "slow fade" "guitar solo please"
  printf "intro\nbig drop\n" | songsmith tag`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tagRules {
			printTagRules(cmd.OutOrStdout())
			return nil
		}
		var input string
		if len(args) > 0 {
			input = strings.Join(args, "\n")
		} else {
			data, err := readLines(cmd.InOrStdin())
			if err != nil {
				return err
			}
			input = data
		}
		return emit(cmd, textkit.OptimizeTagList(input))
	},
}

var skeletonCmd = &cobra.Command{
	Use:     "skeleton [TYPE]",
	Short:   "Print a section skeleton for a song structure",
	Example: `  songsmith skeleton electronic`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if skeletonList {
			for _, t := range textkit.StructureTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		}
		t := models.StructureType(loadConfigOrDefault().Defaults.Structure)
		if len(args) == 1 {
			t = models.StructureType(strings.ToLower(args[0]))
		}
		return emit(cmd, textkit.GenerateStructureSkeleton(t))
	},
}

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Assemble a style prompt",
	Example: `  songsmith style --genre synthwave --mood nostalgic --instrument "analog synth" \
    --vocal "airy female vocals" --tempo 96`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		maxLen := styleMaxLength
		if !cmd.Flags().Changed("max-length") {
			maxLen = loadConfigOrDefault().Style.MaxLength
		}
		spec := style.Spec{
			Genres:      styleGenres,
			Moods:       styleMoods,
			Instruments: styleInstruments,
			Vocal:       styleVocal,
			Tempo:       styleTempo,
			Extra:       styleExtra,
		}
		prompt := style.Build(spec, maxLen)
		if prompt == "" {
			return fmt.Errorf("nothing to build: pass at least one of --genre, --mood, --instrument, --vocal, --tempo or --extra")
		}
		return emit(cmd, prompt)
	},
}

func init() {
	vowelCmd.Flags().IntVarP(&vowelLevel, "level", "l", 2, "Number of extra vowel repetitions")
	vowelCmd.Flags().IntVarP(&vowelIndex, "index", "i", -1, "Extend only the word at this index (0-based)")

	vocalsCmd.Flags().StringVarP(&vocalsBacking, "backing", "b", "", "Backing vocal line")
	vocalsCmd.Flags().StringVarP(&vocalsMode, "mode", "m", "", "Layout: echo, harmony or call")

	chordsCmd.Flags().StringVarP(&chordsList, "chords", "c", "", "Chord symbols, comma or space separated")
	notesCmd.Flags().StringVarP(&notesList, "notes", "n", "", "Note symbols, comma or space separated")

	tagCmd.Flags().BoolVar(&tagRules, "rules", false, "List the tag rules instead")

	skeletonCmd.Flags().BoolVar(&skeletonList, "list", false, "List structure types")

	styleCmd.Flags().StringSliceVarP(&styleGenres, "genre", "g", nil, "Genre (repeatable or comma separated)")
	styleCmd.Flags().StringSliceVarP(&styleMoods, "mood", "m", nil, "Mood (repeatable or comma separated)")
	styleCmd.Flags().StringSliceVarP(&styleInstruments, "instrument", "i", nil, "Instrument (repeatable or comma separated)")
	styleCmd.Flags().StringVar(&styleVocal, "vocal", "", "Vocal style")
	styleCmd.Flags().IntVar(&styleTempo, "tempo", 0, "Tempo in bpm")
	styleCmd.Flags().StringVar(&styleExtra, "extra", "", "Free text appended to the prompt")
	styleCmd.Flags().IntVar(&styleMaxLength, "max-length", 0, "Drop trailing entries beyond this many characters (0 = no limit)")
}

// extendVowels extends every word, or only the word at index when index >= 0.
func extendVowels(line string, level, index int) string {
	if index >= 0 {
		return textkit.ExtendWordAt(line, index, level)
	}
	return textkit.ExtendLine(line, level)
}

func readLines(r io.Reader) (string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.Join(lines, "\n"), nil
}

func printTagRules(w io.Writer) {
	for _, r := range textkit.Rules() {
		var match []string
		if len(r.All) > 0 {
			match = append(match, "all of "+strings.Join(r.All, ", "))
		}
		if len(r.Any) > 0 {
			match = append(match, "any of "+strings.Join(r.Any, ", "))
		}
		fmt.Fprintf(w, "%-12s %-28s %s\n", r.Category, r.Tag, strings.Join(match, "; "))
	}
}
