package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/songsmith/internal/share"
	"github.com/ShayCichocki/songsmith/pkg/models"
)

var (
	shareTitle  string
	shareStyle  string
	shareLyrics string
	shareID     string
	shareAudio  string
	shareJSON   bool
	shareSave   bool
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode and decode share links",
	Long: `Share links carry a title, style prompt, lyric sheet and optional audio
reference compressed into the URL fragment, so nothing is uploaded.`,
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build a share link",
	Example: `  songsmith share encode --style "lofi, chill" --lyrics song.txt
  songsmith share encode --id 3f2a`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := openLogger(cfg)
		defer log.Close()

		var p share.Payload
		if shareID != "" {
			db, err := openStore(cfg)
			if err != nil {
				return err
			}
			saved, err := findPrompt(db, shareID)
			db.Close()
			if err != nil {
				return err
			}
			p = share.Payload{Title: saved.Title, Style: saved.Style, Lyrics: saved.Lyrics}
		}
		if shareTitle != "" {
			p.Title = shareTitle
		}
		if shareStyle != "" {
			p.Style = shareStyle
		}
		if shareLyrics != "" {
			lyrics, err := readLyrics(cmd.InOrStdin(), shareLyrics)
			if err != nil {
				return err
			}
			p.Lyrics = lyrics
		}
		if shareAudio != "" {
			uri, err := share.EncodeAudio(shareAudio, cfg.Share.MaxAudioBytes)
			if err != nil {
				return err
			}
			p.Audio = uri
		}
		if p.Empty() {
			return fmt.Errorf("nothing to share: pass --id, --style, --lyrics or --audio")
		}

		w := share.NewWorker(cfg.Share.BaseURL, log)
		res := <-w.Encode(cmd.Context(), p)
		if res.Err != nil {
			return res.Err
		}
		return emit(cmd, res.Link)
	},
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode LINK",
	Short: "Show the contents of a share link or code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := openLogger(cfg)
		defer log.Close()

		w := share.NewWorker(cfg.Share.BaseURL, log)
		res := <-w.Decode(cmd.Context(), args[0])
		if res.Err != nil {
			return res.Err
		}
		p := res.Payload

		if shareSave {
			db, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			saved := payloadPrompt(p)
			if err := db.CreatePrompt(saved); err != nil {
				return err
			}
			printStatus(cmd.ErrOrStderr(), "✓", fmt.Sprintf("Saved %s (%s)", saved.Title, shortID(saved.ID)), color.FgGreen)
		}

		if shareJSON {
			return writeJSON(cmd.OutOrStdout(), p)
		}
		printPayload(cmd, p)
		return nil
	},
}

func init() {
	shareEncodeCmd.Flags().StringVarP(&shareTitle, "title", "t", "", "Title")
	shareEncodeCmd.Flags().StringVarP(&shareStyle, "style", "s", "", "Style prompt")
	shareEncodeCmd.Flags().StringVarP(&shareLyrics, "lyrics", "l", "", "Lyric sheet file, or - for stdin")
	shareEncodeCmd.Flags().StringVar(&shareID, "id", "", "Share a saved prompt by ID or prefix")
	shareEncodeCmd.Flags().StringVar(&shareAudio, "audio", "", "Attach an audio reference file")

	shareDecodeCmd.Flags().BoolVar(&shareJSON, "json", false, "Output in JSON format")
	shareDecodeCmd.Flags().BoolVar(&shareSave, "save", false, "Save the decoded prompt to the library")

	shareCmd.AddCommand(shareEncodeCmd)
	shareCmd.AddCommand(shareDecodeCmd)
}

func printPayload(cmd *cobra.Command, p share.Payload) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	if p.Title != "" {
		fmt.Fprintln(out, bold.Sprint(p.Title))
	}
	if p.Style != "" {
		fmt.Fprintf(out, "\n%s\n%s\n", bold.Sprint("Style"), p.Style)
	}
	if p.Lyrics != "" {
		fmt.Fprintf(out, "\n%s\n%s\n", bold.Sprint("Lyrics"), p.Lyrics)
	}
	if p.Audio != "" {
		mime, _, _ := strings.Cut(strings.TrimPrefix(p.Audio, "data:"), ";")
		fmt.Fprintf(out, "\n%s %s, %d bytes encoded\n", bold.Sprint("Audio"), mime, len(p.Audio))
	}
}

// payloadPrompt turns a decoded share payload into a library prompt.
func payloadPrompt(p share.Payload) *models.Prompt {
	title := p.Title
	if title == "" {
		title = "Shared prompt"
	}
	return &models.Prompt{Title: title, Style: p.Style, Lyrics: p.Lyrics, Tags: []string{"shared"}}
}
