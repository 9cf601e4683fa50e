package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/songsmith/internal/assist"
	"github.com/ShayCichocki/songsmith/internal/config"
	"github.com/ShayCichocki/songsmith/pkg/models"
)

var (
	enhanceSave bool
	enhanceJSON bool
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance DESCRIPTION...",
	Short: "Draft a style prompt and tags from a description using Claude",
	Long: `Ask Claude for a style prompt and meta tags matching a plain-language
description. Tags are normalized the same way as the tag command.

Requires ANTHROPIC_API_KEY, or assist.use_bedrock with AWS credentials.`,
	Example: `  songsmith enhance "rainy night drive, 80s, melancholic but hopeful"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := openLogger(cfg)
		defer log.Close()

		client, err := newAssistClient(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		enhancer := assist.NewEnhancer(client, cfg.Style.MaxLength, log)
		res, err := enhancer.Enhance(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		in, out := client.Tracker().Total()
		log.Log("[enhance] tokens in=%d out=%d cost=$%.4f", in, out, client.Tracker().Cost())

		if enhanceSave {
			db, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			p := &models.Prompt{Title: res.Title, Style: res.Style, Lyrics: strings.Join(res.Tags, "\n\n")}
			if p.Title == "" {
				p.Title = "Untitled"
			}
			if err := db.CreatePrompt(p); err != nil {
				return err
			}
			printStatus(cmd.ErrOrStderr(), "✓", fmt.Sprintf("Saved %s (%s)", p.Title, shortID(p.ID)), color.FgGreen)
		}

		if enhanceJSON {
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"title": res.Title,
				"style": res.Style,
				"tags":  res.Tags,
			})
		}
		if res.Title != "" {
			fmt.Fprintln(cmd.OutOrStdout(), color.New(color.Bold).Sprint(res.Title))
		}
		if len(res.Tags) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res.Tags, " "))
		}
		return emit(cmd, res.Style)
	},
}

func init() {
	enhanceCmd.Flags().BoolVar(&enhanceSave, "save", false, "Save the result to the library")
	enhanceCmd.Flags().BoolVar(&enhanceJSON, "json", false, "Output in JSON format")
}

func newAssistClient(ctx context.Context, cfg *config.Config) (*assist.Client, error) {
	key := ""
	if !cfg.Assist.UseBedrock {
		k, err := config.GetAPIKey(cfg)
		if errors.Is(err, config.ErrNoAPIKey) {
			return nil, fmt.Errorf("%w\n\nSet ANTHROPIC_API_KEY or run:\n  songsmith config anthropic.api_key <key>", err)
		}
		key = k
	}

	client, err := assist.NewClient(ctx, assist.ClientConfig{
		Model:         cfg.Assist.Model,
		APIKey:        key,
		MaxTokens:     cfg.Assist.MaxTokens,
		UseAWSBedrock: cfg.Assist.UseBedrock,
		AWSRegion:     cfg.Assist.AWSRegion,
		AWSProfile:    cfg.Assist.AWSProfile,
	})
	if err != nil {
		return nil, fmt.Errorf("create API client: %w", err)
	}
	return client, nil
}
