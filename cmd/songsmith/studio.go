package main

import (
	"context"
	"fmt"

	"github.com/ShayCichocki/songsmith/internal/catalog"
	"github.com/ShayCichocki/songsmith/internal/i18n"
	"github.com/ShayCichocki/songsmith/internal/tui"
	"github.com/ShayCichocki/songsmith/pkg/models"
)

// runStudio launches the interactive studio.
func runStudio() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := openLogger(cfg)
	defer log.Close()

	strs, err := i18n.Load(cfg.Defaults.Locale)
	if err != nil {
		return fmt.Errorf("load locale: %w", err)
	}

	cat, err := catalog.Load(cfg.CatalogPath())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	program, studio := tui.NewStudioProgram(tui.Options{
		Strings:        strs,
		Catalog:        cat,
		Library:        db,
		Settings:       db,
		Structure:      models.StructureType(cfg.Defaults.Structure),
		VocalMode:      models.VocalMode(cfg.Defaults.VocalMode),
		VowelLevel:     cfg.Defaults.VowelLevel,
		StyleMaxLength: cfg.Style.MaxLength,
		RefreshRate:    cfg.TUI.RefreshRate,
		Log:            log,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Catalog.Watch {
		go func() {
			err := catalog.Watch(ctx, cfg.CatalogPath(), func(c *catalog.Catalog) {
				program.Send(tui.CatalogReloadedMsg{Catalog: c})
			})
			if err != nil {
				log.Log("[studio] catalog watch disabled: %v", err)
			}
		}()
	}

	log.Log("[studio] started (locale=%s, library=%s)", cfg.Defaults.Locale, db.Path())
	_, err = program.Run()
	studio.Close()
	if err != nil {
		return fmt.Errorf("run studio: %w", err)
	}
	return nil
}
