package state

import (
	"io"
	"time"

	"github.com/ShayCichocki/songsmith/pkg/models"
)

// PromptStore handles prompt library persistence.
type PromptStore interface {
	CreatePrompt(p *models.Prompt) error
	GetPrompt(id string) (*models.Prompt, error)
	UpdatePrompt(p *models.Prompt) error
	DeletePrompt(id string) error
	ListPrompts(limit int) ([]models.Prompt, error)
	SearchPrompts(query string) ([]models.Prompt, error)
	PurgeOldPrompts(olderThan time.Duration) (int64, error)
}

// SettingsStore is the key/value store used for drafts and UI preferences.
type SettingsStore interface {
	SetSetting(key, value string) error
	GetSetting(key string) (string, bool, error)
	DeleteSetting(key string) error
}

// Migrator handles database schema migrations.
type Migrator interface {
	// Migrate applies all pending schema migrations.
	Migrate() error
}

// Store composes everything the CLI and studio need from persistence.
type Store interface {
	io.Closer
	Migrator
	PromptStore
	SettingsStore
}

// Compile-time verification that DB implements all interfaces.
var (
	_ Store         = (*DB)(nil)
	_ Migrator      = (*DB)(nil)
	_ PromptStore   = (*DB)(nil)
	_ SettingsStore = (*DB)(nil)
)
