package state

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const draftKey = "studio.draft"

// StyleFields is the raw text of the studio's style inputs.
type StyleFields struct {
	Genres      string `json:"genres,omitempty"`
	Moods       string `json:"moods,omitempty"`
	Instruments string `json:"instruments,omitempty"`
	Vocal       string `json:"vocal,omitempty"`
	Tempo       int    `json:"tempo,omitempty"`
}

// Empty reports whether no style input is set.
func (f StyleFields) Empty() bool {
	return f.Tempo == 0 &&
		strings.TrimSpace(f.Genres+f.Moods+f.Instruments+f.Vocal) == ""
}

// Draft is the studio's unsaved working state, autosaved so it survives an
// interrupted session.
type Draft struct {
	Style   StyleFields `json:"style"`
	Lyrics  string      `json:"lyrics"`
	SavedAt time.Time   `json:"saved_at"`
}

// Empty reports whether the draft has no content.
func (d Draft) Empty() bool {
	return d.Style.Empty() && strings.TrimSpace(d.Lyrics) == ""
}

// DraftManager autosaves and recovers studio drafts through a SettingsStore.
type DraftManager struct {
	store SettingsStore
}

// NewDraftManager creates a DraftManager backed by store.
func NewDraftManager(store SettingsStore) *DraftManager {
	return &DraftManager{store: store}
}

// Save stores d. Empty drafts clear any stored draft instead.
func (m *DraftManager) Save(d Draft) error {
	if d.Empty() {
		return m.Discard()
	}
	if d.SavedAt.IsZero() {
		d.SavedAt = time.Now()
	}
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return m.store.SetSetting(draftKey, string(data))
}

// CheckForDraft returns the stored draft, or nil if there is none.
func (m *DraftManager) CheckForDraft() (*Draft, error) {
	raw, ok, err := m.store.GetSetting(draftKey)
	if err != nil || !ok {
		return nil, err
	}
	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	if d.Empty() {
		return nil, nil
	}
	return &d, nil
}

// Discard removes the stored draft.
func (m *DraftManager) Discard() error {
	return m.store.DeleteSetting(draftKey)
}
