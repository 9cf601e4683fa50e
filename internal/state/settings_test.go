package state

import (
	"testing"
	"time"
)

func TestSettings(t *testing.T) {
	db := setupTestDB(t)

	if _, ok, err := db.GetSetting("theme"); err != nil || ok {
		t.Fatalf("GetSetting(missing) = ok %v, err %v", ok, err)
	}

	if err := db.SetSetting("theme", "dark"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting("theme", "light"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}

	v, ok, err := db.GetSetting("theme")
	if err != nil || !ok || v != "light" {
		t.Errorf("GetSetting = %q, %v, %v; want light, true, nil", v, ok, err)
	}

	if err := db.DeleteSetting("theme"); err != nil {
		t.Fatalf("DeleteSetting failed: %v", err)
	}
	if _, ok, _ := db.GetSetting("theme"); ok {
		t.Error("setting still present after delete")
	}
	if err := db.DeleteSetting("theme"); err != nil {
		t.Errorf("deleting missing key should not error: %v", err)
	}
}

func TestDraftManager(t *testing.T) {
	db := setupTestDB(t)
	m := NewDraftManager(db)

	d, err := m.CheckForDraft()
	if err != nil || d != nil {
		t.Fatalf("CheckForDraft on empty store = %v, %v", d, err)
	}

	style := StyleFields{Genres: "lofi", Moods: "mellow", Tempo: 80}
	saved := Draft{Style: style, Lyrics: "[Verse]", SavedAt: time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)}
	if err := m.Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	d, err = m.CheckForDraft()
	if err != nil {
		t.Fatalf("CheckForDraft failed: %v", err)
	}
	if d == nil || d.Style != style || d.Lyrics != "[Verse]" || !d.SavedAt.Equal(saved.SavedAt) {
		t.Errorf("CheckForDraft = %+v, want %+v", d, saved)
	}

	// Saving an empty draft clears it.
	if err := m.Save(Draft{Style: StyleFields{Genres: "  "}}); err != nil {
		t.Fatalf("Save(empty) failed: %v", err)
	}
	if d, _ := m.CheckForDraft(); d != nil {
		t.Errorf("draft not cleared: %+v", d)
	}
}

func TestDraftManager_TempoOnly(t *testing.T) {
	db := setupTestDB(t)
	m := NewDraftManager(db)

	if err := m.Save(Draft{Style: StyleFields{Tempo: 120}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	d, err := m.CheckForDraft()
	if err != nil || d == nil {
		t.Fatalf("CheckForDraft = %v, %v", d, err)
	}
	if d.Style.Tempo != 120 {
		t.Errorf("tempo = %d, want 120", d.Style.Tempo)
	}
}

func TestDraftManager_Discard(t *testing.T) {
	db := setupTestDB(t)
	m := NewDraftManager(db)

	if err := m.Save(Draft{Lyrics: "la la"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := m.Discard(); err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if d, _ := m.CheckForDraft(); d != nil {
		t.Errorf("draft survived Discard: %+v", d)
	}
}
