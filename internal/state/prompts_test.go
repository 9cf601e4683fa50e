package state

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ShayCichocki/songsmith/pkg/models"
)

func TestCreateAndGetPrompt(t *testing.T) {
	db := setupTestDB(t)

	p := &models.Prompt{
		Title:  "Night Drive",
		Style:  "synthwave, nostalgic, 96 bpm",
		Lyrics: "[Intro]\n\n[Verse 1]",
		Tags:   []string{"retro", "draft"},
	}
	if err := db.CreatePrompt(p); err != nil {
		t.Fatalf("CreatePrompt failed: %v", err)
	}
	if p.ID == "" {
		t.Fatal("CreatePrompt did not assign an ID")
	}
	if p.Kind != models.PromptKindSong {
		t.Errorf("Kind = %q, want %q", p.Kind, models.PromptKindSong)
	}

	got, err := db.GetPrompt(p.ID)
	if err != nil {
		t.Fatalf("GetPrompt failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetPrompt returned nil")
	}
	if got.Title != p.Title || got.Style != p.Style || got.Lyrics != p.Lyrics {
		t.Errorf("GetPrompt = %+v, want %+v", got, p)
	}
	if !reflect.DeepEqual(got.Tags, p.Tags) {
		t.Errorf("Tags = %v, want %v", got.Tags, p.Tags)
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, p.CreatedAt)
	}
}

func TestGetPrompt_Missing(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.GetPrompt("nope")
	if err != nil {
		t.Fatalf("GetPrompt failed: %v", err)
	}
	if got != nil {
		t.Errorf("GetPrompt(missing) = %+v, want nil", got)
	}
}

func TestFindPrompt_Prefix(t *testing.T) {
	db := setupTestDB(t)

	for _, id := range []string{"abc111", "abc222", "def333"} {
		if err := db.CreatePrompt(&models.Prompt{ID: id, Title: id}); err != nil {
			t.Fatalf("CreatePrompt(%s) failed: %v", id, err)
		}
	}

	got, err := db.FindPrompt("def")
	if err != nil || got == nil || got.ID != "def333" {
		t.Errorf("FindPrompt(def) = %v, %v; want def333", got, err)
	}

	if _, err := db.FindPrompt("abc"); err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("FindPrompt(abc) error = %v, want ambiguous", err)
	}

	got, err = db.FindPrompt("zzz")
	if err != nil || got != nil {
		t.Errorf("FindPrompt(zzz) = %v, %v; want nil, nil", got, err)
	}
}

func TestUpdatePrompt(t *testing.T) {
	db := setupTestDB(t)

	p := &models.Prompt{Title: "Draft", Style: "lofi"}
	if err := db.CreatePrompt(p); err != nil {
		t.Fatalf("CreatePrompt failed: %v", err)
	}
	created := p.UpdatedAt

	p.Title = "Final"
	p.Lyrics = "[Verse]"
	if err := db.UpdatePrompt(p); err != nil {
		t.Fatalf("UpdatePrompt failed: %v", err)
	}

	got, _ := db.GetPrompt(p.ID)
	if got.Title != "Final" {
		t.Errorf("Title = %q, want Final", got.Title)
	}
	if got.Kind != models.PromptKindSong {
		t.Errorf("Kind = %q, want song after adding lyrics", got.Kind)
	}
	if got.UpdatedAt.Before(created) {
		t.Error("UpdatedAt moved backwards")
	}
}

func TestUpdatePrompt_Missing(t *testing.T) {
	db := setupTestDB(t)

	err := db.UpdatePrompt(&models.Prompt{ID: "ghost", Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdatePrompt(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDeletePrompt(t *testing.T) {
	db := setupTestDB(t)

	p := &models.Prompt{Title: "Temp"}
	if err := db.CreatePrompt(p); err != nil {
		t.Fatalf("CreatePrompt failed: %v", err)
	}
	if err := db.DeletePrompt(p.ID); err != nil {
		t.Fatalf("DeletePrompt failed: %v", err)
	}
	if got, _ := db.GetPrompt(p.ID); got != nil {
		t.Error("prompt still present after delete")
	}
	if err := db.DeletePrompt(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeletePrompt error = %v, want ErrNotFound", err)
	}
}

func TestListPrompts_NewestFirst(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		p := &models.Prompt{Title: title, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := db.CreatePrompt(p); err != nil {
			t.Fatalf("CreatePrompt failed: %v", err)
		}
	}

	all, err := db.ListPrompts(0)
	if err != nil {
		t.Fatalf("ListPrompts failed: %v", err)
	}
	var titles []string
	for _, p := range all {
		titles = append(titles, p.Title)
	}
	if !reflect.DeepEqual(titles, []string{"newest", "middle", "oldest"}) {
		t.Errorf("order = %v", titles)
	}

	limited, err := db.ListPrompts(2)
	if err != nil {
		t.Fatalf("ListPrompts(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListPrompts(2) returned %d prompts", len(limited))
	}
}

func TestSearchPrompts(t *testing.T) {
	db := setupTestDB(t)

	seed := []*models.Prompt{
		{Title: "Rainy Jazz", Style: "jazz, mellow"},
		{Title: "Club Night", Style: "house, euphoric", Tags: []string{"Party"}},
		{Title: "Ballad", Lyrics: "[Verse]\nhold me in the rain"},
	}
	for _, p := range seed {
		if err := db.CreatePrompt(p); err != nil {
			t.Fatalf("CreatePrompt failed: %v", err)
		}
	}

	tests := []struct {
		query string
		want  int
	}{
		{"rain", 2},
		{"JAZZ", 1},
		{"party", 1},
		{"polka", 0},
		{"", 3},
	}
	for _, tt := range tests {
		got, err := db.SearchPrompts(tt.query)
		if err != nil {
			t.Fatalf("SearchPrompts(%q) failed: %v", tt.query, err)
		}
		if len(got) != tt.want {
			t.Errorf("SearchPrompts(%q) returned %d, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestPurgeOldPrompts(t *testing.T) {
	db := setupTestDB(t)

	old := &models.Prompt{Title: "old", CreatedAt: time.Now().Add(-48 * time.Hour)}
	fresh := &models.Prompt{Title: "fresh"}
	for _, p := range []*models.Prompt{old, fresh} {
		if err := db.CreatePrompt(p); err != nil {
			t.Fatalf("CreatePrompt failed: %v", err)
		}
	}

	n, err := db.PurgeOldPrompts(24 * time.Hour)
	if err != nil {
		t.Fatalf("PurgeOldPrompts failed: %v", err)
	}
	if n != 1 {
		t.Errorf("purged %d prompts, want 1", n)
	}
	if got, _ := db.GetPrompt(fresh.ID); got == nil {
		t.Error("fresh prompt was purged")
	}
}
