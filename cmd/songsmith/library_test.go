package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ShayCichocki/songsmith/internal/state"
	"github.com/ShayCichocki/songsmith/pkg/models"
)

func setupTestDB(t *testing.T) *state.DB {
	t.Helper()
	db, err := state.OpenMigrated(state.DriverPureGo, filepath.Join(t.TempDir(), "lib.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPrintPrompts(t *testing.T) {
	var buf bytes.Buffer
	if err := printPrompts(&buf, nil, false); err != nil {
		t.Fatalf("printPrompts failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No prompts") {
		t.Errorf("empty output = %q", buf.String())
	}

	buf.Reset()
	if err := printPrompts(&buf, nil, true); err != nil {
		t.Fatalf("printPrompts json failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty json = %q", buf.String())
	}

	db := setupTestDB(t)
	p := &models.Prompt{ID: "0123456789abcdef", Title: "Night Drive", Style: "synthwave"}
	if err := db.CreatePrompt(p); err != nil {
		t.Fatalf("CreatePrompt: %v", err)
	}
	prompts, _ := db.ListPrompts(0)

	buf.Reset()
	if err := printPrompts(&buf, prompts, false); err != nil {
		t.Fatalf("printPrompts failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "01234567") || !strings.Contains(out, "Night Drive") {
		t.Errorf("output = %q", out)
	}
}

func TestPrintPrompt_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := &models.Prompt{ID: "abc", Title: "T", Kind: models.PromptKindStyle, Style: "jazz"}
	if err := printPrompt(&buf, p, true); err != nil {
		t.Fatalf("printPrompt failed: %v", err)
	}

	var got models.Prompt
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if got.ID != "abc" || got.Style != "jazz" {
		t.Errorf("decoded = %+v", got)
	}
}

func TestFindPrompt_Missing(t *testing.T) {
	db := setupTestDB(t)
	if _, err := findPrompt(db, "ghost"); !errors.Is(err, state.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestReadLyrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.txt")
	if err := os.WriteFile(path, []byte("\n[Verse]\nla la\n\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := readLyrics(nil, path)
	if err != nil || got != "[Verse]\nla la" {
		t.Errorf("readLyrics(file) = %q, %v", got, err)
	}

	got, err = readLyrics(strings.NewReader("one\ntwo\n"), "-")
	if err != nil || got != "one\ntwo" {
		t.Errorf("readLyrics(stdin) = %q, %v", got, err)
	}

	got, err = readLyrics(nil, "")
	if err != nil || got != "" {
		t.Errorf("readLyrics(\"\") = %q, %v", got, err)
	}
}

func TestLibraryAndShare_EndToEnd(t *testing.T) {
	isolateEnv(t)

	if _, err := execute(t, "library", "save", "--title", "Demo", "--style", "punk, raw"); err != nil {
		t.Fatalf("library save failed: %v", err)
	}

	out, err := execute(t, "library", "list", "--json")
	if err != nil {
		t.Fatalf("library list failed: %v", err)
	}
	var prompts []models.Prompt
	if err := json.Unmarshal([]byte(out), &prompts); err != nil {
		t.Fatalf("list json: %v\n%s", err, out)
	}
	if len(prompts) != 1 || prompts[0].Title != "Demo" {
		t.Fatalf("prompts = %+v", prompts)
	}

	link, err := execute(t, "share", "encode", "--id", prompts[0].ID[:6])
	if err != nil {
		t.Fatalf("share encode failed: %v", err)
	}
	link = strings.TrimSpace(link)
	if !strings.Contains(link, "#s=") {
		t.Fatalf("link = %q", link)
	}

	out, err = execute(t, "share", "decode", link, "--json")
	if err != nil {
		t.Fatalf("share decode failed: %v", err)
	}
	if !strings.Contains(out, `"punk, raw"`) || !strings.Contains(out, `"Demo"`) {
		t.Errorf("decoded = %s", out)
	}
}
