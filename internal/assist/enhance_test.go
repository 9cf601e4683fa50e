package assist

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ShayCichocki/songsmith/internal/debuglog"
)

type fakeCompleter struct {
	reply  string
	err    error
	system string
	prompt string
}

func (f *fakeCompleter) Complete(_ context.Context, system, prompt string) (string, error) {
	f.system = system
	f.prompt = prompt
	return f.reply, f.err
}

func TestParseResponse(t *testing.T) {
	text := "Here you go:\n```json\n" + `{
		"title": "Midnight Drive",
		"genres": ["synthwave", "Synthwave"],
		"moods": ["nostalgic"],
		"instruments": ["analog synth"],
		"vocal": "female vocals",
		"tempo": 96,
		"tags": ["verse", "chorus", "fade out", "[Fade Out]", " "]
	}` + "\n```"

	got, err := parseResponse(text, 0)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}

	if got.Title != "Midnight Drive" {
		t.Errorf("Title = %q", got.Title)
	}
	wantStyle := "synthwave, nostalgic, analog synth, female vocals, 96 bpm"
	if got.Style != wantStyle {
		t.Errorf("Style = %q, want %q", got.Style, wantStyle)
	}
	wantTags := []string{"[Verse]", "[Chorus]", "[Fade Out]"}
	if !reflect.DeepEqual(got.Tags, wantTags) {
		t.Errorf("Tags = %v, want %v", got.Tags, wantTags)
	}
}

func TestParseResponse_MaxLength(t *testing.T) {
	text := `{"genres": ["drum and bass"], "moods": ["energetic", "dark"], "tempo": 174}`

	got, err := parseResponse(text, 20)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}
	if len(got.Style) > 20 {
		t.Errorf("Style %q exceeds 20 chars", got.Style)
	}
	if got.Style != "drum and bass" {
		t.Errorf("Style = %q, want %q", got.Style, "drum and bass")
	}
}

func TestParseResponse_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no json", "I can't help with that."},
		{"bad json", `{"genres": [}`},
		{"empty style", `{"title": "x", "tempo": 0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseResponse(tt.text, 0); err == nil {
				t.Errorf("parseResponse(%q) should fail", tt.text)
			}
		})
	}
}

func TestParseResponse_IgnoresImplausibleTempo(t *testing.T) {
	got, err := parseResponse(`{"genres": ["ambient"], "tempo": 9000}`, 0)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}
	if got.Spec.Tempo != 0 || strings.Contains(got.Style, "bpm") {
		t.Errorf("tempo should be dropped, got %+v", got)
	}
}

func TestEnhance(t *testing.T) {
	llm := &fakeCompleter{reply: `{"genres": ["lofi hip hop"], "moods": ["chill"], "tags": ["intro"]}`}
	e := NewEnhancer(llm, 0, debuglog.Nop())

	got, err := e.Enhance(context.Background(), "  rainy study session  ")
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if got.Style != "lofi hip hop, chill" {
		t.Errorf("Style = %q", got.Style)
	}
	if !reflect.DeepEqual(got.Tags, []string{"[Intro]"}) {
		t.Errorf("Tags = %v", got.Tags)
	}
	if !strings.Contains(llm.prompt, "rainy study session") {
		t.Errorf("prompt = %q", llm.prompt)
	}
	if llm.system != systemPrompt {
		t.Error("system prompt not sent")
	}
}

func TestEnhance_Errors(t *testing.T) {
	e := NewEnhancer(&fakeCompleter{}, 0, nil)
	if _, err := e.Enhance(context.Background(), " "); !errors.Is(err, ErrEmptyDescription) {
		t.Errorf("blank description error = %v", err)
	}

	boom := errors.New("boom")
	e = NewEnhancer(&fakeCompleter{err: boom}, 0, nil)
	if _, err := e.Enhance(context.Background(), "song"); !errors.Is(err, boom) {
		t.Errorf("completer error = %v, want wrapped boom", err)
	}
}
