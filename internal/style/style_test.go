package style

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ShayCichocki/songsmith/pkg/models"
)

func TestBuild(t *testing.T) {
	spec := Spec{
		Genres:      []string{"synthwave", " dream pop "},
		Moods:       []string{"nostalgic", ""},
		Instruments: []string{"analog synth", "Synthwave"},
		Vocal:       "breathy female vocals",
		Tempo:       96,
		Extra:       "tape saturation",
	}

	got := Build(spec, 0)
	want := "synthwave, dream pop, nostalgic, analog synth, breathy female vocals, 96 bpm, tape saturation"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestBuild_Empty(t *testing.T) {
	if got := Build(Spec{}, 100); got != "" {
		t.Errorf("Build(empty) = %q, want empty", got)
	}
}

func TestBuild_MaxLenDropsWholeEntries(t *testing.T) {
	spec := Spec{Genres: []string{"rock", "blues", "garage punk"}}

	got := Build(spec, 12)
	if got != "rock, blues" {
		t.Errorf("Build(max 12) = %q, want %q", got, "rock, blues")
	}
	if len(got) > 12 {
		t.Errorf("Build() exceeded max length: %d", len(got))
	}

	if got := Build(spec, 2); got != "" {
		t.Errorf("Build(max 2) = %q, want empty", got)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" lofi, , jazz ,chill ")
	want := []string{"lofi", "jazz", "chill"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitList = %v, want %v", got, want)
	}
}

func TestSheet(t *testing.T) {
	s := NewSheet("")
	if s.Len() != 0 {
		t.Fatalf("new sheet from empty text has %d blocks", s.Len())
	}

	s.InsertSkeleton(models.StructureElectronic)
	s.Append("  ")
	s.Append("lo-o-ove me now")

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	out := s.String()
	if !strings.HasPrefix(out, "[Intro]\n\n[Build-up]") {
		t.Errorf("sheet should start with skeleton, got %q", out)
	}
	if !strings.HasSuffix(out, "[Outro]\n\nlo-o-ove me now") {
		t.Errorf("sheet should end with appended line, got %q", out)
	}

	s.Reset()
	if s.String() != "" {
		t.Errorf("Reset() left %q", s.String())
	}
}
