package textkit

import (
	"strings"
	"testing"
)

func TestExtendVowel(t *testing.T) {
	tests := []struct {
		name  string
		word  string
		level int
		want  string
	}{
		{"love level 2", "love", 2, "lo-o-ove"},
		{"love level 1", "love", 1, "lo-ove"},
		{"level zero is identity", "love", 0, "love"},
		{"negative level is identity", "love", -3, "love"},
		{"empty word", "", 4, ""},
		{"y is the only vowel", "rhythm", 2, "rhy-y-ythm"},
		{"consonants only", "psst", 2, "psst"},
		{"vowel group uses last vowel", "bright", 1, "bri-ight"},
		{"diphthong", "soul", 2, "sou-u-ul"},
		{"leading vowel", "oh", 3, "o-o-o-oh"},
		{"preserves case", "LOVE", 2, "LO-O-OVE"},
		{"y as vowel", "xyz", 3, "xy-y-y-yz"},
		{"word ending in vowel", "go", 2, "go-o-o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtendVowel(tt.word, tt.level); got != tt.want {
				t.Errorf("ExtendVowel(%q, %d) = %q, want %q", tt.word, tt.level, got, tt.want)
			}
		})
	}
}

func TestExtendVowel_InsertsExactlyLevelCopies(t *testing.T) {
	got := ExtendVowel("love", 2)
	if n := strings.Count(got, "-o"); n != 2 {
		t.Errorf("ExtendVowel(love, 2) has %d \"-o\" insertions, want 2", n)
	}
	if !strings.HasPrefix(got, "lo") || !strings.HasSuffix(got, "ve") {
		t.Errorf("ExtendVowel(love, 2) = %q, prefix/suffix changed", got)
	}
}

func TestExtendVowel_NeverShrinks(t *testing.T) {
	for _, w := range []string{"xyz", "a", "strength", "ééé", "night"} {
		for level := 0; level < 4; level++ {
			got := ExtendVowel(w, level)
			if len(got) < len(w) {
				t.Errorf("ExtendVowel(%q, %d) = %q, shorter than input", w, level, got)
			}
		}
	}
}

func TestExtendLine(t *testing.T) {
	if got := ExtendLine("hold me now", 1); got != "ho-old me-e no-ow" {
		t.Errorf("ExtendLine = %q", got)
	}
	if got := ExtendLine("  ", 2); got != "  " {
		t.Errorf("ExtendLine on blank line = %q, want unchanged", got)
	}
}

func TestExtendWordAt(t *testing.T) {
	if got := ExtendWordAt("hold me now", 2, 2); got != "hold me no-o-ow" {
		t.Errorf("ExtendWordAt = %q", got)
	}
	if got := ExtendWordAt("hold me", 5, 2); got != "hold me" {
		t.Errorf("ExtendWordAt out of range = %q, want unchanged", got)
	}
}
