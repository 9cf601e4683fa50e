package textkit

import (
	"reflect"
	"strings"
	"testing"
)

func TestFormatChordLine(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		chords []string
		want   string
	}{
		{"no chords", "a b c", nil, "a b c"},
		{"no chords keeps spacing", "a  b", []string{}, "a  b"},
		{"empty text", "", []string{"C", "G"}, "(C) (G)"},
		{"whitespace text", "   ", []string{"Am"}, "(Am)"},
		{"one chord", "a b c d", []string{"C"}, "(C) a b c d"},
		{"even spread", "a b c d", []string{"C", "G"}, "(C) a b (G) c d"},
		{"chord per word", "a b", []string{"C", "G"}, "(C) a (G) b"},
		{"more chords than words", "a b", []string{"C", "G", "Am", "F"}, "(C) a (G) b (Am) (F)"},
		{"uneven spread", "a b c d e", []string{"C", "G"}, "(C) a b (G) c d e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatChordLine(tt.text, tt.chords); got != tt.want {
				t.Errorf("FormatChordLine(%q, %v) = %q, want %q", tt.text, tt.chords, got, tt.want)
			}
		})
	}
}

func TestFormatChordLine_PreservesWords(t *testing.T) {
	got := FormatChordLine("a b c d", []string{"C"})
	if n := strings.Count(got, "(C)"); n != 1 {
		t.Errorf("got %d (C) markers, want 1", n)
	}
	var words []string
	for _, tok := range strings.Fields(got) {
		if !strings.HasPrefix(tok, "(") {
			words = append(words, tok)
		}
	}
	if !reflect.DeepEqual(words, []string{"a", "b", "c", "d"}) {
		t.Errorf("words = %v, want [a b c d]", words)
	}
}

func TestInterleaveNotes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		notes string
		want  string
	}{
		{"cycling", "a b c", "G A", "(G)a (A)b (G)c"},
		{"one to one", "la la", "C D", "(C)la (D)la"},
		{"more notes than words", "la", "C D E", "(C)la"},
		{"no words", "", "C D", ""},
		{"blank words", "  ", "C D", ""},
		{"no notes", "la la", "", "la la"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InterleaveNotes(tt.text, tt.notes); got != tt.want {
				t.Errorf("InterleaveNotes(%q, %q) = %q, want %q", tt.text, tt.notes, got, tt.want)
			}
		})
	}
}

func TestParseSymbols(t *testing.T) {
	got := ParseSymbols(" Am7, G  ,,C\tF ")
	want := []string{"Am7", "G", "C", "F"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSymbols = %v, want %v", got, want)
	}
	if got := ParseSymbols(""); len(got) != 0 {
		t.Errorf("ParseSymbols(\"\") = %v, want empty", got)
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"random text": "Random text",
		"HELLO":       "Hello",
		"élan":        "Élan",
	}
	for in, want := range tests {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
