package share

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	p := Payload{
		Title:  "Neon Rain",
		Style:  "synthwave, melancholic, female vocals, 100 bpm",
		Lyrics: "[Intro]\n\n[Verse 1]\nCity li-i-ights (li-i-ights)\n\n[Chorus]",
	}

	code, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if strings.ContainsAny(code, "+/=") {
		t.Errorf("code %q is not unpadded base64url", code)
	}

	got, err := Decode(code)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != p {
		t.Errorf("Decode = %+v, want %+v", got, p)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", "   "},
		{"bad base64", "!!!"},
		{"not deflate", "aGVsbG8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.code); err == nil {
				t.Errorf("Decode(%q) should fail", tt.code)
			}
		})
	}

	if _, err := Decode(""); !errors.Is(err, ErrEmptyCode) {
		t.Errorf("Decode(\"\") error = %v, want ErrEmptyCode", err)
	}
}

func TestLinkAndParseLink(t *testing.T) {
	p := Payload{Style: "lofi, chill"}

	link, err := Link("https://songsmith.app/s#old", p)
	if err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	if !strings.HasPrefix(link, "https://songsmith.app/s#s=") {
		t.Fatalf("link = %q", link)
	}

	got, err := DecodeLink(link)
	if err != nil {
		t.Fatalf("DecodeLink failed: %v", err)
	}
	if got != p {
		t.Errorf("DecodeLink = %+v, want %+v", got, p)
	}

	code, _ := Encode(p)
	if got, err := DecodeLink(code); err != nil || got != p {
		t.Errorf("DecodeLink(bare code) = %+v, %v", got, err)
	}
}

func TestLinkFor(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"plain base", "https://songsmith.app/s", "https://songsmith.app/s#s=abc"},
		{"existing fragment replaced", "https://songsmith.app/s#x=1", "https://songsmith.app/s#s=abc"},
		{"whitespace trimmed", "  https://songsmith.app/s \n", "https://songsmith.app/s#s=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := linkFor(tt.base, "abc"); got != tt.want {
				t.Errorf("linkFor(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}

func TestParseLink(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"abc", "abc", false},
		{"https://x.test/s#s=abc", "abc", false},
		{"https://x.test/s#v=1&s=abc", "abc", false},
		{"https://x.test/s", "", true},
		{"https://x.test/s#v=1", "", true},
		{"https://x.test/s#s=", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLink(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLink(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLink(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPayloadEmpty(t *testing.T) {
	if !(Payload{}).Empty() {
		t.Error("zero payload should be empty")
	}
	if (Payload{Lyrics: "x"}).Empty() {
		t.Error("payload with lyrics should not be empty")
	}
}
