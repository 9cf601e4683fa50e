package models

import "testing"

func TestStructureType_Valid(t *testing.T) {
	tests := []struct {
		name string
		st   StructureType
		want bool
	}{
		{"pop is valid", StructurePop, true},
		{"hiphop is valid", StructureHipHop, true},
		{"electronic is valid", StructureElectronic, true},
		{"ballad is valid", StructureBallad, true},
		{"progressive is valid", StructureProgressive, true},
		{"empty string is invalid", StructureType(""), false},
		{"hyphenated hip-hop is invalid", StructureType("hip-hop"), false},
		{"uppercase is invalid", StructureType("POP"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.Valid(); got != tt.want {
				t.Errorf("StructureType(%q).Valid() = %v, want %v", tt.st, got, tt.want)
			}
		})
	}
}

func TestVocalMode_Valid(t *testing.T) {
	for _, m := range VocalModes() {
		if !m.Valid() {
			t.Errorf("VocalMode(%q).Valid() = false, want true", m)
		}
	}
	if VocalMode("chant").Valid() {
		t.Error("unknown vocal mode should not be valid")
	}
}

func TestKindFor(t *testing.T) {
	tests := []struct {
		style, lyrics string
		want          PromptKind
	}{
		{"pop, upbeat", "[Verse]", PromptKindSong},
		{"", "[Verse]", PromptKindLyrics},
		{"pop", "", PromptKindStyle},
		{"", "", PromptKindStyle},
	}

	for _, tt := range tests {
		if got := KindFor(tt.style, tt.lyrics); got != tt.want {
			t.Errorf("KindFor(%q, %q) = %q, want %q", tt.style, tt.lyrics, got, tt.want)
		}
		if !tt.want.Valid() {
			t.Errorf("PromptKind(%q).Valid() = false", tt.want)
		}
	}
}
