// Package style assembles style prompts and lyric sheets from the
// selections a user makes in the studio.
package style

import (
	"strconv"
	"strings"

	"github.com/ShayCichocki/songsmith/internal/textkit"
	"github.com/ShayCichocki/songsmith/pkg/models"
)

// Spec is the structured input for a style prompt.
type Spec struct {
	Genres      []string `json:"genres,omitempty"`
	Moods       []string `json:"moods,omitempty"`
	Instruments []string `json:"instruments,omitempty"`
	Vocal       string   `json:"vocal,omitempty"`
	Tempo       int      `json:"tempo,omitempty"`
	Extra       string   `json:"extra,omitempty"`
}

// Entries returns the prompt entries in order: genres, moods, instruments,
// vocal, tempo, extra. Entries are trimmed, blanks dropped and duplicates
// removed case-insensitively, keeping the first spelling.
func (s Spec) Entries() []string {
	var raw []string
	raw = append(raw, s.Genres...)
	raw = append(raw, s.Moods...)
	raw = append(raw, s.Instruments...)
	raw = append(raw, s.Vocal)
	if s.Tempo > 0 {
		raw = append(raw, strconv.Itoa(s.Tempo)+" bpm")
	}
	raw = append(raw, s.Extra)

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		key := strings.ToLower(e)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

// Build joins the spec's entries with ", ". When maxLen is positive, whole
// trailing entries are dropped until the prompt fits.
func Build(spec Spec, maxLen int) string {
	entries := spec.Entries()
	prompt := strings.Join(entries, ", ")
	for maxLen > 0 && len(prompt) > maxLen && len(entries) > 0 {
		entries = entries[:len(entries)-1]
		prompt = strings.Join(entries, ", ")
	}
	return prompt
}

// SplitList parses a comma-separated selection into trimmed entries.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Sheet is a lyric sheet under construction. Blocks are separated by a
// blank line when rendered.
type Sheet struct {
	blocks []string
}

// NewSheet starts a sheet from existing text.
func NewSheet(text string) *Sheet {
	s := &Sheet{}
	s.Append(text)
	return s
}

// Append adds a block to the end of the sheet. Blank blocks are ignored.
func (s *Sheet) Append(block string) {
	block = strings.TrimSpace(block)
	if block == "" {
		return
	}
	s.blocks = append(s.blocks, block)
}

// InsertSkeleton appends the section skeleton for t.
func (s *Sheet) InsertSkeleton(t models.StructureType) {
	s.Append(textkit.GenerateStructureSkeleton(t))
}

// Len returns the number of blocks.
func (s *Sheet) Len() int {
	return len(s.blocks)
}

// Reset clears the sheet.
func (s *Sheet) Reset() {
	s.blocks = nil
}

// String renders the sheet.
func (s *Sheet) String() string {
	return strings.Join(s.blocks, "\n\n")
}
