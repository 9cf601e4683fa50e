package models

import "time"

// PromptKind describes what a saved prompt holds.
type PromptKind string

const (
	// PromptKindStyle is a style prompt only.
	PromptKindStyle PromptKind = "style"
	// PromptKindLyrics is a lyric sheet only.
	PromptKindLyrics PromptKind = "lyrics"
	// PromptKindSong holds both a style prompt and a lyric sheet.
	PromptKindSong PromptKind = "song"
)

// Valid returns true if the kind is a known value.
func (k PromptKind) Valid() bool {
	switch k {
	case PromptKindStyle, PromptKindLyrics, PromptKindSong:
		return true
	default:
		return false
	}
}

// KindFor infers the kind from which parts are filled in.
func KindFor(style, lyrics string) PromptKind {
	switch {
	case style != "" && lyrics != "":
		return PromptKindSong
	case lyrics != "":
		return PromptKindLyrics
	default:
		return PromptKindStyle
	}
}

// Prompt is a style prompt and/or lyric sheet saved to the library.
type Prompt struct {
	// ID is the unique identifier for this prompt.
	ID string `json:"id"`
	// Title is the user-facing name.
	Title string `json:"title"`
	// Kind says which parts are present.
	Kind PromptKind `json:"kind"`
	// Style is the comma-separated style prompt.
	Style string `json:"style,omitempty"`
	// Lyrics is the lyric sheet including meta tags.
	Lyrics string `json:"lyrics,omitempty"`
	// Tags are free-form labels for searching the library.
	Tags []string `json:"tags,omitempty"`
	// CreatedAt is when the prompt was first saved.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the prompt was last changed.
	UpdatedAt time.Time `json:"updated_at"`
}
