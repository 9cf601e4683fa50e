// Package i18n loads the studio's UI strings. Each locale decodes into the
// Strings struct and must fill every field; unknown or missing keys are
// load errors rather than blank labels at runtime.
package i18n

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// ErrUnknownLocale is returned when no table exists for a locale.
var ErrUnknownLocale = errors.New("unknown locale")

// Strings is the full set of UI strings for one locale.
type Strings struct {
	AppTitle string `yaml:"app_title"`

	TabVowel    string `yaml:"tab_vowel"`
	TabVocals   string `yaml:"tab_vocals"`
	TabChords   string `yaml:"tab_chords"`
	TabNotes    string `yaml:"tab_notes"`
	TabTags     string `yaml:"tab_tags"`
	TabSkeleton string `yaml:"tab_skeleton"`
	TabStyle    string `yaml:"tab_style"`
	TabSheet    string `yaml:"tab_sheet"`

	LabelWord        string `yaml:"label_word"`
	LabelLevel       string `yaml:"label_level"`
	LabelMain        string `yaml:"label_main"`
	LabelBacking     string `yaml:"label_backing"`
	LabelMode        string `yaml:"label_mode"`
	LabelLyric       string `yaml:"label_lyric"`
	LabelChords      string `yaml:"label_chords"`
	LabelNotes       string `yaml:"label_notes"`
	LabelTagInput    string `yaml:"label_tag_input"`
	LabelStructure   string `yaml:"label_structure"`
	LabelGenres      string `yaml:"label_genres"`
	LabelMoods       string `yaml:"label_moods"`
	LabelInstruments string `yaml:"label_instruments"`
	LabelVocal       string `yaml:"label_vocal"`
	LabelTempo       string `yaml:"label_tempo"`
	LabelPreview     string `yaml:"label_preview"`
	LabelSuggestions string `yaml:"label_suggestions"`

	HintKeys string `yaml:"hint_keys"`

	StatusCopied   string `yaml:"status_copied"`
	StatusAppended string `yaml:"status_appended"`
	StatusSaved    string `yaml:"status_saved"`
	StatusEmpty    string `yaml:"status_empty"`
	StatusError    string `yaml:"status_error"`
	StatusTheme    string `yaml:"status_theme"`
	StatusRestored string `yaml:"status_restored"`
}

// Locales returns the available locale codes, sorted.
func Locales() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(out)
	return out
}

// Load decodes and validates the table for locale.
func Load(locale string) (*Strings, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	data, err := localeFS.ReadFile("locales/" + locale + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, locale)
	}
	return Parse(data)
}

// MustLoad is Load for built-in locales; it panics on error.
func MustLoad(locale string) *Strings {
	s, err := Load(locale)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodes a locale table and checks that every key is present.
func Parse(data []byte) (*Strings, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	s := &Strings{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("decode locale: %w", err)
	}
	if missing := s.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("locale missing keys: %s", strings.Join(missing, ", "))
	}
	return s, nil
}

// Missing returns the yaml keys whose values are empty.
func (s *Strings) Missing() []string {
	var missing []string
	v := reflect.ValueOf(s).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if strings.TrimSpace(v.Field(i).String()) == "" {
			missing = append(missing, t.Field(i).Tag.Get("yaml"))
		}
	}
	return missing
}
