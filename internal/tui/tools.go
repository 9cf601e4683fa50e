package tui

import (
	"strconv"
	"strings"

	"github.com/ShayCichocki/songsmith/internal/catalog"
	"github.com/ShayCichocki/songsmith/internal/config"
	"github.com/ShayCichocki/songsmith/internal/i18n"
	"github.com/ShayCichocki/songsmith/internal/state"
	"github.com/ShayCichocki/songsmith/internal/style"
	"github.com/ShayCichocki/songsmith/internal/textkit"
	"github.com/ShayCichocki/songsmith/pkg/models"
)

// Tool is one studio tab: input fields, an optional selector and a preview.
type Tool interface {
	Fields() []*InputField
	// Option returns the selector label and its current value. ok is false
	// for tools without a selector.
	Option() (label, value string, ok bool)
	CycleOption(delta int)
	Preview() string
}

// suggester is implemented by tools that offer catalog entries for the
// field at index field.
type suggester interface {
	Suggest(c *catalog.Catalog, field int) []string
}

// lastEntry returns the comma-separated entry being typed.
func lastEntry(s string) string {
	if i := strings.LastIndexByte(s, ','); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

func cycleIndex(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

type vowelTool struct {
	word     *InputField
	level    int
	optLabel string
}

func newVowelTool(s *i18n.Strings, level int) *vowelTool {
	t := &vowelTool{word: NewInputField(s.LabelWord, "love"), optLabel: s.LabelLevel}
	t.level = clamp(level, 0, config.MaxVowelLevel)
	return t
}

func (t *vowelTool) Fields() []*InputField { return []*InputField{t.word} }

func (t *vowelTool) Option() (string, string, bool) {
	return t.optLabel, strconv.Itoa(t.level), true
}

func (t *vowelTool) CycleOption(delta int) {
	t.level = clamp(t.level+delta, 0, config.MaxVowelLevel)
}

func (t *vowelTool) Preview() string {
	return textkit.ExtendLine(t.word.Value(), t.level)
}

type vocalsTool struct {
	main, backing *InputField
	modes         []models.VocalMode
	mode          int
	optLabel      string
}

func newVocalsTool(s *i18n.Strings, mode models.VocalMode) *vocalsTool {
	t := &vocalsTool{
		main:     NewInputField(s.LabelMain, "hold on"),
		backing:  NewInputField(s.LabelBacking, "hold on"),
		modes:    models.VocalModes(),
		optLabel: s.LabelMode,
	}
	for i, m := range t.modes {
		if m == mode {
			t.mode = i
		}
	}
	return t
}

func (t *vocalsTool) Fields() []*InputField { return []*InputField{t.main, t.backing} }

func (t *vocalsTool) Option() (string, string, bool) {
	return t.optLabel, string(t.modes[t.mode]), true
}

func (t *vocalsTool) CycleOption(delta int) {
	t.mode = cycleIndex(t.mode, delta, len(t.modes))
}

func (t *vocalsTool) Preview() string {
	return textkit.FormatBackgroundVocals(t.main.Value(), t.backing.Value(), t.modes[t.mode])
}

type chordsTool struct {
	lyric, chords *InputField
}

func newChordsTool(s *i18n.Strings) *chordsTool {
	return &chordsTool{
		lyric:  NewInputField(s.LabelLyric, "walking down the empty street"),
		chords: NewInputField(s.LabelChords, "Am, F, C, G"),
	}
}

func (t *chordsTool) Fields() []*InputField { return []*InputField{t.lyric, t.chords} }

func (t *chordsTool) Option() (string, string, bool) { return "", "", false }

func (t *chordsTool) CycleOption(int) {}

func (t *chordsTool) Preview() string {
	return textkit.FormatChordLine(t.lyric.Value(), textkit.ParseSymbols(t.chords.Value()))
}

type notesTool struct {
	lyric, notes *InputField
}

func newNotesTool(s *i18n.Strings) *notesTool {
	return &notesTool{
		lyric: NewInputField(s.LabelLyric, "fly me to the moon"),
		notes: NewInputField(s.LabelNotes, "C D E"),
	}
}

func (t *notesTool) Fields() []*InputField { return []*InputField{t.lyric, t.notes} }

func (t *notesTool) Option() (string, string, bool) { return "", "", false }

func (t *notesTool) CycleOption(int) {}

func (t *notesTool) Preview() string {
	return textkit.InterleaveNotes(t.lyric.Value(), strings.Join(textkit.ParseSymbols(t.notes.Value()), " "))
}

type tagsTool struct {
	input *InputField
}

func newTagsTool(s *i18n.Strings) *tagsTool {
	return &tagsTool{input: NewInputField(s.LabelTagInput, "slow fade at the end")}
}

func (t *tagsTool) Fields() []*InputField { return []*InputField{t.input} }

func (t *tagsTool) Option() (string, string, bool) { return "", "", false }

func (t *tagsTool) CycleOption(int) {}

func (t *tagsTool) Preview() string {
	return textkit.OptimizeTags(t.input.Value())
}

func (t *tagsTool) Suggest(c *catalog.Catalog, _ int) []string {
	q := strings.TrimSpace(t.input.Value())
	if q == "" {
		return nil
	}
	return c.Search(catalog.CategoryTags, q)
}

type skeletonTool struct {
	types     []models.StructureType
	structure int
	optLabel  string
}

func newSkeletonTool(s *i18n.Strings, t models.StructureType) *skeletonTool {
	st := &skeletonTool{types: textkit.StructureTypes(), optLabel: s.LabelStructure}
	for i, typ := range st.types {
		if typ == t {
			st.structure = i
		}
	}
	return st
}

func (t *skeletonTool) Fields() []*InputField { return nil }

func (t *skeletonTool) Option() (string, string, bool) {
	return t.optLabel, string(t.types[t.structure]), true
}

func (t *skeletonTool) CycleOption(delta int) {
	t.structure = cycleIndex(t.structure, delta, len(t.types))
}

func (t *skeletonTool) Preview() string {
	return textkit.GenerateStructureSkeleton(t.types[t.structure])
}

const (
	tempoStep = 5
	maxTempo  = 300
)

type styleTool struct {
	genres, moods, instruments, vocal *InputField
	tempo                             int
	maxLen                            int
	optLabel                          string
}

func newStyleTool(s *i18n.Strings, maxLen int) *styleTool {
	return &styleTool{
		genres:      NewInputField(s.LabelGenres, "synthwave, dream pop"),
		moods:       NewInputField(s.LabelMoods, "nostalgic"),
		instruments: NewInputField(s.LabelInstruments, "analog synth, gated drums"),
		vocal:       NewInputField(s.LabelVocal, "airy female vocals"),
		maxLen:      maxLen,
		optLabel:    s.LabelTempo,
	}
}

func (t *styleTool) Fields() []*InputField {
	return []*InputField{t.genres, t.moods, t.instruments, t.vocal}
}

func (t *styleTool) Option() (string, string, bool) {
	if t.tempo == 0 {
		return t.optLabel, "-", true
	}
	return t.optLabel, strconv.Itoa(t.tempo), true
}

func (t *styleTool) CycleOption(delta int) {
	t.tempo = clamp(t.tempo+delta*tempoStep, 0, maxTempo)
}

func (t *styleTool) Spec() style.Spec {
	return style.Spec{
		Genres:      style.SplitList(t.genres.Value()),
		Moods:       style.SplitList(t.moods.Value()),
		Instruments: style.SplitList(t.instruments.Value()),
		Vocal:       strings.TrimSpace(t.vocal.Value()),
		Tempo:       t.tempo,
	}
}

func (t *styleTool) Preview() string {
	return style.Build(t.Spec(), t.maxLen)
}

// Draft returns the raw field text, so a restore puts each value back where
// it was typed.
func (t *styleTool) Draft() state.StyleFields {
	return state.StyleFields{
		Genres:      t.genres.Value(),
		Moods:       t.moods.Value(),
		Instruments: t.instruments.Value(),
		Vocal:       t.vocal.Value(),
		Tempo:       t.tempo,
	}
}

func (t *styleTool) Restore(f state.StyleFields) {
	t.genres.SetValue(f.Genres)
	t.moods.SetValue(f.Moods)
	t.instruments.SetValue(f.Instruments)
	t.vocal.SetValue(f.Vocal)
	t.tempo = clamp(f.Tempo, 0, maxTempo)
}

func (t *styleTool) Suggest(c *catalog.Catalog, field int) []string {
	fields := t.Fields()
	if field < 0 || field >= len(fields) {
		return nil
	}
	cats := []catalog.Category{
		catalog.CategoryGenres, catalog.CategoryMoods,
		catalog.CategoryInstruments, catalog.CategoryVocals,
	}
	q := lastEntry(fields[field].Value())
	if q == "" {
		return nil
	}
	return c.Search(cats[field], q)
}

type sheetTool struct {
	sheet *style.Sheet
}

func (t *sheetTool) Fields() []*InputField { return nil }

func (t *sheetTool) Option() (string, string, bool) { return "", "", false }

func (t *sheetTool) CycleOption(int) {}

func (t *sheetTool) Preview() string {
	return t.sheet.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
