package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/songsmith/internal/catalog"
	"github.com/ShayCichocki/songsmith/internal/debuglog"
	"github.com/ShayCichocki/songsmith/internal/i18n"
	"github.com/ShayCichocki/songsmith/internal/state"
	"github.com/ShayCichocki/songsmith/internal/style"
	"github.com/ShayCichocki/songsmith/pkg/models"
)

// themeKey is the settings key holding the chosen theme.
const themeKey = "studio.theme"

const maxSuggestions = 6

// CatalogReloadedMsg replaces the studio's suggestion catalog.
type CatalogReloadedMsg struct {
	Catalog *catalog.Catalog
}

// Options configures a Studio.
type Options struct {
	Strings *i18n.Strings
	Catalog *catalog.Catalog
	// Library receives ctrl+s saves. Saving is disabled when nil.
	Library state.PromptStore
	// Settings holds the draft and theme. Both are ephemeral when nil.
	Settings state.SettingsStore

	Structure      models.StructureType
	VocalMode      models.VocalMode
	VowelLevel     int
	StyleMaxLength int

	// RefreshRate caps the render rate. Zero keeps the bubbletea default.
	RefreshRate time.Duration

	Log *debuglog.Logger
	// Copy writes to the clipboard. Defaults to atotto/clipboard.
	Copy func(string) error
}

// Studio is the main model for the interactive studio.
type Studio struct {
	strings *i18n.Strings
	catalog *catalog.Catalog
	library state.PromptStore
	drafts  *state.DraftManager
	prefs   state.SettingsStore
	log     *debuglog.Logger
	copy    func(string) error

	tabs   TabBar
	tools  []Tool
	focus  []int
	style  *styleTool
	sheet  *style.Sheet
	footer *Footer
	theme  ThemeName

	width    int
	height   int
	dirty    bool
	quitting bool
}

// NewStudio creates a Studio and restores any unsaved draft.
func NewStudio(opts Options) *Studio {
	s := opts.Strings
	if s == nil {
		s = i18n.MustLoad(i18n.DefaultLocale)
	}
	cat := opts.Catalog
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	st := &Studio{
		strings: s,
		catalog: cat,
		library: opts.Library,
		prefs:   opts.Settings,
		log:     opts.Log,
		copy:    copyFn,
		tabs:    NewTabBar(TabLabels(s)),
		sheet:   style.NewSheet(""),
		footer:  NewFooter(s.HintKeys),
		theme:   ThemeDark,
	}

	st.style = newStyleTool(s, opts.StyleMaxLength)
	st.tools = []Tool{
		TabIndexVowel:    newVowelTool(s, opts.VowelLevel),
		TabIndexVocals:   newVocalsTool(s, opts.VocalMode),
		TabIndexChords:   newChordsTool(s),
		TabIndexNotes:    newNotesTool(s),
		TabIndexTags:     newTagsTool(s),
		TabIndexSkeleton: newSkeletonTool(s, opts.Structure),
		TabIndexStyle:    st.style,
		TabIndexSheet:    &sheetTool{sheet: st.sheet},
	}
	st.focus = make([]int, len(st.tools))

	if opts.Settings != nil {
		st.drafts = state.NewDraftManager(opts.Settings)
		st.restore()
	}
	return st
}

func (s *Studio) restore() {
	if v, ok, err := s.prefs.GetSetting(themeKey); err == nil && ok {
		s.theme = ParseTheme(v)
	}

	d, err := s.drafts.CheckForDraft()
	if err != nil {
		s.log.Log("[studio] draft check failed: %v", err)
		return
	}
	if d == nil {
		return
	}
	s.sheet.Append(d.Lyrics)
	s.style.Restore(d.Style)
	s.dirty = true
	s.footer.SetMessage(s.strings.StatusRestored, true)
	s.log.Log("[studio] restored draft from %s", d.SavedAt.Format(time.RFC3339))
}

// Init implements tea.Model.
func (s *Studio) Init() tea.Cmd {
	return s.focusCurrent()
}

// Update implements tea.Model.
func (s *Studio) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.updateSizes()

	case CatalogReloadedMsg:
		if msg.Catalog != nil {
			s.catalog = msg.Catalog
			s.log.Log("[studio] catalog reloaded")
		}
	}
	return s, nil
}

func (s *Studio) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		s.quitting = true
		s.saveDraft()
		return s, tea.Quit

	case "tab", "shift+tab":
		s.blurCurrent()
		s.tabs, _ = s.tabs.Update(msg)
		s.footer.Clear()
		return s, s.focusCurrent()

	case "up", "down":
		fields := s.current().Fields()
		if len(fields) < 2 {
			return s, nil
		}
		delta := 1
		if msg.String() == "up" {
			delta = -1
		}
		s.blurCurrent()
		i := s.tabs.Active()
		s.focus[i] = cycleIndex(s.focus[i], delta, len(fields))
		return s, s.focusCurrent()

	case "left", "right":
		if _, _, ok := s.current().Option(); ok {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			s.current().CycleOption(delta)
			s.dirty = true
			return s, nil
		}

	case "ctrl+y":
		s.copyPreview()
		return s, nil

	case "ctrl+a":
		s.appendPreview()
		return s, nil

	case "ctrl+s":
		s.save()
		return s, nil

	case "ctrl+t":
		s.toggleTheme()
		return s, nil
	}

	field := s.focusedField()
	if field == nil {
		return s, nil
	}
	before := field.Value()
	_, cmd := field.Update(msg)
	if field.Value() != before {
		s.dirty = true
	}
	return s, cmd
}

func (s *Studio) current() Tool {
	return s.tools[s.tabs.Active()]
}

func (s *Studio) focusedField() *InputField {
	fields := s.current().Fields()
	if len(fields) == 0 {
		return nil
	}
	return fields[s.focus[s.tabs.Active()]]
}

func (s *Studio) focusCurrent() tea.Cmd {
	if f := s.focusedField(); f != nil {
		return f.Focus()
	}
	return nil
}

func (s *Studio) blurCurrent() {
	if f := s.focusedField(); f != nil {
		f.Blur()
	}
}

func (s *Studio) copyPreview() {
	text := s.current().Preview()
	if strings.TrimSpace(text) == "" {
		s.footer.SetMessage(s.strings.StatusEmpty, false)
		return
	}
	if err := s.copy(text); err != nil {
		s.log.Log("[studio] clipboard: %v", err)
		s.footer.SetMessage(fmt.Sprintf(s.strings.StatusError, err), false)
		return
	}
	s.footer.SetMessage(s.strings.StatusCopied, true)
}

// appendable reports whether the active tool produces lyric sheet content.
func (s *Studio) appendable() bool {
	switch s.tabs.Active() {
	case TabIndexStyle, TabIndexSheet:
		return false
	}
	return true
}

func (s *Studio) appendPreview() {
	text := s.current().Preview()
	if !s.appendable() || strings.TrimSpace(text) == "" {
		s.footer.SetMessage(s.strings.StatusEmpty, false)
		return
	}
	s.sheet.Append(text)
	s.dirty = true
	s.footer.SetMessage(s.strings.StatusAppended, true)
}

func (s *Studio) save() {
	stylePrompt := s.style.Preview()
	lyrics := s.sheet.String()
	if stylePrompt == "" && lyrics == "" {
		s.footer.SetMessage(s.strings.StatusEmpty, false)
		return
	}
	if s.library == nil {
		s.footer.SetMessage(fmt.Sprintf(s.strings.StatusError, "no library"), false)
		return
	}

	p := &models.Prompt{
		Title:  promptTitle(stylePrompt, lyrics),
		Style:  stylePrompt,
		Lyrics: lyrics,
	}
	if err := s.library.CreatePrompt(p); err != nil {
		s.log.Log("[studio] save failed: %v", err)
		s.footer.SetMessage(fmt.Sprintf(s.strings.StatusError, err), false)
		return
	}

	s.dirty = false
	if s.drafts != nil {
		if err := s.drafts.Discard(); err != nil {
			s.log.Log("[studio] discard draft: %v", err)
		}
	}
	s.log.Log("[studio] saved prompt %s", p.ID)
	s.footer.SetMessage(s.strings.StatusSaved, true)
}

// promptTitle picks the first lyric line that is not a meta tag, falling
// back to the first style entry.
func promptTitle(stylePrompt, lyrics string) string {
	for _, line := range strings.Split(lyrics, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		return truncate(line, 60)
	}
	if entries := style.SplitList(stylePrompt); len(entries) > 0 {
		return truncate(entries[0], 60)
	}
	return "Untitled"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (s *Studio) toggleTheme() {
	s.theme = s.theme.Next()
	if s.prefs != nil {
		if err := s.prefs.SetSetting(themeKey, string(s.theme)); err != nil {
			s.log.Log("[studio] save theme: %v", err)
		}
	}
	s.footer.SetMessage(fmt.Sprintf(s.strings.StatusTheme, s.theme), true)
}

func (s *Studio) saveDraft() {
	if s.drafts == nil {
		return
	}
	var err error
	if s.dirty {
		err = s.drafts.Save(state.Draft{Style: s.style.Draft(), Lyrics: s.sheet.String()})
	} else {
		err = s.drafts.Discard()
	}
	if err != nil {
		s.log.Log("[studio] save draft: %v", err)
	}
}

func (s *Studio) updateSizes() {
	for _, t := range s.tools {
		for _, f := range t.Fields() {
			f.SetWidth(s.width)
		}
	}
	s.footer.SetWidth(s.width)
}

// Theme returns the active theme.
func (s *Studio) Theme() ThemeName {
	return s.theme
}

// Sheet returns the lyric sheet being assembled.
func (s *Studio) Sheet() string {
	return s.sheet.String()
}

// Preview returns the active tool's output.
func (s *Studio) Preview() string {
	return s.current().Preview()
}

// View implements tea.Model.
func (s *Studio) View() string {
	if s.quitting {
		return ""
	}

	st := NewStyles(s.theme)
	tool := s.current()

	sections := []string{
		st.Title.Render(s.strings.AppTitle),
		s.tabs.View(st),
	}
	for _, f := range tool.Fields() {
		sections = append(sections, f.View(st))
	}
	if label, value, ok := tool.Option(); ok {
		sections = append(sections, st.Label.Render(label+": ")+st.Option.Render("‹ "+value+" ›"))
	}
	if sug, ok := tool.(suggester); ok {
		if list := sug.Suggest(s.catalog, s.focus[s.tabs.Active()]); len(list) > 0 {
			if len(list) > maxSuggestions {
				list = list[:maxSuggestions]
			}
			sections = append(sections, st.Label.Render(s.strings.LabelSuggestions+": ")+
				st.Suggestion.Render(strings.Join(list, ", ")))
		}
	}

	preview := tool.Preview()
	if preview == "" {
		preview = " "
	}
	box := st.Preview
	if s.width > 2 {
		box = box.Width(s.width - 2)
	}
	sections = append(sections,
		st.Label.Render(s.strings.LabelPreview),
		box.Render(preview),
		s.footer.View(st),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Close flushes the draft. Call after the program exits.
func (s *Studio) Close() {
	if !s.quitting {
		s.saveDraft()
	}
}

// NewStudioProgram creates a Bubbletea program running a new Studio.
func NewStudioProgram(opts Options) (*tea.Program, *Studio) {
	studio := NewStudio(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.RefreshRate > 0 {
		fps := clamp(int(time.Second/opts.RefreshRate), 1, 120)
		progOpts = append(progOpts, tea.WithFPS(fps))
	}
	p := tea.NewProgram(studio, progOpts...)
	return p, studio
}
