package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/songsmith/internal/i18n"
)

// Tab index constants.
const (
	TabIndexVowel = iota
	TabIndexVocals
	TabIndexChords
	TabIndexNotes
	TabIndexTags
	TabIndexSkeleton
	TabIndexStyle
	TabIndexSheet
)

// TabLabels returns the tab labels in index order.
func TabLabels(s *i18n.Strings) []string {
	return []string{
		s.TabVowel, s.TabVocals, s.TabChords, s.TabNotes,
		s.TabTags, s.TabSkeleton, s.TabStyle, s.TabSheet,
	}
}

// TabBar is a navigation component for switching between tools.
type TabBar struct {
	tabs   []string
	active int
}

// NewTabBar creates a TabBar with the given labels.
func NewTabBar(labels []string) TabBar {
	return TabBar{tabs: labels}
}

// Update handles keyboard input for tab navigation.
func (t TabBar) Update(msg tea.Msg) (TabBar, tea.Cmd) {
	if len(t.tabs) == 0 {
		return t, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			t.active = (t.active + 1) % len(t.tabs)
		case "shift+tab":
			t.active = (t.active - 1 + len(t.tabs)) % len(t.tabs)
		}
	}
	return t, nil
}

// View renders the tab bar.
func (t TabBar) View(st Styles) string {
	rendered := make([]string, 0, len(t.tabs))
	for i, tab := range t.tabs {
		if i == t.active {
			rendered = append(rendered, st.ActiveTab.Render(tab))
		} else {
			rendered = append(rendered, st.InactiveTab.Render(tab))
		}
	}
	return st.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

// SetActive sets the active tab by index.
// If the index is out of bounds, it is clamped to valid range.
func (t *TabBar) SetActive(index int) {
	if index < 0 {
		t.active = 0
	} else if index >= len(t.tabs) {
		t.active = len(t.tabs) - 1
	} else {
		t.active = index
	}
}

// Active returns the currently active tab index.
func (t TabBar) Active() int {
	return t.active
}

// Tabs returns the list of tab labels.
func (t TabBar) Tabs() []string {
	return t.tabs
}
