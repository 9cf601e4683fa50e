package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputField is a labeled single-line text input.
type InputField struct {
	label string
	input textinput.Model
	width int
}

// NewInputField creates a new InputField.
func NewInputField(label, placeholder string) *InputField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Width = 60

	return &InputField{
		label: label,
		input: ti,
		width: 80,
	}
}

// Label returns the field label.
func (f *InputField) Label() string {
	return f.label
}

// Value returns the current text.
func (f *InputField) Value() string {
	return f.input.Value()
}

// SetValue replaces the current text.
func (f *InputField) SetValue(s string) {
	f.input.SetValue(s)
}

// SetWidth sets the width of the input field.
func (f *InputField) SetWidth(width int) {
	f.width = width
	f.input.Width = width - 6 // border, padding and prompt
}

// Update handles messages for the input field.
func (f *InputField) Update(msg tea.Msg) (*InputField, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the label and the input box.
func (f *InputField) View(st Styles) string {
	label := st.Label
	box := st.Field
	if f.input.Focused() {
		label = st.FocusedLabel
		box = st.FocusedField
	}

	prompt := st.Prompt.Render("> ")
	return lipgloss.JoinVertical(lipgloss.Left,
		label.Render(f.label),
		box.Width(f.width-2).Render(prompt+f.input.View()),
	)
}

// Focus sets focus on the input field.
func (f *InputField) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes focus from the input field.
func (f *InputField) Blur() {
	f.input.Blur()
}

// Focused reports whether the field has focus.
func (f *InputField) Focused() bool {
	return f.input.Focused()
}
