package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Footer renders the status line and keyboard hints.
type Footer struct {
	message string
	success bool
	hints   string
	width   int
}

// NewFooter creates a Footer showing hints.
func NewFooter(hints string) *Footer {
	return &Footer{hints: hints}
}

// SetMessage sets the status message.
func (f *Footer) SetMessage(message string, success bool) {
	f.message = message
	f.success = success
}

// Message returns the current status message.
func (f *Footer) Message() string {
	return f.message
}

// Clear removes the status message.
func (f *Footer) Clear() {
	f.message = ""
}

// SetWidth sets the footer width.
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// View renders the footer.
func (f *Footer) View(st Styles) string {
	hints := st.Hint.Render(f.hints)
	if f.message == "" {
		return hints
	}

	status := st.Success
	if !f.success {
		status = st.Error
	}
	line := status.Render(f.message)
	if f.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(f.width).Render(line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, hints)
}
