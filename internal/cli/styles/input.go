package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const searchCharLimit = 256

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "/ "
	return ti
}

// NewSearchInput creates the emoji search field, prefilled with value.
func NewSearchInput(theme *Theme, value string) textinput.Model {
	ti := NewStyledInput(theme, "Search emoji...")
	ti.Prompt = "🔍 "
	ti.CharLimit = searchCharLimit
	ti.SetValue(value)
	return ti
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	return style.Render(input)
}
