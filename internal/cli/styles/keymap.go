package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PickerKeyMap defines keybindings for the emoji picker.
type PickerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Vector   key.Binding
	Export   key.Binding
	Download key.Binding
	Manifest key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Export, k.Download, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Vector, k.Export, k.Download, k.Manifest, k.Copy},
		{k.Help, k.Quit},
	}
}

// DefaultPickerKeyMap returns the default picker keybindings. Letter keys
// go to the search field, so actions use ctrl chords.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Vector: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("C-v", "vector fonts"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "export"),
		),
		Download: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "download"),
		),
		Manifest: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "manifest"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
