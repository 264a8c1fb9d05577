package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/emicon/internal/domain/entity"
)

// CandidateItem is a ranked candidate in the picker list.
type CandidateItem struct {
	entity.Candidate
}

// FilterValue implements list.Item.
func (i CandidateItem) FilterValue() string {
	return i.Label
}

// CandidateDelegate renders candidates on a single line.
type CandidateDelegate struct {
	Theme *Theme
}

// NewCandidateDelegate creates a themed candidate delegate.
func NewCandidateDelegate(theme *Theme) CandidateDelegate {
	return CandidateDelegate{Theme: theme}
}

// Height returns the height of each item.
func (d CandidateDelegate) Height() int { return 1 }

// Spacing returns the spacing between items.
func (d CandidateDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d CandidateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d CandidateDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(CandidateItem)
	if !ok {
		return
	}

	t := d.Theme
	cursor := cursorEmpty
	labelStyle := t.ListItemTitle
	if index == m.Index() {
		cursor = cursorSelected
		labelStyle = labelStyle.Foreground(t.Accent).Bold(true)
	}

	label := ci.Label
	if ci.IsSynthetic() {
		label += " " + t.Subtle.Render("(current)")
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		ci.Glyph,
		"  ",
		labelStyle.Render(label),
	)
	_, _ = fmt.Fprint(w, line)
}

// CandidateItems converts ranked candidates to list items.
func CandidateItems(candidates []entity.Candidate) []list.Item {
	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = CandidateItem{Candidate: c}
	}
	return items
}

// NewCandidateList creates a themed list for candidates. Filtering is off
// since ranking already narrows the list.
func NewCandidateList(theme *Theme, candidates []entity.Candidate, width, height int) list.Model {
	l := list.New(CandidateItems(candidates), NewCandidateDelegate(theme), width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = theme.Subtle.PaddingLeft(2)
	return l
}
