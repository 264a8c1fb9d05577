// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/emicon/internal/application/port"
	"github.com/bnema/emicon/internal/application/usecase"
	"github.com/bnema/emicon/internal/cli/styles"
	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/domain/manifest"
	"github.com/bnema/emicon/internal/logging"
)

const (
	// InitialQuery pre-fills the search field.
	InitialQuery = "avocado"

	stateBuffer   = 16
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 9
)

// PickerDeps are the use cases driving the picker.
type PickerDeps struct {
	Session  *usecase.EmojiSessionUseCase
	Exporter *usecase.ExportIconsUseCase
	Dataset  *usecase.LoadDatasetUseCase
	// CeilingOverride replaces the persisted emoji version when set.
	CeilingOverride string
	// Download is where ctrl+s writes icons.zip and the manifest.
	Download usecase.DownloadInput
	// Vector is the initial state of the vector fonts toggle.
	Vector bool
	// Clipboard receives ctrl+y copies. Optional.
	Clipboard port.Clipboard
}

// PickerModel is the interactive emoji search and export screen.
type PickerModel struct {
	search  textinput.Model
	list    list.Model
	help    help.Model
	loading styles.LoadingModel
	keys    styles.PickerKeyMap

	state        entity.ExportState
	states       chan entity.ExportState
	selection    entity.Selection
	archive      *entity.Archive
	ceiling      entity.VersionCeiling
	total        int
	loaded       bool
	vector       bool
	showManifest bool
	showHelp     bool
	status       string
	err          error
	width        int
	height       int

	ctx   context.Context
	deps  PickerDeps
	theme *styles.Theme
}

// ManifestOptionsMsg applies reloaded manifest fields to later exports.
type ManifestOptionsMsg struct {
	Options manifest.Options
}

type datasetLoadedMsg struct {
	out *usecase.LoadDatasetOutput
	err error
}

type exportStateMsg struct {
	state entity.ExportState
}

type exportDoneMsg struct {
	archive *entity.Archive
	err     error
}

type copyDoneMsg struct {
	what string
	err  error
}

type downloadDoneMsg struct {
	out *usecase.DownloadOutput
	err error
}

// NewPickerModel creates the picker and subscribes to export state changes.
func NewPickerModel(ctx context.Context, theme *styles.Theme, deps PickerDeps) PickerModel {
	log := logging.FromContext(ctx)
	log.Debug().Bool("vector", deps.Vector).Msg("creating picker model")

	states := make(chan entity.ExportState, stateBuffer)
	deps.Exporter.OnStateChange(func(s entity.ExportState) {
		select {
		case states <- s:
		default:
			log.Debug().Str("state", s.String()).Msg("export state dropped")
		}
	})

	session := deps.Session.State()
	search := styles.NewSearchInput(theme, InitialQuery)
	search.Focus()

	return PickerModel{
		search:    search,
		list:      styles.NewCandidateList(theme, session.Candidates, defaultWidth, defaultHeight-chromeHeight),
		help:      styles.NewStyledHelp(theme),
		loading:   styles.NewLoading(theme, ""),
		keys:      styles.DefaultPickerKeyMap(),
		state:     deps.Exporter.State(),
		states:    states,
		selection: session.Selection,
		vector:    deps.Vector,
		status:    "loading emoji dataset",
		width:     defaultWidth,
		height:    defaultHeight,
		ctx:       ctx,
		deps:      deps,
		theme:     theme,
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loading.Spinner.Tick,
		m.loadDataset,
		m.waitForState,
	)
}

func (m PickerModel) loadDataset() tea.Msg {
	out, err := m.deps.Dataset.Load(m.ctx, usecase.LoadDatasetInput{CeilingOverride: m.deps.CeilingOverride})
	return datasetLoadedMsg{out: out, err: err}
}

func (m PickerModel) waitForState() tea.Msg {
	select {
	case s := <-m.states:
		return exportStateMsg{state: s}
	case <-m.ctx.Done():
		return nil
	}
}

func (m PickerModel) runExport(sel entity.Selection, family entity.FontFamily) tea.Cmd {
	return func() tea.Msg {
		archive, err := m.deps.Exporter.Export(m.ctx, usecase.ExportInput{Selection: sel, Family: family})
		return exportDoneMsg{archive: archive, err: err}
	}
}

func (m PickerModel) runDownload() tea.Msg {
	out, err := m.deps.Exporter.Download(m.ctx, m.deps.Download)
	return downloadDoneMsg{out: out, err: err}
}

// copyText copies the manifest once an export is ready, the glyph before.
func (m PickerModel) copyText() tea.Cmd {
	what, text := "emoji", m.selection.Glyph
	if m.archive != nil && m.state.DownloadEnabled() {
		what, text = "manifest", m.archive.Manifest
	}
	clip := m.deps.Clipboard
	return func() tea.Msg {
		return copyDoneMsg{what: what, err: clip.WriteText(m.ctx, text)}
	}
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-chromeHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case datasetLoadedMsg:
		return m.handleDataset(msg), nil

	case exportStateMsg:
		m.state = msg.state
		return m, m.waitForState

	case exportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = "export failed"
			return m, nil
		}
		m.err = nil
		m.archive = msg.archive
		m.status = fmt.Sprintf("%d icons ready (%d bytes)", len(msg.archive.Files), len(msg.archive.Data))
		return m, nil

	case downloadDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = "download failed"
			return m, nil
		}
		m.err = nil
		m.status = "saved " + msg.out.ArchivePath
		if msg.out.ManifestPath != "" {
			m.status += " and " + msg.out.ManifestPath
		}
		return m, nil

	case copyDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = "copy failed"
			return m, nil
		}
		m.err = nil
		m.status = msg.what + " copied"
		return m, nil

	case ManifestOptionsMsg:
		m.deps.Exporter.SetManifestOptions(msg.Options)
		m.status = "manifest settings reloaded"
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m PickerModel) handleDataset(msg datasetLoadedMsg) PickerModel {
	log := logging.FromContext(m.ctx)
	if msg.err != nil {
		m.err = msg.err
		m.status = "emoji dataset unavailable"
		log.Error().Err(msg.err).Msg("dataset load failed")
		return m
	}

	if err := m.deps.Session.ProvideDataset(m.ctx, msg.out.Emojis); err != nil && !errors.Is(err, usecase.ErrDatasetAlreadyProvided) {
		m.err = err
		return m
	}
	m.loaded = true
	m.ceiling = msg.out.Ceiling
	m.total = msg.out.Total
	m.status = fmt.Sprintf("%d emoji loaded", len(msg.out.Emojis))
	return m
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Select):
		if item, ok := m.list.SelectedItem().(styles.CandidateItem); ok {
			state := m.deps.Session.Select(m.ctx, entity.Selection{Glyph: item.Glyph, Label: item.Label})
			m.selection = state.Selection
		}
		return m, nil

	case key.Matches(msg, m.keys.Vector):
		m.vector = !m.vector
		return m, nil

	case key.Matches(msg, m.keys.Export):
		if m.state.Busy() {
			m.status = entity.ErrExportBusy.Error()
			return m, nil
		}
		m.status = "drawing " + m.selection.Glyph
		return m, tea.Batch(m.loading.Spinner.Tick, m.runExport(m.selection, entity.FontFamilyFromToggle(m.vector)))

	case key.Matches(msg, m.keys.Download):
		if !m.state.DownloadEnabled() {
			m.status = entity.ErrNotReady.Error()
			return m, nil
		}
		return m, m.runDownload

	case key.Matches(msg, m.keys.Manifest):
		m.showManifest = !m.showManifest
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.deps.Clipboard == nil {
			return m, nil
		}
		return m, m.copyText()
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m = m.applySearch()
	}
	return m, cmd
}

// applySearch re-ranks on the current query and adopts the top candidate.
func (m PickerModel) applySearch() PickerModel {
	state := m.deps.Session.Search(m.ctx, m.search.Value())
	m.selection = state.Selection
	m.list.SetItems(styles.CandidateItems(state.Candidates))
	m.list.Select(0)
	return m
}

// View implements tea.Model.
func (m PickerModel) View() string {
	t := m.theme

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.Title.Render("Emicon"),
		"  ",
		t.StateBadge(m.state),
		" ",
		t.CeilingBadge(m.ceiling),
	)

	family := entity.FontFamilyFromToggle(m.vector)
	preview := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(m.selection.Glyph),
		"  ",
		t.Normal.Render(m.selection.Label),
		"  ",
		t.Subtle.Render(family.String()),
	)

	sections := []string{
		header,
		t.InputBox(m.search.View(), m.search.Focused()),
		preview,
		m.list.View(),
	}

	if m.showManifest {
		sections = append(sections, m.manifestView())
	}

	sections = append(sections, m.statusView(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PickerModel) manifestView() string {
	t := m.theme
	if m.archive == nil {
		return t.Box.Render(t.Subtle.Render("no export yet"))
	}
	return t.Box.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		t.BoxHeader.Render(styles.IconConfig+" manifest"),
		t.Normal.Render(m.archive.Manifest),
	))
}

func (m PickerModel) statusView() string {
	t := m.theme
	switch {
	case m.err != nil:
		return t.ErrorStyle.Render(styles.IconX + " " + m.status + ": " + m.err.Error())
	case m.state.Busy(), !m.loaded && m.status != "":
		loading := m.loading
		loading.Message = m.status
		return loading.View()
	case m.state.DownloadEnabled():
		return t.SuccessStyle.Render(styles.IconPackage + " " + m.status)
	default:
		return t.Subtle.Render(m.status)
	}
}
