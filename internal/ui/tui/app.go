package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenNotes
	screenScheme
	screenSaturation
	screenReferences
	screenSubmit
	screenImport
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	doc domain.Document

	scr  screen
	menu list.Model

	notes  textarea.Model
	scheme schemeEditor
	sat    satEditor
	refs   refEditor
	sub    submitEditor

	importIn  textinput.Model
	errImport string

	status string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Scheme", "Element, unit, ground state, transitions and lasers"},
		menuItem{"Saturation curves", "Add measured saturation curves (optional)"},
		menuItem{"References", "DOIs or URLs backing the scheme (optional)"},
		menuItem{"Notes", "Free-form notes, Markdown allowed"},
		menuItem{"Submit", "Your name, then GitHub / e-mail / download"},
		menuItem{"Load drawer file", "Import an existing RIMSSchemeDrawer config"},
		menuItem{"Clear all", "Reset the whole form, discarding all entries"},
		menuItem{"Quit", "Save the form state and exit"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Resonance Ionization Scheme Submission"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	doc := domain.NewDocument()
	if deps.State != nil {
		if loaded, ok, err := deps.State.Load(); err == nil && ok {
			doc = loaded
		} else if err != nil && deps.Logger != nil {
			deps.Logger.Warn("state.load_failed", "err", err)
		}
	}
	if doc.SubmittedBy == "" {
		doc.SubmittedBy = deps.Settings.SubmitterName
	}

	notes := textarea.New()
	notes.Placeholder = "Add any notes for your scheme here. Markdown is fine."
	notes.SetWidth(72)
	notes.SetHeight(8)

	importIn := textinput.New()
	importIn.Placeholder = "/path/to/scheme.json"
	importIn.Width = 60

	m := model{
		theme:    t,
		deps:     deps,
		doc:      doc,
		scr:      screenHome,
		menu:     l,
		notes:    notes,
		scheme:   newSchemeEditor(),
		sat:      newSatEditor(),
		refs:     newRefEditor(),
		sub:      newSubmitEditor(),
		importIn: importIn,
	}
	m.syncAllFromDoc()
	return m
}

// syncAllFromDoc reloads every editor field from the document. Called at
// startup and after any wholesale replacement (import, clear all).
func (m *model) syncAllFromDoc() {
	m.notes.SetValue(m.doc.Notes)
	m.syncSchemeFromDoc()
	m.sub.name.SetValue(m.doc.SubmittedBy)
}

func (m model) Init() tea.Cmd { return nil }

func (m *model) saveState() {
	if m.deps.State == nil {
		return
	}
	if err := m.deps.State.Save(m.doc); err != nil && m.deps.Logger != nil {
		m.deps.Logger.Warn("state.save_failed", "err", err)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case fileLoadedMsg:
		return m.applyLoadedFile(msg), nil

	case fileSavedMsg:
		if msg.err != nil {
			m.sub.err = msg.err.Error()
			return m, nil
		}
		if msg.path != "" {
			m.sub.err = ""
			m.status = "Saved " + msg.path
		}
		return m, nil

	case linkOpenedMsg:
		if msg.err != nil {
			m.sub.err = msg.err.Error()
			if m.deps.Logger != nil {
				m.deps.Logger.Warn("link.open_failed", "url", msg.url, "err", msg.err)
			}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.saveState()
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenNotes:
			return m.updateNotes(msg)
		case screenScheme:
			return m.updateScheme(msg)
		case screenSaturation:
			return m.updateSaturation(msg)
		case screenReferences:
			return m.updateReferences(msg)
		case screenSubmit:
			return m.updateSubmit(msg)
		case screenImport:
			return m.updateImport(msg)
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyLoadedFile feeds picked file bytes through the import pipeline. The
// parsed document wholesale-replaces the current one; on failure the model is
// left untouched and the error sticks to the import section.
func (m model) applyLoadedFile(msg fileLoadedMsg) model {
	if msg.err != nil {
		m.errImport = msg.err.Error()
		return m
	}
	if msg.data == nil {
		// Dialog cancelled: no file chosen, nothing to do.
		return m
	}

	doc, err := usecase.NewImportDocument(m.deps.Files).Parse(msg.data)
	if err != nil {
		m.errImport = err.Error()
		return m
	}

	m.doc = doc
	m.syncAllFromDoc()
	m.errImport = ""
	m.status = "Loaded " + msg.path
	m.scr = screenScheme
	if m.deps.Logger != nil {
		m.deps.Logger.Info("import.applied", "path", msg.path, "element", doc.Scheme.Element)
	}
	return m
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.saveState()
		return m, tea.Quit

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.status = ""
		switch it.title {
		case "Scheme":
			m.scr = screenScheme
			m.scheme.focusField(m.scheme.focus)
		case "Saturation curves":
			m.scr = screenSaturation
			m.sat.focusField(m.sat.focus)
		case "References":
			m.scr = screenReferences
			m.refs.focusField(m.refs.focus)
		case "Notes":
			m.scr = screenNotes
			m.notes.Focus()
		case "Submit":
			m.scr = screenSubmit
			m.enterSubmitScreen()
		case "Load drawer file":
			m.scr = screenImport
			m.importIn.Focus()
		case "Clear all":
			m.doc.Reset()
			m.sat.reset()
			m.refs.reset()
			m.syncAllFromDoc()
			m.status = "Form cleared"
		case "Quit":
			m.saveState()
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.notes.Blur()
		m.scr = screenHome
		return m, nil
	}
	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	m.doc.Notes = m.notes.Value()
	return m, cmd
}

func (m model) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scr = screenHome
		return m, nil
	case "enter":
		return m, cmdReadFile(m.deps, m.importIn.Value())
	}
	var cmd tea.Cmd
	m.importIn, cmd = m.importIn.Update(msg)
	return m, cmd
}
