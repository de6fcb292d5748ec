package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/usecase"
)

const (
	subPosName = iota
	subPosGitHub
	subPosEmail
	subPosPath
	subPosDownload
	subFieldCount
)

type submitEditor struct {
	name  textinput.Model
	path  textinput.Model
	focus int
	err   string
}

func newSubmitEditor() submitEditor {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Your name"
	name.Width = 40

	path := textinput.New()
	path.Prompt = ""
	path.Width = 60

	return submitEditor{name: name, path: path}
}

func (e *submitEditor) focusField(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos >= subFieldCount {
		pos = subFieldCount - 1
	}
	e.focus = pos
	e.name.Blur()
	e.path.Blur()
	switch pos {
	case subPosName:
		e.name.Focus()
	case subPosPath:
		e.path.Focus()
	}
}

// enterSubmitScreen prefills the save path with the suggested filename for
// the current element.
func (m *model) enterSubmitScreen() {
	if strings.TrimSpace(m.sub.path.Value()) == "" {
		m.sub.path.SetValue(filepath.Join(m.deps.Settings.OutputDir, usecase.SuggestedFilename(m.doc)))
	}
	m.sub.focusField(subPosName)
}

// submissionBody serializes the current document, parking any validation
// error on the submit section.
func (m *model) submissionBody() (string, bool) {
	body, err := usecase.SubmissionBody(m.doc)
	if err != nil {
		m.sub.err = err.Error()
		return "", false
	}
	m.sub.err = ""
	if m.deps.Debug && m.deps.Logger != nil {
		m.deps.Logger.Debug("submission.body", "json", body)
	}
	return body, true
}

func (m model) updateSubmit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := &m.sub
	key := msg.String()

	switch key {
	case "esc":
		m.scr = screenHome
		return m, nil
	case "tab", "down":
		e.focusField(e.focus + 1)
		return m, nil
	case "shift+tab", "up":
		e.focusField(e.focus - 1)
		return m, nil
	case "enter", " ":
		switch e.focus {
		case subPosGitHub:
			body, ok := m.submissionBody()
			if !ok {
				return m, nil
			}
			return m, cmdOpenLink(m.deps, usecase.GitHubIssueURL(body, m.doc.Scheme.Element))
		case subPosEmail:
			body, ok := m.submissionBody()
			if !ok {
				return m, nil
			}
			return m, cmdOpenLink(m.deps, usecase.EmailLink(body, m.doc.Scheme.Element))
		case subPosDownload:
			return m, cmdExport(m.deps, m.doc, m.sub.path.Value())
		}
		if key == "enter" {
			e.focusField(e.focus + 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch e.focus {
	case subPosName:
		e.name, cmd = e.name.Update(msg)
		m.doc.SubmittedBy = e.name.Value()
	case subPosPath:
		e.path, cmd = e.path.Update(msg)
	}
	return m, cmd
}

func (m model) viewSubmit() string {
	var b strings.Builder
	t := m.theme
	e := m.sub

	b.WriteString(t.Section.Render("Submit") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		m.subLabel("Submitted by:", subPosName), e.name.View()))

	b.WriteString(m.subLabel("[ Submit via GitHub ]", subPosGitHub) + "  ")
	b.WriteString(m.subLabel("[ Submit via E-Mail ]", subPosEmail) + "\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n",
		m.subLabel("Save to:", subPosPath), e.path.View()))
	b.WriteString(m.subLabel("[ Download configuration ]", subPosDownload) + "\n")

	if e.err != "" {
		b.WriteString("\n" + t.Error.Render(e.err) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + t.Subtitle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + t.Help.Render("tab/↑↓ move • enter activate • esc back"))
	return b.String()
}

func (m model) subLabel(label string, pos int) string {
	if m.scr == screenSubmit && m.sub.focus == pos {
		return m.theme.Selected.Render(label)
	}
	return m.theme.Label.Render(label)
}
