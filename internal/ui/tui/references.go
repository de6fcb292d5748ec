package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
)

const (
	refInputID = iota
	refInputAuthors
	refInputYear
	refInputCount
)

const (
	refPosID = iota
	refPosAuthors
	refPosYear
	refPosAdd
	refPosList
	refFieldCount
)

type refEditor struct {
	inputs [refInputCount]textinput.Model
	focus  int
	cursor int
	err    string
}

func newRefEditor() refEditor {
	var e refEditor
	for i := range e.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 48
		e.inputs[i] = ti
	}
	e.inputs[refInputID].Placeholder = "10.1088/1361-6471/aa78e0 or URL"
	e.inputs[refInputAuthors].Placeholder = "Wendt et al."
	e.inputs[refInputYear].Placeholder = "2014"
	e.inputs[refInputYear].Width = 8
	return e
}

func (e *refEditor) reset() {
	for i := range e.inputs {
		e.inputs[i].SetValue("")
	}
	e.cursor = 0
	e.err = ""
}

func refInputAt(pos int) int {
	if pos >= refPosID && pos <= refPosYear {
		return pos
	}
	return -1
}

func (e *refEditor) focusField(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos >= refFieldCount {
		pos = refFieldCount - 1
	}
	e.focus = pos
	for i := range e.inputs {
		e.inputs[i].Blur()
	}
	if idx := refInputAt(pos); idx >= 0 {
		e.inputs[idx].Focus()
	}
}

// commitReference validates the editor fields and upserts the entry; bad
// input leaves the fields untouched for correction.
func (m *model) commitReference() {
	e := &m.refs
	entry, err := domain.NewReference(
		e.inputs[refInputID].Value(),
		e.inputs[refInputAuthors].Value(),
		e.inputs[refInputYear].Value(),
	)
	if err != nil {
		e.err = err.Error()
		return
	}
	m.doc.UpsertReference(entry)
	e.reset()
}

func (m *model) editReference(i int) {
	if i < 0 || i >= len(m.doc.References) {
		return
	}
	r := m.doc.References[i]
	e := &m.refs
	e.inputs[refInputID].SetValue(r.ID)
	e.inputs[refInputAuthors].SetValue(r.Authors)
	e.inputs[refInputYear].SetValue(r.YearString())
}

func (m model) updateReferences(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := &m.refs
	key := msg.String()

	switch key {
	case "esc":
		m.scr = screenHome
		return m, nil
	case "tab", "down":
		if e.focus == refPosList && e.cursor < len(m.doc.References)-1 {
			e.cursor++
			return m, nil
		}
		e.focusField(e.focus + 1)
		if e.focus == refPosList && len(m.doc.References) == 0 {
			e.focusField(refPosAdd)
		}
		return m, nil
	case "shift+tab", "up":
		if e.focus == refPosList && e.cursor > 0 {
			e.cursor--
			return m, nil
		}
		e.focusField(e.focus - 1)
		return m, nil
	}

	if e.focus == refPosList {
		switch key {
		case "e":
			m.editReference(e.cursor)
		case "x":
			m.doc.RemoveReference(e.cursor)
			if e.cursor >= len(m.doc.References) && e.cursor > 0 {
				e.cursor--
			}
			if len(m.doc.References) == 0 {
				e.focusField(refPosAdd)
			}
		case "[":
			m.doc.MoveReference(e.cursor, -1)
			if e.cursor > 0 {
				e.cursor--
			}
		case "]":
			m.doc.MoveReference(e.cursor, +1)
			if e.cursor < len(m.doc.References)-1 {
				e.cursor++
			}
		case "o":
			if e.cursor >= 0 && e.cursor < len(m.doc.References) {
				return m, cmdOpenLink(m.deps, m.doc.References[e.cursor].URL())
			}
		}
		return m, nil
	}

	if key == "enter" || key == " " {
		if e.focus == refPosAdd {
			m.commitReference()
			return m, nil
		}
		if key == "enter" {
			e.focusField(e.focus + 1)
			return m, nil
		}
	}

	idx := refInputAt(e.focus)
	if idx < 0 {
		return m, nil
	}
	var cmd tea.Cmd
	e.inputs[idx], cmd = e.inputs[idx].Update(msg)
	return m, cmd
}

func (m model) viewReferences() string {
	var b strings.Builder
	t := m.theme
	e := m.refs

	b.WriteString(t.Section.Render("References") + "\n\n")
	b.WriteString(t.Subtitle.Render("Give a bare DOI, or a URL plus author display name and year.") + "\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n",
		m.refLabel("DOI or URL:", refPosID), e.inputs[refInputID].View()))
	b.WriteString(fmt.Sprintf("%s %s\n",
		m.refLabel("Authors:", refPosAuthors), e.inputs[refInputAuthors].View()))
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		m.refLabel("Year:", refPosYear), e.inputs[refInputYear].View()))

	b.WriteString(m.refLabel("[ Add or Update ]", refPosAdd) + "\n")

	if e.err != "" {
		b.WriteString("\n" + t.Error.Render(e.err) + "\n")
	}

	if len(m.doc.References) > 0 {
		b.WriteString("\n" + t.Subtitle.Render("Existing references:") + "\n")
		for i, r := range m.doc.References {
			marker := "  "
			line := fmt.Sprintf("%s (%s)", r.ID, r.Label())
			if e.focus == refPosList && e.cursor == i {
				marker = "> "
				line = t.Selected.Render(line)
			}
			b.WriteString(marker + line + "\n")
		}
		if e.focus == refPosList {
			b.WriteString(t.Help.Render("e edit • x delete • [ up • ] down • o open URL") + "\n")
		}
	}

	b.WriteString("\n" + t.Help.Render("tab/↑↓ move • enter apply • esc back"))
	return b.String()
}

func (m model) refLabel(label string, pos int) string {
	if m.scr == screenReferences && m.refs.focus == pos {
		return m.theme.Selected.Render(label)
	}
	return m.theme.Label.Render(label)
}
