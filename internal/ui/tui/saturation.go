package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
)

// Saturation editor inputs.
const (
	satInputTitle = iota
	satInputNotes
	satInputX
	satInputXUnc
	satInputY
	satInputYUnc
	satInputCount
)

// Focus chain: inputs interleaved with the unit/fit toggles, then the
// add-or-update action, then the list of existing entries.
const (
	satPosTitle = iota
	satPosUnit
	satPosFit
	satPosNotes
	satPosX
	satPosXUnc
	satPosY
	satPosYUnc
	satPosAdd
	satPosList
	satFieldCount
)

type satEditor struct {
	inputs [satInputCount]textinput.Model
	unit   domain.SaturationCurveUnit
	fit    bool
	focus  int
	cursor int
	err    string
}

func newSatEditor() satEditor {
	e := satEditor{unit: domain.UnitWCM2, fit: true}
	for i := range e.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 40
		e.inputs[i] = ti
	}
	e.inputs[satInputTitle].Placeholder = "e.g. 459.1 nm first step"
	e.inputs[satInputX].Placeholder = "1, 2, 3"
	e.inputs[satInputY].Placeholder = "10, 20, 25"
	return e
}

func (e *satEditor) reset() {
	for i := range e.inputs {
		e.inputs[i].SetValue("")
	}
	e.unit = domain.UnitWCM2
	e.fit = true
	e.cursor = 0
	e.err = ""
}

func satInputAt(pos int) int {
	switch pos {
	case satPosTitle:
		return satInputTitle
	case satPosNotes:
		return satInputNotes
	case satPosX:
		return satInputX
	case satPosXUnc:
		return satInputXUnc
	case satPosY:
		return satInputY
	case satPosYUnc:
		return satInputYUnc
	}
	return -1
}

func (e *satEditor) focusField(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos >= satFieldCount {
		pos = satFieldCount - 1
	}
	e.focus = pos
	for i := range e.inputs {
		e.inputs[i].Blur()
	}
	if idx := satInputAt(pos); idx >= 0 {
		e.inputs[idx].Focus()
	}
}

// commitSaturation validates the editor fields and upserts the curve. On
// error the inputs are retained for correction; on success they are cleared
// back to defaults.
func (m *model) commitSaturation() {
	e := &m.sat
	curve, err := domain.NewSaturationCurve(
		e.inputs[satInputTitle].Value(),
		e.inputs[satInputNotes].Value(),
		e.unit,
		e.fit,
		e.inputs[satInputX].Value(),
		e.inputs[satInputXUnc].Value(),
		e.inputs[satInputY].Value(),
		e.inputs[satInputYUnc].Value(),
	)
	if err != nil {
		e.err = err.Error()
		return
	}
	m.doc.UpsertSaturationCurve(curve)
	e.reset()
}

// editSaturation loads an existing entry back into the editor wholesale.
func (m *model) editSaturation(i int) {
	if i < 0 || i >= len(m.doc.SaturationCurves) {
		return
	}
	c := m.doc.SaturationCurves[i]
	e := &m.sat
	e.inputs[satInputTitle].SetValue(c.Title)
	e.inputs[satInputNotes].SetValue(c.Notes)
	e.inputs[satInputX].SetValue(c.XString())
	e.inputs[satInputXUnc].SetValue(c.XUncString())
	e.inputs[satInputY].SetValue(c.YString())
	e.inputs[satInputYUnc].SetValue(c.YUncString())
	e.unit = c.Unit
	e.fit = c.Fit
}

func (m model) updateSaturation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := &m.sat
	key := msg.String()

	switch key {
	case "esc":
		m.scr = screenHome
		return m, nil
	case "tab", "down":
		if e.focus == satPosList && e.cursor < len(m.doc.SaturationCurves)-1 {
			e.cursor++
			return m, nil
		}
		e.focusField(e.focus + 1)
		if e.focus == satPosList && len(m.doc.SaturationCurves) == 0 {
			e.focusField(satPosAdd)
		}
		return m, nil
	case "shift+tab", "up":
		if e.focus == satPosList && e.cursor > 0 {
			e.cursor--
			return m, nil
		}
		e.focusField(e.focus - 1)
		return m, nil
	}

	if e.focus == satPosList {
		switch key {
		case "e":
			m.editSaturation(e.cursor)
		case "x":
			m.doc.RemoveSaturationCurve(e.cursor)
			if e.cursor >= len(m.doc.SaturationCurves) && e.cursor > 0 {
				e.cursor--
			}
			if len(m.doc.SaturationCurves) == 0 {
				e.focusField(satPosAdd)
			}
		case "[":
			m.doc.MoveSaturationCurve(e.cursor, -1)
			if e.cursor > 0 {
				e.cursor--
			}
		case "]":
			m.doc.MoveSaturationCurve(e.cursor, +1)
			if e.cursor < len(m.doc.SaturationCurves)-1 {
				e.cursor++
			}
		}
		return m, nil
	}

	switch key {
	case " ", "enter":
		switch e.focus {
		case satPosUnit:
			if e.unit == domain.UnitWCM2 {
				e.unit = domain.UnitW
			} else {
				e.unit = domain.UnitWCM2
			}
			return m, nil
		case satPosFit:
			e.fit = !e.fit
			return m, nil
		case satPosAdd:
			m.commitSaturation()
			return m, nil
		}
		if key == "enter" {
			e.focusField(e.focus + 1)
			return m, nil
		}
	}

	idx := satInputAt(e.focus)
	if idx < 0 {
		return m, nil
	}
	var cmd tea.Cmd
	e.inputs[idx], cmd = e.inputs[idx].Update(msg)
	return m, cmd
}

func (m model) viewSaturation() string {
	var b strings.Builder
	t := m.theme
	e := m.sat

	b.WriteString(t.Section.Render("Saturation curves") + "\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n",
		m.satLabel("Title:", satPosTitle), e.inputs[satInputTitle].View()))
	b.WriteString(fmt.Sprintf("%s %s\n",
		m.satLabel("Unit x-axis:", satPosUnit),
		m.toggleView(e.unit == domain.UnitWCM2, domain.UnitWCM2.String(), domain.UnitW.String())))
	b.WriteString(fmt.Sprintf("%s\n", m.satLabel(checkbox("Fit saturation curve", e.fit), satPosFit)))
	b.WriteString(fmt.Sprintf("%s %s\n",
		m.satLabel("Notes:", satPosNotes), e.inputs[satInputNotes].View()))
	b.WriteString(fmt.Sprintf("%s %s\n",
		m.satLabel(e.unit.XAxisName()+" (x-) data:", satPosX), e.inputs[satInputX].View()))
	b.WriteString(fmt.Sprintf("%s %s\n",
		m.satLabel("x-data uncertainty:", satPosXUnc), e.inputs[satInputXUnc].View()))
	b.WriteString(fmt.Sprintf("%s %s\n",
		m.satLabel("Signal (y-) data:", satPosY), e.inputs[satInputY].View()))
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		m.satLabel("y-data uncertainty:", satPosYUnc), e.inputs[satInputYUnc].View()))

	b.WriteString(m.satLabel("[ Add or Update ]", satPosAdd) + "\n")

	if e.err != "" {
		b.WriteString("\n" + t.Error.Render(e.err) + "\n")
	}

	if n := len(m.doc.SaturationCurves); n > 0 {
		b.WriteString("\n" + t.Subtitle.Render("Existing entries:") + "\n")
		for i, c := range m.doc.SaturationCurves {
			marker := "  "
			line := fmt.Sprintf("%s (%d points)", c.Title, len(c.X))
			if e.focus == satPosList && e.cursor == i {
				marker = "> "
				line = t.Selected.Render(line)
			}
			b.WriteString(marker + line + "\n")
		}
		if e.focus == satPosList {
			b.WriteString(t.Help.Render("e edit • x delete • [ up • ] down") + "\n")
		}
	}

	b.WriteString("\n" + t.Help.Render("tab/↑↓ move • space toggle • enter apply • esc back"))
	return b.String()
}

func (m model) satLabel(label string, pos int) string {
	if m.scr == screenSaturation && m.sat.focus == pos {
		return m.theme.Selected.Render(label)
	}
	return m.theme.Label.Render(label)
}
