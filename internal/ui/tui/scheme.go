package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
)

// Scheme editor input slots. The first four are fixed fields, then three per
// transition step.
const (
	schemeInputElement = iota
	schemeInputGSLevel
	schemeInputGSTerm
	schemeInputIPTerm
	schemeInputStepBase // + 3*step: level, term, strength
)

// Focus chain positions. Toggles sit between the text inputs so the whole
// form can be walked with tab/arrows.
const (
	schemePosElement = iota
	schemePosUnit
	schemePosGSLevel
	schemePosGSTerm
	schemePosIPTerm
	schemePosStepBase // + 5*step: level, term, strength, low-lying, forbidden
)

const (
	schemePosLastStep = schemePosStepBase + 5*domain.NumTransitions
	schemePosLasers   = schemePosLastStep + 1
	schemeFieldCount  = schemePosLasers + 1
)

type schemeEditor struct {
	inputs []textinput.Model
	focus  int
	err    string
}

func newSchemeEditor() schemeEditor {
	n := schemeInputStepBase + 3*domain.NumTransitions
	inputs := make([]textinput.Model, n)
	for i := range inputs {
		ti := textinput.New()
		ti.Width = 16
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[schemeInputElement].Placeholder = "H"
	inputs[schemeInputElement].Width = 4
	inputs[schemeInputGSLevel].Placeholder = "0"
	return schemeEditor{inputs: inputs}
}

// schemeInputAt maps a focus position onto its text input, or -1 for toggles.
func schemeInputAt(pos int) int {
	switch pos {
	case schemePosElement:
		return schemeInputElement
	case schemePosGSLevel:
		return schemeInputGSLevel
	case schemePosGSTerm:
		return schemeInputGSTerm
	case schemePosIPTerm:
		return schemeInputIPTerm
	}
	if pos >= schemePosStepBase && pos < schemePosLastStep {
		rel := pos - schemePosStepBase
		step, field := rel/5, rel%5
		if field < 3 {
			return schemeInputStepBase + 3*step + field
		}
	}
	return -1
}

func (e *schemeEditor) focusField(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos >= schemeFieldCount {
		pos = schemeFieldCount - 1
	}
	e.focus = pos
	for i := range e.inputs {
		e.inputs[i].Blur()
	}
	if idx := schemeInputAt(pos); idx >= 0 {
		e.inputs[idx].Focus()
	}
}

func (m *model) syncSchemeFromDoc() {
	s := m.doc.Scheme
	e := &m.scheme
	e.inputs[schemeInputElement].SetValue(s.Element.String())
	e.inputs[schemeInputGSLevel].SetValue(s.GroundState.Level)
	e.inputs[schemeInputGSTerm].SetValue(s.GroundState.TermSymbol)
	e.inputs[schemeInputIPTerm].SetValue(s.IPTermSymbol)
	for i, tr := range s.Transitions {
		e.inputs[schemeInputStepBase+3*i].SetValue(tr.Level)
		e.inputs[schemeInputStepBase+3*i+1].SetValue(tr.TermSymbol)
		e.inputs[schemeInputStepBase+3*i+2].SetValue(tr.Strength)
	}
	e.err = ""
}

// syncSchemeToDoc writes the text fields through to the document. The form
// mutates the model directly; validation happens at export.
func (m *model) syncSchemeToDoc() {
	e := &m.scheme
	sym := strings.TrimSpace(e.inputs[schemeInputElement].Value())
	if sym != "" {
		if el, err := domain.ParseElement(sym); err == nil {
			m.doc.Scheme.Element = el
			e.err = ""
		} else {
			e.err = err.Error()
		}
	}
	m.doc.Scheme.GroundState.Level = e.inputs[schemeInputGSLevel].Value()
	m.doc.Scheme.GroundState.TermSymbol = e.inputs[schemeInputGSTerm].Value()
	m.doc.Scheme.IPTermSymbol = e.inputs[schemeInputIPTerm].Value()
	for i := range m.doc.Scheme.Transitions {
		m.doc.Scheme.Transitions[i].Level = e.inputs[schemeInputStepBase+3*i].Value()
		m.doc.Scheme.Transitions[i].TermSymbol = e.inputs[schemeInputStepBase+3*i+1].Value()
		m.doc.Scheme.Transitions[i].Strength = e.inputs[schemeInputStepBase+3*i+2].Value()
	}
}

func (m model) updateScheme(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := &m.scheme

	switch msg.String() {
	case "esc":
		m.scr = screenHome
		return m, nil

	case "tab", "down":
		e.focusField(e.focus + 1)
		return m, nil

	case "shift+tab", "up":
		e.focusField(e.focus - 1)
		return m, nil

	case " ", "enter":
		if toggled := m.toggleSchemeField(e.focus); toggled {
			return m, nil
		}
		if msg.String() == "enter" {
			e.focusField(e.focus + 1)
			return m, nil
		}
	}

	idx := schemeInputAt(e.focus)
	if idx < 0 {
		return m, nil
	}
	var cmd tea.Cmd
	e.inputs[idx], cmd = e.inputs[idx].Update(msg)
	m.syncSchemeToDoc()
	return m, cmd
}

// toggleSchemeField flips the toggle at pos, reporting whether pos was one.
func (m *model) toggleSchemeField(pos int) bool {
	s := &m.doc.Scheme
	switch pos {
	case schemePosUnit:
		if s.Unit == domain.UnitCM1 {
			s.Unit = domain.UnitNM
		} else {
			s.Unit = domain.UnitCM1
		}
	case schemePosLastStep:
		s.LastStepToIP = !s.LastStepToIP
	case schemePosLasers:
		switch s.Lasers {
		case domain.LasersTiSa:
			s.Lasers = domain.LasersDye
		case domain.LasersDye:
			s.Lasers = domain.LasersBoth
		default:
			s.Lasers = domain.LasersTiSa
		}
	default:
		if pos >= schemePosStepBase && pos < schemePosLastStep {
			rel := pos - schemePosStepBase
			step, field := rel/5, rel%5
			switch field {
			case 3:
				s.Transitions[step].LowLying = !s.Transitions[step].LowLying
				return true
			case 4:
				s.Transitions[step].Forbidden = !s.Transitions[step].Forbidden
				return true
			}
		}
		return false
	}
	return true
}

func (m model) viewScheme() string {
	var b strings.Builder
	t := m.theme
	e := m.scheme
	s := m.doc.Scheme

	b.WriteString(t.Section.Render("Scheme") + "\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n",
		m.fieldLabel("Element:", schemePosElement),
		e.inputs[schemeInputElement].View()))
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		m.fieldLabel("Unit:", schemePosUnit),
		m.toggleView(s.Unit == domain.UnitCM1, domain.UnitCM1.String(), domain.UnitNM.String())))

	b.WriteString(fmt.Sprintf("%s %s  %s %s\n\n",
		m.fieldLabel("Ground state (1/cm):", schemePosGSLevel),
		e.inputs[schemeInputGSLevel].View(),
		m.fieldLabel("Term:", schemePosGSTerm),
		e.inputs[schemeInputGSTerm].View()))

	for i := 0; i < domain.NumTransitions; i++ {
		tr := s.Transitions[i]
		name := "Step"
		if tr.LowLying {
			name = "Low-lying"
		}
		base := schemePosStepBase + 5*i
		b.WriteString(fmt.Sprintf("%s %s %s %s %s %s\n",
			m.fieldLabel(fmt.Sprintf("%s %d (%s):", name, i+1, s.StepUnit(i)), base),
			e.inputs[schemeInputStepBase+3*i].View(),
			m.fieldLabel("Term:", base+1),
			e.inputs[schemeInputStepBase+3*i+1].View(),
			m.fieldLabel("Strength (1/s):", base+2),
			e.inputs[schemeInputStepBase+3*i+2].View(),
		))
		b.WriteString(fmt.Sprintf("    %s %s\n",
			m.fieldLabel(checkbox("Low-lying", tr.LowLying), base+3),
			m.fieldLabel(checkbox("Forbidden", tr.Forbidden), base+4)))
	}

	b.WriteString(fmt.Sprintf("\nIP (1/cm): %.3f  %s %s\n",
		s.Element.IP(),
		m.fieldLabel("IP term:", schemePosIPTerm),
		e.inputs[schemeInputIPTerm].View()))

	b.WriteString(fmt.Sprintf("%s\n", m.fieldLabel(checkbox("Draw last step to IP", s.LastStepToIP), schemePosLastStep)))
	b.WriteString(fmt.Sprintf("%s %s\n", m.fieldLabel("Lasers:", schemePosLasers), s.Lasers))

	if e.err != "" {
		b.WriteString("\n" + t.Error.Render(e.err) + "\n")
	}
	b.WriteString("\n" + t.Help.Render("tab/↑↓ move • space toggle • esc back"))
	return b.String()
}

// fieldLabel highlights the label of the focused scheme field.
func (m model) fieldLabel(label string, pos int) string {
	if m.scr == screenScheme && m.scheme.focus == pos {
		return m.theme.Selected.Render(label)
	}
	return m.theme.Label.Render(label)
}

func checkbox(label string, checked bool) string {
	if checked {
		return "[x] " + label
	}
	return "[ ] " + label
}

// toggleView renders a two-state unit choice with the active one marked.
func (m model) toggleView(first bool, a, b string) string {
	if first {
		return fmt.Sprintf("(•) %s  ( ) %s", a, b)
	}
	return fmt.Sprintf("( ) %s  (•) %s", a, b)
}
