package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("RIMS Database Scheme Submission") + "\n" +
		m.theme.Subtitle.Render("Describe a resonance ionization scheme and submit it to the database") + "\n"

	switch m.scr {
	case screenHome:
		body := m.theme.Card.Render(m.menu.View())
		footer := m.theme.Help.Render("↑/↓ navigate • enter open • q quit")
		if m.status != "" {
			footer = m.theme.Subtitle.Render(m.status) + "\n" + footer
		}
		return wrap.Render(header + "\n" + body + "\n" + footer)

	case screenNotes:
		body := m.theme.Section.Render("Notes") + "\n\n" + m.notes.View() + "\n\n" +
			m.theme.Help.Render("esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(body))

	case screenScheme:
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.viewScheme()))

	case screenSaturation:
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.viewSaturation()))

	case screenReferences:
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.viewReferences()))

	case screenSubmit:
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.viewSubmit()))

	case screenImport:
		body := m.theme.Section.Render("Load drawer file") + "\n\n" +
			m.theme.Label.Render("Path to a RIMSSchemeDrawer JSON file:") + "\n" +
			m.importIn.View() + "\n"
		if m.errImport != "" {
			body += "\n" + m.theme.Error.Render(m.errImport) + "\n"
		}
		body += "\n" + m.theme.Help.Render("enter load • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(body))

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
