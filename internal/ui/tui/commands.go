package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/usecase"
)

// File work runs in tea commands so the interactive loop never blocks; the
// result comes back as a message, applied once and then drained.

func cmdReadFile(d Deps, path string) tea.Cmd {
	return func() tea.Msg {
		path = strings.TrimSpace(path)
		if path == "" {
			// No file chosen: a no-op, not an error.
			return fileLoadedMsg{}
		}
		data, err := d.Files.ReadFile(path)
		return fileLoadedMsg{path: path, data: data, err: err}
	}
}

func cmdExport(d Deps, doc domain.Document, path string) tea.Cmd {
	return func() tea.Msg {
		path = strings.TrimSpace(path)
		if path == "" {
			return fileSavedMsg{}
		}
		err := usecase.NewExportDocument(d.Saver).Execute(doc, path)
		return fileSavedMsg{path: path, err: err}
	}
}

func cmdOpenLink(d Deps, url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: d.Opener.OpenURL(url)}
	}
}
