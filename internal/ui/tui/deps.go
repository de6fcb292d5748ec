package tui

import (
	"log/slog"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/infra/settings"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/ports"
)

type Deps struct {
	Files  ports.FileReader
	Saver  ports.FileWriter
	Opener ports.LinkOpener
	State  ports.StateStore

	Settings settings.Settings
	Logger   *slog.Logger
	Debug    bool
}
