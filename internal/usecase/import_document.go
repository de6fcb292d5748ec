package usecase

import (
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/ports"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/rimsjson"
)

// ImportDocument loads a RIMSSchemeDrawer config file into a fresh document.
// On success the result wholesale-replaces the caller's model; on failure the
// caller keeps its model untouched.
type ImportDocument struct {
	files ports.FileReader
}

func NewImportDocument(fr ports.FileReader) *ImportDocument {
	return &ImportDocument{files: fr}
}

func (uc *ImportDocument) Execute(path string) (domain.Document, error) {
	raw, err := uc.files.ReadFile(path)
	if err != nil {
		return domain.Document{}, err
	}
	return rimsjson.Unmarshal(raw)
}

// Parse runs the import path on raw bytes already in hand (pasted text).
func (uc *ImportDocument) Parse(raw []byte) (domain.Document, error) {
	return rimsjson.Unmarshal(raw)
}
