package usecase

import (
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/ports"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/rimsjson"
)

// ExportDocument serializes a document and writes it to a user-chosen path.
type ExportDocument struct {
	files ports.FileWriter
}

func NewExportDocument(fw ports.FileWriter) *ExportDocument {
	return &ExportDocument{files: fw}
}

// SuggestedFilename is the default save name offered for a document.
func SuggestedFilename(doc domain.Document) string {
	return doc.Scheme.Element.String() + ".json"
}

// Execute validates and serializes doc, then writes it to path. Validation
// failures return before anything touches the file system.
func (uc *ExportDocument) Execute(doc domain.Document, path string) error {
	raw, err := rimsjson.Marshal(doc)
	if err != nil {
		return err
	}
	return uc.files.WriteFile(path, raw)
}
