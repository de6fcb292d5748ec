package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
)

type memFiles struct {
	files map[string][]byte
}

func newMemFiles() *memFiles {
	return &memFiles{files: map[string][]byte{}}
}

func (m *memFiles) ReadFile(path string) ([]byte, error) {
	b, ok := m.files[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return b, nil
}

func (m *memFiles) WriteFile(path string, data []byte) error {
	m.files[path] = data
	return nil
}

func completeDocument() domain.Document {
	doc := domain.NewDocument()
	doc.Scheme.Element = "Cs"
	doc.Scheme.Transitions[0].Level = "21946.397"
	doc.SubmittedBy = "A. Submitter"
	return doc
}

func TestExportThenImport(t *testing.T) {
	files := newMemFiles()
	doc := completeDocument()

	if err := NewExportDocument(files).Execute(doc, "Cs.json"); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(string(files.files["Cs.json"]), `"element": "Cs"`) {
		t.Fatalf("exported file missing element: %s", files.files["Cs.json"])
	}

	back, err := NewImportDocument(files).Execute("Cs.json")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if back.Scheme.Element != "Cs" || back.Scheme.Transitions[0].Level != "21946.397" {
		t.Fatalf("round trip lost data: %+v", back.Scheme)
	}
}

func TestExportInvalidWritesNothing(t *testing.T) {
	files := newMemFiles()
	doc := completeDocument()
	doc.SubmittedBy = ""

	err := NewExportDocument(files).Execute(doc, "Cs.json")
	if err == nil || err.Error() != "Please enter your name." {
		t.Fatalf("expected name error, got %v", err)
	}
	if len(files.files) != 0 {
		t.Fatalf("invalid export must not touch the file system")
	}
}

func TestImportBadFile(t *testing.T) {
	files := newMemFiles()
	files.files["bad.json"] = []byte(`{"nothing": true}`)

	_, err := NewImportDocument(files).Execute("bad.json")
	if err == nil || err.Error() != "No 'rims_scheme' or 'scheme' key found." {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSuggestedFilename(t *testing.T) {
	if got := SuggestedFilename(completeDocument()); got != "Cs.json" {
		t.Fatalf("unexpected filename: %q", got)
	}
}
