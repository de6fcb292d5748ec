package statestore

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
)

func TestLoadNoState(t *testing.T) {
	s := New(t.TempDir())
	_, ok, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for missing state")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	doc := domain.NewDocument()
	doc.Notes = "half-filled form"
	doc.Scheme.Element = "Yb"
	doc.Scheme.Transitions[0].Level = "25068.222"
	// No submitter name: state persistence must not require completeness.

	if err := s.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "state.json")); err != nil {
		t.Fatalf("state file not written: %v", err)
	}

	back, ok, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if !reflect.DeepEqual(doc, back) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", doc, back)
	}
}

func TestLoadOlderStateMissingFields(t *testing.T) {
	dir := t.TempDir()
	older := []byte(`{"rims_scheme": {"scheme": {"element": "Sn"}}}`)
	if err := os.WriteFile(filepath.Join(dir, "state.json"), older, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	doc, ok, err := New(dir).Load()
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if doc.Scheme.Element != "Sn" {
		t.Fatalf("element not loaded: %+v", doc.Scheme)
	}
	if doc.Scheme.GroundState.Level != "0" || doc.Scheme.Unit != domain.UnitCM1 {
		t.Fatalf("missing fields must fall back to defaults: %+v", doc.Scheme)
	}
}

func TestSaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	first := domain.NewDocument()
	first.Notes = "first"
	if err := s.Save(first); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := domain.NewDocument()
	second.Notes = "second"
	if err := s.Save(second); err != nil {
		t.Fatalf("save: %v", err)
	}

	back, _, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.Notes != "second" {
		t.Fatalf("expected latest state, got %q", back.Notes)
	}
	if _, err := os.Stat(filepath.Join(dir, "state.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("tmp file left behind")
	}
}
