package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if s != (Settings{}) {
		t.Fatalf("expected zero settings, got %+v", s)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "submitter_name: A. Submitter\noutput_dir: /tmp/schemes\ndebug: true\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.SubmitterName != "A. Submitter" || s.OutputDir != "/tmp/schemes" || !s.Debug {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("submitter_name: [broken"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed settings")
	}
}
