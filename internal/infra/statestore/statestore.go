// Package statestore persists the form document across restarts.
//
// The state file uses the same document serialization as export, minus the
// completeness gate, so a half-filled form survives a restart. Fields missing
// from state written by older versions fall back to their defaults on load.
package statestore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/ports"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/rimsjson"
)

const stateFilename = "state.json"

type Store struct {
	dir string
}

// New returns a store rooted at dir (usually the per-user config dir).
func New(dir string) *Store {
	return &Store{dir: dir}
}

var _ ports.StateStore = (*Store)(nil)

func (s *Store) path() string {
	return filepath.Join(s.dir, stateFilename)
}

// Load reads the persisted document. ok is false when no state exists yet.
// Corrupt state is reported as an error, not silently discarded.
func (s *Store) Load() (domain.Document, bool, error) {
	b, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Document{}, false, nil
	}
	if err != nil {
		return domain.Document{}, false, &domain.OpError{
			Op:   "statestore.read",
			Kind: domain.KindIO,
			Path: s.path(),
			Err:  err,
		}
	}

	doc, err := rimsjson.UnmarshalState(b)
	if err != nil {
		return domain.Document{}, false, &domain.OpError{
			Op:   "statestore.decode",
			Kind: domain.KindIO,
			Path: s.path(),
			Err:  err,
		}
	}
	return doc, true, nil
}

// Save writes the document atomically: tmp then rename.
func (s *Store) Save(doc domain.Document) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "statestore.mkdir",
			Kind: domain.KindIO,
			Path: s.dir,
			Err:  err,
		}
	}

	b, err := rimsjson.MarshalState(doc)
	if err != nil {
		return &domain.OpError{
			Op:   "statestore.encode",
			Kind: domain.KindIO,
			Path: s.path(),
			Err:  err,
		}
	}

	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "statestore.write",
			Kind: domain.KindIO,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "statestore.rename",
			Kind: domain.KindIO,
			Path: s.path(),
			Err:  err,
		}
	}
	return nil
}
