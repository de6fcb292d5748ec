// Package fsio implements the file ports on the local file system.
package fsio

import (
	"os"
	"path/filepath"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/ports"
)

type Files struct{}

func New() *Files { return &Files{} }

var (
	_ ports.FileReader = (*Files)(nil)
	_ ports.FileWriter = (*Files)(nil)
)

func (Files) ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fsio.read",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}

func (Files) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{
				Op:   "fsio.mkdir",
				Kind: domain.KindIO,
				Path: dir,
				Err:  err,
			}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &domain.OpError{
			Op:   "fsio.write",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
