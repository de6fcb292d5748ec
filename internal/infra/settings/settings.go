// Package settings loads the optional per-user YAML settings file.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
)

const appDirName = "rimsdb-submission"

// Settings are the user preferences outside the form itself.
type Settings struct {
	// SubmitterName prefills the "submitted by" field on a fresh form.
	SubmitterName string
	// OutputDir is where downloaded configurations are suggested to go.
	OutputDir string
	// Debug enables verbose logging without the --debug flag.
	Debug bool
}

type yamlSettings struct {
	SubmitterName string `yaml:"submitter_name"`
	OutputDir     string `yaml:"output_dir"`
	Debug         bool   `yaml:"debug"`
}

// ConfigDir returns the per-user directory holding settings, state and logs.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", &domain.OpError{
			Op:   "settings.config_dir",
			Kind: domain.KindIO,
			Err:  err,
		}
	}
	return filepath.Join(base, appDirName), nil
}

// DefaultPath is the standard settings file location.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads settings from path. A missing file yields the zero settings
// without error; a malformed file is an error.
func Load(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, &domain.OpError{
			Op:   "settings.read",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	var dto yamlSettings
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Settings{}, &domain.OpError{
			Op:   "settings.parse",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	return Settings{
		SubmitterName: strings.TrimSpace(dto.SubmitterName),
		OutputDir:     strings.TrimSpace(dto.OutputDir),
		Debug:         dto.Debug,
	}, nil
}
