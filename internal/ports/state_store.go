package ports

import "github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"

// StateStore persists the form document across restarts. Load reports
// ok=false when no prior state exists.
type StateStore interface {
	Load() (doc domain.Document, ok bool, err error)
	Save(doc domain.Document) error
}
