// Package browserlink opens submission links through the OS handler.
package browserlink

import (
	"github.com/pkg/browser"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/ports"
)

type Opener struct{}

func New() *Opener { return &Opener{} }

var _ ports.LinkOpener = (*Opener)(nil)

// OpenURL hands https URLs to the browser and mailto URIs to the registered
// mail client.
func (Opener) OpenURL(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return &domain.OpError{
			Op:   "browserlink.open",
			Kind: domain.KindIO,
			Err:  err,
		}
	}
	return nil
}
