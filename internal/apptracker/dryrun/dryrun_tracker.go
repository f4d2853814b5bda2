package dryrun

import (
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/ripplerest/ripplerest-go/internal/apptracker"
)

// DryRunTracker logs what would have been reported. It is used when no tracker DSN is configured.
type DryRunTracker struct{}

var _ apptracker.AppTracker = (*DryRunTracker)(nil)

func (d *DryRunTracker) CaptureMessage(message string) {
	log.Warnf("[tracker dry-run] %s", message)
}

func (d *DryRunTracker) CaptureException(exception error) {
	log.Errorf("[tracker dry-run] %v", exception)
}
