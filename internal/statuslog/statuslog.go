// Package statuslog is a thin shim around ipfs/go-log/v2: every package in
// this module constructs its own `var log = logging.Logger("<pkg>")`
// (§1's ambient-stack expansion), and statuslog adds one small piece of
// shared behavior on top of that convention — logging an asset's status
// transitions in a consistent shape, since several asset kinds
// (StoredAsset, CachingAsset, ForwardedAsset) publish the same
// asset.StatusEvent and previously logged transitions ad hoc, inconsistently
// or not at all.
package statuslog

import (
	logging "github.com/ipfs/go-log/v2"

	"github.com/bithorded/bithorded/internal/asset"
)

// New returns a named logger, equivalent to logging.Logger(name) — exists
// so callers depend on one place for the logging convention rather than
// importing ipfs/go-log/v2 directly just to get a named logger.
func New(name string) *logging.ZapEventLogger {
	return logging.Logger(name)
}

// LogTransitions subscribes to sub and logs every status change at
// log-level Debug, tagged with label (normally the tiger id or asset id
// the caller already has in scope). The returned func unsubscribes.
func LogTransitions(log *logging.ZapEventLogger, label string, sub *asset.Subscribable) func() {
	return sub.Subscribe(func(old, next asset.StatusEvent) {
		if old.Status == next.Status && old.Availability == next.Availability {
			return
		}
		log.Debugw("asset status changed",
			"label", label,
			"from", old.Status,
			"to", next.Status,
			"size", next.Size,
			"availability", next.Availability,
		)
	})
}
