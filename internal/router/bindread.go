package router

import (
	"time"

	"github.com/bithorded/bithorded/internal/tiger"
)

// BindRead is a routed asset request: the set of ids a downstream is
// willing to accept (Tiger primarily, per §3), its requester id for
// loop-detection, and an optional deadline. It implements sessions.Request
// so Router can dedup through the shared AssetSessions cache.
type BindRead struct {
	IDs        []tiger.ID
	Requesters []uint64
	Timeout    time.Duration
}

// TigerID returns the first non-empty id in IDs — the core only indexes on
// Tiger (§3).
func (b BindRead) TigerID() tiger.ID {
	for _, id := range b.IDs {
		if !id.Empty() {
			return id
		}
	}
	return ""
}
