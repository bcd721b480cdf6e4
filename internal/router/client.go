// Package router implements Router (§4.6) and ForwardedAsset (§4.7): the
// peer-aggregating layer that forwards unresolved requests upstream,
// detects routing loops, and dispatches reads to the fastest-responding
// upstream.
//
// Grounded on _examples/original_source/bithorded/router/router.{hpp,cpp}
// and router/asset.{hpp,cpp}.
package router

import (
	"time"

	"github.com/bithorded/bithorded/internal/tiger"
)

// UpstreamStatus is what a Client reports about one bound upstream asset
// (§6 Status event, restricted to the fields ForwardedAsset consumes).
type UpstreamStatus struct {
	Success bool
	Size    int64 // -1 if unknown
	Servers []uint64
	IDs     []tiger.ID
}

// ReadResult is one data chunk delivered by an upstream for a prior Read
// call, tagged so the caller can match it to the PendingRead that
// requested it.
type ReadResult struct {
	Offset int64
	Data   []byte
	Tag    int
}

// UpstreamHandle is a single bound upstream asset session on a Client.
type UpstreamHandle interface {
	Read(offset, size int64, tag int) error
	Close() error
}

// Client is the out-of-scope connection-multiplexer seam (§4.10): Router
// and ForwardedAsset depend only on this interface, never on a concrete
// wire transport.
type Client interface {
	PeerName() string
	Open(ids []tiger.ID, timeout time.Duration, requesters []uint64, onStatus func(UpstreamStatus), onData func(ReadResult)) (UpstreamHandle, error)
}
