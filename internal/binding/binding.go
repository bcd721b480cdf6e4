// Package binding implements RequestBinding (§3, §4 "RequestBinding" row):
// a reference-counted handle linking one asset to N downstream subscribers,
// aggregating their requester ids and triggering reapplication when that
// aggregate set changes.
package binding

import (
	"sync"
	"time"
)

// Asset is the capability every bound asset kind (stored, cached,
// forwarded) exposes to a RequestBinding — deliberately minimal, per §9's
// "polymorphism as capability set" design note rather than a class
// hierarchy.
type Asset interface {
	Size() int64
	Read(offset, size int64, timeout time.Duration, cb func(offset int64, buf []byte))
}

// ParamsAware is implemented by asset kinds that react to the aggregate
// downstream parameter set changing: router.ForwardedAsset (adding/dropping
// upstreams) and cache.CachingAsset (forwarding its own aggregate demand to
// the upstream binding it wraps). A plain StoredAsset simply ignores Apply
// calls by not implementing this interface.
type ParamsAware interface {
	Apply(old, next RequestParameters)
}

// Subscriber is one downstream of a RequestBinding.
type Subscriber interface {
	// RequesterID identifies the subscriber for loop-detection and
	// aggregate requester-set bookkeeping.
	RequesterID() uint64
	// Deadline is the subscriber's request deadline, or the zero Time if
	// none.
	Deadline() time.Time
}

// RequestParameters aggregates the downstream subscriber set of a
// RequestBinding: the union of requester ids and the nearest deadline.
type RequestParameters struct {
	Requesters []uint64
	Deadline   time.Time // zero means no deadline
}

func (p RequestParameters) clone() RequestParameters {
	out := RequestParameters{Deadline: p.Deadline}
	if len(p.Requesters) > 0 {
		out.Requesters = append([]uint64(nil), p.Requesters...)
	}
	return out
}

// RequestBinding dedups concurrent lookups for the same asset onto one
// shared handle: downstream subscribers attach/detach and the binding
// recomputes its aggregate RequestParameters, notifying the bound asset
// when that aggregate changes (§3).
type RequestBinding struct {
	Asset Asset

	mu          sync.Mutex
	downstreams map[Subscriber]struct{}
	params      RequestParameters
}

// New wraps asset in a fresh, empty RequestBinding.
func New(asset Asset) *RequestBinding {
	return &RequestBinding{
		Asset:       asset,
		downstreams: make(map[Subscriber]struct{}),
	}
}

// Attach adds a downstream subscriber, recomputes the aggregate parameters,
// and — if they changed — notifies the bound asset via Apply (when it
// implements ParamsAware).
func (b *RequestBinding) Attach(sub Subscriber) {
	b.mu.Lock()
	b.downstreams[sub] = struct{}{}
	b.recompute()
	b.mu.Unlock()
}

// Detach removes a downstream subscriber and recomputes the aggregate
// parameters. Returns true if this was the last subscriber (the binding is
// now unreferenced and the caller should drop it).
func (b *RequestBinding) Detach(sub Subscriber) (last bool) {
	b.mu.Lock()
	delete(b.downstreams, sub)
	b.recompute()
	last = len(b.downstreams) == 0
	b.mu.Unlock()
	return last
}

// recompute rebuilds the aggregate RequestParameters from the current
// downstream set and, if they changed, calls Apply on the bound asset.
// Caller must hold b.mu.
func (b *RequestBinding) recompute() {
	next := RequestParameters{}
	for sub := range b.downstreams {
		next.Requesters = append(next.Requesters, sub.RequesterID())
		if d := sub.Deadline(); !d.IsZero() && (next.Deadline.IsZero() || d.Before(next.Deadline)) {
			next.Deadline = d
		}
	}
	old := b.params
	if paramsEqual(old, next) {
		return
	}
	b.params = next
	if aware, ok := b.Asset.(ParamsAware); ok {
		aware.Apply(old.clone(), next.clone())
	}
}

// SubscriberCount returns the number of currently attached downstreams.
func (b *RequestBinding) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.downstreams)
}

// Params returns a copy of the current aggregate RequestParameters.
func (b *RequestBinding) Params() RequestParameters {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.params.clone()
}

func paramsEqual(a, b RequestParameters) bool {
	if !a.Deadline.Equal(b.Deadline) || len(a.Requesters) != len(b.Requesters) {
		return false
	}
	seen := make(map[uint64]int, len(a.Requesters))
	for _, r := range a.Requesters {
		seen[r]++
	}
	for _, r := range b.Requesters {
		seen[r]--
	}
	for _, count := range seen {
		if count != 0 {
			return false
		}
	}
	return true
}
