package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bithorded/bithorded/internal/asset"
	"github.com/bithorded/bithorded/internal/binding"
	"github.com/bithorded/bithorded/internal/router"
)

var nextCachingAssetID uint64

// CachingAsset is a read-through proxy over a router.ForwardedAsset: reads
// are served from a CachedAsset slot where already validated, else
// forwarded upstream and written through as data arrives. Once the cached
// copy's own root hash is known, the upstream is dropped (§4.8).
//
// CachingAsset also represents its own aggregate downstream demand to the
// upstream's RequestBinding, attaching/detaching itself as a single
// synthetic subscriber as its own subscriber count transitions to/from
// zero — the Go expression of the original's ref-counted shared_ptr chain
// keeping the upstream ForwardedAsset alive only while wanted.
type CachingAsset struct {
	id      uint64
	manager *CacheManager
	Status  *asset.Subscribable

	mu               sync.Mutex
	upstreamBinding  *binding.RequestBinding
	upstream         *router.ForwardedAsset
	cached           *CachedAsset
	deadline         time.Time
	attachedUpstream bool
	unsubUpstream    func()
}

func newCachingAsset(mgr *CacheManager, upstreamBinding *binding.RequestBinding, upstream *router.ForwardedAsset, cached *CachedAsset) *CachingAsset {
	ca := &CachingAsset{
		id:              atomic.AddUint64(&nextCachingAssetID, 1),
		manager:         mgr,
		upstreamBinding: upstreamBinding,
		upstream:        upstream,
		cached:          cached,
		Status:          asset.NewSubscribable(asset.StatusEvent{Size: -1, Status: asset.StatusNone}),
	}
	if upstream != nil {
		ca.unsubUpstream = upstream.Status.Subscribe(func(_, next asset.StatusEvent) {
			ca.onUpstreamStatusChange(next.Status)
		})
	}
	return ca
}

// Size implements binding.Asset.
func (ca *CachingAsset) Size() int64 {
	ca.mu.Lock()
	defer ca.mu.Unlock()
	if ca.cached != nil {
		return ca.cached.Size()
	}
	if ca.upstream != nil {
		return ca.upstream.Size()
	}
	return 0
}

// Read implements binding.Asset: serves from cache when fully covered,
// else forwards upstream and writes the result through.
func (ca *CachingAsset) Read(offset, size int64, timeout time.Duration, cb func(offset int64, buf []byte)) {
	ca.mu.Lock()
	cached := ca.cached
	upstream := ca.upstream
	ca.mu.Unlock()

	if cached != nil && cached.CanRead(offset, size) >= size {
		cached.Read(offset, size, timeout, cb)
		return
	}
	if upstream == nil {
		cb(offset, nil)
		return
	}
	upstream.Read(offset, size, timeout, func(o int64, buf []byte) {
		cb(o, buf)
		if buf == nil {
			return
		}
		ca.mu.Lock()
		c := ca.cached
		ca.mu.Unlock()
		if c == nil {
			return
		}
		if err := c.StoredAsset.Write(o, buf); err != nil {
			log.Warnw("failed writing through to cache", "err", err)
			return
		}
		c.NotifyValidRange(o, int64(len(buf)), func() {
			if hasRoot, _, _ := c.HasRootHash(); hasRoot {
				ca.disconnect()
			}
		})
	})
}

// RequesterID implements binding.Subscriber: CachingAsset presents itself
// to the upstream RequestBinding as one synthetic subscriber.
func (ca *CachingAsset) RequesterID() uint64 { return ca.id }

// Deadline implements binding.Subscriber.
func (ca *CachingAsset) Deadline() time.Time {
	ca.mu.Lock()
	defer ca.mu.Unlock()
	return ca.deadline
}

// Apply implements binding.ParamsAware: as this CachingAsset's own
// downstream subscriber set transitions to/from empty, attach/detach from
// the upstream RequestBinding so the upstream ForwardedAsset only binds
// real peer connections while someone still wants this asset.
func (ca *CachingAsset) Apply(old, next binding.RequestParameters) {
	ca.mu.Lock()
	ca.deadline = next.Deadline
	attached := ca.attachedUpstream
	upstreamBinding := ca.upstreamBinding
	ca.mu.Unlock()

	if upstreamBinding == nil {
		return
	}
	want := len(next.Requesters) > 0
	switch {
	case want && !attached:
		upstreamBinding.Attach(ca)
		ca.mu.Lock()
		ca.attachedUpstream = true
		ca.mu.Unlock()
	case !want && attached:
		upstreamBinding.Detach(ca)
		ca.mu.Lock()
		ca.attachedUpstream = false
		ca.mu.Unlock()
	}
}

func (ca *CachingAsset) disconnect() {
	ca.mu.Lock()
	if ca.unsubUpstream != nil {
		ca.unsubUpstream()
		ca.unsubUpstream = nil
	}
	attached := ca.attachedUpstream
	upstreamBinding := ca.upstreamBinding
	ca.upstream = nil
	ca.attachedUpstream = false
	ca.mu.Unlock()
	if attached && upstreamBinding != nil {
		upstreamBinding.Detach(ca)
	}
}

func (ca *CachingAsset) onUpstreamStatusChange(status asset.Status) {
	ca.mu.Lock()
	needsAlloc := status == asset.StatusSuccess && ca.cached == nil && ca.upstream != nil
	var size int64
	if needsAlloc {
		size = ca.upstream.Size()
	}
	ca.mu.Unlock()

	if needsAlloc && size > 0 {
		if cached, err := ca.manager.prepareUpload(size); err == nil {
			ca.mu.Lock()
			ca.cached = cached
			ca.mu.Unlock()
		}
	}

	ca.mu.Lock()
	cached := ca.cached
	upstream := ca.upstream
	ca.mu.Unlock()

	cachedHasRoot := false
	if cached != nil {
		if hasRoot, _, err := cached.HasRootHash(); err == nil && hasRoot {
			cachedHasRoot = true
		}
	}
	overall := asset.StatusNotFound
	if status == asset.StatusSuccess || cachedHasRoot {
		overall = asset.StatusSuccess
	}

	var reportedSize int64
	if cached != nil {
		reportedSize = cached.Size()
	} else if upstream != nil {
		reportedSize = upstream.Size()
	}
	availability := 0
	if overall == asset.StatusSuccess {
		availability = 1000
	}
	ca.Status.Publish(asset.StatusEvent{Size: reportedSize, Status: overall, Availability: availability})
}
