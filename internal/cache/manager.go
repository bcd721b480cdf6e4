package cache

import (
	"fmt"
	"path/filepath"

	logging "github.com/ipfs/go-log/v2"

	"github.com/bithorded/bithorded/internal/asset"
	"github.com/bithorded/bithorded/internal/assetindex"
	"github.com/bithorded/bithorded/internal/assetstore"
	"github.com/bithorded/bithorded/internal/binding"
	"github.com/bithorded/bithorded/internal/dispatch"
	"github.com/bithorded/bithorded/internal/metrics"
	"github.com/bithorded/bithorded/internal/router"
	"github.com/bithorded/bithorded/internal/sessions"
	"github.com/bithorded/bithorded/internal/tiger"
)

var log = logging.Logger("cache")

// CacheManager owns a bounded AssetStore whose content arrives either via
// direct uploads (prepareUpload) or as a byproduct of serving a
// router-forwarded request through a CachingAsset (§4.8).
type CacheManager struct {
	baseDir       string
	maxSize       int64
	levelsSkipped uint8
	dispatcher    *dispatch.Dispatcher
	store         *assetstore.Store
	router        *router.Router
	sessions      *sessions.AssetSessions
}

// New constructs a CacheManager. An empty baseDir disables caching
// entirely — findAsset then only ever forwards through router.
func New(baseDir string, maxSize int64, idx *assetindex.Index, rtr *router.Router, dispatcher *dispatch.Dispatcher, levelsSkipped uint8) (*CacheManager, error) {
	m := &CacheManager{
		baseDir:       baseDir,
		maxSize:       maxSize,
		levelsSkipped: levelsSkipped,
		dispatcher:    dispatcher,
		router:        rtr,
	}
	if baseDir != "" {
		m.store = assetstore.Open(baseDir, idx)
		if err := m.store.OpenOrCreate(); err != nil {
			return nil, fmt.Errorf("cache: %w", err)
		}
	}
	m.sessions = sessions.New(m.openAsset)
	return m, nil
}

// Enabled reports whether this manager has a backing store (§4.8
// "enabled").
func (m *CacheManager) Enabled() bool { return m.baseDir != "" }

// DiskUsage returns the current total size of cached content, or 0 if
// caching is disabled.
func (m *CacheManager) DiskUsage() int64 {
	if !m.Enabled() {
		return 0
	}
	usage := m.store.DiskUsage()
	metrics.CacheDiskUsageBytes.Set(float64(usage))
	return usage
}

// FindAsset resolves a request to a live binding, preferring an already
// cached and fully-hashed copy, then falling back to a forwarded,
// write-through CachingAsset (§4.8 CacheManager::openAsset).
func (m *CacheManager) FindAsset(req router.BindRead) (*binding.RequestBinding, error) {
	return m.sessions.FindAsset(req)
}

func (m *CacheManager) openAsset(req sessions.Request) (*binding.RequestBinding, error) {
	br, ok := req.(router.BindRead)
	if !ok {
		return nil, fmt.Errorf("cache: unexpected request type %T", req)
	}

	if m.Enabled() {
		if assetID, assetPath, found := m.store.LookupTiger(br.TigerID()); found {
			cached, err := OpenCachedAsset(assetPath, m.dispatcher)
			if err != nil {
				log.Warnw("failed reopening cached asset", "asset", assetID, "err", err)
			} else if hasRoot, _, _ := cached.HasRootHash(); hasRoot {
				m.store.Index().Touch(assetID)
				metrics.CacheHitTotal.Inc()
				return binding.New(cached), nil
			}
		}
	}

	if m.router == nil {
		return nil, nil
	}
	upstreamRB, err := m.router.FindAsset(br)
	if err != nil {
		return nil, err
	}
	if upstreamRB == nil {
		return nil, nil
	}
	metrics.CacheMissTotal.Inc()
	fa, _ := upstreamRB.Asset.(*router.ForwardedAsset)
	caching := newCachingAsset(m, upstreamRB, fa, nil)
	return binding.New(caching), nil
}

// prepareUpload allocates room (evicting via the index's PickLoser as
// needed) and creates a fresh CachedAsset of the given size
// (§4.8 prepare_upload).
func (m *CacheManager) prepareUpload(size int64) (*CachedAsset, error) {
	if !m.Enabled() {
		return nil, fmt.Errorf("cache: disabled")
	}
	if !m.makeRoom(size) {
		return nil, fmt.Errorf("cache: could not free %d bytes for a new upload", size)
	}

	assetID, assetPath, err := m.store.NewAsset()
	if err != nil {
		return nil, err
	}
	cached, err := CreateCachedAsset(assetPath, size, m.levelsSkipped, m.dispatcher)
	if err != nil {
		m.store.RemoveAsset(assetID)
		return nil, err
	}
	cached.unsubscribeLink = cached.Status.Subscribe(func(_, _ asset.StatusEvent) {
		m.linkAsset(assetID, cached)
	})
	return cached, nil
}

// PrepareUpload is the exported form of prepareUpload, additionally linking
// the asset under the given tiger id immediately (§4.8
// prepareUpload(size, ids)).
func (m *CacheManager) PrepareUpload(size int64, tigerID tiger.ID) (*CachedAsset, error) {
	cached, err := m.prepareUpload(size)
	if err != nil {
		return nil, err
	}
	if !tigerID.Empty() {
		if err := m.store.UpdateAsset(filepath.Base(cached.Dir()), tigerID); err != nil {
			log.Warnw("failed linking cached asset", "asset", cached.Dir(), "err", err)
		}
	}
	return cached, nil
}

func (m *CacheManager) linkAsset(assetID string, cached *CachedAsset) {
	hasRoot, digest, err := cached.HasRootHash()
	if err != nil || !hasRoot {
		return
	}
	if err := m.store.UpdateAsset(assetID, tiger.NewID(digest)); err != nil {
		log.Warnw("failed linking cached asset", "asset", assetID, "err", err)
	}
}

func (m *CacheManager) makeRoom(size int64) bool {
	needed := (m.store.DiskUsage() + size) - m.maxSize
	var freed int64
	for needed > freed {
		loser := m.store.Index().PickLoser()
		if loser == "" {
			metrics.CacheDiskUsageBytes.Set(float64(m.store.DiskUsage()))
			return false
		}
		freed += m.store.RemoveAsset(loser)
		metrics.CacheEvictionTotal.Inc()
	}
	metrics.CacheDiskUsageBytes.Set(float64(m.store.DiskUsage()))
	return true
}
