package router

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/bithorded/bithorded/internal/binding"
	"github.com/bithorded/bithorded/internal/config"
	"github.com/bithorded/bithorded/internal/metrics"
	"github.com/bithorded/bithorded/internal/sessions"
)

// ErrWouldLoop is returned when a request's requester id is still
// blacklisted from a request this router forwarded upstream moments ago.
var ErrWouldLoop = errors.New("router: request would loop")

// Router forwards requests unresolved locally to connected friends,
// deduplicating concurrent lookups, preventing routing loops via a
// time-bounded requester blacklist, and fanning reads out across whichever
// upstreams currently hold the asset (§4.6, §4.7).
type Router struct {
	mu        sync.Mutex
	friends   map[string]*Reconnector
	connected map[string]Client

	blacklist    *ttlcache.Cache[uint64, struct{}]
	blacklistTTL time.Duration

	nextSessionID uint64

	sessions *sessions.AssetSessions
}

// New constructs an empty Router. Friends are added via AddFriend. Accepts
// the same config.Option knobs every component constructor does; only
// config.WithBlacklistTTL applies here.
//
// The requester blacklist (§4.6) is a ttlcache.Cache rather than a
// hand-rolled map+queue — grounded on the teacher's
// split-car-fetcher/miner-info.go MinerInfoCache, which uses the same
// library for a time-bounded lookup cache. Each blacklist entry gets its
// own per-Set TTL (computed from the request's timeout), so the cache's
// own background janitor goroutine handles eviction instead of a manual
// prune-on-access sweep.
func New(opts ...config.Option) *Router {
	runtime := config.DefaultRuntime()
	runtime.Apply(opts...)
	r := &Router{
		friends:      make(map[string]*Reconnector),
		connected:    make(map[string]Client),
		blacklist: ttlcache.New[uint64, struct{}](
			ttlcache.WithTTL[uint64, struct{}](runtime.BlacklistTTL),
			ttlcache.WithDisableTouchOnHit[uint64, struct{}](),
		),
		blacklistTTL: runtime.BlacklistTTL,
	}
	r.blacklist.OnEviction(func(ctx context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[uint64, struct{}]) {
		metrics.RouterBlacklistSizeGauge.Set(float64(r.blacklist.Len()))
	})
	go r.blacklist.Start()
	r.sessions = sessions.New(r.openAsset)
	return r
}

// Close stops the blacklist's background eviction goroutine. Configured
// friends' Reconnector loops are tied to the context passed to AddFriend,
// not to Close — callers cancel that context separately.
func (r *Router) Close() {
	r.blacklist.Stop()
}

// AddFriend configures a peer and starts its reconnect loop (§4.6, §6
// config "friends" table).
func (r *Router) AddFriend(ctx context.Context, cfg FriendConfig, dial Dialer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.friends[cfg.Name]; ok {
		existing.Cancel()
	}
	r.friends[cfg.Name] = NewReconnector(ctx, cfg, dial, func(c Client) {
		r.onConnected(cfg.Name, c)
	})
}

// RemoveFriend cancels a configured peer's reconnect loop and drops its
// live connection, if any.
func (r *Router) RemoveFriend(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rc, ok := r.friends[name]; ok {
		rc.Cancel()
		delete(r.friends, name)
	}
	delete(r.connected, name)
}

func (r *Router) onConnected(name string, c Client) {
	r.mu.Lock()
	r.connected[name] = c
	r.mu.Unlock()
	log.Infow("friend connected", "peer", name)
}

// connectedClients snapshots the currently live upstream connections.
func (r *Router) connectedClients() []Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Client, 0, len(r.connected))
	for _, c := range r.connected {
		out = append(out, c)
	}
	return out
}

// FindAsset resolves a forwarded request, reusing a live ForwardedAsset
// bound to the same tiger id when one already exists (§4.5, §4.6).
func (r *Router) FindAsset(req BindRead) (*binding.RequestBinding, error) {
	return r.sessions.FindAsset(req)
}

// openAsset is AssetSessions' OpenFunc: it applies the blacklist check,
// then creates a fresh ForwardedAsset and blacklists its session id for
// the deadline computed from the request's timeout (§4.6 step 3: "now +
// (timeout ? 2*timeout : 30s)").
func (r *Router) openAsset(req sessions.Request) (*binding.RequestBinding, error) {
	br, ok := req.(BindRead)
	if !ok {
		return nil, fmt.Errorf("router: unexpected request type %T", req)
	}

	for _, id := range br.Requesters {
		if r.isBlacklisted(id) {
			return nil, ErrWouldLoop
		}
	}

	sessionID := atomic.AddUint64(&r.nextSessionID, 1)
	fa := newForwardedAsset(r, br.IDs)
	fa.sessionID = sessionID

	deadline := r.blacklistTTL
	if br.Timeout > 0 {
		deadline = br.Timeout * 2
	}
	r.addToBlacklist(sessionID, time.Now().Add(deadline))

	return binding.New(fa), nil
}

// addToBlacklist blacklists id until the given absolute time, translated to
// a ttlcache per-entry TTL. A until already in the past still inserts, with
// a one-nanosecond TTL; such an entry has expired by the time it is looked
// up, so isBlacklisted reports false for it.
func (r *Router) addToBlacklist(id uint64, until time.Time) {
	ttl := time.Until(until)
	if ttl <= 0 {
		ttl = time.Nanosecond
	}
	r.blacklist.Set(id, struct{}{}, ttl)
	metrics.RouterBlacklistSizeGauge.Set(float64(r.blacklist.Len()))
}

func (r *Router) isBlacklisted(id uint64) bool {
	return r.blacklist.Get(id) != nil
}

// Sessions exposes the underlying dedup cache for diagnostics.
func (r *Router) Sessions() *sessions.AssetSessions { return r.sessions }
