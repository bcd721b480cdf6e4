package sessions

import (
	"errors"

	logging "github.com/ipfs/go-log/v2"

	"github.com/bithorded/bithorded/internal/binding"
	"github.com/bithorded/bithorded/internal/tiger"
)

var log = logging.Logger("sessions")

// ErrNotFound is returned when a request carries no Tiger id to dedup on.
var ErrNotFound = errors.New("sessions: request carries no tiger id")

// Request is anything AssetSessions can dedup on: a bind request of some
// kind that carries a (possibly empty) Tiger id. Defined as an interface
// rather than a concrete BindRead type so both internal/router and
// internal/assetstore can dedup their own request shapes through the same
// cache.
type Request interface {
	TigerID() tiger.ID
}

// OpenFunc opens a fresh asset for a request on a session miss, returning a
// bound RequestBinding (or nil if nothing could be opened). The full
// request is passed through (not just its tiger id) since the opener may
// need other fields — e.g. the router's loop-detection blacklist needs
// the requester set and deadline.
type OpenFunc func(req Request) (*binding.RequestBinding, error)

// AssetSessions deduplicates concurrent lookups for the same tiger id onto
// one shared RequestBinding (§4.5).
type AssetSessions struct {
	cache *WeakMap[tiger.ID, binding.RequestBinding]
	open  OpenFunc
}

// New constructs an AssetSessions whose cache misses are satisfied by open.
func New(open OpenFunc) *AssetSessions {
	return &AssetSessions{
		cache: NewWeakMap[tiger.ID, binding.RequestBinding](0),
		open:  open,
	}
}

// FindAsset resolves req to a live RequestBinding, reusing an existing one
// if present (§4.5 steps 1-3). A request with no tiger id returns
// ErrNotFound.
func (s *AssetSessions) FindAsset(req Request) (*binding.RequestBinding, error) {
	tigerID := req.TigerID()
	if tigerID.Empty() {
		return nil, ErrNotFound
	}
	if active, ok := s.cache.Get(tigerID); ok {
		return active, nil
	}

	result, err := s.open(req)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	s.add(tigerID, result)
	return result, nil
}

func (s *AssetSessions) add(tigerID tiger.ID, b *binding.RequestBinding) {
	if b == nil {
		return
	}
	s.cache.Set(tigerID, b)
	log.Debugw("cached request binding", "tiger", tigerID)
}

// Scrub forces a full sweep of expired entries, mirroring the original's
// manual scrub() call available for tests/diagnostics.
func (s *AssetSessions) Scrub() int { return s.cache.Scrub() }

// Len reports the number of currently-live bindings.
func (s *AssetSessions) Len() int { return s.cache.Len() }
