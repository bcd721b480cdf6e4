// Package sessions implements AssetSessions (§4.5): a per-server weak-map
// deduplication layer from tiger id to a live RequestBinding.
//
// Grounded on _examples/original_source/bithorded/lib/weakmap.hpp
// (WeakMap<KeyType, LinkType>) and bithorded/lib/assetsessions.{hpp,cpp}.
// Go has no direct analogue of boost::weak_ptr tied to shared_ptr refcounts,
// but Go 1.24's standard-library weak package provides the same "does not
// keep the value alive, observe whether it still is" primitive — no example
// in the pack ships a weak-reference cache, so this is the one place this
// module reaches for a recent stdlib addition instead of a third-party
// dependency, justified by the absence of any ecosystem alternative the
// corpus demonstrates.
package sessions

import (
	"fmt"
	"sync"
	"weak"

	"github.com/cespare/xxhash/v2"
)

// DefaultScrubThreshold mirrors the original's 10000/sizeof(key) default;
// Go has no sizeof for a generic key type, so a fixed, reasonably large
// threshold stands in for it.
const DefaultScrubThreshold = 2500

// shardCount is the number of independent locks a WeakMap splits its
// entries across. FindAsset (§4.5) consults this map on every request, so
// one global mutex would serialize otherwise-independent lookups; sharded
// by key hash the way the teacher's compactindexsized package buckets its
// on-disk entries by xxhash.Sum64 of the key.
const shardCount = 16

type weakMapShard[K comparable, V any] struct {
	mu             sync.Mutex
	m              map[K]weak.Pointer[V]
	scrubThreshold int
	dirtiness      int
}

// WeakMap caches *V values by K without keeping them alive; entries whose
// value has been garbage collected read back as "not found" and are swept
// up by Scrub.
type WeakMap[K comparable, V any] struct {
	shards [shardCount]*weakMapShard[K, V]
}

// NewWeakMap returns an empty WeakMap. scrubThreshold <= 0 uses
// DefaultScrubThreshold, split evenly across shards.
func NewWeakMap[K comparable, V any](scrubThreshold int) *WeakMap[K, V] {
	if scrubThreshold <= 0 {
		scrubThreshold = DefaultScrubThreshold
	}
	perShard := scrubThreshold / shardCount
	if perShard <= 0 {
		perShard = 1
	}
	wm := &WeakMap[K, V]{}
	for i := range wm.shards {
		wm.shards[i] = &weakMapShard[K, V]{
			m:              make(map[K]weak.Pointer[V]),
			scrubThreshold: perShard,
		}
	}
	return wm
}

func (m *WeakMap[K, V]) shardFor(key K) *weakMapShard[K, V] {
	h := xxhash.Sum64String(fmt.Sprint(key))
	return m.shards[h%uint64(shardCount)]
}

// Get returns the live value for key, or (nil, false) if absent or expired.
// An expired entry is evicted immediately.
func (m *WeakMap[K, V]) Get(key K) (*V, bool) {
	s := m.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	wp, ok := s.m[key]
	if !ok {
		return nil, false
	}
	v := wp.Value()
	if v == nil {
		delete(s.m, key)
		return nil, false
	}
	return v, true
}

// Set stores value weakly under key, triggering that key's shard to scrub
// once its dirtiness counter crosses its share of scrubThreshold.
func (m *WeakMap[K, V]) Set(key K, value *V) {
	s := m.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = weak.Make(value)
	s.dirtiness++
	if s.dirtiness >= s.scrubThreshold {
		s.scrub()
	}
}

// Clear removes a single key unconditionally.
func (m *WeakMap[K, V]) Clear(key K) {
	s := m.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// Scrub walks every shard, purging entries whose value has expired, and
// returns the total surviving entry count.
func (m *WeakMap[K, V]) Scrub() int {
	total := 0
	for _, s := range m.shards {
		s.mu.Lock()
		total += s.scrub()
		s.mu.Unlock()
	}
	return total
}

func (s *weakMapShard[K, V]) scrub() int {
	for key, wp := range s.m {
		if wp.Value() == nil {
			delete(s.m, key)
		}
	}
	s.dirtiness = 0
	return len(s.m)
}

// Len counts currently-live entries (not a raw map length — expired-but-
// not-yet-scrubbed entries are excluded).
func (m *WeakMap[K, V]) Len() int {
	total := 0
	for _, s := range m.shards {
		s.mu.Lock()
		for _, wp := range s.m {
			if wp.Value() != nil {
				total++
			}
		}
		s.mu.Unlock()
	}
	return total
}

// totalDirtiness sums dirtiness across all shards; exposed for tests since
// sharding removes the single top-level counter the original had.
func (m *WeakMap[K, V]) totalDirtiness() int {
	total := 0
	for _, s := range m.shards {
		s.mu.Lock()
		total += s.dirtiness
		s.mu.Unlock()
	}
	return total
}
