// Package assetindex implements AssetIndex (§4.3): an in-memory map of
// every stored asset, scored for LRU-like eviction.
//
// Grounded on the teacher's gsfa package, which tracks a similarly
// high-churn in-memory map with github.com/tidwall/hashmap for its O(1)
// generic Map[K,V] (see gsfa/gsfa-write.go), used here in place of a plain
// Go map plus mutex.
package assetindex

import (
	"sync"
	"time"

	"github.com/tidwall/hashmap"

	"github.com/bithorded/bithorded/internal/tiger"
)

// DefaultAlpha is the score decay/recency weight from §4.3:
// score <- score + alpha*(now_seconds - score).
const DefaultAlpha = 0.05

// Entry is one AssetIndexEntry (§3).
type Entry struct {
	AssetID        string
	TigerID        tiger.ID
	DiskUsage      int64
	DiskAllocation int64
	Score          float64
}

// Index tracks every stored asset in memory, keyed by asset id, with a
// secondary tiger-id -> asset-id lookup.
type Index struct {
	mu      sync.RWMutex
	byAsset *hashmap.Map[string, *Entry]
	byTiger *hashmap.Map[tiger.ID, string]
	alpha   float64
	now     func() time.Time
}

// New returns an empty Index. alpha is the score decay weight; pass <= 0 to
// use DefaultAlpha.
func New(alpha float64) *Index {
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	return &Index{
		byAsset: hashmap.New[string, *Entry](1024),
		byTiger: hashmap.New[tiger.ID, string](1024),
		alpha:   alpha,
		now:     time.Now,
	}
}

// Add inserts or overwrites an entry.
func (idx *Index) Add(assetID string, tigerID tiger.ID, usage, allocation int64, score float64) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if old, ok := idx.byAsset.Get(assetID); ok && !old.TigerID.Empty() {
		idx.byTiger.Delete(old.TigerID)
	}
	idx.byAsset.Set(assetID, &Entry{
		AssetID:        assetID,
		TigerID:        tigerID,
		DiskUsage:      usage,
		DiskAllocation: allocation,
		Score:          score,
	})
	if !tigerID.Empty() {
		idx.byTiger.Set(tigerID, assetID)
	}
}

// Remove deletes assetID from the index and returns its tiger id (empty if
// it never had one, or if assetID was not present).
func (idx *Index) Remove(assetID string) tiger.ID {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	entry, ok := idx.byAsset.Get(assetID)
	if !ok {
		return ""
	}
	idx.byAsset.Delete(assetID)
	if !entry.TigerID.Empty() {
		idx.byTiger.Delete(entry.TigerID)
	}
	return entry.TigerID
}

// Update refreshes an entry's disk usage and bumps its recency score.
func (idx *Index) Update(assetID string, usage int64) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	entry, ok := idx.byAsset.Get(assetID)
	if !ok {
		return
	}
	entry.DiskUsage = usage
	entry.Score = idx.bump(entry.Score)
}

// Touch bumps an entry's recency score without changing usage, used on
// plain access (open/read) where disk usage is unchanged.
func (idx *Index) Touch(assetID string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	entry, ok := idx.byAsset.Get(assetID)
	if !ok {
		return
	}
	entry.Score = idx.bump(entry.Score)
}

func (idx *Index) bump(score float64) float64 {
	now := float64(idx.now().Unix())
	return score + idx.alpha*(now-score)
}

// PickLoser returns the asset id with the minimum score — the eviction
// victim — or "" if the index is empty.
func (idx *Index) PickLoser() string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	var loserID string
	var loserScore float64
	first := true
	for _, assetID := range idx.byAsset.Keys() {
		entry, ok := idx.byAsset.Get(assetID)
		if !ok {
			continue
		}
		if first || entry.Score < loserScore {
			loserID = assetID
			loserScore = entry.Score
			first = false
		}
	}
	return loserID
}

// TotalDiskUsage sums DiskUsage across all entries.
func (idx *Index) TotalDiskUsage() int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	var total int64
	for _, assetID := range idx.byAsset.Keys() {
		if entry, ok := idx.byAsset.Get(assetID); ok {
			total += entry.DiskUsage
		}
	}
	return total
}

// TotalDiskAllocation sums DiskAllocation across all entries.
func (idx *Index) TotalDiskAllocation() int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	var total int64
	for _, assetID := range idx.byAsset.Keys() {
		if entry, ok := idx.byAsset.Get(assetID); ok {
			total += entry.DiskAllocation
		}
	}
	return total
}

// LookupTiger resolves a tiger id to its asset id, if tracked.
func (idx *Index) LookupTiger(tigerID tiger.ID) (string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.byTiger.Get(tigerID)
}

// LookupAsset returns the entry for an asset id, if tracked.
func (idx *Index) LookupAsset(assetID string) (*Entry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.byAsset.Get(assetID)
}

// Len returns the number of tracked assets.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.byAsset.Len()
}
