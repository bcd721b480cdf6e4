package assetstore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/bithorded/bithorded/internal/assetindex"
	"github.com/bithorded/bithorded/internal/tiger"
)

var log = logging.Logger("assetstore")

// minFillPercent is the near-empty-placeholder eviction threshold from
// §4.4 step 1: targets below this fill ratio are reclaimed during
// reconciliation.
const minFillPercent = 3

// Store manages a base directory of assets/ and tiger/, backed by an
// in-memory AssetIndex (§4.4).
type Store struct {
	layout *layout
	index  *assetindex.Index
}

// Open constructs a Store rooted at baseDir without touching disk; call
// OpenOrCreate to create missing directories and reconcile the index.
func Open(baseDir string, index *assetindex.Index) *Store {
	return &Store{layout: newLayout(baseDir), index: index}
}

// AssetsDir returns the canonicalized assets/ directory path.
func (s *Store) AssetsDir() string { return s.layout.assetsDir }

// OpenOrCreate creates assets/ and tiger/ if missing, canonicalizes all
// three base paths, and reconciles the tiger-symlinks folder against
// assets/ (§4.4).
func (s *Store) OpenOrCreate() error {
	if err := s.layout.ensureDirs(); err != nil {
		return err
	}
	return s.reconcile()
}

// reconcile implements §4.4's three-step startup pass: validate every
// tiger-link, drop orphaned asset directories, and populate the index from
// the surviving pairs.
func (s *Store) reconcile() error {
	entries, err := os.ReadDir(s.layout.tigerDir)
	if err != nil {
		return fmt.Errorf("assetstore: scanning tiger dir: %w", err)
	}

	referenced := make(map[string]bool, len(entries))
	for _, entry := range entries {
		tigerLinkName := entry.Name()
		linkPath := s.layout.tigerLinkPath(tigerLinkName)

		target, err := os.Readlink(linkPath)
		if err != nil {
			log.Warnw("dangling tiger link, removing", "link", tigerLinkName, "err", err)
			os.Remove(linkPath)
			continue
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(s.layout.tigerDir, target)
		}
		assetPath, err := s.layout.resolveWithinAssets(target)
		if os.IsNotExist(err) {
			log.Warnw("dangling tiger link, removing", "link", tigerLinkName, "err", err)
			os.Remove(linkPath)
			continue
		}
		if err != nil {
			return fmt.Errorf("assetstore: fatal inconsistency: %w", err)
		}

		used := diskUsage(assetPath)
		allocated := diskAllocated(assetPath)
		var fillPercent int64
		if allocated > 0 {
			fillPercent = (used * 100) / allocated
		}

		assetID := filepath.Base(assetPath)
		if fillPercent < minFillPercent {
			log.Debugw("removing near-empty placeholder asset", "asset", assetID, "fill_percent", fillPercent)
			os.Remove(linkPath)
			removeFileTree(assetPath)
			continue
		}

		digest, err := tiger.ParseID(tigerLinkName)
		if err != nil {
			log.Warnw("tiger link name is not a valid id, removing", "link", tigerLinkName, "err", err)
			os.Remove(linkPath)
			continue
		}
		mtime := mtimeOf(assetPath)
		s.index.Add(assetID, tiger.NewID(digest), used, allocated, float64(mtime.Unix()))
		referenced[assetID] = true
	}

	assetEntries, err := os.ReadDir(s.layout.assetsDir)
	if err != nil {
		return fmt.Errorf("assetstore: scanning assets dir: %w", err)
	}
	for _, entry := range assetEntries {
		if referenced[entry.Name()] {
			continue
		}
		log.Infow("asset without referencing tiger link, removing", "asset", entry.Name())
		removeFileTree(s.layout.assetPath(entry.Name()))
	}

	log.Infow("reconciliation finished", "assets", s.index.Len(), "bytes", s.index.TotalDiskUsage())
	return nil
}

// NewAsset allocates a random slot name, pre-registers it in the index with
// an empty tiger id, and returns the path the caller should create content
// at (§4.4 new_asset).
func (s *Store) NewAsset() (assetID string, assetPath string, err error) {
	assetID, err = s.layout.newAssetID()
	if err != nil {
		return "", "", err
	}
	s.index.Add(assetID, "", 0, 0, float64(time.Now().Unix()))
	return assetID, s.layout.assetPath(assetID), nil
}

// UpdateAsset recomputes disk usage/allocation for assetID and re-links its
// tiger symlink, replacing any stale link first (§4.4 update_asset).
func (s *Store) UpdateAsset(assetID string, tigerID tiger.ID) error {
	assetPath := s.layout.assetPath(assetID)

	effectiveTiger := tigerID
	if effectiveTiger == "" {
		if entry, ok := s.index.LookupAsset(assetID); ok {
			effectiveTiger = entry.TigerID // updates with empty tiger id won't overwrite
		}
	} else if entry, ok := s.index.LookupAsset(assetID); ok && entry.TigerID != "" && entry.TigerID != effectiveTiger {
		log.Warnw("asset linked by wrong tiger id, unlinking old", "asset", assetID, "old_tiger", entry.TigerID)
		os.Remove(s.layout.tigerLinkPath(string(entry.TigerID)))
	}

	used := diskUsage(assetPath)
	allocated := diskAllocated(assetPath)
	s.index.Add(assetID, effectiveTiger, used, allocated, float64(time.Now().Unix()))

	if effectiveTiger == "" {
		return nil
	}
	link := s.layout.tigerLinkPath(string(effectiveTiger))
	os.Remove(link) // remove-then-recreate: the old link may not exist (§4.4 policy)
	rel, err := filepath.Rel(s.layout.tigerDir, assetPath)
	if err != nil {
		return fmt.Errorf("assetstore: relativizing asset path: %w", err)
	}
	if err := os.Symlink(rel, link); err != nil {
		return fmt.Errorf("assetstore: creating tiger symlink: %w", err)
	}
	return nil
}

// LookupTiger resolves a tiger id to the asset path it should be opened at,
// and the asset id. ok is false if the tiger id is untracked.
func (s *Store) LookupTiger(tigerID tiger.ID) (assetID, assetPath string, ok bool) {
	assetID, ok = s.index.LookupTiger(tigerID)
	if !ok {
		return "", "", false
	}
	return assetID, s.layout.assetPath(assetID), true
}

// RemoveAsset deletes assetID's file tree and tiger link, and drops it from
// the index. Returns bytes reclaimed.
func (s *Store) RemoveAsset(assetID string) int64 {
	tigerID := s.index.Remove(assetID)
	if tigerID != "" {
		os.Remove(s.layout.tigerLinkPath(string(tigerID)))
	}
	return removeFileTree(s.layout.assetPath(assetID))
}

// DiskUsage returns the index's total tracked disk usage.
func (s *Store) DiskUsage() int64 { return s.index.TotalDiskUsage() }

// Index exposes the backing AssetIndex for direct score/eviction queries.
func (s *Store) Index() *assetindex.Index { return s.index }

func mtimeOf(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Unix(0, 0)
	}
	return info.ModTime()
}

// diskUsage approximates actual on-disk block usage. The original
// distinguishes this from diskAllocated via stat's st_blocks (sparse files
// use fewer blocks than their logical size); the std library has no
// portable equivalent, so usage and allocation are equal here.
func diskUsage(path string) int64 {
	return diskAllocated(path)
}

func diskAllocated(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return info.Size()
	}
	var total int64
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}
	for _, entry := range entries {
		if fi, err := entry.Info(); err == nil {
			total += fi.Size()
		}
	}
	return total
}

func removeFileTree(path string) int64 {
	freed := diskAllocated(path)
	if err := os.RemoveAll(path); err != nil {
		log.Warnw("error removing asset tree", "path", path, "err", err)
	}
	return freed
}
