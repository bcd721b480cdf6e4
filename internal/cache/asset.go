// Package cache implements CacheManager and its two asset kinds (§4.8):
// CachedAsset, a StoredAsset-backed upload/cache slot, and CachingAsset, a
// read-through proxy that serves from cache where possible and falls back
// to a router.ForwardedAsset, writing through as data arrives.
//
// Grounded on _examples/original_source/bithorded/cache/manager.{hpp,cpp}
// and cache/asset.{hpp,cpp}.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bithorded/bithorded/internal/asset"
	"github.com/bithorded/bithorded/internal/assetstore"
	"github.com/bithorded/bithorded/internal/dispatch"
	"github.com/bithorded/bithorded/internal/hashtree"
	"github.com/bithorded/bithorded/internal/tiger"
)

const (
	dataFileName = "data"
	metaFileName = "meta"
)

// CachedAsset is a StoredAsset whose data/meta files live in one asset
// directory, per the `<assetDir>/data` + `<assetDir>/meta` layout
// (_examples/original_source/bithorded/store/sourceasset.cpp's
// `_file(metaFolder/"data")`, `_metaStore(metaFolder/"meta", ...)`).
type CachedAsset struct {
	*asset.StoredAsset
	dir             string
	unsubscribeLink func()
}

// CreateCachedAsset allocates a fresh, empty cache slot of the given size:
// a preallocated data file and a matching meta file sized for its hash
// tree, both under dir (§4.8 prepare_upload).
func CreateCachedAsset(dir string, size int64, levelsSkipped uint8, dispatcher *dispatch.Dispatcher) (*CachedAsset, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache: cannot create a cached asset of size %d", size)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: creating asset dir: %w", err)
	}

	dataFile, err := os.OpenFile(filepath.Join(dir, dataFileName), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cache: creating data file: %w", err)
	}
	if err := dataFile.Truncate(size); err != nil {
		dataFile.Close()
		return nil, fmt.Errorf("cache: preallocating data file: %w", err)
	}

	leaves := hashtree.LeavesNeededForContent(size, levelsSkipped)
	nodesSize := hashtree.SizeNeededForContent(size, levelsSkipped)

	metaFile, err := os.OpenFile(filepath.Join(dir, metaFileName), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		dataFile.Close()
		return nil, fmt.Errorf("cache: creating meta file: %w", err)
	}
	header := assetstore.MetaHeader{
		Format:        assetstore.FormatV2Cache,
		Atoms:         uint64(hashtree.AtomsNeeded(size)),
		LevelsSkipped: levelsSkipped,
	}
	if err := assetstore.WriteHeader(metaFile, header); err != nil {
		dataFile.Close()
		metaFile.Close()
		return nil, err
	}
	if err := metaFile.Truncate(header.HeaderSize() + nodesSize); err != nil {
		dataFile.Close()
		metaFile.Close()
		return nil, fmt.Errorf("cache: preallocating meta file: %w", err)
	}

	storage := hashtree.NewFileStorage(metaFile, header.HeaderSize(), nodesSize)
	hashStore, err := hashtree.Open(storage, leaves)
	if err != nil {
		dataFile.Close()
		metaFile.Close()
		return nil, err
	}

	id := filepath.Base(dir)
	data := asset.NewFileDataArray(dataFile)
	stored, err := asset.New(id, data, hashStore, levelsSkipped, dispatcher)
	if err != nil {
		dataFile.Close()
		metaFile.Close()
		return nil, err
	}

	ca := &CachedAsset{StoredAsset: stored, dir: dir}
	// A freshly allocated upload slot is immediately SUCCESS: its size is
	// known even though no content is verified yet
	// (_examples/original_source/bithorded/cache/asset.cpp's
	// `CachedAsset(metaFolder, size)` constructor).
	ca.Status.Publish(asset.StatusEvent{Size: size, Status: asset.StatusSuccess, Availability: 1000})
	return ca, nil
}

// OpenCachedAsset reopens a previously created cache slot from its on-disk
// meta header.
func OpenCachedAsset(dir string, dispatcher *dispatch.Dispatcher) (*CachedAsset, error) {
	dataFile, err := os.OpenFile(filepath.Join(dir, dataFileName), os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cache: opening data file: %w", err)
	}
	metaFile, err := os.OpenFile(filepath.Join(dir, metaFileName), os.O_RDWR, 0o644)
	if err != nil {
		dataFile.Close()
		return nil, fmt.Errorf("cache: opening meta file: %w", err)
	}
	header, err := assetstore.ReadHeader(metaFile)
	if err != nil {
		dataFile.Close()
		metaFile.Close()
		return nil, err
	}

	leaves := hashtree.LeavesNeeded(int64(header.Atoms), header.LevelsSkipped)
	nodesSize := hashtree.SizeNeeded(leaves)
	storage := hashtree.NewFileStorage(metaFile, header.HeaderSize(), nodesSize)
	hashStore, err := hashtree.Open(storage, leaves)
	if err != nil {
		dataFile.Close()
		metaFile.Close()
		return nil, err
	}

	id := filepath.Base(dir)
	data := asset.NewFileDataArray(dataFile)
	stored, err := asset.New(id, data, hashStore, header.LevelsSkipped, dispatcher)
	if err != nil {
		dataFile.Close()
		metaFile.Close()
		return nil, err
	}

	ca := &CachedAsset{StoredAsset: stored, dir: dir}
	hasRoot, digest, err := stored.HasRootHash()
	status := asset.StatusNotFound
	tigerID := ""
	if err == nil && hasRoot {
		status = asset.StatusSuccess
		tigerID = string(tiger.NewID(digest))
	}
	availability := 0
	if status == asset.StatusSuccess {
		availability = 1000
	}
	ca.Status.Publish(asset.StatusEvent{Size: data.Size(), Status: status, Availability: availability, TigerID: tigerID})
	return ca, nil
}

// Write stores data at offset, triggers hashing of any newly-completed
// leaves, and republishes status (§4.8 CachedAsset::write).
func (ca *CachedAsset) Write(offset int64, data []byte) error {
	if err := ca.StoredAsset.Write(offset, data); err != nil {
		return err
	}
	ca.NotifyValidRange(offset, int64(len(data)), func() {})
	return nil
}

// Dir returns the asset's backing directory.
func (ca *CachedAsset) Dir() string { return ca.dir }
