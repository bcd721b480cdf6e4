package assetstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	logging "github.com/ipfs/go-log/v2"

	"github.com/bithorded/bithorded/internal/asset"
	"github.com/bithorded/bithorded/internal/dispatch"
	"github.com/bithorded/bithorded/internal/hashtree"
	"github.com/bithorded/bithorded/internal/tiger"
)

var sourceLog = logging.Logger("source")

// SourceStore tracks external files linked into a source directory, hashing
// them in the background and making them findable by tiger id once their
// root hash is known — the source-asset lifecycle line from §3: "created
// when a file is linked into a source directory, hashed in the background,
// entered into the index when the root hash is known".
//
// Grounded on _examples/original_source/bithorded/source/store.{hpp,cpp}
// (SourceStore plays the role of bithorded::source::Store) and
// source/asset.{hpp,cpp} (SourceEntry plays SourceAsset). Each tracked file
// gets a sibling meta file (format 0x03: header + hash nodes + relative
// source path tail) under metaDir, rather than a copy of the data itself.
type SourceStore struct {
	metaDir       string
	dispatcher    *dispatch.Dispatcher
	levelsSkipped uint8

	mu      sync.Mutex
	byTiger map[tiger.ID]*SourceEntry
}

// SourceEntry pairs a StoredAsset view of an external file with the paths
// needed to re-validate it against its backing file later.
type SourceEntry struct {
	SourcePath string
	MetaPath   string
	Asset      *asset.StoredAsset
}

// NewSourceStore roots a SourceStore's hash-tree meta files at metaDir,
// creating it if necessary.
func NewSourceStore(metaDir string, dispatcher *dispatch.Dispatcher, levelsSkipped uint8) (*SourceStore, error) {
	if err := os.MkdirAll(metaDir, 0o755); err != nil {
		return nil, fmt.Errorf("source: creating meta dir: %w", err)
	}
	return &SourceStore{
		metaDir:       metaDir,
		dispatcher:    dispatcher,
		levelsSkipped: levelsSkipped,
		byTiger:       make(map[tiger.ID]*SourceEntry),
	}, nil
}

// AddAsset links an external file into the store: allocates a hash-tree
// meta file for it and starts background hashing. The asset becomes
// findable by FindAsset only once hashing completes and its root hash is
// known — callers that need synchronous registration should wait on
// entry.Asset.Status.
func (s *SourceStore) AddAsset(sourcePath string) (*SourceEntry, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("source: stat %s: %w", sourcePath, err)
	}
	if info.Size() <= 0 {
		return nil, fmt.Errorf("source: %s is empty", sourcePath)
	}

	metaID, err := randomAlphaNumeric(randomIDLen)
	if err != nil {
		return nil, err
	}
	metaPath := filepath.Join(s.metaDir, metaID)

	leaves := hashtree.LeavesNeededForContent(info.Size(), s.levelsSkipped)
	nodesSize := hashtree.SizeNeededForContent(info.Size(), s.levelsSkipped)

	metaFile, err := os.OpenFile(metaPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("source: creating meta file: %w", err)
	}
	header := MetaHeader{
		Format:        FormatV2SourcePath,
		Atoms:         uint64(hashtree.AtomsNeeded(info.Size())),
		LevelsSkipped: s.levelsSkipped,
	}
	if err := WriteHeader(metaFile, header); err != nil {
		metaFile.Close()
		return nil, err
	}
	relSource, err := filepath.Rel(s.metaDir, sourcePath)
	if err != nil {
		relSource = sourcePath
	}
	if _, err := metaFile.WriteAt([]byte(relSource), header.HeaderSize()+nodesSize); err != nil {
		metaFile.Close()
		return nil, fmt.Errorf("source: writing source path tail: %w", err)
	}

	storage := hashtree.NewFileStorage(metaFile, header.HeaderSize(), nodesSize)
	hashStore, err := hashtree.Open(storage, leaves)
	if err != nil {
		metaFile.Close()
		return nil, err
	}

	dataFile, err := os.Open(sourcePath)
	if err != nil {
		metaFile.Close()
		return nil, fmt.Errorf("source: opening source file: %w", err)
	}
	data := asset.NewFileDataArray(dataFile)

	storedAsset, err := asset.New(metaID, data, hashStore, s.levelsSkipped, s.dispatcher)
	if err != nil {
		metaFile.Close()
		dataFile.Close()
		return nil, err
	}

	entry := &SourceEntry{SourcePath: sourcePath, MetaPath: metaPath, Asset: storedAsset}
	storedAsset.HashAll(func() {
		hasRoot, digest, err := storedAsset.HasRootHash()
		if err != nil || !hasRoot {
			sourceLog.Warnw("source asset failed to hash", "path", sourcePath, "err", err)
			return
		}
		s.register(tiger.NewID(digest), entry)
		storedAsset.UpdateStatus()
	})
	return entry, nil
}

func (s *SourceStore) register(id tiger.ID, entry *SourceEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byTiger[id] = entry
}

// FindAsset resolves a tiger id to a previously-hashed source asset.
func (s *SourceStore) FindAsset(id tiger.ID) (*SourceEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.byTiger[id]
	return entry, ok
}

// Entries snapshots every source asset registered so far, hashed or not.
// Used by callers that need to enumerate a source (e.g. building a
// directory listing) rather than look up a single known tiger id.
func (s *SourceStore) Entries() []*SourceEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*SourceEntry, 0, len(s.byTiger))
	for _, e := range s.byTiger {
		out = append(out, e)
	}
	return out
}

// Remove drops a source asset by tiger id — its backing link disappeared,
// or its data became newer than its meta (§3's source-asset removal
// condition; staleness detection against mtime is the caller's
// responsibility, since only the caller watches the source directory).
func (s *SourceStore) Remove(id tiger.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byTiger, id)
}
