// Package hashtree implements HashStore: a fixed-size array of hash nodes
// backing a Tiger tree hash over an opaque byte array (§4.1 of the
// specification). Grounded on the teacher's store/freelist and store/index
// packages for the "fixed backing file, bounded node cache, explicit
// write-back" idiom, and on _examples/original_source/bithorded/store/hashstore.{hpp,cpp}
// for the propagation algorithm itself.
package hashtree

import (
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	logging "github.com/ipfs/go-log/v2"

	"github.com/bithorded/bithorded/internal/tiger"
)

var log = logging.Logger("hashtree")

// ErrBadStorageSize is returned by Open when the backing storage is empty or
// not an even multiple of NodeSize — a hard construction error per §4.1.
var ErrBadStorageSize = errors.New("hashtree: storage size is zero or not a multiple of node size")

// Storage is the raw byte-addressable backing for a HashStore: a plain
// random-access file or an in-memory buffer sized to hold NodeCount*NodeSize
// bytes.
type Storage interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
	Size() int64
}

// nodeCacheSize bounds the in-memory node cache; concurrent lookups for the
// same offset share the cached entry instead of re-reading storage.
const nodeCacheSize = 4096

// HashStore backs a Tiger hash tree over an opaque byte array of `leaves`
// blocks.
type HashStore struct {
	storage Storage
	layout  Layout

	mu    sync.Mutex
	cache *lru.Cache[int64, *cachedNode]
}

type cachedNode struct {
	mu   sync.Mutex
	node BaseNode
	// refs tracks live NodePtr handles; modified write-back only happens
	// when the last handle referencing a dirty node is released.
	dirty bool
}

// Open validates storage sizing and returns a HashStore over it.
func Open(storage Storage, leaves int64) (*HashStore, error) {
	layout := NewLayout(leaves)
	needed := layout.NodeCount() * NodeSize
	size := storage.Size()
	if size == 0 || size%NodeSize != 0 {
		return nil, ErrBadStorageSize
	}
	if size < needed {
		return nil, fmt.Errorf("hashtree: storage has %d bytes, need at least %d for %d leaves", size, needed, leaves)
	}
	cache, err := lru.New[int64, *cachedNode](nodeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("hashtree: node cache: %w", err)
	}
	return &HashStore{storage: storage, layout: layout, cache: cache}, nil
}

// Layout exposes the tree's layer layout.
func (h *HashStore) Layout() Layout { return h.layout }

// Read copies the node at the given storage offset.
func (h *HashStore) Read(offset int64) (BaseNode, error) {
	entry := h.entry(offset)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.node, nil
}

// Write overwrites the node at the given storage offset and flushes it to
// backing storage immediately.
func (h *HashStore) Write(offset int64, node BaseNode) error {
	entry := h.entry(offset)
	entry.mu.Lock()
	entry.node = node
	entry.dirty = false
	entry.mu.Unlock()
	return h.flush(offset, node)
}

// entry returns (loading if necessary) the cached node for a storage
// offset; concurrent callers addressing the same offset share it.
func (h *HashStore) entry(offset int64) *cachedNode {
	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.cache.Get(offset); ok {
		return e
	}
	var buf [NodeSize]byte
	n := BaseNode{}
	if _, err := h.storage.ReadAt(buf[:], offset*NodeSize); err == nil {
		if parsed, err := UnmarshalNode(buf[:]); err == nil {
			n = parsed
		}
	}
	e := &cachedNode{node: n}
	h.cache.Add(offset, e)
	return e
}

func (h *HashStore) flush(offset int64, node BaseNode) error {
	buf := node.Marshal()
	_, err := h.storage.WriteAt(buf[:], offset*NodeSize)
	return err
}

// CanRead reports how many bytes at the leaf covering `offset` (through the
// run of contiguous set leaves starting there) are validated and safe to
// read, bounded by `size` — callers treat a leaf's whole block as readable
// once its node is Set (§4.1, §4.2 can_read contract). It returns 0 if the
// first leaf in range is not yet Set.
func (h *HashStore) CanRead(offset, size, blockSize int64) int64 {
	if size <= 0 {
		return 0
	}
	leaves := h.layout.Leaves()
	firstLeaf := offset / blockSize
	if firstLeaf >= leaves {
		return 0
	}
	idx := LeafIdx(firstLeaf, leaves)
	n, err := h.Read(h.layout.StorageOffset(idx))
	if err != nil || !n.set() {
		return 0
	}
	// Extend across subsequent contiguous set leaves up to size.
	readable := (firstLeaf+1)*blockSize - offset
	for readable < size {
		nextLeaf := (offset + readable) / blockSize
		if nextLeaf >= leaves {
			break
		}
		idx = LeafIdx(nextLeaf, leaves)
		n, err = h.Read(h.layout.StorageOffset(idx))
		if err != nil || !n.set() {
			break
		}
		readable += blockSize
	}
	if readable > size {
		readable = size
	}
	return readable
}

// SetLeaf writes a leaf's digest and triggers propagation toward the root.
// Propagation is idempotent: re-setting a leaf to the same digest is a
// no-op once the parent is already Set.
func (h *HashStore) SetLeaf(i int64, digest tiger.Digest) error {
	idx := LeafIdx(i, h.layout.Leaves())
	if err := h.Write(h.layout.StorageOffset(idx), BaseNode{State: StateSet, Digest: digest}); err != nil {
		return err
	}
	return h.propagate(idx)
}

// HasRoot reports whether the root node has transitioned to Set.
func (h *HashStore) HasRoot() (bool, tiger.Digest, error) {
	root, err := h.Read(h.layout.StorageOffset(h.layout.RootIdx()))
	if err != nil {
		return false, tiger.Digest{}, err
	}
	return root.set(), root.Digest, nil
}

// propagate implements §4.1's algorithm: if the parent is already Set, stop
// (no re-verification). Otherwise, if the sibling is Set, compute the
// parent digest and recurse; if there is no sibling (odd child), copy this
// digest verbatim to the parent and recurse; otherwise stop — the sibling
// has not arrived yet.
func (h *HashStore) propagate(idx NodeIdx) error {
	for !idx.isRoot() {
		parentIdx := idx.Parent()
		parentOffset := h.layout.StorageOffset(parentIdx)
		parent, err := h.Read(parentOffset)
		if err != nil {
			return err
		}
		if parent.set() {
			return nil
		}

		self, err := h.Read(h.layout.StorageOffset(idx))
		if err != nil {
			return err
		}

		sibling, ok := idx.Sibling()
		var next BaseNode
		if !ok {
			// Odd child: promote this digest verbatim.
			next = BaseNode{State: StateSet, Digest: self.Digest}
		} else {
			siblingNode, err := h.Read(h.layout.StorageOffset(sibling))
			if err != nil {
				return err
			}
			if !siblingNode.set() {
				return nil
			}
			left, right := self, siblingNode
			if idx.Offset > sibling.Offset {
				left, right = right, left
			}
			next = BaseNode{State: StateSet, Digest: tiger.NodeDigest(left.Digest, right.Digest)}
		}

		if err := h.Write(parentOffset, next); err != nil {
			return err
		}
		log.Debugw("propagated hash node", "offset", idx.Offset, "layerSize", idx.LayerSize, "parentOffset", parentIdx.Offset)
		idx = parentIdx
	}
	return nil
}
