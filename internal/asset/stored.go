// Package asset implements StoredAsset (§4.2): a hash-tree-verified view
// over a DataArray, with background hashing driven by a worker pool.
//
// Grounded on _examples/original_source/bithorded/store/asset.{hpp,cpp} for
// the read/can_read/notify_valid_range contract, and on the teacher's
// store.Store for the "controller owns mutation, workers only touch
// captured input" split (§5).
package asset

import (
	"fmt"
	"io"
	"sync"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/bithorded/bithorded/internal/dispatch"
	"github.com/bithorded/bithorded/internal/hashtree"
	"github.com/bithorded/bithorded/internal/tiger"
)

var log = logging.Logger("asset")

// MaxChunk bounds the size of a single Read delivery (§4.2).
const MaxChunk = 64 * 1024

// ParallelHashJobs bounds the number of concurrent leaf-hashing jobs primed
// from one HashTail (§4.2).
const ParallelHashJobs = 64

// StoredAsset binds a DataArray to a HashStore, exposing verified reads and
// background hashing (§3 StoredAsset, §4.2).
type StoredAsset struct {
	ID            string
	data          DataArray
	hashStore     *hashtree.HashStore
	blockSize     int64
	levelsSkipped uint8
	dispatcher    *dispatch.Dispatcher
	Status        *Subscribable

	mu   sync.Mutex
	tail *hashTail
}

// New binds data to hashStore and returns a StoredAsset. data.Size() must be
// > 0 (§3 invariant).
func New(id string, data DataArray, hashStore *hashtree.HashStore, levelsSkipped uint8, dispatcher *dispatch.Dispatcher) (*StoredAsset, error) {
	if data.Size() <= 0 {
		return nil, fmt.Errorf("asset %s: data array is empty", id)
	}
	a := &StoredAsset{
		ID:            id,
		data:          data,
		hashStore:     hashStore,
		blockSize:     hashtree.BlockSize(levelsSkipped),
		levelsSkipped: levelsSkipped,
		dispatcher:    dispatcher,
		Status:        NewSubscribable(StatusEvent{Size: data.Size(), Status: StatusNone}),
	}
	return a, nil
}

// Size returns the asset's data size.
func (a *StoredAsset) Size() int64 { return a.data.Size() }

// HasRootHash reports whether the root hash node has transitioned to Set.
func (a *StoredAsset) HasRootHash() (bool, tiger.Digest, error) {
	return a.hashStore.HasRoot()
}

// CanRead returns the number of bytes actually validated and readable
// starting at offset, zero if the first leaf in range is not yet Set.
func (a *StoredAsset) CanRead(offset, size int64) int64 {
	return a.hashStore.CanRead(offset, size, a.blockSize)
}

// Read delivers up to min(size, MaxChunk, Size()-offset) validated bytes to
// cb, or an empty buffer on failure/timeout. offset must be < Size().
func (a *StoredAsset) Read(offset, size int64, timeout time.Duration, cb func(offset int64, buf []byte)) {
	if offset < 0 || offset >= a.Size() {
		cb(offset, nil)
		return
	}
	want := size
	if want > MaxChunk {
		want = MaxChunk
	}
	if remain := a.Size() - offset; want > remain {
		want = remain
	}

	if a.deliver(offset, want, cb) {
		return
	}

	done := make(chan struct{})
	var once sync.Once
	finish := func(ok bool) {
		once.Do(func() {
			if !ok || !a.deliver(offset, want, cb) {
				cb(offset, nil)
			}
			close(done)
		})
	}

	a.NotifyValidRange(offset, want, func() { finish(true) })

	if timeout > 0 {
		go func() {
			select {
			case <-done:
			case <-time.After(timeout):
				finish(false)
			}
		}()
	}
}

func (a *StoredAsset) deliver(offset, want int64, cb func(int64, []byte)) bool {
	avail := a.CanRead(offset, want)
	if avail <= 0 {
		return false
	}
	buf := make([]byte, avail)
	n, err := a.data.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return false
	}
	cb(offset, buf[:n])
	return true
}

// Write stores data at offset; hashing of any newly-completed leaves is
// triggered by the caller via NotifyValidRange (typically immediately after
// Write, covering exactly the written range).
func (a *StoredAsset) Write(offset int64, data []byte) error {
	_, err := a.data.WriteAt(data, offset)
	return err
}

// UpdateStatus publishes the current {size, status, tigerID} on Status.
func (a *StoredAsset) UpdateStatus() {
	hasRoot, digest, err := a.HasRootHash()
	if err != nil {
		log.Errorw("update status: reading root", "asset", a.ID, "err", err)
		return
	}
	event := StatusEvent{Size: a.Size(), Status: StatusNone}
	if hasRoot {
		event.Status = StatusSuccess
		event.Availability = 1000
		event.TigerID = string(tiger.NewID(digest))
	}
	a.Status.Publish(event)
}

// HashAll schedules hashing of the asset's entire content, invoking onDone
// once every leaf has been hashed.
func (a *StoredAsset) HashAll(onDone func()) {
	a.NotifyValidRange(0, a.Size(), onDone)
}
