package asset

import (
	"context"
	"sync"

	"github.com/bithorded/bithorded/internal/hashtree"
	"github.com/bithorded/bithorded/internal/tiger"
)

// hashTail tracks one NotifyValidRange request's outstanding leaf-hash jobs
// (§4.2's HashTail record), feeding up to ParallelHashJobs concurrent jobs
// from its queue and calling onDone once the last one completes.
type hashTail struct {
	asset   *StoredAsset
	pending []int64 // leaf indexes not yet submitted
	onDone  func()

	mu        sync.Mutex
	inFlight  int
	completed bool
}

type leafHashJob struct {
	data   DataArray
	leaf   int64
	start  int64
	length int64
}

func (j leafHashJob) Run(ctx context.Context) any {
	buf := make([]byte, j.length)
	n, err := j.data.ReadAt(buf, j.start)
	if err != nil && n == 0 {
		return leafHashResult{leaf: j.leaf, err: err}
	}
	return leafHashResult{leaf: j.leaf, digest: tiger.LeafDigest(buf[:n])}
}

type leafHashResult struct {
	leaf   int64
	digest tiger.Digest
	err    error
}

// NotifyValidRange asks the hasher to digest leaves wholly contained in
// [offset, offset+size), rounded inward to block boundaries, except the
// file's tail leaf which is hashed as a (possibly shorter) partial block
// once the range reaches the end of the asset. onDone is called once every
// scheduled leaf has been hashed (immediately, if none needed hashing).
func (a *StoredAsset) NotifyValidRange(offset, size int64, onDone func()) {
	totalLeaves := hashtree.LeavesNeededForContent(a.Size(), a.levelsSkipped)
	if totalLeaves == 0 {
		onDone()
		return
	}

	firstLeaf := offset / a.blockSize
	if offset%a.blockSize != 0 {
		firstLeaf++
	}
	lastLeafExclusive := (offset + size) / a.blockSize
	if offset+size >= a.Size() {
		lastLeafExclusive = totalLeaves
	}
	if lastLeafExclusive > totalLeaves {
		lastLeafExclusive = totalLeaves
	}

	var queue []int64
	for leaf := firstLeaf; leaf < lastLeafExclusive; leaf++ {
		idx := hashtree.LeafIdx(leaf, totalLeaves)
		node, err := a.hashStore.Read(a.hashStore.Layout().StorageOffset(idx))
		if err == nil && node.State == hashtree.StateSet {
			continue
		}
		queue = append(queue, leaf)
	}

	if len(queue) == 0 {
		onDone()
		return
	}

	tail := &hashTail{asset: a, pending: queue, onDone: onDone}
	a.mu.Lock()
	a.tail = tail
	a.mu.Unlock()
	tail.fill()
}

func (t *hashTail) fill() {
	t.mu.Lock()
	for t.inFlight < ParallelHashJobs && len(t.pending) > 0 {
		leaf := t.pending[0]
		t.pending = t.pending[1:]
		t.inFlight++
		t.submit(leaf)
	}
	done := t.inFlight == 0 && len(t.pending) == 0 && !t.completed
	if done {
		t.completed = true
	}
	t.mu.Unlock()
	if done {
		t.asset.UpdateStatus()
		t.onDone()
	}
}

func (t *hashTail) submit(leaf int64) {
	start := leaf * t.asset.blockSize
	length := t.asset.blockSize
	if remain := t.asset.Size() - start; length > remain {
		length = remain
	}
	job := leafHashJob{data: t.asset.data, leaf: leaf, start: start, length: length}
	t.asset.dispatcher.Submit(job, func(result any) {
		res := result.(leafHashResult)
		if res.err != nil {
			log.Errorw("hashing leaf failed", "asset", t.asset.ID, "leaf", res.leaf, "err", res.err)
		} else if err := t.asset.hashStore.SetLeaf(res.leaf, res.digest); err != nil {
			log.Errorw("set leaf failed", "asset", t.asset.ID, "leaf", res.leaf, "err", err)
		}
		t.mu.Lock()
		t.inFlight--
		t.mu.Unlock()
		t.fill()
	})
}
