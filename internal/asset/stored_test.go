package asset

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/bithorded/bithorded/internal/dispatch"
	"github.com/bithorded/bithorded/internal/hashtree"
)

func newTestAsset(t *testing.T, content []byte, levelsSkipped uint8) (*StoredAsset, *dispatch.Dispatcher) {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "asset-data-*")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	if _, err := f.Write(content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data := NewFileDataArray(f)

	leaves := hashtree.LeavesNeededForContent(int64(len(content)), levelsSkipped)
	storage := hashtree.NewMemStorage(hashtree.SizeNeededForContent(int64(len(content)), levelsSkipped))
	hs, err := hashtree.Open(storage, leaves)
	if err != nil {
		t.Fatalf("hashtree.Open: %v", err)
	}

	d := dispatch.New(context.Background(), 4)
	t.Cleanup(d.Close)

	a, err := New("test-asset", data, hs, levelsSkipped, d)
	if err != nil {
		t.Fatalf("asset.New: %v", err)
	}
	return a, d
}

func hashAndWait(t *testing.T, a *StoredAsset) {
	t.Helper()
	done := make(chan struct{})
	a.HashAll(func() { close(done) })
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out hashing asset")
	}
}

func TestReadAfterFullHashReturnsRootHash(t *testing.T) {
	content := bytes.Repeat([]byte{'A'}, 1024)
	a, _ := newTestAsset(t, content, 0) // levelsSkipped=0 => block size 1024, single leaf
	hashAndWait(t, a)

	hasRoot, _, err := a.HasRootHash()
	if err != nil {
		t.Fatalf("HasRootHash: %v", err)
	}
	if !hasRoot {
		t.Fatal("expected root hash to be set after HashAll")
	}

	var got []byte
	done := make(chan struct{})
	a.Read(0, int64(len(content)), time.Second, func(offset int64, buf []byte) {
		got = buf
		close(done)
	})
	<-done
	if !bytes.Equal(got, content) {
		t.Fatalf("read back %d bytes, want %d matching content", len(got), len(content))
	}
}

func TestReadBeyondSizeYieldsEmptyBuffer(t *testing.T) {
	content := bytes.Repeat([]byte{'A'}, 128)
	a, _ := newTestAsset(t, content, 0)
	hashAndWait(t, a)

	var got []byte
	called := false
	done := make(chan struct{})
	a.Read(int64(len(content)), 10, time.Second, func(offset int64, buf []byte) {
		got = buf
		called = true
		close(done)
	})
	<-done
	if !called || len(got) != 0 {
		t.Fatalf("expected empty buffer for out-of-range read, got %v", got)
	}
}

func TestCanReadZeroBeforeHashing(t *testing.T) {
	content := bytes.Repeat([]byte{'B'}, 2049)
	a, _ := newTestAsset(t, content, 0)
	if got := a.CanRead(0, 100); got != 0 {
		t.Fatalf("CanRead before hashing = %d, want 0", got)
	}
}

func TestTailLeafShorterThanBlockStillReadable(t *testing.T) {
	// 2049 bytes with 1024-byte blocks: three leaves, the last only 1 byte.
	content := bytes.Repeat([]byte{'A'}, 2049)
	a, _ := newTestAsset(t, content, 0)
	hashAndWait(t, a)

	var got []byte
	done := make(chan struct{})
	a.Read(2048, 1, time.Second, func(offset int64, buf []byte) {
		got = buf
		close(done)
	})
	<-done
	if len(got) != 1 || got[0] != 'A' {
		t.Fatalf("tail-leaf read = %v, want single 'A' byte", got)
	}
}

func TestStreamedUploadHashesIncrementally(t *testing.T) {
	// Scenario 6 shape: write in 16 KiB chunks, hash each chunk as it
	// lands, and expect SUCCESS only once every leaf is covered.
	const levelsSkipped = 0 // 1024-byte leaves
	const total = 87234
	content := bytes.Repeat([]byte{'A'}, total)

	f, err := os.CreateTemp(t.TempDir(), "stream-*")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	if err := f.Truncate(total); err != nil {
		t.Fatalf("Truncate: %v", err)
	}
	data := NewFileDataArray(f)

	leaves := hashtree.LeavesNeededForContent(total, levelsSkipped)
	storage := hashtree.NewMemStorage(hashtree.SizeNeededForContent(total, levelsSkipped))
	hs, err := hashtree.Open(storage, leaves)
	if err != nil {
		t.Fatalf("hashtree.Open: %v", err)
	}
	d := dispatch.New(context.Background(), 8)
	defer d.Close()
	a, err := New("stream-asset", data, hs, levelsSkipped, d)
	if err != nil {
		t.Fatalf("asset.New: %v", err)
	}

	const chunk = 16 * 1024
	for off := 0; off < total; off += chunk {
		n := chunk
		if off+n > total {
			n = total - off
		}
		if err := a.Write(int64(off), content[off:off+n]); err != nil {
			t.Fatalf("Write: %v", err)
		}
		done := make(chan struct{})
		a.NotifyValidRange(int64(off), int64(n), func() { close(done) })
		<-done
	}

	hasRoot, _, err := a.HasRootHash()
	if err != nil {
		t.Fatalf("HasRootHash: %v", err)
	}
	if !hasRoot {
		t.Fatal("expected root hash set after streamed upload completes")
	}
	a.UpdateStatus()
	if a.Status.Value().Status != StatusSuccess {
		t.Fatalf("status = %v, want SUCCESS", a.Status.Value().Status)
	}
}
