package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bithorded/bithorded/internal/asset"
	"github.com/bithorded/bithorded/internal/dispatch"
	"github.com/bithorded/bithorded/internal/tiger"
)

func waitForRootHash(t *testing.T, ca *CachedAsset) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if hasRoot, _, err := ca.HasRootHash(); err != nil {
			t.Fatalf("HasRootHash: %v", err)
		} else if hasRoot {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for cached asset to hash")
}

func TestCreateCachedAssetAllocatesFilesAndIsImmediatelySuccess(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "slot1")
	d := dispatch.New(context.Background(), 2)
	defer d.Close()

	ca, err := CreateCachedAsset(dir, 2048, 0, d)
	if err != nil {
		t.Fatalf("CreateCachedAsset: %v", err)
	}

	if info, err := os.Stat(filepath.Join(dir, dataFileName)); err != nil || info.Size() != 2048 {
		t.Fatalf("data file size = %v (err=%v), want 2048", info, err)
	}
	if _, err := os.Stat(filepath.Join(dir, metaFileName)); err != nil {
		t.Fatalf("expected meta file to exist: %v", err)
	}
	if got := ca.Status.Value().Status; got != asset.StatusSuccess {
		t.Fatalf("status = %v, want SUCCESS immediately after allocation", got)
	}
}

func TestCachedAssetWriteCompletesHashing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "slot2")
	d := dispatch.New(context.Background(), 4)
	defer d.Close()

	content := make([]byte, 4096)
	for i := range content {
		content[i] = byte(i)
	}

	ca, err := CreateCachedAsset(dir, int64(len(content)), 0, d)
	if err != nil {
		t.Fatalf("CreateCachedAsset: %v", err)
	}
	if err := ca.Write(0, content); err != nil {
		t.Fatalf("Write: %v", err)
	}

	waitForRootHash(t, ca)
}

func TestOpenCachedAssetReopensExistingAsset(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "slot3")
	d := dispatch.New(context.Background(), 4)
	defer d.Close()

	content := []byte("hello world, this is cached content")
	ca, err := CreateCachedAsset(dir, int64(len(content)), 0, d)
	if err != nil {
		t.Fatalf("CreateCachedAsset: %v", err)
	}
	if err := ca.Write(0, content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	waitForRootHash(t, ca)
	wantDigest := func() tiger.Digest {
		_, digest, _ := ca.HasRootHash()
		return digest
	}()

	reopened, err := OpenCachedAsset(dir, d)
	if err != nil {
		t.Fatalf("OpenCachedAsset: %v", err)
	}
	hasRoot, digest, err := reopened.HasRootHash()
	if err != nil {
		t.Fatalf("HasRootHash: %v", err)
	}
	if !hasRoot {
		t.Fatal("expected reopened asset to already have its root hash set")
	}
	if digest != wantDigest {
		t.Fatalf("digest = %x, want %x", digest, wantDigest)
	}
	if reopened.Size() != int64(len(content)) {
		t.Fatalf("Size() = %d, want %d", reopened.Size(), len(content))
	}
}
