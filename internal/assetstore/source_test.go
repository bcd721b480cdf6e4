package assetstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bithorded/bithorded/internal/dispatch"
)

func TestAddAssetHashesAndRegistersByTigerID(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "content.bin")
	content := make([]byte, 4096)
	for i := range content {
		content[i] = byte(i)
	}
	if err := os.WriteFile(sourcePath, content, 0o644); err != nil {
		t.Fatalf("writing source file: %v", err)
	}

	d := dispatch.New(context.Background(), 4)
	defer d.Close()

	store, err := NewSourceStore(filepath.Join(dir, "meta"), d, 0)
	if err != nil {
		t.Fatalf("NewSourceStore: %v", err)
	}

	entry, err := store.AddAsset(sourcePath)
	if err != nil {
		t.Fatalf("AddAsset: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	var hasRoot bool
	for time.Now().Before(deadline) {
		var err error
		hasRoot, _, err = entry.Asset.HasRootHash()
		if err != nil {
			t.Fatalf("HasRootHash: %v", err)
		}
		if hasRoot {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if !hasRoot {
		t.Fatal("timed out waiting for source asset to hash")
	}

	if _, err := os.Stat(entry.MetaPath); err != nil {
		t.Fatalf("expected meta file to exist: %v", err)
	}
}

func TestAddAssetRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(sourcePath, nil, 0o644); err != nil {
		t.Fatalf("writing empty file: %v", err)
	}

	d := dispatch.New(context.Background(), 1)
	defer d.Close()
	store, err := NewSourceStore(filepath.Join(dir, "meta"), d, 0)
	if err != nil {
		t.Fatalf("NewSourceStore: %v", err)
	}

	if _, err := store.AddAsset(sourcePath); err == nil {
		t.Fatal("expected error adding an empty source file")
	}
}
