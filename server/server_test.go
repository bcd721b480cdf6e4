package server

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bithorded/bithorded/internal/assetstore"
	"github.com/bithorded/bithorded/internal/config"
	"github.com/bithorded/bithorded/internal/router"
	"github.com/bithorded/bithorded/internal/tiger"
)

func noopDial(ctx context.Context, f router.FriendConfig) (router.Client, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// waitForSourceEntry polls a registered source until its single linked
// file finishes background hashing, returning its SourceEntry.
func waitForSourceEntry(t *testing.T, store *assetstore.SourceStore) *assetstore.SourceEntry {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		entries := store.Entries()
		if len(entries) > 0 {
			return entries[0]
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for source file to hash")
	return nil
}

func TestRegisterSourceLinksFilesAndMakesThemFindableByTigerID(t *testing.T) {
	root := t.TempDir()
	content := bytes.Repeat([]byte{'Z'}, 4096)
	require.NoError(t, os.WriteFile(filepath.Join(root, "asset.bin"), content, 0o644))

	srv, err := New(&config.Config{}, noopDial)
	require.NoError(t, err)
	defer srv.Close()

	require.NoError(t, srv.RegisterSource("docs", root))

	srv.mu.Lock()
	store := srv.sources["docs"]
	srv.mu.Unlock()
	require.NotNil(t, store)

	entry := waitForSourceEntry(t, store)
	hasRoot, digest, err := entry.Asset.HasRootHash()
	require.NoError(t, err)
	require.True(t, hasRoot)
	tigerID := tiger.NewID(digest)

	rb, err := srv.FindAsset(router.BindRead{IDs: []tiger.ID{tigerID}})
	require.NoError(t, err)
	require.NotNil(t, rb)

	var got []byte
	done := make(chan struct{})
	rb.Asset.Read(0, int64(len(content)), time.Second, func(_ int64, buf []byte) {
		got = buf
		close(done)
	})
	<-done
	require.Equal(t, content, got)
}

func TestFindAssetReturnsNilForUnknownTigerIDWithNoCacheOrRouter(t *testing.T) {
	srv, err := New(&config.Config{}, noopDial)
	require.NoError(t, err)
	defer srv.Close()

	rb, err := srv.FindAsset(router.BindRead{IDs: []tiger.ID{tiger.NewID(tiger.Digest{1})}})
	require.NoError(t, err)
	require.Nil(t, rb)
}

func TestNewAppliesFriendsFromConfig(t *testing.T) {
	cfg := &config.Config{
		Friends: []config.FriendConfig{{Name: "peerA", Addr: "10.0.0.1", Port: 4321}},
	}
	srv, err := New(cfg, noopDial)
	require.NoError(t, err)
	defer srv.Close()

	require.NotNil(t, srv.router)
}
