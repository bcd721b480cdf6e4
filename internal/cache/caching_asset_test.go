package cache

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bithorded/bithorded/internal/binding"
	"github.com/bithorded/bithorded/internal/dispatch"
	"github.com/bithorded/bithorded/internal/router"
	"github.com/bithorded/bithorded/internal/tiger"
)

type fakeUpstreamHandle struct {
	mu      sync.Mutex
	closed  bool
	onRead  func(offset, size int64, tag int) error
}

func (h *fakeUpstreamHandle) Read(offset, size int64, tag int) error {
	if h.onRead != nil {
		return h.onRead(offset, size, tag)
	}
	return nil
}

func (h *fakeUpstreamHandle) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}

func (h *fakeUpstreamHandle) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// fakeRouterClient is a single-peer Client double: Open reports SUCCESS with
// the given content's size asynchronously, and serves Reads out of that
// content.
type fakeRouterClient struct {
	name    string
	content []byte
	opened  chan struct{}
	handle  *fakeUpstreamHandle
}

func (c *fakeRouterClient) PeerName() string { return c.name }

func (c *fakeRouterClient) Open(ids []tiger.ID, timeout time.Duration, requesters []uint64, onStatus func(router.UpstreamStatus), onData func(router.ReadResult)) (router.UpstreamHandle, error) {
	h := &fakeUpstreamHandle{}
	h.onRead = func(offset, size int64, tag int) error {
		go onData(router.ReadResult{Offset: offset, Data: c.content[offset : offset+size], Tag: tag})
		return nil
	}
	c.handle = h
	go onStatus(router.UpstreamStatus{Success: true, Size: int64(len(c.content))})
	if c.opened != nil {
		select {
		case c.opened <- struct{}{}:
		default:
		}
	}
	return h, nil
}

type fakeCASubscriber struct{ id uint64 }

func (s fakeCASubscriber) RequesterID() uint64 { return s.id }
func (s fakeCASubscriber) Deadline() time.Time { return time.Time{} }

// connectedForwardedAsset wires a real router.Router with one connected
// fake peer and returns the ForwardedAsset + RequestBinding FindAsset
// produced for tigerID.
func connectedForwardedAsset(t *testing.T, tigerID tiger.ID, content []byte) (*router.Router, *router.ForwardedAsset, *binding.RequestBinding, *fakeRouterClient) {
	t.Helper()
	r := router.New()
	client := &fakeRouterClient{name: "peerA", content: content}
	dial := func(ctx context.Context, f router.FriendConfig) (router.Client, error) {
		return client, nil
	}
	r.AddFriend(context.Background(), router.FriendConfig{Name: "peerA"}, dial)
	// give the Reconnector's background goroutine a moment to dial and
	// register the connection before we drive Apply.
	time.Sleep(50 * time.Millisecond)

	rb, err := r.FindAsset(router.BindRead{IDs: []tiger.ID{tigerID}})
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}
	fa, ok := rb.Asset.(*router.ForwardedAsset)
	if !ok {
		t.Fatalf("FindAsset returned asset of type %T, want *router.ForwardedAsset", rb.Asset)
	}
	return r, fa, rb, client
}

func TestCachingAssetApplyAttachesAndDetachesFromUpstreamBinding(t *testing.T) {
	mgr, d := newTestManager(t, 1024*1024)
	defer d.Close()

	_, fa, upstreamRB, client := connectedForwardedAsset(t, tiger.NewID(tiger.Digest{9}), []byte("hello"))
	ca := newCachingAsset(mgr, upstreamRB, fa, nil)
	ownBinding := binding.New(ca)

	ownBinding.Attach(fakeCASubscriber{id: 1})

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) && client.handle == nil {
		time.Sleep(10 * time.Millisecond)
	}
	if client.handle == nil {
		t.Fatal("expected the upstream to be opened once CachingAsset gained a subscriber")
	}

	ownBinding.Detach(fakeCASubscriber{id: 1})

	deadline = time.Now().Add(time.Second)
	for time.Now().Before(deadline) && !client.handle.isClosed() {
		time.Sleep(10 * time.Millisecond)
	}
	if !client.handle.isClosed() {
		t.Fatal("expected the upstream to be closed once CachingAsset lost its last subscriber")
	}
}

func TestCachingAssetReadServesFromCacheWhenFullyCovered(t *testing.T) {
	d := dispatch.New(context.Background(), 2)
	defer d.Close()

	content := []byte("already cached bytes")
	dir := filepath.Join(t.TempDir(), "slot")
	cached, err := CreateCachedAsset(dir, int64(len(content)), 0, d)
	if err != nil {
		t.Fatalf("CreateCachedAsset: %v", err)
	}
	if err := cached.Write(0, content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	waitForRootHash(t, cached)

	ca := newCachingAsset(nil, nil, nil, cached)

	got := make(chan []byte, 1)
	ca.Read(0, int64(len(content)), 0, func(offset int64, buf []byte) {
		got <- buf
	})

	select {
	case buf := <-got:
		if string(buf) != string(content) {
			t.Fatalf("Read returned %q, want %q", buf, content)
		}
	case <-time.After(time.Second):
		t.Fatal("Read never called back")
	}
}

func TestCachingAssetReadWritesThroughAndDisconnectsOnComplete(t *testing.T) {
	mgr, d := newTestManager(t, 1024*1024)
	defer d.Close()

	content := []byte("forwarded content to be cached")
	_, fa, upstreamRB, _ := connectedForwardedAsset(t, tiger.NewID(tiger.Digest{11}), content)
	ca := newCachingAsset(mgr, upstreamRB, fa, nil)

	dir := filepath.Join(t.TempDir(), "writethrough")
	cached, err := CreateCachedAsset(dir, int64(len(content)), 0, d)
	if err != nil {
		t.Fatalf("CreateCachedAsset: %v", err)
	}
	ca.mu.Lock()
	ca.cached = cached
	ca.mu.Unlock()
	ownBinding := binding.New(ca)
	ownBinding.Attach(fakeCASubscriber{id: 1})

	// Wait for the upstream's status callback (fired async in Open) to mark
	// it SUCCESS so ForwardedAsset.bestUpstream has something to pick.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if fa.Size() == int64(len(content)) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := make(chan []byte, 1)
	ca.Read(0, int64(len(content)), 0, func(offset int64, buf []byte) {
		got <- buf
	})

	select {
	case buf := <-got:
		if string(buf) != string(content) {
			t.Fatalf("Read returned %q, want %q", buf, content)
		}
	case <-time.After(time.Second):
		t.Fatal("Read never called back")
	}

	waitForRootHash(t, cached)

	deadline = time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		ca.mu.Lock()
		disconnected := ca.upstream == nil
		ca.mu.Unlock()
		if disconnected {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("expected CachingAsset to disconnect from upstream once the cached copy was fully hashed")
}
