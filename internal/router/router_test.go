package router

import (
	"errors"
	"testing"
	"time"

	"github.com/bithorded/bithorded/internal/tiger"
)

type fakeHandle struct {
	closed bool
}

func (h *fakeHandle) Read(offset, size int64, tag int) error { return nil }
func (h *fakeHandle) Close() error                            { h.closed = true; return nil }

type fakeClient struct {
	name      string
	onOpen    func(ids []tiger.ID, timeout time.Duration, requesters []uint64, onStatus func(UpstreamStatus), onData func(ReadResult)) (UpstreamHandle, error)
}

func (c *fakeClient) PeerName() string { return c.name }
func (c *fakeClient) Open(ids []tiger.ID, timeout time.Duration, requesters []uint64, onStatus func(UpstreamStatus), onData func(ReadResult)) (UpstreamHandle, error) {
	if c.onOpen != nil {
		return c.onOpen(ids, timeout, requesters, onStatus, onData)
	}
	return &fakeHandle{}, nil
}

func connectFriend(r *Router, name string, c Client) {
	r.mu.Lock()
	r.connected[name] = c
	r.mu.Unlock()
}

func id(b byte) tiger.ID { return tiger.NewID(tiger.Digest{b}) }

func TestFindAssetDedupsOnSameTigerID(t *testing.T) {
	r := New()
	req := BindRead{IDs: []tiger.ID{id(1)}, Requesters: []uint64{1}}

	first, err := r.FindAsset(req)
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}
	second, err := r.FindAsset(req)
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}
	if first != second {
		t.Fatal("expected the same RequestBinding on repeat FindAsset for the same tiger id")
	}
}

func TestFindAssetBlacklistsSessionAfterOpen(t *testing.T) {
	r := New()
	req := BindRead{IDs: []tiger.ID{id(2)}, Requesters: []uint64{42}, Timeout: time.Second}

	if _, err := r.FindAsset(req); err != nil {
		t.Fatalf("FindAsset: %v", err)
	}

	r.mu.Lock()
	sessionID := r.nextSessionID
	r.mu.Unlock()
	if !r.isBlacklisted(sessionID) {
		t.Fatal("expected the new session id to be blacklisted after opening")
	}
}

func TestOpenAssetRejectsBlacklistedRequester(t *testing.T) {
	r := New()
	r.addToBlacklist(99, time.Now().Add(time.Minute))

	_, err := r.openAsset(BindRead{IDs: []tiger.ID{id(3)}, Requesters: []uint64{99}})
	if !errors.Is(err, ErrWouldLoop) {
		t.Fatalf("openAsset error = %v, want ErrWouldLoop", err)
	}
}

func TestBlacklistPrunesExpiredEntries(t *testing.T) {
	r := New()
	r.addToBlacklist(1, time.Now().Add(-time.Second))
	if r.isBlacklisted(1) {
		t.Fatal("expected an already-expired blacklist entry to be pruned")
	}
}

func TestApplyAddsUpstreamOnFirstSubscriber(t *testing.T) {
	r := New()
	opened := make(chan struct{}, 1)
	connectFriend(r, "peerA", &fakeClient{name: "peerA", onOpen: func(ids []tiger.ID, timeout time.Duration, requesters []uint64, onStatus func(UpstreamStatus), onData func(ReadResult)) (UpstreamHandle, error) {
		opened <- struct{}{}
		return &fakeHandle{}, nil
	}})

	rb, err := r.FindAsset(BindRead{IDs: []tiger.ID{id(4)}, Requesters: []uint64{7}})
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}

	rb.Attach(fakeSubscriber{id: 7})

	select {
	case <-opened:
	case <-time.After(time.Second):
		t.Fatal("expected an upstream Open call once a subscriber attached")
	}
}

type fakeSubscriber struct {
	id uint64
}

func (s fakeSubscriber) RequesterID() uint64 { return s.id }
func (s fakeSubscriber) Deadline() time.Time { return time.Time{} }
