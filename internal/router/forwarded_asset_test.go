package router

import (
	"testing"
	"time"

	"github.com/bithorded/bithorded/internal/binding"
	"github.com/bithorded/bithorded/internal/tiger"
)

func newTestForwardedAsset() *ForwardedAsset {
	return newForwardedAsset(New(), []tiger.ID{id(10)})
}

func TestForwardedAssetRecomputesStatusOnSuccess(t *testing.T) {
	fa := newTestForwardedAsset()
	fa.upstreams["peerA"] = &upstreamBinding{peerName: "peerA", handle: &fakeHandle{}}

	fa.onUpstreamStatus("peerA", UpstreamStatus{Success: true, Size: 1024})

	if got := fa.Size(); got != 1024 {
		t.Fatalf("Size() = %d, want 1024", got)
	}
	if fa.Status.Value().Status.String() != "SUCCESS" {
		t.Fatalf("status = %v, want SUCCESS", fa.Status.Value().Status)
	}
}

func TestForwardedAssetDropsUpstreamOnSizeConflict(t *testing.T) {
	fa := newTestForwardedAsset()
	fa.upstreams["peerA"] = &upstreamBinding{peerName: "peerA", handle: &fakeHandle{}}
	fa.onUpstreamStatus("peerA", UpstreamStatus{Success: true, Size: 100})

	fa.upstreams["peerB"] = &upstreamBinding{peerName: "peerB", handle: &fakeHandle{}}
	fa.onUpstreamStatus("peerB", UpstreamStatus{Success: true, Size: 200})

	if _, stillBound := fa.upstreams["peerB"]; stillBound {
		t.Fatal("expected peerB to be dropped after reporting a conflicting size")
	}
	if got := fa.Size(); got != 100 {
		t.Fatalf("Size() = %d, want 100 (unchanged)", got)
	}
}

func TestForwardedAssetDropsUpstreamOnServerLoop(t *testing.T) {
	fa := newTestForwardedAsset()
	fa.sessionID = 55
	fa.upstreams["peerA"] = &upstreamBinding{peerName: "peerA", handle: &fakeHandle{}}

	fa.onUpstreamStatus("peerA", UpstreamStatus{Success: true, Size: 10, Servers: []uint64{55}})

	if _, bound := fa.upstreams["peerA"]; bound {
		t.Fatal("expected peerA to be dropped once its servers list overlapped our own session id")
	}
}

func TestForwardedAssetReadWithNoUpstreamsReturnsNil(t *testing.T) {
	fa := newTestForwardedAsset()
	var got []byte
	called := false
	fa.Read(0, 10, time.Second, func(offset int64, buf []byte) {
		called = true
		got = buf
	})
	if !called || got != nil {
		t.Fatal("expected an immediate nil callback when no upstream is bound")
	}
}

func TestForwardedAssetReadDispatchesToSuccessUpstreamAndDeliversData(t *testing.T) {
	fa := newTestForwardedAsset()
	var reqOffset int64
	var reqSize int64
	handle := &fakeHandle{}
	fa.upstreams["peerA"] = &upstreamBinding{peerName: "peerA", handle: handle, success: true}

	// swap in a handle whose Read captures args and triggers onData directly
	capturing := &capturingHandle{onRead: func(offset, size int64, tag int) error {
		reqOffset, reqSize = offset, size
		fa.onData(ReadResult{Offset: offset, Data: []byte("hello")})
		return nil
	}}
	fa.upstreams["peerA"].handle = capturing

	var delivered []byte
	fa.Read(5, 5, time.Second, func(offset int64, buf []byte) {
		delivered = buf
	})

	if reqOffset != 5 || reqSize != 5 {
		t.Fatalf("upstream Read called with (%d,%d), want (5,5)", reqOffset, reqSize)
	}
	if string(delivered) != "hello" {
		t.Fatalf("delivered = %q, want %q", delivered, "hello")
	}
}

type capturingHandle struct {
	onRead func(offset, size int64, tag int) error
}

func (h *capturingHandle) Read(offset, size int64, tag int) error { return h.onRead(offset, size, tag) }
func (h *capturingHandle) Close() error                           { return nil }

func TestForwardedAssetCloseCancelsPendingReadsAndClosesUpstreams(t *testing.T) {
	fa := newTestForwardedAsset()
	handle := &fakeHandle{}
	fa.upstreams["peerA"] = &upstreamBinding{peerName: "peerA", handle: handle, success: true}
	fa.pending = append(fa.pending, &pendingRead{offset: 0, cb: func(int64, []byte) {}})

	canceled := false
	fa.pending[0].cb = func(offset int64, buf []byte) {
		if buf == nil {
			canceled = true
		}
	}

	fa.Close()

	if !canceled {
		t.Fatal("expected a pending read to be canceled with a nil buffer on Close")
	}
	if !handle.closed {
		t.Fatal("expected bound upstream handles to be closed")
	}
}

func TestForwardedAssetApplyAddsAndDropsUpstreamWithSubscriberCount(t *testing.T) {
	r := New()
	opened := 0
	connectFriend(r, "peerA", &fakeClient{name: "peerA", onOpen: func(ids []tiger.ID, timeout time.Duration, requesters []uint64, onStatus func(UpstreamStatus), onData func(ReadResult)) (UpstreamHandle, error) {
		opened++
		return &fakeHandle{}, nil
	}})

	fa := newForwardedAsset(r, []tiger.ID{id(20)})
	rb := binding.New(fa)

	rb.Attach(fakeSubscriber{id: 1})
	if opened != 1 {
		t.Fatalf("opened = %d, want 1 after first subscriber attached", opened)
	}

	rb.Detach(fakeSubscriber{id: 1})
	fa.mu.Lock()
	_, stillBound := fa.upstreams["peerA"]
	fa.mu.Unlock()
	if stillBound {
		t.Fatal("expected the upstream to be dropped once the last subscriber detached")
	}
}
