package sessions

import (
	"runtime"
	"testing"
	"time"

	"github.com/bithorded/bithorded/internal/binding"
	"github.com/bithorded/bithorded/internal/tiger"
)

type fakeAsset struct{}

func (fakeAsset) Size() int64 { return 10 }
func (fakeAsset) Read(offset, size int64, timeout time.Duration, cb func(int64, []byte)) {
	cb(offset, nil)
}

type fakeRequest struct {
	tigerID tiger.ID
}

func (r fakeRequest) TigerID() tiger.ID { return r.tigerID }

func TestFindAssetEmptyTigerIDReturnsErrNotFound(t *testing.T) {
	s := New(func(Request) (*binding.RequestBinding, error) { return binding.New(fakeAsset{}), nil })
	if _, err := s.FindAsset(fakeRequest{}); err != ErrNotFound {
		t.Fatalf("FindAsset(empty) error = %v, want ErrNotFound", err)
	}
}

func TestFindAssetOpensOnMissAndReusesOnHit(t *testing.T) {
	opens := 0
	var opened *binding.RequestBinding
	open := func(Request) (*binding.RequestBinding, error) {
		opens++
		opened = binding.New(fakeAsset{})
		return opened, nil
	}
	s := New(open)
	req := fakeRequest{tigerID: tiger.NewID(tiger.Digest{1, 2, 3})}

	first, err := s.FindAsset(req)
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}
	if opens != 1 {
		t.Fatalf("opens = %d, want 1", opens)
	}

	second, err := s.FindAsset(req)
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}
	if opens != 1 {
		t.Fatalf("opens after second FindAsset = %d, want still 1 (dedup)", opens)
	}
	if first != second {
		t.Fatal("expected the same RequestBinding to be returned on a cache hit")
	}
	runtime.KeepAlive(opened)
}

func TestFindAssetPropagatesOpenError(t *testing.T) {
	wantErr := ErrNotFound // reuse as a stand-in sentinel for this test
	s := New(func(Request) (*binding.RequestBinding, error) { return nil, wantErr })
	req := fakeRequest{tigerID: tiger.NewID(tiger.Digest{9})}

	if _, err := s.FindAsset(req); err != wantErr {
		t.Fatalf("FindAsset error = %v, want %v", err, wantErr)
	}
}
