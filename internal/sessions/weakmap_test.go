package sessions

import (
	"runtime"
	"testing"
)

func TestWeakMapGetMissingReturnsFalse(t *testing.T) {
	m := NewWeakMap[string, int](0)
	if _, ok := m.Get("missing"); ok {
		t.Fatal("expected miss on empty map")
	}
}

func TestWeakMapSetThenGetWhileReferenced(t *testing.T) {
	m := NewWeakMap[string, int](0)
	value := 42
	m.Set("key", &value)

	got, ok := m.Get("key")
	if !ok {
		t.Fatal("expected hit while the value is still referenced")
	}
	if *got != 42 {
		t.Fatalf("*got = %d, want 42", *got)
	}
	runtime.KeepAlive(&value)
}

func TestWeakMapClearRemovesEntry(t *testing.T) {
	m := NewWeakMap[string, int](0)
	value := 1
	m.Set("key", &value)
	m.Clear("key")

	if _, ok := m.Get("key"); ok {
		t.Fatal("expected miss after Clear")
	}
	runtime.KeepAlive(&value)
}

func TestWeakMapScrubReturnsLiveCount(t *testing.T) {
	m := NewWeakMap[string, int](0)
	a, b := 1, 2
	m.Set("a", &a)
	m.Set("b", &b)

	if got := m.Scrub(); got != 2 {
		t.Fatalf("Scrub() = %d, want 2 while both values are referenced", got)
	}
	runtime.KeepAlive(&a)
	runtime.KeepAlive(&b)
}

func TestWeakMapSetTriggersScrubAtThreshold(t *testing.T) {
	m := NewWeakMap[int, int](2)
	v := 1
	m.Set(1, &v)
	m.Set(2, &v) // each shard's tiny per-shard threshold triggers scrub immediately
	if got := m.totalDirtiness(); got != 0 {
		t.Fatalf("totalDirtiness() = %d after crossing threshold, want reset to 0", got)
	}
	runtime.KeepAlive(&v)
}
