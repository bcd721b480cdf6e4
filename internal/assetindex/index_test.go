package assetindex

import "testing"

func TestTotalDiskUsageSumsEntries(t *testing.T) {
	idx := New(0)
	idx.Add("a1", "tiger-a", 100, 128, 1)
	idx.Add("a2", "tiger-b", 200, 256, 2)
	idx.Add("a3", "tiger-c", 50, 64, 3)

	if got, want := idx.TotalDiskUsage(), int64(350); got != want {
		t.Fatalf("TotalDiskUsage() = %d, want %d", got, want)
	}
	if got, want := idx.TotalDiskAllocation(), int64(448); got != want {
		t.Fatalf("TotalDiskAllocation() = %d, want %d", got, want)
	}
}

func TestPickLoserReturnsMinScore(t *testing.T) {
	idx := New(0)
	idx.Add("hot", "tiger-hot", 10, 10, 50)
	idx.Add("cold", "tiger-cold", 10, 10, 1)
	idx.Add("warm", "tiger-warm", 10, 10, 25)

	if got := idx.PickLoser(); got != "cold" {
		t.Fatalf("PickLoser() = %q, want %q", got, "cold")
	}
}

func TestPickLoserEmptyIndexReturnsEmptyString(t *testing.T) {
	idx := New(0)
	if got := idx.PickLoser(); got != "" {
		t.Fatalf("PickLoser() on empty index = %q, want empty", got)
	}
}

func TestRemoveReturnsTigerIDAndDropsEntry(t *testing.T) {
	idx := New(0)
	idx.Add("a1", "tiger-a", 10, 10, 1)

	got := idx.Remove("a1")
	if got != "tiger-a" {
		t.Fatalf("Remove() = %q, want %q", got, "tiger-a")
	}
	if _, ok := idx.LookupAsset("a1"); ok {
		t.Fatal("expected a1 to be gone after Remove")
	}
	if _, ok := idx.LookupTiger("tiger-a"); ok {
		t.Fatal("expected tiger-a reverse lookup to be gone after Remove")
	}
	if got := idx.Len(); got != 0 {
		t.Fatalf("Len() after Remove = %d, want 0", got)
	}
}

func TestRemoveUnknownAssetIsNoop(t *testing.T) {
	idx := New(0)
	if got := idx.Remove("missing"); got != "" {
		t.Fatalf("Remove(missing) = %q, want empty", got)
	}
}

func TestLookupTigerResolvesToAssetID(t *testing.T) {
	idx := New(0)
	idx.Add("asset-1", "tiger-xyz", 10, 10, 1)

	got, ok := idx.LookupTiger("tiger-xyz")
	if !ok || got != "asset-1" {
		t.Fatalf("LookupTiger() = (%q, %v), want (%q, true)", got, ok, "asset-1")
	}
}

func TestUpdateBumpsScoreAndDiskUsage(t *testing.T) {
	idx := New(1) // alpha=1 collapses score straight to "now"
	idx.Add("a1", "tiger-a", 10, 10, 0)

	idx.Update("a1", 999)

	entry, ok := idx.LookupAsset("a1")
	if !ok {
		t.Fatal("expected a1 present after Update")
	}
	if entry.DiskUsage != 999 {
		t.Fatalf("DiskUsage after Update = %d, want 999", entry.DiskUsage)
	}
	if entry.Score == 0 {
		t.Fatal("expected Update to bump score away from zero")
	}
}

func TestAddOverwritesStaleTigerReverseLookup(t *testing.T) {
	idx := New(0)
	idx.Add("a1", "tiger-old", 10, 10, 1)
	idx.Add("a1", "tiger-new", 20, 20, 2)

	if _, ok := idx.LookupTiger("tiger-old"); ok {
		t.Fatal("expected stale tiger-old reverse lookup to be dropped on overwrite")
	}
	got, ok := idx.LookupTiger("tiger-new")
	if !ok || got != "a1" {
		t.Fatalf("LookupTiger(tiger-new) = (%q, %v), want (%q, true)", got, ok, "a1")
	}
}
