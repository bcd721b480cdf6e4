package hashtree

// Layout computes the layer-major, largest-layer-first storage offsets for a
// tree over a fixed leaf count.
type Layout struct {
	leaves int64
	layers []int64 // layer sizes, leaves first, root (1) last
}

// NewLayout builds the layer-size table for a tree over the given leaf
// count. leaves must be >= 1.
func NewLayout(leaves int64) Layout {
	l := Layout{leaves: leaves}
	size := leaves
	for {
		l.layers = append(l.layers, size)
		if size == 1 {
			break
		}
		size = (size + 1) / 2
	}
	return l
}

// Leaves returns the tree's leaf count.
func (l Layout) Leaves() int64 { return l.leaves }

// NodeCount returns the total number of nodes across all layers.
func (l Layout) NodeCount() int64 {
	var total int64
	for _, size := range l.layers {
		total += size
	}
	return total
}

// StorageOffset returns the absolute node offset of idx within the packed,
// layer-major layout — the index passed to HashStore.Read/Write.
func (l Layout) StorageOffset(idx NodeIdx) int64 {
	var base int64
	for _, size := range l.layers {
		if size == idx.LayerSize {
			return base + idx.Offset
		}
		base += size
	}
	// Unknown layer size: fall back to treating idx.Offset as absolute,
	// which only happens for malformed input from outside this package.
	return idx.Offset
}

// RootIdx returns the NodeIdx of the tree's root.
func (l Layout) RootIdx() NodeIdx {
	return NodeIdx{Offset: 0, LayerSize: 1}
}
