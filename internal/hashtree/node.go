package hashtree

import (
	"fmt"

	"github.com/bithorded/bithorded/internal/tiger"
)

// State is the one-byte on-disk state of a hash node.
type State byte

const (
	StateEmpty State = 0
	StateSet   State = 1
)

// BaseNode is one packed hash-tree record: a state byte plus a 24-byte digest.
type BaseNode struct {
	State  State
	Digest tiger.Digest
}

func (n BaseNode) set() bool { return n.State == StateSet }

// Marshal packs a node into its fixed NodeSize on-disk representation.
func (n BaseNode) Marshal() [NodeSize]byte {
	var b [NodeSize]byte
	b[0] = byte(n.State)
	copy(b[1:], n.Digest[:])
	return b
}

// UnmarshalNode unpacks a NodeSize on-disk record.
func UnmarshalNode(b []byte) (BaseNode, error) {
	if len(b) != NodeSize {
		return BaseNode{}, fmt.Errorf("hashtree: node record is %d bytes, want %d", len(b), NodeSize)
	}
	var n BaseNode
	n.State = State(b[0])
	copy(n.Digest[:], b[1:])
	return n, nil
}

// NodeIdx addresses one node: its zero-based position within a layer of
// LayerSize nodes. Layers are ordered largest (the leaves) to smallest (the
// root, LayerSize==1); NodeIdx intentionally carries no notion of absolute
// storage offset — that is Layout's job.
type NodeIdx struct {
	Offset    int64
	LayerSize int64
}

func (idx NodeIdx) isRoot() bool { return idx.LayerSize == 1 }

// Parent returns the NodeIdx of idx's parent. Must not be called on the
// root.
func (idx NodeIdx) Parent() NodeIdx {
	return NodeIdx{Offset: idx.Offset / 2, LayerSize: (idx.LayerSize + 1) / 2}
}

// Sibling returns idx's sibling within the same layer, and whether one
// exists — it does not for an odd child promoted verbatim to its parent.
func (idx NodeIdx) Sibling() (NodeIdx, bool) {
	sibling := idx.Offset ^ 1
	if sibling >= idx.LayerSize {
		return NodeIdx{}, false
	}
	return NodeIdx{Offset: sibling, LayerSize: idx.LayerSize}, true
}

// LeafIdx returns the NodeIdx of leaf i in a tree with the given leaf count.
func LeafIdx(i, leaves int64) NodeIdx {
	return NodeIdx{Offset: i, LayerSize: leaves}
}
