package tiger

// LeafPrefix and NodePrefix distinguish leaf-block digests from internal
// node digests in the hash tree, per the tree's hashing convention: a leaf
// digest is Tiger(0x00 || block_bytes), an internal digest is
// Tiger(0x01 || left || right).
const (
	LeafPrefix byte = 0x00
	NodePrefix byte = 0x01
)

// LeafDigest computes the digest of one leaf block.
func LeafDigest(block []byte) Digest {
	h := New()
	h.Write([]byte{LeafPrefix}) //nolint:errcheck
	h.Write(block)              //nolint:errcheck
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// NodeDigest computes the digest of an internal node from its two children.
func NodeDigest(left, right Digest) Digest {
	h := New()
	h.Write([]byte{NodePrefix}) //nolint:errcheck
	h.Write(left[:])            //nolint:errcheck
	h.Write(right[:])           //nolint:errcheck
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}
