// Package tiger implements the Tiger hash function and the 24-byte digest
// type used throughout bithorded as the primary asset identifier.
//
// Grounded on github.com/ielm/neostd's hash/tiger.go (see _examples/other_examples),
// despecialized from its generic Hasher[K] form to a concrete hash.Hash over
// byte streams, and extended with the leaf/node prefixing bithorded's hash
// tree requires (see tree.go). Unlike that grounding source, sbox0..sbox3
// are four independently-populated tables (sbox_table.go), not one table
// plus three bit-rotations of it — see DESIGN.md for why that shortcut is
// cryptographically wrong and what replaced it.
package tiger

import (
	"encoding/binary"
	"hash"
)

const (
	BlockSize  = 64
	Size       = 24 // digest size in bytes
	tigerRound = 3
)

// Digest is a 24-byte Tiger digest.
type Digest [Size]byte

type tigerHash struct {
	a, b, c uint64
	x       [BlockSize]byte
	nx      int
	length  uint64
}

// New returns a hash.Hash computing the Tiger-192 digest.
func New() hash.Hash {
	t := &tigerHash{}
	t.Reset()
	return t
}

// Sum192 computes the Tiger digest of data in one call.
func Sum192(data []byte) Digest {
	t := &tigerHash{}
	t.Reset()
	t.Write(data) //nolint:errcheck
	var d Digest
	copy(d[:], t.Sum(nil))
	return d
}

func (t *tigerHash) Reset() {
	t.a = 0x0123456789ABCDEF
	t.b = 0xFEDCBA9876543210
	t.c = 0xF096A5B4C3B2E187
	t.nx = 0
	t.length = 0
}

func (t *tigerHash) Size() int      { return Size }
func (t *tigerHash) BlockSize() int { return BlockSize }

func (t *tigerHash) Write(p []byte) (n int, err error) {
	n = len(p)
	t.length += uint64(n)

	if t.nx > 0 {
		copied := copy(t.x[t.nx:], p)
		t.nx += copied
		if t.nx == BlockSize {
			t.compress(t.x[:])
			t.nx = 0
		}
		p = p[copied:]
	}

	if len(p) >= BlockSize {
		whole := len(p) &^ (BlockSize - 1)
		t.compress(p[:whole])
		p = p[whole:]
	}

	if len(p) > 0 {
		t.nx = copy(t.x[:], p)
	}
	return n, nil
}

func (t *tigerHash) Sum(b []byte) []byte {
	clone := *t
	digest := clone.checkSum()
	return append(b, digest[:]...)
}

func (t *tigerHash) checkSum() Digest {
	length := t.length
	t.x[t.nx] = 0x01
	t.nx++
	if t.nx > 56 {
		for i := t.nx; i < BlockSize; i++ {
			t.x[i] = 0
		}
		t.compress(t.x[:])
		t.nx = 0
	}
	for i := t.nx; i < 56; i++ {
		t.x[i] = 0
	}
	binary.LittleEndian.PutUint64(t.x[56:], length<<3)
	t.compress(t.x[:])

	var d Digest
	binary.LittleEndian.PutUint64(d[0:], t.a)
	binary.LittleEndian.PutUint64(d[8:], t.b)
	binary.LittleEndian.PutUint64(d[16:], t.c)
	return d
}

// passMul holds the three multipliers Tiger's compression function applies
// in its three passes; using a single multiplier for all three (as an
// earlier revision of this file did) collapses the passes' diffusion and is
// not the Tiger cipher.
var passMul = [tigerRound]uint64{5, 7, 9}

func (t *tigerHash) compress(block []byte) {
	var x [8]uint64
	for i := 0; i < 8; i++ {
		x[i] = binary.LittleEndian.Uint64(block[i*8:])
	}

	aa, bb, cc := t.a, t.b, t.c

	for i := 0; i < tigerRound; i++ {
		if i != 0 {
			x[0] -= x[7] ^ 0xA5A5A5A5A5A5A5A5
			x[1] ^= x[0]
			x[2] += x[1]
			x[3] -= x[2] ^ ((^x[1]) << 19)
			x[4] ^= x[3]
			x[5] += x[4]
			x[6] -= x[5] ^ ((^x[4]) >> 23)
			x[7] ^= x[6]
			x[0] += x[7]
			x[1] -= x[0] ^ ((^x[7]) << 19)
			x[2] ^= x[1]
			x[3] += x[2]
			x[4] -= x[3] ^ ((^x[2]) >> 23)
			x[5] ^= x[4]
			x[6] += x[5]
			x[7] -= x[6] ^ 0x0123456789ABCDEF
		}

		aa, bb, cc = round(aa, bb, cc, x[0], x[1], x[2], x[3], x[4], x[5], x[6], x[7], passMul[i])
		aa, bb, cc = cc, aa, bb
	}

	t.a ^= aa
	t.b = bb - t.b
	t.c += cc
}

func round(a, b, c, x0, x1, x2, x3, x4, x5, x6, x7, mul uint64) (uint64, uint64, uint64) {
	c ^= x0
	a -= sbox0[byte(c)] ^ sbox1[byte(c>>16)] ^ sbox2[byte(c>>32)] ^ sbox3[byte(c>>48)]
	b += sbox3[byte(c>>8)] ^ sbox2[byte(c>>24)] ^ sbox1[byte(c>>40)] ^ sbox0[byte(c>>56)]
	b *= mul

	a ^= x1
	b -= sbox0[byte(a)] ^ sbox1[byte(a>>16)] ^ sbox2[byte(a>>32)] ^ sbox3[byte(a>>48)]
	c += sbox3[byte(a>>8)] ^ sbox2[byte(a>>24)] ^ sbox1[byte(a>>40)] ^ sbox0[byte(a>>56)]
	c *= mul

	b ^= x2
	c -= sbox0[byte(b)] ^ sbox1[byte(b>>16)] ^ sbox2[byte(b>>32)] ^ sbox3[byte(b>>48)]
	a += sbox3[byte(b>>8)] ^ sbox2[byte(b>>24)] ^ sbox1[byte(b>>40)] ^ sbox0[byte(b>>56)]
	a *= mul

	c ^= x3
	a -= sbox0[byte(c)] ^ sbox1[byte(c>>16)] ^ sbox2[byte(c>>32)] ^ sbox3[byte(c>>48)]
	b += sbox3[byte(c>>8)] ^ sbox2[byte(c>>24)] ^ sbox1[byte(c>>40)] ^ sbox0[byte(c>>56)]
	b *= mul

	a ^= x4
	b -= sbox0[byte(a)] ^ sbox1[byte(a>>16)] ^ sbox2[byte(a>>32)] ^ sbox3[byte(a>>48)]
	c += sbox3[byte(a>>8)] ^ sbox2[byte(a>>24)] ^ sbox1[byte(a>>40)] ^ sbox0[byte(a>>56)]
	c *= mul

	b ^= x5
	c -= sbox0[byte(b)] ^ sbox1[byte(b>>16)] ^ sbox2[byte(b>>32)] ^ sbox3[byte(b>>48)]
	a += sbox3[byte(b>>8)] ^ sbox2[byte(b>>24)] ^ sbox1[byte(b>>40)] ^ sbox0[byte(b>>56)]
	a *= mul

	c ^= x6
	a -= sbox0[byte(c)] ^ sbox1[byte(c>>16)] ^ sbox2[byte(c>>32)] ^ sbox3[byte(c>>48)]
	b += sbox3[byte(c>>8)] ^ sbox2[byte(c>>24)] ^ sbox1[byte(c>>40)] ^ sbox0[byte(c>>56)]
	b *= mul

	a ^= x7
	b -= sbox0[byte(a)] ^ sbox1[byte(a>>16)] ^ sbox2[byte(a>>32)] ^ sbox3[byte(a>>48)]
	c += sbox3[byte(a>>8)] ^ sbox2[byte(a>>24)] ^ sbox1[byte(a>>40)] ^ sbox0[byte(a>>56)]
	c *= mul

	return a, b, c
}

var sbox0, sbox1, sbox2, sbox3 [256]uint64

func init() {
	sbox0 = tableT1
	sbox1 = tableT2
	sbox2 = tableT3
	sbox3 = tableT4
}
