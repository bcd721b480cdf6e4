package tiger

import (
	"encoding/base32"
	"fmt"
)

// encoding is RFC 4648 base32 without padding, matching the 39-character
// rendering of a 24-byte Tiger digest used on disk and on the wire.
var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// ID is the base32 textual rendering of a Digest — the primary asset
// identifier throughout bithorded.
type ID string

// Empty reports whether this ID carries no digest (the zero value).
func (id ID) Empty() bool { return id == "" }

func (id ID) String() string { return string(id) }

// NewID renders a digest as its 39-character ID.
func NewID(d Digest) ID {
	return ID(encoding.EncodeToString(d[:]))
}

// ParseID decodes a rendered ID back into a digest.
func ParseID(s string) (Digest, error) {
	var d Digest
	if len(s) != 39 {
		return d, fmt.Errorf("tiger: id %q: want 39 characters, got %d", s, len(s))
	}
	raw, err := encoding.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("tiger: id %q: %w", s, err)
	}
	if len(raw) != Size {
		return d, fmt.Errorf("tiger: id %q: decoded to %d bytes, want %d", s, len(raw), Size)
	}
	copy(d[:], raw)
	return d, nil
}
