// Package assetstore implements AssetStore (§4.4): a base directory of
// `assets/` and `tiger/`, reconciled at startup and kept in sync through an
// AssetIndex, plus the on-disk meta-file header formats that accompany
// each asset's hash tree.
//
// Grounded on _examples/original_source/bithorded/store/assetstore.{hpp,cpp}
// for the reconciliation algorithm and path layout, and on
// bithorded/store/hashstore.cpp's meta-header framing for the two header
// formats below.
package assetstore

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Meta formats (§3).
const (
	FormatV1           byte = 0x01 // {format, leaf_blocks u32 BE}, then nodes
	FormatV2Cache      byte = 0x02 // {format, atoms u64 BE, levels_skipped u8}, nodes, then embedded cache data
	FormatV2SourcePath byte = 0x03 // same header, tail is the UTF-8 relative source path
)

// MetaHeader is the decoded fixed-size prefix of a meta file, before the
// hash-node region.
type MetaHeader struct {
	Format        byte
	LeafBlocks    uint32 // V1 only
	Atoms         uint64 // V2 only
	LevelsSkipped uint8  // V2 only
}

// HeaderSize reports the on-disk size of the header itself, not counting
// the hash-node region or tail that follows it.
func (h MetaHeader) HeaderSize() int64 {
	switch h.Format {
	case FormatV1:
		return 5 // 1 + 4
	case FormatV2Cache, FormatV2SourcePath:
		return 10 // 1 + 8 + 1
	default:
		return 0
	}
}

// WriteHeader serializes h per its Format.
func WriteHeader(w io.Writer, h MetaHeader) error {
	switch h.Format {
	case FormatV1:
		buf := make([]byte, 5)
		buf[0] = FormatV1
		binary.BigEndian.PutUint32(buf[1:], h.LeafBlocks)
		_, err := w.Write(buf)
		return err
	case FormatV2Cache, FormatV2SourcePath:
		buf := make([]byte, 10)
		buf[0] = h.Format
		binary.BigEndian.PutUint64(buf[1:9], h.Atoms)
		buf[9] = h.LevelsSkipped
		_, err := w.Write(buf)
		return err
	default:
		return fmt.Errorf("assetstore: unknown meta format 0x%02x", h.Format)
	}
}

// ReadHeader reads and validates a meta header from the front of r.
func ReadHeader(r io.Reader) (MetaHeader, error) {
	var formatByte [1]byte
	if _, err := io.ReadFull(r, formatByte[:]); err != nil {
		return MetaHeader{}, fmt.Errorf("assetstore: reading meta format byte: %w", err)
	}
	switch formatByte[0] {
	case FormatV1:
		var rest [4]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return MetaHeader{}, fmt.Errorf("assetstore: reading v1 header: %w", err)
		}
		return MetaHeader{Format: FormatV1, LeafBlocks: binary.BigEndian.Uint32(rest[:])}, nil
	case FormatV2Cache, FormatV2SourcePath:
		var rest [9]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return MetaHeader{}, fmt.Errorf("assetstore: reading v2 header: %w", err)
		}
		return MetaHeader{
			Format:        formatByte[0],
			Atoms:         binary.BigEndian.Uint64(rest[:8]),
			LevelsSkipped: rest[8],
		}, nil
	default:
		return MetaHeader{}, fmt.Errorf("assetstore: unknown meta format 0x%02x", formatByte[0])
	}
}

// HasSourcePathTail reports whether this header's tail region is a relative
// source-file path (format 0x03) rather than embedded cache data (0x02).
func (h MetaHeader) HasSourcePathTail() bool {
	return h.Format == FormatV2SourcePath
}
