// Package snapshot persists byte-unit flatvec containers in a binary
// index-then-payload format.
//
// The layout after the fixed 64-byte header is the offset index as 8-byte
// little-endian cumulative ends (count+1 entries including the leading
// zero), followed by the payload bytes. The index comes first so readers
// can locate any element without scanning the payload, which is what makes
// the mmap-backed Snapshot type possible.
//
// The payload section may be zstd-compressed as a whole (flag bit in the
// header). Integrity of index and payload is covered by a CRC32-IEEE
// checksum stored in the header.
package snapshot

import (
	"errors"
	"fmt"

	"github.com/hupe1980/flatvec/internal/conv"
)

const (
	// MagicNumber identifies flatvec snapshot files (ASCII: "FLV0").
	MagicNumber = 0x464C5630
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000

	headerSize = 64
)

// Compression selects how the payload section is stored.
type Compression uint8

const (
	// CompressionNone stores the payload verbatim. Required for zero-copy
	// access through Open.
	CompressionNone Compression = 0
	// CompressionZstd stores the payload as a single zstd frame.
	CompressionZstd Compression = 1
)

// Header flag bits.
const (
	flagZstdPayload uint32 = 1 << 0
)

var (
	// ErrInvalidMagic is returned when a file does not start with the
	// snapshot magic number.
	ErrInvalidMagic = errors.New("snapshot: invalid magic number")
	// ErrInvalidVersion is returned for format versions this build cannot
	// read.
	ErrInvalidVersion = errors.New("snapshot: unsupported version")
	// ErrTruncated is returned when a file is shorter than its header
	// claims.
	ErrTruncated = errors.New("snapshot: file truncated")
)

// FileHeader is the 64-byte header at the start of every snapshot file.
// All integers are little-endian.
type FileHeader struct {
	Magic          uint32
	Version        uint32
	Flags          uint32
	Padding1       [4]byte
	Count          uint64 // number of logical elements
	IndexSize      uint64 // stored index bytes: 8*(Count+1)
	PayloadSize    uint64 // stored payload bytes (compressed size if flagged)
	RawPayloadSize uint64 // payload bytes after decompression
	Checksum       uint32 // CRC32-IEEE over index+payload as stored
	Padding2       [4]byte
	Reserved       [8]byte
}

func (h *FileHeader) validate() error {
	if h.Magic != MagicNumber {
		return fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, h.Magic)
	}
	if h.Version != Version {
		return fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, h.Version)
	}
	// Wrap-free form of IndexSize == 8*(Count+1): the multiplication could
	// overflow for a hostile Count.
	if h.IndexSize < 8 || h.IndexSize%8 != 0 || h.Count != h.IndexSize/8-1 {
		return fmt.Errorf("snapshot: index size %d does not match element count %d", h.IndexSize, h.Count)
	}
	return nil
}

func (h *FileHeader) compressed() bool {
	return h.Flags&flagZstdPayload != 0
}

// sliceSections carves the index and payload sections out of a complete
// snapshot image. The caller has already checked len(data) >= headerSize;
// header sizes that do not fit the remaining data are rejected before any
// slicing.
func (h *FileHeader) sliceSections(data []byte) (index, stored []byte, err error) {
	indexLen, err := conv.Uint64ToInt(h.IndexSize)
	if err != nil {
		return nil, nil, err
	}
	storedLen, err := conv.Uint64ToInt(h.PayloadSize)
	if err != nil {
		return nil, nil, err
	}
	if len(data)-headerSize < indexLen || len(data)-headerSize-indexLen < storedLen {
		return nil, nil, ErrTruncated
	}
	index = data[headerSize : headerSize+indexLen]
	stored = data[headerSize+indexLen : headerSize+indexLen+storedLen]
	return index, stored, nil
}

// ChecksumMismatchError is returned when snapshot integrity verification
// fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("snapshot: checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}
