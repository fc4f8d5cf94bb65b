package snapshot

import (
	"bytes"
	"encoding/binary"
	"iter"

	"github.com/hupe1980/flatvec"
	"github.com/hupe1980/flatvec/internal/mmap"
)

// Snapshot is a read-only view of a snapshot file backed by a memory
// mapping. Element reads through At alias the mapping directly, so an
// uncompressed snapshot is served without copying the payload into the
// heap. Compressed snapshots are decompressed into the heap on open and
// lose the zero-copy property for the payload, but keep the same API.
//
// Safe for concurrent reads. Slices returned by At are valid only until
// Close.
type Snapshot struct {
	m       *mmap.Mapping
	offsets []int
	payload []byte
}

// Open memory-maps the snapshot file at path.
func Open(path string) (*Snapshot, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	s, err := openMapped(m)
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	return s, nil
}

func openMapped(m *mmap.Mapping) (*Snapshot, error) {
	data := m.Bytes()
	if len(data) < headerSize {
		return nil, ErrTruncated
	}

	var header FileHeader
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if err := header.validate(); err != nil {
		return nil, err
	}
	index, stored, err := header.sliceSections(data)
	if err != nil {
		return nil, err
	}

	// Reuse the streaming verification/decompression path. The offset
	// index is copied out (it is small); the payload stays mapped unless
	// compressed.
	v, err := assemble(&header, index, stored)
	if err != nil {
		return nil, err
	}
	return &Snapshot{m: m, offsets: v.Offsets(), payload: v.Data()}, nil
}

// Len returns the number of logical elements.
func (s *Snapshot) Len() int {
	return len(s.offsets) - 1
}

// At returns the raw bytes of element i without copying. The slice aliases
// the mapping (or the decompressed payload) and must be treated as
// immutable; it is valid only until Close. Returns false for an
// out-of-range index.
func (s *Snapshot) At(i int) ([]byte, bool) {
	if i < 0 || i >= s.Len() {
		return nil, false
	}
	start, end := s.offsets[i], s.offsets[i+1]
	return s.payload[start:end:end], true
}

// Slices iterates over the raw bytes of every element in order.
func (s *Snapshot) Slices() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i := 0; i < s.Len(); i++ {
			start, end := s.offsets[i], s.offsets[i+1]
			if !yield(i, s.payload[start:end:end]) {
				return
			}
		}
	}
}

// Close releases the mapping. Slices obtained from At must not be used
// afterwards.
func (s *Snapshot) Close() error {
	return s.m.Close()
}

// Get decodes element i of a snapshot via dec. It returns
// flatvec.ErrOutOfRange for an out-of-range index; decoder failures are
// returned as-is. Borrowing decoders yield views valid until Close.
func Get[D any](s *Snapshot, dec flatvec.Decoder[D, byte], i int) (D, error) {
	var zero D
	flat, ok := s.At(i)
	if !ok {
		return zero, flatvec.ErrOutOfRange
	}
	return dec.Decode(flat)
}
