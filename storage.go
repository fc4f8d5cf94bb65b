package flatvec

import "slices"

// Storage is the exclusive write handle over the tail of a container's
// buffer that Push hands to an Encoder. It only ever appends; earlier
// elements are never reachable through it.
//
// A Storage is valid only for the duration of the Encode call it was
// passed to. Encoders must not retain it.
type Storage[F any] struct {
	buf *[]F
}

// Reserve grows the buffer capacity for at least n additional units.
// Encoders that know their encoded size up front can call this to avoid
// incremental growth.
func (s *Storage[F]) Reserve(n int) {
	if n > 0 {
		*s.buf = slices.Grow(*s.buf, n)
	}
}

// Append appends individual flat units.
func (s *Storage[F]) Append(units ...F) {
	*s.buf = append(*s.buf, units...)
}

// Extend appends a slice of flat units.
func (s *Storage[F]) Extend(units []F) {
	*s.buf = append(*s.buf, units...)
}

// Len returns the current total buffer length in flat units. The encoded
// length of the element being written is Len() minus its value at the
// start of the Encode call.
func (s *Storage[F]) Len() int {
	return len(*s.buf)
}
