package flatvec

import (
	"fmt"
	"iter"
	"slices"
)

// FlatVec stores a sequence of variable-length elements in a single
// contiguous buffer of flat units F, delimited by an offset index.
//
// The zero value is an empty container ready for use. FlatVec is not safe
// for unsynchronized concurrent mutation; see the package documentation.
type FlatVec[F any] struct {
	data []F
	// offsets holds cumulative element ends with a leading zero, so element
	// i occupies data[offsets[i]:offsets[i+1]]. nil means "no elements yet"
	// and is materialized lazily to keep the zero value useful.
	offsets []int
	gen     uint64
}

// New creates an empty container.
func New[F any]() *FlatVec[F] {
	return &FlatVec[F]{}
}

// FromParts assembles a container from an existing buffer and offset index.
// The offset index must start at zero, be non-decreasing and end at
// len(data); otherwise an error wrapping ErrInvalidOffsets is returned.
// Both slices are adopted without copying.
func FromParts[F any](data []F, offsets []int) (*FlatVec[F], error) {
	if len(offsets) == 0 || offsets[0] != 0 {
		return nil, fmt.Errorf("%w: index must start at 0", ErrInvalidOffsets)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, fmt.Errorf("%w: offset %d decreases (%d < %d)", ErrInvalidOffsets, i, offsets[i], offsets[i-1])
		}
	}
	if last := offsets[len(offsets)-1]; last != len(data) {
		return nil, fmt.Errorf("%w: last offset %d does not match buffer length %d", ErrInvalidOffsets, last, len(data))
	}
	return &FlatVec[F]{data: data, offsets: offsets}, nil
}

// Len returns the number of logical elements.
func (v *FlatVec[F]) Len() int {
	if len(v.offsets) == 0 {
		return 0
	}
	return len(v.offsets) - 1
}

// IsEmpty reports whether the container holds no elements.
func (v *FlatVec[F]) IsEmpty() bool {
	return v.Len() == 0
}

// DataLen returns the total number of flat units stored across all
// elements. For compressing encoders this is the stored size, not the sum
// of the domain values' sizes.
func (v *FlatVec[F]) DataLen() int {
	return len(v.data)
}

// Grow reserves capacity for at least n additional flat units, without
// changing the container's contents.
func (v *FlatVec[F]) Grow(n int) {
	if n > 0 {
		v.data = slices.Grow(v.data, n)
	}
}

// At returns the raw flat-unit slice of element i. The slice aliases the
// backing buffer and must be treated as immutable; it is valid only until
// the next mutating operation. Returns false for an out-of-range index.
func (v *FlatVec[F]) At(i int) ([]F, bool) {
	if i < 0 || i >= v.Len() {
		return nil, false
	}
	start, end := v.offsets[i], v.offsets[i+1]
	return v.data[start:end:end], true
}

// Slices iterates over the raw flat-unit slice of every element in push
// order. The yielded slices alias the backing buffer; the caller must not
// mutate the container during iteration.
func (v *FlatVec[F]) Slices() iter.Seq2[int, []F] {
	return func(yield func(int, []F) bool) {
		for i := 0; i < v.Len(); i++ {
			start, end := v.offsets[i], v.offsets[i+1]
			if !yield(i, v.data[start:end:end]) {
				return
			}
		}
	}
}

// Clear removes all elements while retaining allocated capacity. Borrowed
// views decoded before Clear must not be used afterwards.
func (v *FlatVec[F]) Clear() {
	v.data = v.data[:0]
	if len(v.offsets) > 0 {
		v.offsets = v.offsets[:1]
	}
	v.gen++
}

// Data returns the backing buffer holding all encoded units in push order.
// The slice aliases internal storage and must be treated as immutable.
func (v *FlatVec[F]) Data() []F {
	return v.data
}

// Offsets returns a copy of the offset index: cumulative element ends with
// a leading zero.
func (v *FlatVec[F]) Offsets() []int {
	if len(v.offsets) == 0 {
		return []int{0}
	}
	return slices.Clone(v.offsets)
}

// Generation returns a counter that increments on every successful
// mutating operation (push, pop, clear). Callers holding borrowed views
// can compare generations to detect invalidating mutation.
func (v *FlatVec[F]) Generation() uint64 {
	return v.gen
}

// ensureIndex materializes the leading zero of the offset index.
func (v *FlatVec[F]) ensureIndex() {
	if v.offsets == nil {
		v.offsets = make([]int, 1, 8)
	}
}
