// Package flatvec provides a contiguous container for sequences of
// variable-length elements.
//
// A FlatVec replaces the classic "slice of slices" pattern with one growable
// flat buffer plus an index of element boundaries, collapsing per-element
// heap allocations into a single backing store:
//
//   - Flat buffer: all encoded units for all elements, concatenated in push
//     order.
//   - Offset index: cumulative end positions, one per element, with a
//     leading zero. Element i occupies data[offsets[i]:offsets[i+1]].
//
// The type a caller manipulates (the domain type) is decoupled from the
// unit type physically stored via two independently implementable
// conversion contracts:
//
//   - Encoder appends a value's flat representation to the buffer.
//   - Decoder reconstructs (or borrows a view of) a value from the bounded
//     slice belonging to one element.
//
// Because the contracts are independent, one container can be populated by
// one domain type and read back as another, and the stored form may differ
// from the domain form entirely (compressed bytes in, decompressed bytes
// out; raw bytes in, zero-copy string views out). Ready-made contract
// implementations live in the codec subpackage.
//
// # Operations
//
// Go methods cannot introduce type parameters, so the encode/decode
// operations are package-level generic functions:
//
//	var names flatvec.FlatVec[byte]
//	_ = flatvec.Push(&names, codec.String{}, "hello")
//	_ = flatvec.Push(&names, codec.String{}, "world")
//	s, err := flatvec.Get(&names, codec.String{}, 0) // "hello"
//
// Bind pairs a container with a fixed encoder/decoder when a single domain
// type is used throughout:
//
//	strs := flatvec.BindCodec(&names, codec.String{})
//	_ = strs.Push("hello")
//
// # Zero-copy reads and invalidation
//
// Decoders may return views that alias the backing buffer (see
// codec.BytesView and codec.StringView). Such views are valid only until
// the next mutating operation (Push, Pop, Clear), which may reallocate or
// truncate the buffer. Go has no compile-time lifetime enforcement for
// this, so the container maintains a generation counter: snapshot
// Generation before decoding a view and compare it before trusting the
// view again later.
//
// # Concurrency
//
// A FlatVec performs no internal synchronization. Any number of concurrent
// readers may proceed while no mutation is in progress; mutating operations
// require exclusive access.
package flatvec
