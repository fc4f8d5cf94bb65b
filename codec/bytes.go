package codec

import "github.com/hupe1980/flatvec"

// Bytes stores byte slices as-is with an owning decode: Get copies the
// element out of the buffer, so results remain valid across mutation.
type Bytes struct{}

// Encode appends value unchanged.
func (Bytes) Encode(value []byte, dst *flatvec.Storage[byte]) error {
	dst.Extend(value)
	return nil
}

// Decode returns an owned copy of the element.
func (Bytes) Decode(flat []byte) ([]byte, error) {
	out := make([]byte, len(flat))
	copy(out, flat)
	return out, nil
}

var _ flatvec.Codec[[]byte, byte] = Bytes{}

// BytesView stores byte slices as-is with a borrowing decode: Get returns
// the element's slice of the backing buffer without copying.
//
// Returned slices must be treated as immutable and are invalidated by the
// next mutating operation on the container. Do not use BytesView with Pop.
type BytesView struct{}

// Encode appends value unchanged.
func (BytesView) Encode(value []byte, dst *flatvec.Storage[byte]) error {
	dst.Extend(value)
	return nil
}

// Decode returns the element's backing slice without copying.
func (BytesView) Decode(flat []byte) ([]byte, error) {
	return flat, nil
}

var _ flatvec.Codec[[]byte, byte] = BytesView{}
