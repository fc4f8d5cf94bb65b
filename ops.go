package flatvec

import "iter"

// Push encodes value via enc and appends it as a new element.
//
// Push is atomic: if the encoder fails, the buffer is rolled back to its
// pre-push length and an *EncodeError is returned, leaving the container
// exactly as before the call. The boundary is recorded only after the
// encoder has appended all units for the element.
func Push[D, F any](v *FlatVec[F], enc Encoder[D, F], value D) error {
	v.ensureIndex()
	mark := len(v.data)
	if err := enc.Encode(value, &Storage[F]{buf: &v.data}); err != nil {
		v.data = v.data[:mark]
		return &EncodeError{cause: err}
	}
	v.offsets = append(v.offsets, len(v.data))
	v.gen++
	return nil
}

// Get decodes element i via dec. It returns ErrOutOfRange for an index
// outside [0, Len()) and a *DecodeError if the decoder rejects the stored
// units. If dec is borrowing, the result is valid only until the next
// mutating operation.
func Get[D, F any](v *FlatVec[F], dec Decoder[D, F], i int) (D, error) {
	var zero D
	flat, ok := v.At(i)
	if !ok {
		return zero, ErrOutOfRange
	}
	d, err := dec.Decode(flat)
	if err != nil {
		return zero, &DecodeError{cause: err}
	}
	return d, nil
}

// Pop decodes the last element via dec, then removes it by truncating the
// buffer and the offset index. It returns ErrEmpty on an empty container.
//
// Use an owning decoder with Pop: the element's units sit in truncated
// buffer space that the next Push will overwrite.
func Pop[D, F any](v *FlatVec[F], dec Decoder[D, F]) (D, error) {
	var zero D
	n := v.Len()
	if n == 0 {
		return zero, ErrEmpty
	}
	start, end := v.offsets[n-1], v.offsets[n]
	d, err := dec.Decode(v.data[start:end:end])
	if err != nil {
		return zero, &DecodeError{cause: err}
	}
	v.data = v.data[:start]
	v.offsets = v.offsets[:n]
	v.gen++
	return d, nil
}

// Values iterates over all elements in push order, decoding each on demand
// via dec. Iteration stops after yielding the first decode failure. A
// fresh iterator can be requested repeatedly; the container must not be
// mutated during iteration.
func Values[D, F any](v *FlatVec[F], dec Decoder[D, F]) iter.Seq2[D, error] {
	return func(yield func(D, error) bool) {
		for i := 0; i < v.Len(); i++ {
			start, end := v.offsets[i], v.offsets[i+1]
			d, err := dec.Decode(v.data[start:end:end])
			if err != nil {
				var zero D
				yield(zero, &DecodeError{cause: err})
				return
			}
			if !yield(d, nil) {
				return
			}
		}
	}
}
