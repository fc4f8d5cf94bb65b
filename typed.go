package flatvec

import "iter"

// Typed binds a container to a fixed encoder/decoder pair so the generic
// operations read like ordinary methods. It is a thin view: the underlying
// container may still be accessed directly, including through other Typed
// views with different domain types.
type Typed[D, F any] struct {
	vec *FlatVec[F]
	enc Encoder[D, F]
	dec Decoder[D, F]
}

// Bind creates a typed view over v using separate encode and decode
// contracts. Either may be nil if the corresponding operations are never
// used through this view.
func Bind[D, F any](v *FlatVec[F], enc Encoder[D, F], dec Decoder[D, F]) *Typed[D, F] {
	return &Typed[D, F]{vec: v, enc: enc, dec: dec}
}

// BindCodec creates a typed view over v using a single bidirectional codec.
func BindCodec[D, F any](v *FlatVec[F], c Codec[D, F]) *Typed[D, F] {
	return Bind[D, F](v, c, c)
}

// Push appends value as a new element. See the package-level Push.
func (t *Typed[D, F]) Push(value D) error {
	return Push(t.vec, t.enc, value)
}

// Get decodes element i. See the package-level Get.
func (t *Typed[D, F]) Get(i int) (D, error) {
	return Get(t.vec, t.dec, i)
}

// Pop removes and decodes the last element. See the package-level Pop.
func (t *Typed[D, F]) Pop() (D, error) {
	return Pop(t.vec, t.dec)
}

// Values iterates over all elements in push order. See the package-level
// Values.
func (t *Typed[D, F]) Values() iter.Seq2[D, error] {
	return Values(t.vec, t.dec)
}

// Len returns the number of elements in the underlying container.
func (t *Typed[D, F]) Len() int { return t.vec.Len() }

// IsEmpty reports whether the underlying container is empty.
func (t *Typed[D, F]) IsEmpty() bool { return t.vec.IsEmpty() }

// Clear removes all elements from the underlying container.
func (t *Typed[D, F]) Clear() { t.vec.Clear() }

// Unwrap returns the underlying container.
func (t *Typed[D, F]) Unwrap() *FlatVec[F] { return t.vec }
