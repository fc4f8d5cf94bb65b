package flatvec

// Encoder converts a domain value D into flat units F by appending its
// complete flat representation to a Storage.
//
// Implementations must be deterministic: two equal domain values must
// encode to the same unit sequence. An implementation that fails partway
// may leave units behind; Push rolls the buffer back, so encoders need no
// cleanup of their own.
type Encoder[D, F any] interface {
	Encode(value D, dst *Storage[F]) error
}

// Decoder reconstructs a domain value D from the flat units of exactly one
// element.
//
// A decoder chooses one of two policies, which it must document:
//
//   - Owning: the returned value copies out of the slice and may outlive
//     the container.
//   - Borrowing: the returned value aliases the slice and is invalidated
//     by the next mutating operation on the container.
//
// A decoder is only required to behave correctly on slices produced by a
// matching encoder. Trusted decoders assume that and never return an
// error; validated decoders check their input and report malformed units
// instead of misbehaving.
type Decoder[D, F any] interface {
	Decode(flat []F) (D, error)
}

// Codec combines both directions for a type pair. Most implementations in
// the codec subpackage satisfy it.
type Codec[D, F any] interface {
	Encoder[D, F]
	Decoder[D, F]
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc[D, F any] func(value D, dst *Storage[F]) error

// Encode calls f(value, dst).
func (f EncoderFunc[D, F]) Encode(value D, dst *Storage[F]) error {
	return f(value, dst)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc[D, F any] func(flat []F) (D, error)

// Decode calls f(flat).
func (f DecoderFunc[D, F]) Decode(flat []F) (D, error) {
	return f(flat)
}
