package codec

import (
	"encoding/json"

	gojson "github.com/goccy/go-json"
	"github.com/hupe1980/flatvec"
)

// JSON stores values of any marshalable type T as their JSON encoding,
// backed by the standard library. Decode is validated: malformed elements
// are reported as errors. The decode is always owning.
//
// JSON is the most portable choice; GoJSON trades portability of the
// dependency surface for speed.
type JSON[T any] struct{}

// Encode appends the JSON encoding of value.
func (JSON[T]) Encode(value T, dst *flatvec.Storage[byte]) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	dst.Extend(b)
	return nil
}

// Decode unmarshals the element into a new T.
func (JSON[T]) Decode(flat []byte) (T, error) {
	var v T
	if err := json.Unmarshal(flat, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// GoJSON is JSON backed by github.com/goccy/go-json. The byte layouts are
// interchangeable: elements written by one decode through the other.
type GoJSON[T any] struct{}

// Encode appends the JSON encoding of value.
func (GoJSON[T]) Encode(value T, dst *flatvec.Storage[byte]) error {
	b, err := gojson.Marshal(value)
	if err != nil {
		return err
	}
	dst.Extend(b)
	return nil
}

// Decode unmarshals the element into a new T.
func (GoJSON[T]) Decode(flat []byte) (T, error) {
	var v T
	if err := gojson.Unmarshal(flat, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
