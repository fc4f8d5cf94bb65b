package codec

import (
	"errors"
	"unicode/utf8"
	"unsafe"

	"github.com/hupe1980/flatvec"
)

// ErrInvalidUTF8 is returned by StringChecked for elements that are not
// valid UTF-8.
var ErrInvalidUTF8 = errors.New("codec: invalid UTF-8 sequence")

// String stores strings as their raw bytes with an owning decode. It is a
// trusted codec: decode assumes the element was written by a string encode
// and performs no UTF-8 validation (use StringChecked for that).
type String struct{}

// Encode appends the string's bytes.
func (String) Encode(value string, dst *flatvec.Storage[byte]) error {
	dst.Extend([]byte(value))
	return nil
}

// Decode returns an owned string copied out of the element.
func (String) Decode(flat []byte) (string, error) {
	return string(flat), nil
}

var _ flatvec.Codec[string, byte] = String{}

// StringChecked is the validated variant of String: decode rejects
// elements that are not valid UTF-8 instead of returning garbage on
// foreign input.
type StringChecked struct{}

// Encode appends the string's bytes.
func (StringChecked) Encode(value string, dst *flatvec.Storage[byte]) error {
	dst.Extend([]byte(value))
	return nil
}

// Decode validates the element as UTF-8 and returns an owned string.
func (StringChecked) Decode(flat []byte) (string, error) {
	if !utf8.Valid(flat) {
		return "", ErrInvalidUTF8
	}
	return string(flat), nil
}

var _ flatvec.Codec[string, byte] = StringChecked{}

// StringView stores strings as their raw bytes with a zero-copy borrowing
// decode: the returned string aliases the container's buffer via
// unsafe.String instead of copying.
//
// The aliasing is sound only while the buffer is not mutated: results are
// invalidated by the next mutating operation on the container, and using
// them after Pop or Clear observes overwritten memory. Both directions are
// zero-copy; Encode reads the source string's bytes in place.
type StringView struct{}

// Encode appends the string's bytes without an intermediate copy.
func (StringView) Encode(value string, dst *flatvec.Storage[byte]) error {
	if len(value) == 0 {
		return nil
	}
	dst.Extend(unsafe.Slice(unsafe.StringData(value), len(value)))
	return nil
}

// Decode returns a string header aliasing the element's bytes.
func (StringView) Decode(flat []byte) (string, error) {
	if len(flat) == 0 {
		return "", nil
	}
	return unsafe.String(&flat[0], len(flat)), nil
}

var _ flatvec.Codec[string, byte] = StringView{}
