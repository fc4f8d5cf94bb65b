package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hupe1980/flatvec"
	"github.com/pierrec/lz4/v4"
)

// LZ4 stores byte slices LZ4-block-compressed, framed per element as
// [UncompressedSize uint32][CompressedSize uint32][Data...], little-endian.
// CompressedSize == 0 marks an element stored raw because compression did
// not help. Decode is validated and owning.
type LZ4 struct{}

const lz4HeaderSize = 8

// Encode appends the framed LZ4 block for value.
func (LZ4) Encode(value []byte, dst *flatvec.Storage[byte]) error {
	var header [lz4HeaderSize]byte
	binary.LittleEndian.PutUint32(header[0:], uint32(len(value)))

	if len(value) > 0 {
		compressed := make([]byte, lz4.CompressBlockBound(len(value)))
		n, err := lz4.CompressBlock(value, compressed, nil)
		if err != nil {
			return err
		}
		// n == 0 means incompressible; fall through to raw storage.
		if n > 0 && n < len(value) {
			binary.LittleEndian.PutUint32(header[4:], uint32(n))
			dst.Extend(header[:])
			dst.Extend(compressed[:n])
			return nil
		}
	}

	dst.Extend(header[:])
	dst.Extend(value)
	return nil
}

// Decode parses the frame and decompresses the element into an owned
// slice, reporting malformed frames as errors.
func (LZ4) Decode(flat []byte) ([]byte, error) {
	if len(flat) < lz4HeaderSize {
		return nil, errors.New("codec: lz4 element too small for header")
	}

	uncompressedSize := binary.LittleEndian.Uint32(flat[0:])
	compressedSize := binary.LittleEndian.Uint32(flat[4:])
	body := flat[lz4HeaderSize:]

	if compressedSize == 0 {
		if uint32(len(body)) < uncompressedSize {
			return nil, fmt.Errorf("codec: lz4 raw element truncated: have %d bytes, want %d", len(body), uncompressedSize)
		}
		out := make([]byte, uncompressedSize)
		copy(out, body[:uncompressedSize])
		return out, nil
	}

	if uint32(len(body)) < compressedSize {
		return nil, fmt.Errorf("codec: lz4 compressed element truncated: have %d bytes, want %d", len(body), compressedSize)
	}
	out := make([]byte, uncompressedSize)
	n, err := lz4.UncompressBlock(body[:compressedSize], out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

var _ flatvec.Codec[[]byte, byte] = LZ4{}
