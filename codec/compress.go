package codec

import (
	"bytes"
	"io"
	"sync"

	"github.com/hupe1980/flatvec"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		// NewWriter fails only on invalid options; the option set here is
		// fixed.
		panic("codec: zstd.NewWriter: " + err.Error())
	}
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		// NewReader fails only on invalid options; no options are passed.
		panic("codec: zstd.NewReader: " + err.Error())
	}
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Zstd stores byte slices zstd-compressed. Encode compresses the value
// into the buffer; Decode is validated and owning, decompressing into a
// fresh slice and reporting malformed elements as errors.
//
// Identical inputs produce identical stored units, so content-addressed
// uses remain possible.
type Zstd struct{}

// Encode appends the zstd frame for value.
func (Zstd) Encode(value []byte, dst *flatvec.Storage[byte]) error {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	dst.Extend(enc.EncodeAll(value, nil))
	return nil
}

// Decode decompresses the element into an owned slice.
func (Zstd) Decode(flat []byte) ([]byte, error) {
	dec := getZstdDecoder()
	defer putZstdDecoder(dec)

	return dec.DecodeAll(flat, nil)
}

var _ flatvec.Codec[[]byte, byte] = Zstd{}

// Gzip stores byte slices gzip-compressed. Decode is validated and owning.
//
// Prefer Zstd for new data; Gzip exists for interoperability with stored
// gzip streams.
type Gzip struct{}

// storageWriter adapts a Storage tail to io.Writer for stream compressors.
type storageWriter struct {
	dst *flatvec.Storage[byte]
}

func (w storageWriter) Write(p []byte) (int, error) {
	w.dst.Extend(p)
	return len(p), nil
}

// Encode streams the gzip encoding of value into the buffer.
func (Gzip) Encode(value []byte, dst *flatvec.Storage[byte]) error {
	gw := gzip.NewWriter(storageWriter{dst: dst})
	if _, err := gw.Write(value); err != nil {
		return err
	}
	return gw.Close()
}

// Decode decompresses the element into an owned slice.
func (Gzip) Decode(flat []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(flat))
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	return io.ReadAll(gr)
}

var _ flatvec.Codec[[]byte, byte] = Gzip{}
