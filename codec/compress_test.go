package codec_test

import (
	"bytes"
	"testing"

	"github.com/hupe1980/flatvec"
	"github.com/hupe1980/flatvec/codec"
	"github.com/hupe1980/flatvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstd_RoundTrip(t *testing.T) {
	var v flatvec.FlatVec[byte]

	compressible := bytes.Repeat([]byte("flatvec "), 512)
	inputs := [][]byte{compressible, {}, []byte("short")}
	for _, in := range inputs {
		require.NoError(t, flatvec.Push(&v, codec.Zstd{}, in))
	}

	for i, want := range inputs {
		got, err := flatvec.Get(&v, codec.Zstd{}, i)
		require.NoError(t, err)
		if len(want) == 0 {
			assert.Empty(t, got)
		} else {
			assert.Equal(t, want, got)
		}
	}

	// The repeated element must actually shrink in storage.
	offsets := v.Offsets()
	assert.Less(t, offsets[1], len(compressible))
}

func TestZstd_PooledCoders(t *testing.T) {
	// Repeated pushes and gets cycle encoders and decoders through the
	// pools, covering both the constructor and the reuse path.
	var v flatvec.FlatVec[byte]
	for i := 0; i < 8; i++ {
		require.NoError(t, flatvec.Push(&v, codec.Zstd{}, []byte("pooled element")))
	}
	for i := 0; i < 8; i++ {
		got, err := flatvec.Get(&v, codec.Zstd{}, i)
		require.NoError(t, err)
		assert.Equal(t, []byte("pooled element"), got)
	}
}

func TestZstd_DecodeError(t *testing.T) {
	var v flatvec.FlatVec[byte]
	require.NoError(t, flatvec.Push(&v, codec.Bytes{}, []byte("not a zstd frame")))

	_, err := flatvec.Get(&v, codec.Zstd{}, 0)
	require.Error(t, err)

	var decodeErr *flatvec.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestGzip_RoundTrip(t *testing.T) {
	var v flatvec.FlatVec[byte]

	inputs := [][]byte{
		bytes.Repeat([]byte("gzip "), 256),
		{},
		[]byte("tiny"),
	}
	for _, in := range inputs {
		require.NoError(t, flatvec.Push(&v, codec.Gzip{}, in))
	}

	for i, want := range inputs {
		got, err := flatvec.Get(&v, codec.Gzip{}, i)
		require.NoError(t, err)
		if len(want) == 0 {
			assert.Empty(t, got)
		} else {
			assert.Equal(t, want, got)
		}
	}
}

func TestGzip_DecodeError(t *testing.T) {
	var v flatvec.FlatVec[byte]
	require.NoError(t, flatvec.Push(&v, codec.Bytes{}, []byte("plain")))

	_, err := flatvec.Get(&v, codec.Gzip{}, 0)
	assert.Error(t, err)
}

func TestLZ4_RoundTrip(t *testing.T) {
	var v flatvec.FlatVec[byte]

	rng := testutil.NewRNG(7)
	inputs := [][]byte{
		bytes.Repeat([]byte("lz4 block "), 128),
		{},
		rng.Bytes(64, 64), // random, likely incompressible: raw fallback
	}
	for _, in := range inputs {
		require.NoError(t, flatvec.Push(&v, codec.LZ4{}, in))
	}

	for i, want := range inputs {
		got, err := flatvec.Get(&v, codec.LZ4{}, i)
		require.NoError(t, err)
		if len(want) == 0 {
			assert.Empty(t, got)
		} else {
			assert.Equal(t, want, got)
		}
	}
}

func TestLZ4_DecodeErrors(t *testing.T) {
	t.Run("short header", func(t *testing.T) {
		var v flatvec.FlatVec[byte]
		require.NoError(t, flatvec.Push(&v, codec.Bytes{}, []byte{1, 2, 3}))

		_, err := flatvec.Get(&v, codec.LZ4{}, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too small")
	})

	t.Run("truncated body", func(t *testing.T) {
		// Header claims 100 raw bytes but the body is empty.
		frame := make([]byte, 8)
		frame[0] = 100

		var v flatvec.FlatVec[byte]
		require.NoError(t, flatvec.Push(&v, codec.Bytes{}, frame))

		_, err := flatvec.Get(&v, codec.LZ4{}, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "truncated")
	})
}

func TestCompressedCodecs_CrossReadAsBytes(t *testing.T) {
	// Compressed elements coexist with plain elements in one container;
	// reading a compressed element through Bytes yields the stored frame,
	// not the logical value.
	var v flatvec.FlatVec[byte]
	input := bytes.Repeat([]byte("z"), 128)

	require.NoError(t, flatvec.Push(&v, codec.Zstd{}, input))

	raw, err := flatvec.Get(&v, codec.Bytes{}, 0)
	require.NoError(t, err)
	assert.NotEqual(t, input, raw)
	assert.Less(t, len(raw), len(input))
}
