package codec_test

import (
	"testing"
	"unsafe"

	"github.com/hupe1980/flatvec"
	"github.com/hupe1980/flatvec/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes_RoundTrip(t *testing.T) {
	var v flatvec.FlatVec[byte]
	inputs := [][]byte{
		[]byte("first"),
		{},
		{0x00, 0xff, 0x7f},
	}
	for _, in := range inputs {
		require.NoError(t, flatvec.Push(&v, codec.Bytes{}, in))
	}

	for i, want := range inputs {
		got, err := flatvec.Get(&v, codec.Bytes{}, i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBytes_DecodeOwns(t *testing.T) {
	var v flatvec.FlatVec[byte]
	require.NoError(t, flatvec.Push(&v, codec.Bytes{}, []byte("stable")))

	got, err := flatvec.Get(&v, codec.Bytes{}, 0)
	require.NoError(t, err)

	// Mutating the buffer after an owning decode must not change the
	// returned value.
	v.Data()[0] = 'X'
	assert.Equal(t, []byte("stable"), got)
}

func TestBytesView_Borrows(t *testing.T) {
	var v flatvec.FlatVec[byte]
	require.NoError(t, flatvec.Push(&v, codec.BytesView{}, []byte("alias")))

	got, err := flatvec.Get(&v, codec.BytesView{}, 0)
	require.NoError(t, err)

	data := v.Data()
	assert.Same(t, &data[0], &got[0])
}

func TestString_RoundTrip(t *testing.T) {
	var v flatvec.FlatVec[byte]
	inputs := []string{"hello", "", "héllo wörld", "日本語"}
	for _, in := range inputs {
		require.NoError(t, flatvec.Push(&v, codec.String{}, in))
	}

	for i, want := range inputs {
		got, err := flatvec.Get(&v, codec.String{}, i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestStringChecked_RejectsInvalidUTF8(t *testing.T) {
	var v flatvec.FlatVec[byte]
	require.NoError(t, flatvec.Push(&v, codec.Bytes{}, []byte{0xff, 0xfe, 0xfd}))
	require.NoError(t, flatvec.Push(&v, codec.StringChecked{}, "valid"))

	_, err := flatvec.Get(&v, codec.StringChecked{}, 0)
	assert.ErrorIs(t, err, codec.ErrInvalidUTF8)

	got, err := flatvec.Get(&v, codec.StringChecked{}, 1)
	require.NoError(t, err)
	assert.Equal(t, "valid", got)
}

func TestStringView_RoundTrip(t *testing.T) {
	var v flatvec.FlatVec[byte]
	inputs := []string{"zero", "", "copy"}
	for _, in := range inputs {
		require.NoError(t, flatvec.Push(&v, codec.StringView{}, in))
	}

	for i, want := range inputs {
		got, err := flatvec.Get(&v, codec.StringView{}, i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestStringView_Borrows(t *testing.T) {
	var v flatvec.FlatVec[byte]
	require.NoError(t, flatvec.Push(&v, codec.StringView{}, "alias"))

	got, err := flatvec.Get(&v, codec.StringView{}, 0)
	require.NoError(t, err)

	// The decoded string's data pointer lies in the backing buffer.
	data := v.Data()
	assert.Same(t, &data[0], unsafe.StringData(got))
}

type record struct {
	ID   int      `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}

func TestJSON_RoundTrip(t *testing.T) {
	var v flatvec.FlatVec[byte]
	recs := flatvec.BindCodec(&v, codec.JSON[record]{})

	want := []record{
		{ID: 1, Name: "alpha", Tags: []string{"a", "b"}},
		{ID: 2, Name: "beta"},
	}
	for _, r := range want {
		require.NoError(t, recs.Push(r))
	}

	for i, w := range want {
		got, err := recs.Get(i)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
}

func TestJSON_DecodeError(t *testing.T) {
	var v flatvec.FlatVec[byte]
	require.NoError(t, flatvec.Push(&v, codec.Bytes{}, []byte("{not json")))

	_, err := flatvec.Get(&v, codec.JSON[record]{}, 0)
	require.Error(t, err)

	var decodeErr *flatvec.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestGoJSON_InterchangeableWithJSON(t *testing.T) {
	var v flatvec.FlatVec[byte]
	want := record{ID: 7, Name: "cross", Tags: []string{"x"}}

	require.NoError(t, flatvec.Push(&v, codec.JSON[record]{}, want))
	require.NoError(t, flatvec.Push(&v, codec.GoJSON[record]{}, want))

	// Elements written by one implementation decode through the other.
	got, err := flatvec.Get(&v, codec.GoJSON[record]{}, 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = flatvec.Get(&v, codec.JSON[record]{}, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
