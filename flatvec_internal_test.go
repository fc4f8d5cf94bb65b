package flatvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawBytes is a minimal codec for white-box tests.
type rawBytes struct{}

func (rawBytes) Encode(value []byte, dst *Storage[byte]) error {
	dst.Extend(value)
	return nil
}

func (rawBytes) Decode(flat []byte) ([]byte, error) {
	out := make([]byte, len(flat))
	copy(out, flat)
	return out, nil
}

// checkInvariant asserts the container's structural invariant: leading
// zero, non-decreasing offsets, last offset equal to the buffer length.
func checkInvariant[F any](t *testing.T, v *FlatVec[F]) {
	t.Helper()

	offsets := v.Offsets()
	require.NotEmpty(t, offsets)
	assert.Equal(t, 0, offsets[0])
	for i := 1; i < len(offsets); i++ {
		assert.GreaterOrEqual(t, offsets[i], offsets[i-1])
	}
	assert.Equal(t, len(v.data), offsets[len(offsets)-1])
	assert.Equal(t, v.Len()+1, len(offsets))
}

func TestInvariant_PushPopClear(t *testing.T) {
	var v FlatVec[byte]
	checkInvariant(t, &v)

	inputs := [][]byte{
		[]byte("a"),
		{},
		[]byte("longer element"),
		[]byte("x"),
	}
	for _, in := range inputs {
		require.NoError(t, Push(&v, rawBytes{}, in))
		checkInvariant(t, &v)
	}
	assert.Equal(t, len(inputs), v.Len())

	_, err := Pop(&v, rawBytes{})
	require.NoError(t, err)
	checkInvariant(t, &v)
	assert.Equal(t, len(inputs)-1, v.Len())

	v.Clear()
	checkInvariant(t, &v)
	assert.True(t, v.IsEmpty())

	// Capacity reuse after clear must not corrupt data.
	require.NoError(t, Push(&v, rawBytes{}, []byte("fresh")))
	checkInvariant(t, &v)
	got, err := Get(&v, rawBytes{}, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), got)
}

func TestInvariant_EmptyElements(t *testing.T) {
	var v FlatVec[byte]
	for i := 0; i < 3; i++ {
		require.NoError(t, Push(&v, rawBytes{}, nil))
		checkInvariant(t, &v)
	}
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 0, v.DataLen())

	got, err := Get(&v, rawBytes{}, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAt_FullSliceExpression(t *testing.T) {
	var v FlatVec[byte]
	require.NoError(t, Push(&v, rawBytes{}, []byte("ab")))
	require.NoError(t, Push(&v, rawBytes{}, []byte("cd")))

	flat, ok := v.At(0)
	require.True(t, ok)
	// The element slice must not allow append to bleed into the next
	// element's units.
	assert.Equal(t, 2, cap(flat))
}

func TestGrow_DoesNotChangeContents(t *testing.T) {
	var v FlatVec[byte]
	require.NoError(t, Push(&v, rawBytes{}, []byte("hello")))

	v.Grow(1 << 16)
	checkInvariant(t, &v)

	got, err := Get(&v, rawBytes{}, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}
