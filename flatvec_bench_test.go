package flatvec_test

import (
	"testing"

	"github.com/hupe1980/flatvec"
	"github.com/hupe1980/flatvec/codec"
	"github.com/hupe1980/flatvec/testutil"
)

func BenchmarkPush(b *testing.B) {
	rng := testutil.NewRNG(42)
	inputs := rng.ByteSlices(1024, 16, 256)

	b.ResetTimer()
	var v flatvec.FlatVec[byte]
	for i := 0; i < b.N; i++ {
		if err := flatvec.Push(&v, codec.Bytes{}, inputs[i%len(inputs)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGet_View(b *testing.B) {
	rng := testutil.NewRNG(42)
	var v flatvec.FlatVec[byte]
	for _, in := range rng.ByteSlices(1024, 16, 256) {
		if err := flatvec.Push(&v, codec.Bytes{}, in); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flatvec.Get(&v, codec.BytesView{}, i%v.Len()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValues(b *testing.B) {
	rng := testutil.NewRNG(42)
	var v flatvec.FlatVec[byte]
	for _, in := range rng.ByteSlices(1024, 16, 256) {
		if err := flatvec.Push(&v, codec.Bytes{}, in); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, err := range flatvec.Values(&v, codec.BytesView{}) {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
