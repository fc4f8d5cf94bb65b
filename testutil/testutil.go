// Package testutil provides deterministic data generators for tests and
// benchmarks.
package testutil

import "math/rand"

// RNG encapsulates a seeded random number generator so test data is
// reproducible.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Bytes generates a random byte slice with length in [minLen, maxLen].
func (r *RNG) Bytes(minLen, maxLen int) []byte {
	n := minLen
	if maxLen > minLen {
		n += r.rand.Intn(maxLen - minLen + 1)
	}
	b := make([]byte, n)
	r.rand.Read(b)
	return b
}

// ByteSlices generates num random byte slices with lengths in
// [minLen, maxLen].
func (r *RNG) ByteSlices(num, minLen, maxLen int) [][]byte {
	out := make([][]byte, num)
	for i := range out {
		out[i] = r.Bytes(minLen, maxLen)
	}
	return out
}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Strings generates num random ASCII strings with lengths in
// [minLen, maxLen].
func (r *RNG) Strings(num, minLen, maxLen int) []string {
	out := make([]string, num)
	for i := range out {
		n := minLen
		if maxLen > minLen {
			n += r.rand.Intn(maxLen - minLen + 1)
		}
		b := make([]byte, n)
		for j := range b {
			b[j] = letters[r.rand.Intn(len(letters))]
		}
		out[i] = string(b)
	}
	return out
}
