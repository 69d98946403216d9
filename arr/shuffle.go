package arr

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// NewSeededSource returns a PCG-backed generator that produces the same
// sequence for the same seed. It is not safe for concurrent use.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SecureSource draws from the operating system's cryptographic random number
// generator. It is safe for concurrent use. IntN panics if n <= 0.
type SecureSource struct{}

// IntN returns a uniform integer in [0, n) using rejection sampling, so there
// is no modulo bias.
func (SecureSource) IntN(n int) int {
	if n <= 0 {
		panic("arr: invalid argument to SecureSource.IntN")
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	var buf [8]byte
	for {
		if _, err := crand.Read(buf[:]); err != nil {
			panic(err)
		}
		if v := binary.LittleEndian.Uint64(buf[:]); v < limit {
			return int(v % bound)
		}
	}
}

// Shuffle returns a uniformly shuffled copy of items using the process-wide
// math/rand/v2 generator. items is left untouched.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(items, defaultSource{})
}

// ShuffleWith is [Shuffle] with an explicit random source. A nil src selects
// the process-wide generator.
//
// The algorithm is Durstenfeld's: walk i from the last index down to 1, draw
// j uniformly from [0, i] and swap positions i and j.
func ShuffleWith[T any](items []T, src Source) []T {
	if src == nil {
		src = defaultSource{}
	}
	out := clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns n elements chosen uniformly without replacement, in random
// order. When n >= len(items) the result is a full shuffle; when n <= 0 it is
// empty. A nil src selects the process-wide generator.
func Sample[T any](items []T, n int, src Source) []T {
	if n <= 0 {
		return []T{}
	}
	if src == nil {
		src = defaultSource{}
	}
	out := clone(items)
	if n > len(out) {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		j := i + src.IntN(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:n:n]
}
