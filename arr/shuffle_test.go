package arr_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-array-utils/arr"
)

// fixedSource records every bound it is asked for and answers with pick.
type fixedSource struct {
	bounds []int
	pick   func(n int) int
}

func (s *fixedSource) IntN(n int) int {
	s.bounds = append(s.bounds, n)
	return s.pick(n)
}

func TestShuffle(t *testing.T) {
	orig := []int{1, 2, 3}
	got := arr.Shuffle(orig)

	require.Len(t, got, 3)
	assert.ElementsMatch(t, []int{1, 2, 3}, got)
	assert.Equal(t, []int{1, 2, 3}, orig)
}

func TestShuffleSmallInputs(t *testing.T) {
	empty := arr.Shuffle([]string{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	one := []string{"only"}
	got := arr.Shuffle(one)
	assert.Equal(t, []string{"only"}, got)
	got[0] = "changed"
	assert.Equal(t, "only", one[0])
}

func TestShuffleWithWalksBackwards(t *testing.T) {
	src := &fixedSource{pick: func(int) int { return 0 }}
	got := arr.ShuffleWith([]int{1, 2, 3, 4}, src)

	assert.Equal(t, []int{4, 3, 2}, src.bounds)
	assert.Equal(t, []int{2, 3, 4, 1}, got)
}

func TestShuffleWithIdentitySwaps(t *testing.T) {
	src := &fixedSource{pick: func(n int) int { return n - 1 }}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, arr.ShuffleWith([]int{1, 2, 3, 4, 5}, src))
}

func TestShuffleWithNilSource(t *testing.T) {
	got := arr.ShuffleWith([]int{1, 2, 3, 4}, nil)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, got)
}

func TestShuffleWithSeededSourceIsReproducible(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	a := arr.ShuffleWith(in, arr.NewSeededSource(42))
	b := arr.ShuffleWith(in, arr.NewSeededSource(42))
	assert.Equal(t, a, b)
}

func TestShuffleUniform(t *testing.T) {
	const trials = 60_000
	src := arr.NewSeededSource(7)
	counts := make(map[[3]int]int)
	for i := 0; i < trials; i++ {
		got := arr.ShuffleWith([]int{1, 2, 3}, src)
		counts[[3]int(got)]++
	}
	require.Len(t, counts, 6, "every permutation of three elements should appear")

	// Chi-square with 5 degrees of freedom; 30 is far beyond the 0.1% tail.
	expected := float64(trials) / 6
	chi := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	assert.Less(t, chi, 30.0, "counts=%v", counts)
}

func TestSecureSource(t *testing.T) {
	var src arr.SecureSource
	assert.Equal(t, 0, src.IntN(1))
	for i := 0; i < 1000; i++ {
		v := src.IntN(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
	assert.Panics(t, func() { src.IntN(0) })

	got := arr.ShuffleWith([]string{"a", "b", "c", "d"}, src)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, got)
}

func TestSample(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	got := arr.Sample(in, 3, arr.NewSeededSource(1))
	require.Len(t, got, 3)
	assert.Len(t, arr.Unique(got), 3)
	for _, v := range got {
		assert.Contains(t, in, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, in)
}

func TestSampleBounds(t *testing.T) {
	in := []int{1, 2, 3}
	assert.Empty(t, arr.Sample(in, 0, nil))
	assert.Empty(t, arr.Sample(in, -1, nil))

	all := arr.Sample(in, 10, nil)
	sorted := slices.Clone(all)
	slices.Sort(sorted)
	assert.Equal(t, []int{1, 2, 3}, sorted)
}

func TestSampleResultIsIndependent(t *testing.T) {
	got := arr.Sample([]int{1, 2, 3, 4}, 2, arr.NewSeededSource(3))
	assert.Len(t, got, 2)
	assert.Equal(t, 2, cap(got))
}
