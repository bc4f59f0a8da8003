package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameStream(t *testing.T) {
	a := New(7)
	b := New(7)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float(), b.Float())
	}
}

func TestBetweenInclusive(t *testing.T) {
	src := New(1)

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := src.Between(1, 10)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 10)
		seen[v] = true
	}
	// Both endpoints should show up over 1000 draws.
	assert.True(t, seen[1])
	assert.True(t, seen[10])
}

func TestUniformRange(t *testing.T) {
	src := New(2)

	for i := 0; i < 1000; i++ {
		v := src.Uniform(1.0, 1.5)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.Less(t, v, 1.5)
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	src := New(3)
	pool := []string{"Salt", "Iron", "Holy Water", "Light", "Sound", "Cold"}

	for i := 0; i < 100; i++ {
		out := src.Sample(pool, 3)
		assert.Len(t, out, 3)

		seen := map[string]bool{}
		for _, v := range out {
			assert.Contains(t, pool, v)
			assert.False(t, seen[v], "sample repeated %q", v)
			seen[v] = true
		}
	}
}

func TestSampleClampsToPool(t *testing.T) {
	src := New(4)

	out := src.Sample([]string{"a", "b"}, 5)
	assert.Len(t, out, 2)
}

func TestCoinLandsBothWays(t *testing.T) {
	src := New(5)

	heads := 0
	for i := 0; i < 1000; i++ {
		if src.Coin() {
			heads++
		}
	}
	assert.Greater(t, heads, 400)
	assert.Less(t, heads, 600)
}
