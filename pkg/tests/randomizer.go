package tests

import (
	"math/rand"
	"testing"
	"time"
)

// Randomizer draws test inputs from a seeded source. The seed is logged so a
// failing run can be replayed with NewRandomizerWithSeed.
type Randomizer struct {
	random *rand.Rand
}

func NewRandomizer(t testing.TB) Randomizer {
	seed := time.Now().UnixNano()
	t.Logf("randomizer seed: %d", seed)

	return NewRandomizerWithSeed(seed)
}

func NewRandomizerWithSeed(seed int64) Randomizer {
	return Randomizer{random: rand.New(rand.NewSource(seed))} //nolint:gosec // for tests
}

// SignedUpTo returns a value in [-limit, limit].
func (r Randomizer) SignedUpTo(limit int64) int64 {
	n := r.random.Int63n(limit + 1)

	if r.random.Intn(2) == 0 { //nolint:mnd // coin flip
		return -n
	}

	return n
}

// Digits returns a number with exactly the given count of decimal digits.
func (r Randomizer) Digits(count int) int64 {
	low := int64(1)
	for range count - 1 {
		low *= 10
	}

	return low + r.random.Int63n(low*9) //nolint:mnd // 10^count - 10^(count-1)
}
