package dragon

import (
	"fmt"
	"math/rand"
)

// Random is the source of every random choice in a session: sizes,
// velocities, bounce timing, spawn positions and sprite variants.
type Random struct {
	r *rand.Rand
}

// NewRandom creates a Random seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// Int returns a uniform integer in [min, max], both ends inclusive.
func (r *Random) Int(min, max int) int {
	if max < min {
		panic(fmt.Sprintf("dragon: random range [%d,%d] is empty", min, max))
	}
	return min + r.r.Intn(max-min+1)
}

// Sign returns +1 or -1 with equal probability.
func (r *Random) Sign() int {
	if r.r.Intn(2) == 0 {
		return 1
	}
	return -1
}

// Percent returns true with probability p/100.
func (r *Random) Percent(p int) bool {
	return r.Int(0, 99) < p
}

// Seed returns a fresh seed for a follow-up session.
func (r *Random) Seed() int64 {
	return r.r.Int63()
}
