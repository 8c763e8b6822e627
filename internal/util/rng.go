package util

import (
	"math/rand"
	"time"
)

// New returns a rand.Rand seeded with the given value. A zero seed means
// "not fixed" and falls back to the wall clock.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}
