package simulation

import (
	"math/rand"
	"time"
)

// RandSource is the minimal randomness the Behavior and Heading stages
// need. Tests inject a deterministic implementation; production uses
// NewDefaultRandSource, seeded from the system clock (spec §4.3: "random
// draws use a per-thread PRNG seeded from system entropy; implementers
// should expose a seed hook for tests").
type RandSource interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64
}

// NewDefaultRandSource returns a RandSource seeded from the current time.
func NewDefaultRandSource() RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
