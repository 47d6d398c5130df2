package simulation

import "time"

var fixedEpoch = time.Unix(1_700_000_000, 0)

// constantRand always returns the same value, letting tests force a
// Bernoulli draw to definitely succeed (close to 0) or definitely fail
// (close to 1), per spec §8's "PRNG seeded so Bernoulli draws are
// deterministic" end-to-end scenario setup.
type constantRand struct{ value float64 }

func (c constantRand) Float64() float64 { return c.value }
