package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Dice is the random source consumed by the engine. *rand.Rand satisfies it.
type Dice interface {
	IntN(n int) int
}

// NewDice returns the process-wide random source for a seed. The same seed
// always yields the same opponents, levels and jitter.
func NewDice(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// rollBetween returns a uniform integer in [lo, hi].
func rollBetween(d Dice, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.IntN(hi-lo+1)
}

// rollJitter returns the attack jitter in [-2, 2].
func rollJitter(d Dice) int {
	return rollBetween(d, -2, 2)
}
