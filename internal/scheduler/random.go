package scheduler

import (
	"math/rand"
	"time"
)

// Random is the only source of non-determinism in match generation. A
// *rand.Rand satisfies it; tests pass one with a fixed seed.
type Random interface {
	Shuffle(n int, swap func(i, j int))
}

func NewRandom() Random {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
