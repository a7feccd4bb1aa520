package scheduler

import (
	"bytes"

	"github.com/google/uuid"
)

// PairKey is an unordered pair of player ids, so {a,b} and {b,a} map to the
// same key.
type PairKey struct {
	A, B uuid.UUID
}

func NewPairKey(a, b uuid.UUID) PairKey {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// allPairs returns every unordered pair of the given players.
func allPairs(ids []uuid.UUID) map[PairKey]struct{} {
	pairs := make(map[PairKey]struct{}, len(ids)*(len(ids)-1)/2)
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			pairs[NewPairKey(ids[i], ids[j])] = struct{}{}
		}
	}
	return pairs
}
