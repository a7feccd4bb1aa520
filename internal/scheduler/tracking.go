package scheduler

import (
	"cmp"
	"maps"
	"slices"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/google/uuid"
)

// tracking accumulates who played with and against whom. It lives for a
// single generation call and is always rebuilt from the match list.
type tracking struct {
	matchCount       map[uuid.UUID]int
	partnerCount     map[PairKey]int
	opponentCount    map[PairKey]int
	usedPartnerPairs map[PairKey]struct{}
	lastPlayedRound  map[uuid.UUID]int
}

func newTracking(players []padel.Player, matches []padel.Match, playedOnly bool) *tracking {
	t := &tracking{
		matchCount:       make(map[uuid.UUID]int, len(players)),
		partnerCount:     make(map[PairKey]int),
		opponentCount:    make(map[PairKey]int),
		usedPartnerPairs: make(map[PairKey]struct{}),
		lastPlayedRound:  make(map[uuid.UUID]int, len(players)),
	}
	for _, p := range players {
		t.matchCount[p.ID] = 0
		t.lastPlayedRound[p.ID] = 0
	}
	for _, m := range matches {
		if playedOnly && !m.IsPlayed {
			continue
		}
		t.record(m)
	}
	return t
}

func (t *tracking) record(m padel.Match) {
	for _, id := range m.Players() {
		t.matchCount[id]++
		if m.RoundNumber > t.lastPlayedRound[id] {
			t.lastPlayedRound[id] = m.RoundNumber
		}
	}
	for _, team := range [2][2]uuid.UUID{m.Team1(), m.Team2()} {
		key := NewPairKey(team[0], team[1])
		t.partnerCount[key]++
		t.usedPartnerPairs[key] = struct{}{}
	}
	for _, a := range m.Team1() {
		for _, b := range m.Team2() {
			t.opponentCount[NewPairKey(a, b)]++
		}
	}
}

func (t *tracking) clone() *tracking {
	return &tracking{
		matchCount:       maps.Clone(t.matchCount),
		partnerCount:     maps.Clone(t.partnerCount),
		opponentCount:    maps.Clone(t.opponentCount),
		usedPartnerPairs: maps.Clone(t.usedPartnerPairs),
		lastPlayedRound:  maps.Clone(t.lastPlayedRound),
	}
}

func (t *tracking) partnered(a, b uuid.UUID) bool {
	_, ok := t.usedPartnerPairs[NewPairKey(a, b)]
	return ok
}

// countRange returns the lowest and highest match count among ids.
func (t *tracking) countRange(ids []uuid.UUID) (lo, hi int) {
	for i, id := range ids {
		c := t.matchCount[id]
		if i == 0 || c < lo {
			lo = c
		}
		if i == 0 || c > hi {
			hi = c
		}
	}
	return lo, hi
}

func (t *tracking) balanced(ids []uuid.UUID) bool {
	lo, hi := t.countRange(ids)
	return lo == hi
}

// byMatchCount returns a copy of ids ordered by ascending match count. Equal
// counts keep their input order.
func (t *tracking) byMatchCount(ids []uuid.UUID) []uuid.UUID {
	sorted := slices.Clone(ids)
	slices.SortStableFunc(sorted, func(a, b uuid.UUID) int {
		return cmp.Compare(t.matchCount[a], t.matchCount[b])
	})
	return sorted
}

func maxRound(matches []padel.Match) int {
	highest := 0
	for _, m := range matches {
		highest = max(highest, m.RoundNumber)
	}
	return highest
}
