package scheduler

import "github.com/google/uuid"

// weights tune how hard a team split is punished for repeating partners and
// opponents. Both presets keep partner repeats far more expensive than
// opponent repeats.
type weights struct {
	usedPartner int // flat, once per team pair that has already partnered
	partner     int // per earlier partnership of a team pair
	opponent    int // per earlier meeting of a cross-team pair
}

var (
	coverageWeights  = weights{usedPartner: 10000, opponent: 100}
	balancingWeights = weights{partner: 1000, opponent: 10}
)

type split struct {
	team1, team2 [2]uuid.UUID
	penalty      int
}

func (s split) players() [4]uuid.UUID {
	return [4]uuid.UUID{s.team1[0], s.team1[1], s.team2[0], s.team2[1]}
}

func (s split) repeatsPartner(t *tracking) bool {
	return t.partnered(s.team1[0], s.team1[1]) || t.partnered(s.team2[0], s.team2[1])
}

// splits lists the three ways to divide a group of four into two teams, in
// the order ties are resolved.
func splits(g [4]uuid.UUID, t *tracking, w weights) [3]split {
	all := [3]split{
		{team1: [2]uuid.UUID{g[0], g[1]}, team2: [2]uuid.UUID{g[2], g[3]}},
		{team1: [2]uuid.UUID{g[0], g[2]}, team2: [2]uuid.UUID{g[1], g[3]}},
		{team1: [2]uuid.UUID{g[0], g[3]}, team2: [2]uuid.UUID{g[1], g[2]}},
	}
	for i := range all {
		all[i].penalty = t.penalty(all[i].team1, all[i].team2, w)
	}
	return all
}

func bestSplit(g [4]uuid.UUID, t *tracking, w weights) split {
	all := splits(g, t, w)
	best := all[0]
	for _, s := range all[1:] {
		if s.penalty < best.penalty {
			best = s
		}
	}
	return best
}

func (t *tracking) penalty(team1, team2 [2]uuid.UUID, w weights) int {
	total := 0
	for _, team := range [2][2]uuid.UUID{team1, team2} {
		key := NewPairKey(team[0], team[1])
		if _, used := t.usedPartnerPairs[key]; used {
			total += w.usedPartner
		}
		total += w.partner * t.partnerCount[key]
	}
	for _, a := range team1 {
		for _, b := range team2 {
			total += w.opponent * t.opponentCount[NewPairKey(a, b)]
		}
	}
	// Favor whoever has played the least.
	for _, id := range [4]uuid.UUID{team1[0], team1[1], team2[0], team2[1]} {
		total += t.matchCount[id]
	}
	return total
}
