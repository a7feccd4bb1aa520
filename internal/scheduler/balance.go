package scheduler

import (
	"slices"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxBalanceRounds caps a single balancing pass.
const maxBalanceRounds = 500

// balanceLevel returns the lowest common match count, at least floor, that
// every player can reach with whole matches: the missing appearances must
// split into groups of four and nobody may need more matches than there
// will be.
func balanceLevel(t *tracking, ids []uuid.UUID, floor int) int {
	lo, _ := t.countRange(ids)
	sum := 0
	for _, id := range ids {
		sum += t.matchCount[id]
	}
	for level := floor; level <= floor+sum+8; level++ {
		deficit := len(ids)*level - sum
		if deficit%4 == 0 && 4*(level-lo) <= deficit {
			return level
		}
	}
	return floor
}

// reachable reports whether everyone can still get to level if taken plays
// one more match.
func reachable(t *tracking, ids []uuid.UUID, level int, taken [4]uuid.UUID) bool {
	total, highest := 0, 0
	for _, id := range ids {
		deficit := level - t.matchCount[id]
		if slices.Contains(taken[:], id) {
			deficit--
		}
		total += deficit
		highest = max(highest, deficit)
	}
	return total%4 == 0 && 4*highest <= total
}

// balanceRounds schedules rounds until every player has level matches.
// Each match takes the four players furthest below level; among equally
// far players the balancing scorer decides.
func balanceRounds(ids []uuid.UUID, courts, round int, t *tracking, level int) []padel.Match {
	var matches []padel.Match
	for i := 0; i < maxBalanceRounds; i++ {
		below := slices.DeleteFunc(t.byMatchCount(ids), func(id uuid.UUID) bool {
			return t.matchCount[id] >= level
		})
		if len(below) < 4 {
			break
		}
		roundMatches := balanceRound(ids, below, courts, round, t, level)
		if len(roundMatches) == 0 {
			break
		}
		matches = append(matches, roundMatches...)
		round++
	}
	if !t.balanced(ids) {
		logrus.WithFields(logrus.Fields{
			"players": len(ids),
			"level":   level,
		}).Warn("balancing stopped before match counts were equal")
	}
	return matches
}

func balanceRound(ids, available []uuid.UUID, courts, round int, t *tracking, level int) []padel.Match {
	var matches []padel.Match
	for court := 1; court <= courts && len(available) >= 4; court++ {
		pick, ok := mostBehind(available, t)
		if !ok || !reachable(t, ids, level, pick.players()) {
			break
		}
		m := padel.NewMatch(round, court, pick.team1, pick.team2)
		t.record(m)
		matches = append(matches, m)
		available = withoutPlayers(available, pick.players())
	}
	return matches
}

// mostBehind chooses among groups whose match counts equal those of the four
// least-played available players.
func mostBehind(available []uuid.UUID, t *tracking) (split, bool) {
	want := groupCounts(t, [4]uuid.UUID(available[:4]))
	var best split
	found := false
	for _, g := range groups(window(available)) {
		if groupCounts(t, g) != want {
			continue
		}
		s := bestSplit(g, t, balancingWeights)
		if !found || s.penalty < best.penalty {
			best, found = s, true
		}
	}
	return best, found
}

func groupCounts(t *tracking, g [4]uuid.UUID) [4]int {
	counts := [4]int{}
	for i, id := range g {
		counts[i] = t.matchCount[id]
	}
	slices.Sort(counts[:])
	return counts
}
