package scheduler

import (
	"slices"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/elliotchance/pie/v2"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat/combin"
)

// candidateWindow bounds the subset search to the first players of a pool;
// the search is O(window^4).
const candidateWindow = 8

func window(available []uuid.UUID) []uuid.UUID {
	return available[:min(candidateWindow, len(available))]
}

func groups(ids []uuid.UUID) [][4]uuid.UUID {
	if len(ids) < 4 {
		return nil
	}
	subsets := combin.Combinations(len(ids), 4)
	out := make([][4]uuid.UUID, len(subsets))
	for i, idx := range subsets {
		out[i] = [4]uuid.UUID{ids[idx[0]], ids[idx[1]], ids[idx[2]], ids[idx[3]]}
	}
	return out
}

// bestConfiguration picks the lowest-penalty split over every group of four in
// ids. The first configuration found wins ties.
func bestConfiguration(ids []uuid.UUID, t *tracking, w weights) (split, bool) {
	var best split
	found := false
	for _, g := range groups(ids) {
		s := bestSplit(g, t, w)
		if !found || s.penalty < best.penalty {
			best, found = s, true
		}
	}
	return best, found
}

// rankedConfigurations returns every split of every group of four in ids,
// best first. Its head is always what bestConfiguration picks.
func rankedConfigurations(ids []uuid.UUID, t *tracking, w weights) []split {
	var all []split
	for _, g := range groups(ids) {
		s := splits(g, t, w)
		all = append(all, s[:]...)
	}
	slices.SortStableFunc(all, func(a, b split) int {
		return a.penalty - b.penalty
	})
	return all
}

// buildRound fills up to courts matches from pool, which is expected to be
// ordered least-played first.
func buildRound(pool []uuid.UUID, courts, round int, t *tracking, w weights) []padel.Match {
	available := slices.Clone(pool)
	var matches []padel.Match
	for court := 1; court <= courts && len(available) >= 4; court++ {
		best, ok := bestConfiguration(window(available), t, w)
		if !ok {
			break
		}
		matches = append(matches, padel.NewMatch(round, court, best.team1, best.team2))
		available = withoutPlayers(available, best.players())
	}
	return matches
}

func withoutPlayers(ids []uuid.UUID, taken [4]uuid.UUID) []uuid.UUID {
	return pie.Filter(ids, func(id uuid.UUID) bool {
		return !slices.Contains(taken[:], id)
	})
}

func playerIDs(players []padel.Player) []uuid.UUID {
	return pie.Map(players, func(p padel.Player) uuid.UUID {
		return p.ID
	})
}
