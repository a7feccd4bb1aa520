package scheduler

import (
	"cmp"
	"slices"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/google/uuid"
)

// MexicanoScheduler generates one round per call. Within each group of four
// the players ranked 1st and 3rd play against the ones ranked 2nd and 4th.
type MexicanoScheduler struct{}

// GenerateInitialMatches produces round 1. The ranking inside each court is
// random.
func (MexicanoScheduler) GenerateInitialMatches(rng Random, players []padel.Player, numberOfCourts int) ([]padel.Match, error) {
	if err := validatePlayers(players); err != nil {
		return nil, err
	}

	t := newTracking(players, nil, true)
	active := selectActive(rng, players, t, numberOfCourts)
	rng.Shuffle(len(active), func(i, j int) {
		active[i], active[j] = active[j], active[i]
	})
	return mexicanoRound(active, 1), nil
}

// GenerateExtensionMatches produces the round after the highest existing one,
// with players ranked by points.
func (MexicanoScheduler) GenerateExtensionMatches(rng Random, players []padel.Player, existing []padel.Match, numberOfCourts int) ([]padel.Match, error) {
	if err := validatePlayers(players); err != nil {
		return nil, err
	}

	t := newTracking(players, existing, true)
	active := selectActive(rng, players, t, numberOfCourts)
	rng.Shuffle(len(active), func(i, j int) {
		active[i], active[j] = active[j], active[i]
	})
	slices.SortStableFunc(active, func(a, b padel.Player) int {
		return cmp.Compare(b.TotalPoints, a.TotalPoints)
	})
	return mexicanoRound(active, maxRound(existing)+1), nil
}

// selectActive picks who plays next: fewest matches first, then whoever has
// been resting the longest. Remaining ties are random.
func selectActive(rng Random, players []padel.Player, t *tracking, numberOfCourts int) []padel.Player {
	ranked := slices.Clone(players)
	rng.Shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})
	slices.SortStableFunc(ranked, func(a, b padel.Player) int {
		if c := cmp.Compare(t.matchCount[a.ID], t.matchCount[b.ID]); c != 0 {
			return c
		}
		return cmp.Compare(t.lastPlayedRound[a.ID], t.lastPlayedRound[b.ID])
	})
	return ranked[:EffectiveCourts(len(players), numberOfCourts)*4]
}

func mexicanoRound(ranked []padel.Player, round int) []padel.Match {
	var matches []padel.Match
	for court := 1; court*4 <= len(ranked); court++ {
		q := ranked[(court-1)*4 : court*4]
		matches = append(matches, padel.NewMatch(round, court,
			[2]uuid.UUID{q[0].ID, q[2].ID},
			[2]uuid.UUID{q[1].ID, q[3].ID},
		))
	}
	return matches
}
