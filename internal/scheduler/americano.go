package scheduler

import (
	"maps"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// MaxMatchesPerPlayer caps the partner-coverage target in Americano.
	MaxMatchesPerPlayer = 8

	// minExtensionRounds is how many rounds an Americano extension adds at
	// the very least.
	minExtensionRounds = 2

	maxExtensionPasses = 10

	// coverageSearchBudget bounds the number of search steps spent looking
	// for a schedule in which nobody partners the same player twice.
	coverageSearchBudget = 20000
)

// AmericanoScheduler generates the whole tournament up front: first rounds
// that spread partnerships over every pair of players, then rounds that even
// out the number of matches each player gets.
type AmericanoScheduler struct{}

func (AmericanoScheduler) GenerateInitialMatches(_ Random, players []padel.Player, numberOfCourts int) ([]padel.Match, error) {
	if err := validatePlayers(players); err != nil {
		return nil, err
	}

	ids := playerIDs(players)
	courts := EffectiveCourts(len(ids), numberOfCourts)
	t := newTracking(players, nil, false)

	matches := coverRounds(ids, courts, t)
	level := balanceLevel(t, ids, maxCount(t, ids))
	matches = append(matches, balanceRounds(ids, courts, maxRound(matches)+1, t, level)...)

	logrus.WithFields(logrus.Fields{
		"players": len(ids),
		"courts":  courts,
		"rounds":  maxRound(matches),
		"matches": len(matches),
	}).Debug("generated americano schedule")

	return matches, nil
}

// GenerateExtensionMatches adds at least two rounds to an Americano
// tournament and leaves every player with the same number of played matches.
// Only the new matches are returned.
func (s AmericanoScheduler) GenerateExtensionMatches(rng Random, players []padel.Player, existing []padel.Match, numberOfCourts int) ([]padel.Match, error) {
	if len(existing) == 0 {
		return s.GenerateInitialMatches(rng, players, numberOfCourts)
	}
	if err := validatePlayers(players); err != nil {
		return nil, err
	}

	ids := playerIDs(players)
	courts := EffectiveCourts(len(ids), numberOfCourts)
	t := newTracking(players, existing, true)

	first := maxRound(existing) + 1
	next := first
	var matches []padel.Match
	for pass := 0; pass < maxExtensionPasses; pass++ {
		if next-first >= minExtensionRounds && t.balanced(ids) {
			break
		}
		floor := maxCount(t, ids)
		if t.balanced(ids) {
			floor++
		}
		added := balanceRounds(ids, courts, next, t, balanceLevel(t, ids, floor))
		if len(added) == 0 {
			break
		}
		matches = append(matches, added...)
		next = maxRound(added) + 1
	}
	return matches, nil
}

func maxCount(t *tracking, ids []uuid.UUID) int {
	_, hi := t.countRange(ids)
	return hi
}

// coverTarget is how many matches each player gets during partner coverage.
func coverTarget(playerCount int) int {
	return min(playerCount-1, MaxMatchesPerPlayer)
}

// coverRoundLimit is the safety bound on coverage rounds. It grows with the
// number of rounds it takes for everyone to get on court once.
func coverRoundLimit(playerCount, courts int) int {
	perCycle := (playerCount + 4*courts - 1) / (4 * courts)
	return (coverTarget(playerCount) + 5) * perCycle
}

// exactCoverPossible reports whether every pair can partner exactly once with
// everybody on the same number of matches.
func exactCoverPossible(playerCount int) bool {
	return coverTarget(playerCount) == playerCount-1 && playerCount*(playerCount-1)%4 == 0
}

// coverRounds runs the partner coverage phase and records its matches in t.
func coverRounds(ids []uuid.UUID, courts int, t *tracking) []padel.Match {
	if exactCoverPossible(len(ids)) {
		search := &coverSearch{
			ids:       ids,
			courts:    courts,
			target:    coverTarget(len(ids)),
			maxRounds: coverRoundLimit(len(ids), courts),
			budget:    coverageSearchBudget,
		}
		if matches, ok := search.run(t); ok {
			for _, m := range matches {
				t.record(m)
			}
			return matches
		}
		logrus.WithFields(logrus.Fields{
			"players": len(ids),
			"courts":  courts,
		}).Debug("no exact partner cover found, falling back to greedy coverage")
	}
	return greedyCover(ids, courts, t)
}

func greedyCover(ids []uuid.UUID, courts int, t *tracking) []padel.Match {
	target := coverTarget(len(ids))
	remaining := allPairs(ids)
	var matches []padel.Match

	for round := 1; round <= coverRoundLimit(len(ids), courts); round++ {
		if len(remaining) == 0 {
			break
		}
		eligible := eligibleForCover(t, ids, target)
		if len(eligible) < 4 {
			break
		}
		roundMatches := buildRound(eligible, courts, round, t, coverageWeights)
		if len(roundMatches) == 0 {
			break
		}
		for _, m := range roundMatches {
			t.record(m)
			coverPartners(remaining, m)
		}
		matches = append(matches, roundMatches...)
	}
	return matches
}

// eligibleForCover lists players still under target, least-played first.
func eligibleForCover(t *tracking, ids []uuid.UUID, target int) []uuid.UUID {
	var eligible []uuid.UUID
	for _, id := range t.byMatchCount(ids) {
		if t.matchCount[id] < target {
			eligible = append(eligible, id)
		}
	}
	return eligible
}

func coverPartners(remaining map[PairKey]struct{}, m padel.Match) {
	delete(remaining, NewPairKey(m.Team1Player1ID, m.Team1Player2ID))
	delete(remaining, NewPairKey(m.Team2Player1ID, m.Team2Player2ID))
}

// coverSearch walks the same ranked configurations the greedy builder uses,
// but refuses repeated partners and backtracks when a round cannot be filled.
// Every round must use all the courts its eligible players can fill.
type coverSearch struct {
	ids       []uuid.UUID
	courts    int
	target    int
	maxRounds int
	budget    int
}

// coverState is copied on every step so that backtracking never has to undo.
type coverState struct {
	t         *tracking
	remaining map[PairKey]struct{}
	round     int
	court     int
	available []uuid.UUID // players free for the rest of this round
	courts    int         // courts this round has to fill
	matches   []padel.Match
}

func (s *coverSearch) run(t *tracking) ([]padel.Match, bool) {
	return s.step(coverState{
		t:         t.clone(),
		remaining: allPairs(s.ids),
		round:     1,
		court:     1,
	})
}

func (s *coverSearch) step(st coverState) ([]padel.Match, bool) {
	if len(st.remaining) == 0 {
		return st.matches, true
	}
	if st.court == 1 {
		if st.round > s.maxRounds {
			return nil, false
		}
		st.available = eligibleForCover(st.t, s.ids, s.target)
		if len(st.available) < 4 {
			return nil, false
		}
		st.courts = min(s.courts, len(st.available)/4)
	}

	for _, c := range rankedConfigurations(window(st.available), st.t, coverageWeights) {
		if c.repeatsPartner(st.t) {
			continue
		}
		if s.budget--; s.budget < 0 {
			return nil, false
		}

		m := padel.NewMatch(st.round, st.court, c.team1, c.team2)
		next := coverState{
			t:         st.t.clone(),
			remaining: maps.Clone(st.remaining),
			round:     st.round,
			court:     st.court + 1,
			available: withoutPlayers(st.available, c.players()),
			courts:    st.courts,
			matches:   append(st.matches[:len(st.matches):len(st.matches)], m),
		}
		next.t.record(m)
		coverPartners(next.remaining, m)
		if next.court > next.courts {
			next.round, next.court = st.round+1, 1
		}

		if matches, ok := s.step(next); ok {
			return matches, true
		}
		if s.budget < 0 {
			return nil, false
		}
	}
	return nil, false
}
