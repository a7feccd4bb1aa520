package scheduler

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayers(n int) []padel.Player {
	players := make([]padel.Player, n)
	for i := range players {
		players[i] = padel.Player{
			ID:   uuid.New(),
			Name: fmt.Sprintf("Player %d", i+1),
			Seed: i + 1,
		}
	}
	return players
}

func seeded(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

func markPlayed(matches []padel.Match) []padel.Match {
	for i := range matches {
		matches[i].IsPlayed = true
	}
	return matches
}

// requireValidSchedule checks the invariants every generated batch must hold.
func requireValidSchedule(t *testing.T, matches []padel.Match, firstRound int) {
	t.Helper()

	byRound := make(map[int][]padel.Match)
	for _, m := range matches {
		players := m.Players()
		seen := make(map[uuid.UUID]bool, 4)
		for _, id := range players {
			require.False(t, seen[id], "player %s appears twice in match %s", id, m.ID)
			seen[id] = true
		}
		byRound[m.RoundNumber] = append(byRound[m.RoundNumber], m)
	}

	for round := firstRound; round < firstRound+len(byRound); round++ {
		roundMatches, ok := byRound[round]
		require.True(t, ok, "round %d missing, rounds must be contiguous", round)

		busy := make(map[uuid.UUID]bool)
		for i, m := range roundMatches {
			assert.Equal(t, i+1, m.CourtNumber, "courts in round %d must be numbered from 1", round)
			for _, id := range m.Players() {
				require.False(t, busy[id], "player %s double-booked in round %d", id, round)
				busy[id] = true
			}
		}
	}
}

func matchCounts(players []padel.Player, matches []padel.Match) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int, len(players))
	for _, p := range players {
		counts[p.ID] = 0
	}
	for _, m := range matches {
		for _, id := range m.Players() {
			counts[id]++
		}
	}
	return counts
}

func requireEqualCounts(t *testing.T, players []padel.Player, matches []padel.Match) int {
	t.Helper()
	counts := matchCounts(players, matches)
	want := counts[players[0].ID]
	for _, p := range players {
		require.Equal(t, want, counts[p.ID], "%s played %d matches, %s played %d", p.Name, counts[p.ID], players[0].Name, want)
	}
	return want
}

func partnerPairs(matches []padel.Match) map[PairKey]int {
	pairs := make(map[PairKey]int)
	for _, m := range matches {
		pairs[NewPairKey(m.Team1Player1ID, m.Team1Player2ID)]++
		pairs[NewPairKey(m.Team2Player1ID, m.Team2Player2ID)]++
	}
	return pairs
}
