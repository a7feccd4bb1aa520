package scheduler

import (
	"testing"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMexicanoFirstRound(t *testing.T) {
	players := testPlayers(8)

	matches, err := MexicanoScheduler{}.GenerateInitialMatches(seeded(7), players, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	requireValidSchedule(t, matches, 1)

	seen := make(map[uuid.UUID]bool)
	for _, m := range matches {
		assert.Equal(t, 1, m.RoundNumber)
		for _, id := range m.Players() {
			seen[id] = true
		}
	}
	assert.Len(t, seen, 8)
}

func TestMexicanoFirstRoundLeavesExtraPlayersOut(t *testing.T) {
	players := testPlayers(11)

	matches, err := MexicanoScheduler{}.GenerateInitialMatches(seeded(3), players, 4)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
	requireValidSchedule(t, matches, 1)
}

func TestMexicanoIsDeterministicForASeed(t *testing.T) {
	players := testPlayers(12)

	a, err := MexicanoScheduler{}.GenerateInitialMatches(seeded(42), players, 3)
	require.NoError(t, err)
	b, err := MexicanoScheduler{}.GenerateInitialMatches(seeded(42), players, 3)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Players(), b[i].Players())
	}
}

func TestMexicanoRankedRound(t *testing.T) {
	players := testPlayers(8)
	p := playerIDs(players)
	for i := range players {
		players[i].TotalPoints = (8 - i) * 10
	}
	// Seat everyone in the opposite order so the ranking has to come from points.
	history := markPlayed([]padel.Match{
		padel.NewMatch(1, 1, [2]uuid.UUID{p[7], p[6]}, [2]uuid.UUID{p[5], p[4]}),
		padel.NewMatch(1, 2, [2]uuid.UUID{p[3], p[2]}, [2]uuid.UUID{p[1], p[0]}),
	})

	matches, err := MexicanoScheduler{}.GenerateExtensionMatches(seeded(1), players, history, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, [2]uuid.UUID{p[0], p[2]}, matches[0].Team1())
	assert.Equal(t, [2]uuid.UUID{p[1], p[3]}, matches[0].Team2())
	assert.Equal(t, [2]uuid.UUID{p[4], p[6]}, matches[1].Team1())
	assert.Equal(t, [2]uuid.UUID{p[5], p[7]}, matches[1].Team2())
	for _, m := range matches {
		assert.Equal(t, 2, m.RoundNumber)
	}
}

func TestMexicanoRestedPlayersGoFirst(t *testing.T) {
	players := testPlayers(6)
	p := playerIDs(players)
	history := markPlayed([]padel.Match{
		padel.NewMatch(1, 1, [2]uuid.UUID{p[0], p[1]}, [2]uuid.UUID{p[2], p[3]}),
	})

	for seed := int64(0); seed < 10; seed++ {
		matches, err := MexicanoScheduler{}.GenerateExtensionMatches(seeded(seed), players, history, 1)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.NotZero(t, matches[0].TeamOf(p[4]), "seed %d", seed)
		assert.NotZero(t, matches[0].TeamOf(p[5]), "seed %d", seed)
	}
}

func TestMexicanoExtensionNumbersAfterExistingRounds(t *testing.T) {
	players := testPlayers(4)
	p := playerIDs(players)
	history := []padel.Match{
		padel.NewMatch(1, 1, [2]uuid.UUID{p[0], p[1]}, [2]uuid.UUID{p[2], p[3]}),
		padel.NewMatch(2, 1, [2]uuid.UUID{p[0], p[2]}, [2]uuid.UUID{p[1], p[3]}),
	}
	history[0].IsPlayed = true

	matches, err := MexicanoScheduler{}.GenerateExtensionMatches(seeded(1), players, history, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].RoundNumber)
}

func TestMexicanoExtensionWithoutHistory(t *testing.T) {
	players := testPlayers(8)

	matches, err := MexicanoScheduler{}.GenerateExtensionMatches(seeded(5), players, nil, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	requireValidSchedule(t, matches, 1)
}

func TestMexicanoRejectsInvalidPlayerCounts(t *testing.T) {
	_, err := MexicanoScheduler{}.GenerateInitialMatches(seeded(1), testPlayers(3), 1)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)

	_, err = MexicanoScheduler{}.GenerateExtensionMatches(seeded(1), testPlayers(40), nil, 1)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)
}

func TestFor(t *testing.T) {
	s, err := For(padel.Americano)
	require.NoError(t, err)
	assert.IsType(t, AmericanoScheduler{}, s)

	s, err = For(padel.Mexicano)
	require.NoError(t, err)
	assert.IsType(t, MexicanoScheduler{}, s)

	_, err = For("KING_OF_THE_COURT")
	assert.ErrorIs(t, err, ErrUnknownTournamentType)
}
