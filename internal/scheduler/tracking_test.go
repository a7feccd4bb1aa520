package scheduler

import (
	"testing"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewPairKeyIsUnordered(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, NewPairKey(a, b), NewPairKey(b, a))
	assert.NotEqual(t, NewPairKey(a, b), NewPairKey(a, uuid.New()))
}

func TestAllPairs(t *testing.T) {
	players := testPlayers(8)
	assert.Len(t, allPairs(playerIDs(players)), 28)
}

func TestNewTracking(t *testing.T) {
	players := testPlayers(5)
	p := playerIDs(players)

	played := padel.NewMatch(1, 1, [2]uuid.UUID{p[0], p[1]}, [2]uuid.UUID{p[2], p[3]})
	played.IsPlayed = true
	pending := padel.NewMatch(2, 1, [2]uuid.UUID{p[0], p[2]}, [2]uuid.UUID{p[1], p[4]})
	matches := []padel.Match{played, pending}

	testCases := []struct {
		name       string
		playedOnly bool
		counts     []int
		lastRound  []int
		opponents  int
	}{
		{
			name:       "only played matches",
			playedOnly: true,
			counts:     []int{1, 1, 1, 1, 0},
			lastRound:  []int{1, 1, 1, 1, 0},
			opponents:  0,
		},
		{
			name:       "all matches",
			playedOnly: false,
			counts:     []int{2, 2, 2, 1, 1},
			lastRound:  []int{2, 2, 2, 1, 2},
			opponents:  1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTracking(players, matches, tc.playedOnly)
			for i, id := range p {
				assert.Equal(t, tc.counts[i], tr.matchCount[id], "match count of player %d", i)
				assert.Equal(t, tc.lastRound[i], tr.lastPlayedRound[id], "last round of player %d", i)
			}
			assert.True(t, tr.partnered(p[1], p[0]))
			assert.Equal(t, 1, tr.opponentCount[NewPairKey(p[0], p[3])])
			assert.Equal(t, tc.opponents, tr.opponentCount[NewPairKey(p[0], p[1])])
		})
	}
}

func TestTrackingCloneIsIndependent(t *testing.T) {
	players := testPlayers(4)
	p := playerIDs(players)
	tr := newTracking(players, nil, false)

	c := tr.clone()
	c.record(padel.NewMatch(1, 1, [2]uuid.UUID{p[0], p[1]}, [2]uuid.UUID{p[2], p[3]}))

	assert.Equal(t, 0, tr.matchCount[p[0]])
	assert.False(t, tr.partnered(p[0], p[1]))
	assert.Equal(t, 1, c.matchCount[p[0]])
}

func TestBestSplit(t *testing.T) {
	players := testPlayers(4)
	p := playerIDs(players)
	group := [4]uuid.UUID{p[0], p[1], p[2], p[3]}

	t.Run("fresh group keeps enumeration order", func(t *testing.T) {
		tr := newTracking(players, nil, false)
		s := bestSplit(group, tr, coverageWeights)
		assert.Equal(t, [2]uuid.UUID{p[0], p[1]}, s.team1)
		assert.Equal(t, [2]uuid.UUID{p[2], p[3]}, s.team2)
		assert.Zero(t, s.penalty)
	})

	t.Run("avoids repeated partners and opponents", func(t *testing.T) {
		first := padel.NewMatch(1, 1, [2]uuid.UUID{p[0], p[1]}, [2]uuid.UUID{p[2], p[3]})
		first.IsPlayed = true
		tr := newTracking(players, []padel.Match{first}, true)

		s := bestSplit(group, tr, coverageWeights)
		// Both fresh splits repeat two opponent pairs, so the earlier one wins.
		assert.Equal(t, [2]uuid.UUID{p[0], p[2]}, s.team1)
		assert.Equal(t, [2]uuid.UUID{p[1], p[3]}, s.team2)
		assert.Equal(t, 2*100+4, s.penalty)

		balanced := bestSplit(group, tr, balancingWeights)
		assert.Equal(t, 2*10+4, balanced.penalty)
	})
}

func TestBuildRound(t *testing.T) {
	players := testPlayers(10)
	p := playerIDs(players)
	tr := newTracking(players, nil, false)

	matches := buildRound(p, 2, 3, tr, coverageWeights)

	assert.Len(t, matches, 2)
	assert.Equal(t, [4]uuid.UUID{p[0], p[1], p[2], p[3]}, matches[0].Players())
	assert.Equal(t, [4]uuid.UUID{p[4], p[5], p[6], p[7]}, matches[1].Players())
	for i, m := range matches {
		assert.Equal(t, 3, m.RoundNumber)
		assert.Equal(t, i+1, m.CourtNumber)
	}

	t.Run("stops when fewer than four players remain", func(t *testing.T) {
		matches := buildRound(p[:6], 4, 1, tr, coverageWeights)
		assert.Len(t, matches, 1)
	})
}

func TestRankedConfigurationsHeadIsGreedyPick(t *testing.T) {
	players := testPlayers(8)
	p := playerIDs(players)
	history := markPlayed([]padel.Match{
		padel.NewMatch(1, 1, [2]uuid.UUID{p[0], p[1]}, [2]uuid.UUID{p[2], p[3]}),
		padel.NewMatch(1, 2, [2]uuid.UUID{p[4], p[5]}, [2]uuid.UUID{p[6], p[7]}),
	})
	tr := newTracking(players, history, true)

	best, ok := bestConfiguration(p, tr, coverageWeights)
	assert.True(t, ok)
	ranked := rankedConfigurations(p, tr, coverageWeights)
	assert.Len(t, ranked, 70*3)
	assert.Equal(t, best, ranked[0])
	assert.False(t, ranked[0].repeatsPartner(tr))
}

func TestEffectiveCourts(t *testing.T) {
	testCases := []struct {
		players, courts, want int
	}{
		{4, 1, 1},
		{4, 3, 1},
		{8, 2, 2},
		{9, 8, 2},
		{12, 0, 1},
		{32, 8, 8},
		{32, 10, 8},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, EffectiveCourts(tc.players, tc.courts), "%d players on %d courts", tc.players, tc.courts)
	}
	assert.Equal(t, 8, ClampCourts(12))
	assert.Equal(t, 1, ClampCourts(-2))
}

func TestValidatePlayers(t *testing.T) {
	assert.ErrorIs(t, ValidatePlayerCount(3), ErrInvalidPlayerCount)
	assert.ErrorIs(t, ValidatePlayerCount(33), ErrInvalidPlayerCount)
	assert.NoError(t, ValidatePlayerCount(4))
	assert.NoError(t, ValidatePlayerCount(32))

	players := testPlayers(4)
	players[3].ID = players[0].ID
	assert.ErrorIs(t, validatePlayers(players), ErrDuplicatePlayer)
}
