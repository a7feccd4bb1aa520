package views

import (
	"cmp"
	"slices"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/elliotchance/pie/v2"
	"github.com/google/uuid"
)

type RoundData struct {
	Rounds    map[int][]padel.Match
	RoundNums []int
	// Resting lists, per round, the players who sit that round out.
	Resting   map[int][]padel.Player
	PlayerMap map[uuid.UUID]padel.Player
}

func PrepareRoundData(players []padel.Player, matches []padel.Match) RoundData {
	playerMap := make(map[uuid.UUID]padel.Player, len(players))
	for _, p := range players {
		playerMap[p.ID] = p
	}

	rounds := make(map[int][]padel.Match)
	for _, m := range matches {
		rounds[m.RoundNumber] = append(rounds[m.RoundNumber], m)
	}
	roundNums := pie.Sort(pie.Keys(rounds))

	resting := make(map[int][]padel.Player)
	for _, r := range roundNums {
		slices.SortFunc(rounds[r], func(a, b padel.Match) int {
			return cmp.Compare(a.CourtNumber, b.CourtNumber)
		})
		resting[r] = pie.Filter(players, func(p padel.Player) bool {
			return !slices.ContainsFunc(rounds[r], func(m padel.Match) bool {
				return m.TeamOf(p.ID) != 0
			})
		})
	}

	return RoundData{
		Rounds:    rounds,
		RoundNums: roundNums,
		Resting:   resting,
		PlayerMap: playerMap,
	}
}

// TeamName joins the two player names of a team, e.g. "Ana & Ben".
func (d RoundData) TeamName(team [2]uuid.UUID) string {
	return d.playerName(team[0]) + " & " + d.playerName(team[1])
}

func (d RoundData) playerName(id uuid.UUID) string {
	if p, ok := d.PlayerMap[id]; ok {
		return p.Name
	}
	return "?"
}
