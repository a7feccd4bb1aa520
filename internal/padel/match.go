package padel

import (
	"time"

	"github.com/google/uuid"
)

type Match struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TournamentID uuid.UUID `db:"tournament_id" json:"tournamentId"`

	RoundNumber int `db:"round_number" json:"roundNumber"`
	CourtNumber int `db:"court_number" json:"courtNumber"`

	Team1Player1ID uuid.UUID `db:"team1_player1_id" json:"team1Player1Id"`
	Team1Player2ID uuid.UUID `db:"team1_player2_id" json:"team1Player2Id"`
	Team2Player1ID uuid.UUID `db:"team2_player1_id" json:"team2Player1Id"`
	Team2Player2ID uuid.UUID `db:"team2_player2_id" json:"team2Player2Id"`

	ScoreTeam1 int  `db:"score_team1" json:"scoreTeam1"`
	ScoreTeam2 int  `db:"score_team2" json:"scoreTeam2"`
	IsPlayed   bool `db:"is_played" json:"isPlayed"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func NewMatch(round, court int, team1, team2 [2]uuid.UUID) Match {
	return Match{
		ID:             uuid.New(),
		RoundNumber:    round,
		CourtNumber:    court,
		Team1Player1ID: team1[0],
		Team1Player2ID: team1[1],
		Team2Player1ID: team2[0],
		Team2Player2ID: team2[1],
	}
}

func (m *Match) Team1() [2]uuid.UUID {
	return [2]uuid.UUID{m.Team1Player1ID, m.Team1Player2ID}
}

func (m *Match) Team2() [2]uuid.UUID {
	return [2]uuid.UUID{m.Team2Player1ID, m.Team2Player2ID}
}

// Players returns team 1 followed by team 2.
func (m *Match) Players() [4]uuid.UUID {
	return [4]uuid.UUID{m.Team1Player1ID, m.Team1Player2ID, m.Team2Player1ID, m.Team2Player2ID}
}

// TeamOf reports 1 or 2 for a player of this match and 0 otherwise.
func (m *Match) TeamOf(playerID uuid.UUID) int {
	switch playerID {
	case m.Team1Player1ID, m.Team1Player2ID:
		return 1
	case m.Team2Player1ID, m.Team2Player2ID:
		return 2
	}
	return 0
}
