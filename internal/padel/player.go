package padel

import "github.com/google/uuid"

type Player struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TournamentID uuid.UUID `db:"tournament_id" json:"tournamentId"`
	Name         string    `db:"name" json:"name"`
	Seed         int       `db:"seed" json:"seed"`

	TotalPoints int `db:"total_points" json:"totalPoints"`
	GamesPlayed int `db:"games_played" json:"gamesPlayed"`
	Wins        int `db:"wins" json:"wins"`
	Losses      int `db:"losses" json:"losses"`
	Draws       int `db:"draws" json:"draws"`
}

// ApplyResult books one finished match from the player's side.
func (p *Player) ApplyResult(own, other int) {
	p.TotalPoints += own
	p.GamesPlayed++
	switch {
	case own > other:
		p.Wins++
	case own < other:
		p.Losses++
	default:
		p.Draws++
	}
}
