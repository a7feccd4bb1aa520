package padel

import (
	"time"

	"github.com/google/uuid"
)

type TournamentType string

const (
	Americano TournamentType = "AMERICANO"
	Mexicano  TournamentType = "MEXICANO"
)

func (t TournamentType) Valid() bool {
	return t == Americano || t == Mexicano
}

const (
	MinPlayers = 4
	MaxPlayers = 32
	MinCourts  = 1
	MaxCourts  = 8
)

type Tournament struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	OwnerID        uuid.UUID      `db:"owner_id" json:"ownerId"`
	Name           string         `db:"name" json:"name"`
	Type           TournamentType `db:"tournament_type" json:"type"`
	NumberOfCourts int            `db:"number_of_courts" json:"numberOfCourts"`
	PointsPerMatch int            `db:"points_per_match" json:"pointsPerMatch"`
	IsCompleted    bool           `db:"is_completed" json:"isCompleted"`

	// Rounds that still have to be played before a continued Mexicano
	// tournament may complete on its own again.
	ExtraRoundsRequired int `db:"extra_rounds_required" json:"extraRoundsRequired"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
