package scheduler

import (
	"errors"
	"fmt"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/google/uuid"
)

var (
	ErrInvalidPlayerCount = errors.New("invalid player count")
	ErrDuplicatePlayer    = errors.New("duplicate player")
)

func ValidatePlayerCount(n int) error {
	if n < padel.MinPlayers || n > padel.MaxPlayers {
		return fmt.Errorf("%w: %d players, need between %d and %d", ErrInvalidPlayerCount, n, padel.MinPlayers, padel.MaxPlayers)
	}
	return nil
}

func validatePlayers(players []padel.Player) error {
	if err := ValidatePlayerCount(len(players)); err != nil {
		return err
	}
	seen := make(map[uuid.UUID]struct{}, len(players))
	for _, p := range players {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// EffectiveCourts is the number of matches a round can hold: the requested
// courts, but never more than the players can fill and never less than one.
func EffectiveCourts(playerCount, numberOfCourts int) int {
	return max(1, min(numberOfCourts, max(1, playerCount/4)))
}

// ClampCourts keeps a configured court count inside the supported range.
func ClampCourts(numberOfCourts int) int {
	return max(padel.MinCourts, min(numberOfCourts, padel.MaxCourts))
}
