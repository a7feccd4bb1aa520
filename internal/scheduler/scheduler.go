package scheduler

import (
	"errors"
	"fmt"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
)

var ErrUnknownTournamentType = errors.New("unknown tournament type")

// Scheduler generates matches for one tournament format. Implementations keep
// no state between calls.
type Scheduler interface {
	GenerateInitialMatches(rng Random, players []padel.Player, numberOfCourts int) ([]padel.Match, error)
	GenerateExtensionMatches(rng Random, players []padel.Player, existing []padel.Match, numberOfCourts int) ([]padel.Match, error)
}

func For(t padel.TournamentType) (Scheduler, error) {
	switch t {
	case padel.Americano:
		return AmericanoScheduler{}, nil
	case padel.Mexicano:
		return MexicanoScheduler{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTournamentType, t)
	}
}
