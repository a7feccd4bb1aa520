package scheduler

import (
	"errors"
	"fmt"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/sirupsen/logrus"
)

type State string

const (
	StateInProgress             State = "in_progress"
	StateRoundPendingCompletion State = "round_pending_completion"
	StateCompleted              State = "completed"
)

const (
	// MexicanoMinMatches is how many matches everyone needs before a
	// Mexicano tournament may end.
	MexicanoMinMatches = 3

	// ContinuationRounds is how many rounds a continued Mexicano tournament
	// plays before it may complete on its own again.
	ContinuationRounds = 2
)

var ErrTournamentNotCompleted = errors.New("tournament is not completed")

// Outcome is what the policy decided. Tournament carries the updated
// completion flag and hysteresis counter; NewMatches still have to be stored.
type Outcome struct {
	State      State
	Tournament padel.Tournament
	NewMatches []padel.Match
}

// CurrentState reports where a tournament stands without changing anything.
func CurrentState(t padel.Tournament, matches []padel.Match) State {
	if t.IsCompleted {
		return StateCompleted
	}
	for _, m := range matches {
		if !m.IsPlayed {
			return StateInProgress
		}
	}
	return StateRoundPendingCompletion
}

// OnResultRecorded decides whether a tournament whose results just changed is
// finished or needs another round. Callers must run it and store its outcome
// as one step per tournament, or two finishing results could both add a round.
func OnResultRecorded(rng Random, t padel.Tournament, players []padel.Player, matches []padel.Match) (Outcome, error) {
	out := Outcome{State: CurrentState(t, matches), Tournament: t}
	if out.State != StateRoundPendingCompletion {
		return out, nil
	}

	switch t.Type {
	case padel.Americano:
		out.Tournament.IsCompleted = true
		out.State = StateCompleted
	case padel.Mexicano:
		if out.Tournament.ExtraRoundsRequired > 0 {
			out.Tournament.ExtraRoundsRequired--
		}
		lo, hi := newTracking(players, matches, true).countRange(playerIDs(players))
		if lo >= MexicanoMinMatches && lo == hi && out.Tournament.ExtraRoundsRequired == 0 {
			out.Tournament.IsCompleted = true
			out.State = StateCompleted
			break
		}
		next, err := MexicanoScheduler{}.GenerateExtensionMatches(rng, players, matches, t.NumberOfCourts)
		if err != nil {
			return Outcome{}, fmt.Errorf("failed to generate next round: %w", err)
		}
		out.NewMatches = next
		out.State = StateInProgress
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownTournamentType, t.Type)
	}

	logrus.WithFields(logrus.Fields{
		"tournament": t.ID,
		"state":      out.State,
		"newMatches": len(out.NewMatches),
	}).Info("round finished")
	return out, nil
}

// Continue reopens a completed tournament with more rounds.
func Continue(rng Random, t padel.Tournament, players []padel.Player, matches []padel.Match) (Outcome, error) {
	if !t.IsCompleted {
		return Outcome{}, ErrTournamentNotCompleted
	}
	sched, err := For(t.Type)
	if err != nil {
		return Outcome{}, err
	}
	next, err := sched.GenerateExtensionMatches(rng, players, matches, t.NumberOfCourts)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to generate extension: %w", err)
	}

	out := Outcome{State: StateInProgress, Tournament: t, NewMatches: next}
	out.Tournament.IsCompleted = false
	if t.Type == padel.Mexicano {
		out.Tournament.ExtraRoundsRequired = ContinuationRounds
	}
	return out, nil
}
