package service

import (
	"context"
	"fmt"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/AdamBeresnev/padel-rounds/internal/scheduler"
	"github.com/AdamBeresnev/padel-rounds/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type MatchService struct {
	db        *sqlx.DB
	store     *store.TournamentStore
	newRandom func() scheduler.Random
}

func NewMatchService(db *sqlx.DB, store *store.TournamentStore) *MatchService {
	return &MatchService{db: db, store: store, newRandom: scheduler.NewRandom}
}

// RecordResult books the score of a match, updates the four players and lets
// the tournament decide whether it is finished or needs another round. It all
// happens in one transaction.
func (s *MatchService) RecordResult(ctx context.Context, matchID uuid.UUID, scoreTeam1, scoreTeam2 int) (scheduler.Outcome, error) {
	match, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return scheduler.Outcome{}, err
	}

	unlock := tournamentLocks.Lock(match.TournamentID)
	defer unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return scheduler.Outcome{}, err
	}
	defer tx.Rollback()

	tournament, err := s.store.GetTournamentTx(ctx, tx, match.TournamentID)
	if err != nil {
		return scheduler.Outcome{}, err
	}
	if err := requireOwner(ctx, tournament); err != nil {
		return scheduler.Outcome{}, err
	}
	if err := validateScore(tournament, scoreTeam1, scoreTeam2); err != nil {
		return scheduler.Outcome{}, err
	}

	players, err := s.store.GetPlayersTx(ctx, tx, tournament.ID)
	if err != nil {
		return scheduler.Outcome{}, err
	}
	matches, err := s.store.GetMatchesTx(ctx, tx, tournament.ID)
	if err != nil {
		return scheduler.Outcome{}, err
	}

	// Re-read under the lock; another request may have scored it meanwhile.
	i := indexOfMatch(matches, matchID)
	if i < 0 {
		return scheduler.Outcome{}, fmt.Errorf("match %s: %w", matchID, store.ErrNotFound)
	}
	if matches[i].IsPlayed {
		return scheduler.Outcome{}, ErrMatchAlreadyPlayed
	}
	matches[i].ScoreTeam1 = scoreTeam1
	matches[i].ScoreTeam2 = scoreTeam2
	matches[i].IsPlayed = true
	if err := s.store.UpdateMatch(ctx, tx, &matches[i]); err != nil {
		return scheduler.Outcome{}, fmt.Errorf("failed to update match: %w", err)
	}

	for j := range players {
		switch matches[i].TeamOf(players[j].ID) {
		case 1:
			players[j].ApplyResult(scoreTeam1, scoreTeam2)
		case 2:
			players[j].ApplyResult(scoreTeam2, scoreTeam1)
		default:
			continue
		}
		if err := s.store.UpdatePlayer(ctx, tx, &players[j]); err != nil {
			return scheduler.Outcome{}, fmt.Errorf("failed to update player: %w", err)
		}
	}

	outcome, err := scheduler.OnResultRecorded(s.newRandom(), *tournament, players, matches)
	if err != nil {
		return scheduler.Outcome{}, err
	}
	if err := saveOutcome(ctx, tx, s.store, outcome); err != nil {
		return scheduler.Outcome{}, err
	}
	if err := tx.Commit(); err != nil {
		return scheduler.Outcome{}, err
	}

	logrus.WithFields(logrus.Fields{
		"tournament": tournament.ID,
		"match":      matchID,
		"score":      fmt.Sprintf("%d-%d", scoreTeam1, scoreTeam2),
		"state":      outcome.State,
	}).Info("result recorded")
	return outcome, nil
}

func validateScore(tournament *padel.Tournament, scoreTeam1, scoreTeam2 int) error {
	if scoreTeam1 < 0 || scoreTeam2 < 0 {
		return fmt.Errorf("%w: scores cannot be negative", ErrInvalidScore)
	}
	if tournament.PointsPerMatch > 0 && scoreTeam1+scoreTeam2 != tournament.PointsPerMatch {
		return fmt.Errorf("%w: scores must add up to %d", ErrInvalidScore, tournament.PointsPerMatch)
	}
	return nil
}

func indexOfMatch(matches []padel.Match, id uuid.UUID) int {
	for i := range matches {
		if matches[i].ID == id {
			return i
		}
	}
	return -1
}
