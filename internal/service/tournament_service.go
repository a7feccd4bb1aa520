package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AdamBeresnev/padel-rounds/internal/middleware"
	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/AdamBeresnev/padel-rounds/internal/scheduler"
	"github.com/AdamBeresnev/padel-rounds/internal/store"
	"github.com/elliotchance/pie/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const maxNameLength = 50

type TournamentService struct {
	db        *sqlx.DB
	store     *store.TournamentStore
	newRandom func() scheduler.Random
}

func NewTournamentService(db *sqlx.DB, store *store.TournamentStore) *TournamentService {
	return &TournamentService{db: db, store: store, newRandom: scheduler.NewRandom}
}

type CreateTournamentInput struct {
	Name           string
	Type           padel.TournamentType
	NumberOfCourts int
	PointsPerMatch int
	PlayerNames    []string
}

type TournamentData struct {
	Tournament *padel.Tournament
	Players    []padel.Player
	Standings  []padel.Player
	Matches    []padel.Match
	State      scheduler.State
}

func (s *TournamentService) GetTournamentData(ctx context.Context, id uuid.UUID) (*TournamentData, error) {
	tournament, err := s.store.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	players, err := s.store.GetPlayers(ctx, id)
	if err != nil {
		return nil, err
	}

	matches, err := s.store.GetMatches(ctx, id)
	if err != nil {
		return nil, err
	}

	return &TournamentData{
		Tournament: tournament,
		Players:    players,
		Standings:  Standings(players),
		Matches:    matches,
		State:      scheduler.CurrentState(*tournament, matches),
	}, nil
}

func (s *TournamentService) GetTournamentsForOrganizer(ctx context.Context) ([]padel.Tournament, error) {
	organizerID, ok := middleware.GetOrganizerID(ctx)
	if !ok {
		return nil, ErrNoOrganizer
	}
	return s.store.GetTournamentsByOwner(ctx, organizerID)
}

func (s *TournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (uuid.UUID, error) {
	organizerID, ok := middleware.GetOrganizerID(ctx)
	if !ok {
		return uuid.Nil, ErrNoOrganizer
	}

	names, err := validateInput(input)
	if err != nil {
		return uuid.Nil, err
	}

	tournament := &padel.Tournament{
		ID:             uuid.New(),
		OwnerID:        organizerID,
		Name:           strings.TrimSpace(input.Name),
		Type:           input.Type,
		NumberOfCourts: scheduler.ClampCourts(input.NumberOfCourts),
		PointsPerMatch: input.PointsPerMatch,
	}

	players := make([]padel.Player, len(names))
	for i, name := range names {
		players[i] = padel.Player{
			ID:           uuid.New(),
			TournamentID: tournament.ID,
			Name:         name,
			Seed:         i + 1,
		}
	}

	sched, err := scheduler.For(tournament.Type)
	if err != nil {
		return uuid.Nil, err
	}
	matches, err := sched.GenerateInitialMatches(s.newRandom(), players, tournament.NumberOfCourts)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate matches: %w", err)
	}
	for i := range matches {
		matches[i].TournamentID = tournament.ID
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	if err := s.store.CreateTournament(ctx, tx, tournament); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	if err := s.store.CreatePlayers(ctx, tx, players); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create players: %w", err)
	}
	if err := s.store.CreateMatches(ctx, tx, matches); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create matches: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	logrus.WithFields(logrus.Fields{
		"tournament": tournament.ID,
		"type":       tournament.Type,
		"players":    len(players),
		"courts":     tournament.NumberOfCourts,
		"matches":    len(matches),
	}).Info("tournament created")
	return tournament.ID, nil
}

// ContinueTournament adds rounds to a completed tournament.
func (s *TournamentService) ContinueTournament(ctx context.Context, id uuid.UUID) (scheduler.Outcome, error) {
	unlock := tournamentLocks.Lock(id)
	defer unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return scheduler.Outcome{}, err
	}
	defer tx.Rollback()

	tournament, err := s.store.GetTournamentTx(ctx, tx, id)
	if err != nil {
		return scheduler.Outcome{}, err
	}
	if err := requireOwner(ctx, tournament); err != nil {
		return scheduler.Outcome{}, err
	}
	players, err := s.store.GetPlayersTx(ctx, tx, id)
	if err != nil {
		return scheduler.Outcome{}, err
	}
	matches, err := s.store.GetMatchesTx(ctx, tx, id)
	if err != nil {
		return scheduler.Outcome{}, err
	}

	outcome, err := scheduler.Continue(s.newRandom(), *tournament, players, matches)
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
		"tournament": id,
		"newMatches": len(outcome.NewMatches),
	}).Info("tournament continued")
	return outcome, nil
}

// Standings orders players by points, then wins, then name.
func Standings(players []padel.Player) []padel.Player {
	return pie.SortUsing(players, func(a, b padel.Player) bool {
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Seed < b.Seed
	})
}

func validateInput(input CreateTournamentInput) ([]string, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name must be between 1 and %d characters", ErrInvalidTournament, maxNameLength)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", scheduler.ErrUnknownTournamentType, input.Type)
	}
	if input.PointsPerMatch < 0 {
		return nil, fmt.Errorf("%w: points per match cannot be negative", ErrInvalidTournament)
	}

	names := pie.Map(input.PlayerNames, strings.TrimSpace)
	if err := scheduler.ValidatePlayerCount(len(names)); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" || len(n) > maxNameLength {
			return nil, fmt.Errorf("%w: player names must be between 1 and %d characters", ErrInvalidTournament, maxNameLength)
		}
		key := strings.ToLower(n)
		if seen[key] {
			return nil, fmt.Errorf("%w: player %q entered twice", ErrInvalidTournament, n)
		}
		seen[key] = true
	}
	return names, nil
}

func requireOwner(ctx context.Context, tournament *padel.Tournament) error {
	organizerID, ok := middleware.GetOrganizerID(ctx)
	if !ok {
		return ErrNoOrganizer
	}
	if organizerID != tournament.OwnerID {
		return ErrForbidden
	}
	return nil
}

func saveOutcome(ctx context.Context, tx *sqlx.Tx, st *store.TournamentStore, outcome scheduler.Outcome) error {
	for i := range outcome.NewMatches {
		outcome.NewMatches[i].TournamentID = outcome.Tournament.ID
	}
	if err := st.CreateMatches(ctx, tx, outcome.NewMatches); err != nil {
		return fmt.Errorf("failed to create matches: %w", err)
	}
	if err := st.UpdateTournament(ctx, tx, &outcome.Tournament); err != nil {
		return fmt.Errorf("failed to update tournament: %w", err)
	}
	return nil
}
