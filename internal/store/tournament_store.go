package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("not found")

type TournamentStore struct {
	db *sqlx.DB
}

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

func (s *TournamentStore) CreateTournament(ctx context.Context, tx *sqlx.Tx, tournament *padel.Tournament) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO tournaments (id, owner_id, name, tournament_type, number_of_courts, points_per_match, is_completed, extra_rounds_required)
		VALUES (:id, :owner_id, :name, :tournament_type, :number_of_courts, :points_per_match, :is_completed, :extra_rounds_required)`, tournament)
	return err
}

func (s *TournamentStore) CreatePlayers(ctx context.Context, tx *sqlx.Tx, players []padel.Player) error {
	if len(players) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, `INSERT INTO players (id, tournament_id, name, seed, total_points, games_played, wins, losses, draws)
		VALUES (:id, :tournament_id, :name, :seed, :total_points, :games_played, :wins, :losses, :draws)`, players)
	return err
}

func (s *TournamentStore) CreateMatches(ctx context.Context, tx *sqlx.Tx, matches []padel.Match) error {
	if len(matches) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, `INSERT INTO matches (id, tournament_id, round_number, court_number, team1_player1_id, team1_player2_id, team2_player1_id, team2_player2_id, score_team1, score_team2, is_played)
		VALUES (:id, :tournament_id, :round_number, :court_number, :team1_player1_id, :team1_player2_id, :team2_player1_id, :team2_player2_id, :score_team1, :score_team2, :is_played)`, matches)
	return err
}

func (s *TournamentStore) GetTournament(ctx context.Context, id uuid.UUID) (*padel.Tournament, error) {
	return getTournament(ctx, s.db, id)
}

func (s *TournamentStore) GetTournamentTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*padel.Tournament, error) {
	return getTournament(ctx, tx, id)
}

func getTournament(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (*padel.Tournament, error) {
	var tournament padel.Tournament
	if err := sqlx.GetContext(ctx, q, &tournament, "SELECT * FROM tournaments WHERE id = ?", id); err != nil {
		return nil, notFound(err, "tournament", id)
	}
	return &tournament, nil
}

func (s *TournamentStore) GetTournamentsByOwner(ctx context.Context, ownerID uuid.UUID) ([]padel.Tournament, error) {
	var tournaments []padel.Tournament
	err := s.db.SelectContext(ctx, &tournaments, "SELECT * FROM tournaments WHERE owner_id = ? ORDER BY created_at DESC, name ASC", ownerID)
	return tournaments, err
}

func (s *TournamentStore) GetPlayers(ctx context.Context, tournamentID uuid.UUID) ([]padel.Player, error) {
	return getPlayers(ctx, s.db, tournamentID)
}

func (s *TournamentStore) GetPlayersTx(ctx context.Context, tx *sqlx.Tx, tournamentID uuid.UUID) ([]padel.Player, error) {
	return getPlayers(ctx, tx, tournamentID)
}

// Players come back in seed order, which is the order they were entered in.
func getPlayers(ctx context.Context, q sqlx.QueryerContext, tournamentID uuid.UUID) ([]padel.Player, error) {
	var players []padel.Player
	err := sqlx.SelectContext(ctx, q, &players, "SELECT * FROM players WHERE tournament_id = ? ORDER BY seed ASC", tournamentID)
	return players, err
}

func (s *TournamentStore) GetMatches(ctx context.Context, tournamentID uuid.UUID) ([]padel.Match, error) {
	return getMatches(ctx, s.db, tournamentID)
}

func (s *TournamentStore) GetMatchesTx(ctx context.Context, tx *sqlx.Tx, tournamentID uuid.UUID) ([]padel.Match, error) {
	return getMatches(ctx, tx, tournamentID)
}

func getMatches(ctx context.Context, q sqlx.QueryerContext, tournamentID uuid.UUID) ([]padel.Match, error) {
	var matches []padel.Match
	err := sqlx.SelectContext(ctx, q, &matches, "SELECT * FROM matches WHERE tournament_id = ? ORDER BY round_number ASC, court_number ASC", tournamentID)
	return matches, err
}

func (s *TournamentStore) GetMatch(ctx context.Context, id uuid.UUID) (*padel.Match, error) {
	return getMatch(ctx, s.db, id)
}

func (s *TournamentStore) GetMatchTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*padel.Match, error) {
	return getMatch(ctx, tx, id)
}

func getMatch(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (*padel.Match, error) {
	var match padel.Match
	if err := sqlx.GetContext(ctx, q, &match, "SELECT * FROM matches WHERE id = ?", id); err != nil {
		return nil, notFound(err, "match", id)
	}
	return &match, nil
}

func (s *TournamentStore) UpdateMatch(ctx context.Context, tx *sqlx.Tx, match *padel.Match) error {
	_, err := tx.NamedExecContext(ctx, `UPDATE matches SET score_team1 = :score_team1, score_team2 = :score_team2, is_played = :is_played
		WHERE id = :id`, match)
	return err
}

func (s *TournamentStore) UpdatePlayer(ctx context.Context, tx *sqlx.Tx, player *padel.Player) error {
	_, err := tx.NamedExecContext(ctx, `UPDATE players SET total_points = :total_points, games_played = :games_played, wins = :wins, losses = :losses, draws = :draws
		WHERE id = :id`, player)
	return err
}

func (s *TournamentStore) UpdateTournament(ctx context.Context, tx *sqlx.Tx, tournament *padel.Tournament) error {
	_, err := tx.NamedExecContext(ctx, `UPDATE tournaments SET is_completed = :is_completed, extra_rounds_required = :extra_rounds_required
		WHERE id = :id`, tournament)
	return err
}

func notFound(err error, what string, id uuid.UUID) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return err
}
