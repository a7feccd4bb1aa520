package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/AdamBeresnev/padel-rounds/internal/middleware"
	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/AdamBeresnev/padel-rounds/internal/scheduler"
	"github.com/AdamBeresnev/padel-rounds/internal/store"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")
	database.SetMaxOpenConns(1)

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

type testEnv struct {
	db          *sqlx.DB
	store       *store.TournamentStore
	tournaments *TournamentService
	matches     *MatchService
	ctx         context.Context
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	t.Cleanup(func() { db.Close() })

	tournamentStore := store.NewTournamentStore(db)
	seeded := func() scheduler.Random { return rand.New(rand.NewSource(1)) }

	tournaments := NewTournamentService(db, tournamentStore)
	tournaments.newRandom = seeded
	matches := NewMatchService(db, tournamentStore)
	matches.newRandom = seeded

	return &testEnv{
		db:          db,
		store:       tournamentStore,
		tournaments: tournaments,
		matches:     matches,
		ctx:         middleware.WithOrganizerID(context.Background(), uuid.New()),
	}
}

func playerNames(n int) []string {
	names := []string{"Ana", "Ben", "Cleo", "Dan", "Eva", "Finn", "Gus", "Hana", "Ivo", "Jo", "Kai", "Lea"}
	return names[:n]
}

func (e *testEnv) create(t *testing.T, typ padel.TournamentType, players, courts, points int) uuid.UUID {
	t.Helper()
	id, err := e.tournaments.CreateTournament(e.ctx, CreateTournamentInput{
		Name:           "Club night",
		Type:           typ,
		NumberOfCourts: courts,
		PointsPerMatch: points,
		PlayerNames:    playerNames(players),
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) pending(t *testing.T, id uuid.UUID) []padel.Match {
	t.Helper()
	matches, err := e.store.GetMatches(e.ctx, id)
	require.NoError(t, err)
	var pending []padel.Match
	for _, m := range matches {
		if !m.IsPlayed {
			pending = append(pending, m)
		}
	}
	return pending
}
