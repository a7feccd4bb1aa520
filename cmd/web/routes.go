package main

import (
	"errors"
	"net/http"

	"github.com/AdamBeresnev/padel-rounds/internal/httputil"
	"github.com/AdamBeresnev/padel-rounds/internal/middleware"
	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/AdamBeresnev/padel-rounds/internal/scheduler"
	"github.com/AdamBeresnev/padel-rounds/internal/service"
	"github.com/AdamBeresnev/padel-rounds/internal/store"
	"github.com/AdamBeresnev/padel-rounds/views"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type createTournamentRequest struct {
	Name           string               `json:"name"`
	Type           padel.TournamentType `json:"type"`
	NumberOfCourts int                  `json:"numberOfCourts"`
	PointsPerMatch int                  `json:"pointsPerMatch"`
	Players        []string             `json:"players"`
}

type recordResultRequest struct {
	ScoreTeam1 int `json:"scoreTeam1"`
	ScoreTeam2 int `json:"scoreTeam2"`
}

type outcomeResponse struct {
	State      scheduler.State  `json:"state"`
	Tournament padel.Tournament `json:"tournament"`
	NewMatches []padel.Match    `json:"newMatches"`
}

type tournamentResponse struct {
	Tournament *padel.Tournament `json:"tournament"`
	State      scheduler.State   `json:"state"`
	Standings  []padel.Player    `json:"standings"`
	Matches    []padel.Match     `json:"matches"`
}

func newRouter(sessionManager *scs.SessionManager, database *sqlx.DB) http.Handler {
	tournamentStore := store.NewTournamentStore(database)
	tournamentService := service.NewTournamentService(database, tournamentStore)
	matchService := service.NewMatchService(database, tournamentStore)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.LoadOrganizer(sessionManager))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := tournamentService.GetTournamentsForOrganizer(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to get tournaments", err)
			return
		}
		if err := views.Render(w, r, views.Index(tournaments)); err != nil {
			httputil.RenderFailed(r, err)
		}
	})

	r.Get("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "Invalid tournament ID")
		if !ok {
			return
		}
		data, err := tournamentService.GetTournamentData(r.Context(), id)
		if err != nil {
			serviceError(w, "Failed to get tournament", err)
			return
		}
		if err := views.Render(w, r, views.TournamentView(data)); err != nil {
			httputil.RenderFailed(r, err)
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/tournaments", func(w http.ResponseWriter, r *http.Request) {
			tournaments, err := tournamentService.GetTournamentsForOrganizer(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to get tournaments", err)
				return
			}
			if tournaments == nil {
				tournaments = []padel.Tournament{}
			}
			httputil.WriteJSON(w, http.StatusOK, tournaments)
		})

		r.Post("/tournaments", func(w http.ResponseWriter, r *http.Request) {
			var req createTournamentRequest
			if err := httputil.DecodeJSON(r, &req); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			id, err := tournamentService.CreateTournament(r.Context(), service.CreateTournamentInput{
				Name:           req.Name,
				Type:           req.Type,
				NumberOfCourts: req.NumberOfCourts,
				PointsPerMatch: req.PointsPerMatch,
				PlayerNames:    req.Players,
			})
			if err != nil {
				serviceError(w, "Failed to create tournament", err)
				return
			}
			w.Header().Set("Location", "/api/tournaments/"+id.String())
			httputil.WriteJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
		})

		r.Get("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := urlID(w, r, "Invalid tournament ID")
			if !ok {
				return
			}
			data, err := tournamentService.GetTournamentData(r.Context(), id)
			if err != nil {
				serviceError(w, "Failed to get tournament", err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, tournamentResponse{
				Tournament: data.Tournament,
				State:      data.State,
				Standings:  data.Standings,
				Matches:    data.Matches,
			})
		})

		r.Post("/tournaments/{id}/continue", func(w http.ResponseWriter, r *http.Request) {
			id, ok := urlID(w, r, "Invalid tournament ID")
			if !ok {
				return
			}
			outcome, err := tournamentService.ContinueTournament(r.Context(), id)
			if err != nil {
				serviceError(w, "Failed to continue tournament", err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, toOutcomeResponse(outcome))
		})

		r.Post("/matches/{id}/result", func(w http.ResponseWriter, r *http.Request) {
			id, ok := urlID(w, r, "Invalid match ID")
			if !ok {
				return
			}
			var req recordResultRequest
			if err := httputil.DecodeJSON(r, &req); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			outcome, err := matchService.RecordResult(r.Context(), id, req.ScoreTeam1, req.ScoreTeam2)
			if err != nil {
				serviceError(w, "Failed to record result", err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, toOutcomeResponse(outcome))
		})
	})

	return r
}

func urlID(w http.ResponseWriter, r *http.Request, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.BadRequest(w, msg, err)
		return uuid.Nil, false
	}
	return id, true
}

func toOutcomeResponse(outcome scheduler.Outcome) outcomeResponse {
	resp := outcomeResponse{State: outcome.State, Tournament: outcome.Tournament, NewMatches: outcome.NewMatches}
	if resp.NewMatches == nil {
		resp.NewMatches = []padel.Match{}
	}
	return resp
}

// serviceError maps the service and scheduler sentinels onto status codes.
func serviceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httputil.NotFound(w, err.Error(), err)
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrNoOrganizer):
		httputil.Forbidden(w, err.Error(), err)
	case errors.Is(err, service.ErrMatchAlreadyPlayed), errors.Is(err, scheduler.ErrTournamentNotCompleted):
		httputil.Conflict(w, err.Error(), err)
	case errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrInvalidTournament),
		errors.Is(err, scheduler.ErrInvalidPlayerCount),
		errors.Is(err, scheduler.ErrUnknownTournamentType):
		httputil.BadRequest(w, err.Error(), err)
	default:
		httputil.InternalServerError(w, msg, err)
	}
}
