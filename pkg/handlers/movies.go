package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"github.com/leminhohoho/movie-lens/api/pkg/query"
	"github.com/leminhohoho/movie-lens/api/pkg/utils"
)

type MovieStore interface {
	CreateMovie(ctx context.Context, movie *models.Movie) error
	GetMovie(ctx context.Context, id int64) (*models.Movie, error)
	ListMovies(ctx context.Context, q query.MovieQuery) ([]models.Movie, error)
	ReplaceMovie(ctx context.Context, id int64, in models.MovieInput) error
	PatchMovie(ctx context.Context, id int64, patch models.MoviePatch) error
	DeleteMovie(ctx context.Context, id int64) error
}

type MovieHandler struct {
	Store  MovieStore
	Logger *slog.Logger
}

func NewMovieHandler(s MovieStore, l *slog.Logger) *MovieHandler {
	return &MovieHandler{Store: s, Logger: l}
}

func (h *MovieHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route(idPattern, func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Replace)
		r.Patch("/", h.Patch)
		r.Delete("/", h.Delete)
	})
}

// List serves GET /movies/. director_id and genre_id only narrow the result
// when page is also given; see query.Parse.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := query.Parse(r.URL.Query())
	if err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	movies, err := h.Store.ListMovies(r.Context(), q)
	if err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body models.MovieInput
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	movie := body.Movie()
	if err := h.Store.CreateMovie(r.Context(), &movie); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/movies/%d", movie.ID))
	w.WriteHeader(http.StatusCreated)
}

func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	movie, err := h.Store.GetMovie(r.Context(), id)
	if err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, movie)
}

// Replace serves PUT /movies/{id}. Attributes missing from the body are
// cleared.
func (h *MovieHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body models.MovieInput
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	if err := h.Store.ReplaceMovie(r.Context(), id, body); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Patch serves PATCH /movies/{id}. Attributes missing from the body are kept.
func (h *MovieHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body models.MoviePatch
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	if err := h.Store.PatchMovie(r.Context(), id, body); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteMovie(r.Context(), id); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
