package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"github.com/leminhohoho/movie-lens/api/pkg/utils"
)

type GenreStore interface {
	CreateGenre(ctx context.Context, g *models.Genre) error
	GetGenre(ctx context.Context, id int64) (*models.Genre, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)
	ReplaceGenre(ctx context.Context, id int64, in models.NameInput) error
	DeleteGenre(ctx context.Context, id int64) error
}

type GenreHandler struct {
	Store  GenreStore
	Logger *slog.Logger
}

func NewGenreHandler(s GenreStore, l *slog.Logger) *GenreHandler {
	return &GenreHandler{Store: s, Logger: l}
}

func (h *GenreHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route(idPattern, func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Replace)
		r.Delete("/", h.Delete)
	})
}

func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.Store.ListGenres(r.Context())
	if err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, genres)
}

func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body models.NameInput
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	genre := models.Genre{Name: body.Name}
	if err := h.Store.CreateGenre(r.Context(), &genre); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/genres/%d", genre.ID))
	w.WriteHeader(http.StatusCreated)
}

func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	genre, err := h.Store.GetGenre(r.Context(), id)
	if err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, genre)
}

func (h *GenreHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body models.NameInput
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	if err := h.Store.ReplaceGenre(r.Context(), id, body); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteGenre(r.Context(), id); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
