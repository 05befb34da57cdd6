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

type DirectorStore interface {
	CreateDirector(ctx context.Context, d *models.Director) error
	GetDirector(ctx context.Context, id int64) (*models.Director, error)
	ListDirectors(ctx context.Context) ([]models.Director, error)
	ReplaceDirector(ctx context.Context, id int64, in models.NameInput) error
	DeleteDirector(ctx context.Context, id int64) error
}

type DirectorHandler struct {
	Store  DirectorStore
	Logger *slog.Logger
}

func NewDirectorHandler(s DirectorStore, l *slog.Logger) *DirectorHandler {
	return &DirectorHandler{Store: s, Logger: l}
}

func (h *DirectorHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route(idPattern, func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Replace)
		r.Delete("/", h.Delete)
	})
}

func (h *DirectorHandler) List(w http.ResponseWriter, r *http.Request) {
	directors, err := h.Store.ListDirectors(r.Context())
	if err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, directors)
}

func (h *DirectorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body models.NameInput
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	director := models.Director{Name: body.Name}
	if err := h.Store.CreateDirector(r.Context(), &director); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/directors/%d", director.ID))
	w.WriteHeader(http.StatusCreated)
}

func (h *DirectorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	director, err := h.Store.GetDirector(r.Context(), id)
	if err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, director)
}

func (h *DirectorHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body models.NameInput
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	if err := h.Store.ReplaceDirector(r.Context(), id, body); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DirectorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteDirector(r.Context(), id); err != nil {
		handleError(w, r, h.Logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
