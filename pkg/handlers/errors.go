package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/leminhohoho/movie-lens/api/pkg/query"
	"github.com/leminhohoho/movie-lens/api/pkg/store"
	"github.com/leminhohoho/movie-lens/api/pkg/utils"
)

// statusOf maps an error from the store or request parsing to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, utils.ErrBadRequest), errors.Is(err, query.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the response for err. Client errors echo their message;
// anything else is logged and hidden behind a generic message.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := statusOf(err)

	if status == http.StatusInternalServerError {
		logger.Error(
			"request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
		utils.WriteError(w, status, "internal server error")
		return
	}

	logger.Debug("client error", "path", r.URL.Path, "status", status, "err", err)

	if status == http.StatusNotFound {
		utils.WriteError(w, status, "no entity found for that id")
		return
	}

	utils.WriteError(w, status, err.Error())
}
