package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/leminhohoho/movie-lens/api/pkg/utils"
)

const idPattern = "/{id:[0-9]+}"

// pathID reads the {id} route parameter. Ids that overflow int64 cannot
// exist, so they are answered with 404.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "no entity found for that id")
		return 0, false
	}
	return id, true
}
