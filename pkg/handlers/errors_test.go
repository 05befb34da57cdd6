package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/leminhohoho/movie-lens/api/pkg/query"
	"github.com/leminhohoho/movie-lens/api/pkg/store"
	"github.com/leminhohoho/movie-lens/api/pkg/utils"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{store.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("select movies 3: %w", store.ErrNotFound), http.StatusNotFound},
		{query.ErrBadRequest, http.StatusBadRequest},
		{utils.ErrBadRequest, http.StatusBadRequest},
		{errors.New("disk I/O error"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := statusOf(c.err); got != c.want {
			t.Errorf("%v: status %d, want %d", c.err, got, c.want)
		}
	}
}
