package query

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PageSize is the number of movies in one page.
const PageSize = 10

// MaxPage is the largest page whose offset still fits in an int.
const MaxPage = math.MaxInt / PageSize

// ErrBadRequest reports a listing parameter that cannot be used.
var ErrBadRequest = errors.New("bad request")

var validate = validator.New(validator.WithRequiredStructEnabled())

// MovieQuery is a parsed movie listing request. A zero Page means the listing
// is unbounded and unfiltered.
type MovieQuery struct {
	DirectorID *int64
	GenreID    *int64
	Page       int
}

type params struct {
	directorID string
	genreID    string
	page       string
}

type rule struct {
	director bool
	genre    bool
	page     bool
	build    func(p params) (MovieQuery, error)
}

// movieRules is checked top to bottom and the first rule whose required
// parameters are all present wins. Filters only apply together with a page.
var movieRules = []rule{
	{director: true, genre: true, page: true, build: func(p params) (MovieQuery, error) {
		return build(p.page, p.directorID, p.genreID)
	}},
	{director: true, page: true, build: func(p params) (MovieQuery, error) {
		return build(p.page, p.directorID, "")
	}},
	{genre: true, page: true, build: func(p params) (MovieQuery, error) {
		return build(p.page, "", p.genreID)
	}},
	{page: true, build: func(p params) (MovieQuery, error) {
		return build(p.page, "", "")
	}},
}

// Parse reads director_id, genre_id and page from a movie listing request.
// Empty values count as absent.
func Parse(values url.Values) (MovieQuery, error) {
	p := params{
		directorID: strings.TrimSpace(values.Get("director_id")),
		genreID:    strings.TrimSpace(values.Get("genre_id")),
		page:       strings.TrimSpace(values.Get("page")),
	}

	for _, r := range movieRules {
		if r.director && p.directorID == "" || r.genre && p.genreID == "" || r.page && p.page == "" {
			continue
		}
		return r.build(p)
	}

	return MovieQuery{}, nil
}

func build(page, directorID, genreID string) (MovieQuery, error) {
	var q MovieQuery
	var err error

	q.Page, err = parsePage(page)
	if err != nil {
		return MovieQuery{}, err
	}

	if directorID != "" {
		if q.DirectorID, err = parseID("director_id", directorID); err != nil {
			return MovieQuery{}, err
		}
	}

	if genreID != "" {
		if q.GenreID, err = parseID("genre_id", genreID); err != nil {
			return MovieQuery{}, err
		}
	}

	return q, nil
}

func parsePage(raw string) (int, error) {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: page %q is not an integer", ErrBadRequest, raw)
	}

	if err := validate.Var(page, fmt.Sprintf("gte=1,lte=%d", MaxPage)); err != nil {
		return 0, fmt.Errorf("%w: page must be between 1 and %d, got %d", ErrBadRequest, MaxPage, page)
	}

	return page, nil
}

func parseID(name, raw string) (*int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not an integer", ErrBadRequest, name, raw)
	}
	return &id, nil
}

// Paginated reports whether the query is bounded to a single page.
func (q MovieQuery) Paginated() bool { return q.Page > 0 }

// Offset is the number of rows skipped before the page starts.
func (q MovieQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return PageSize * (q.Page - 1)
}

// Scopes renders the query as gorm scopes: the filter predicates, then the
// pagination window when a page was requested.
func (q MovieQuery) Scopes() []func(*gorm.DB) *gorm.DB {
	scopes := []func(*gorm.DB) *gorm.DB{}

	if q.DirectorID != nil {
		scopes = append(scopes, whereEquals("director_id", *q.DirectorID))
	}

	if q.GenreID != nil {
		scopes = append(scopes, whereEquals("genre_id", *q.GenreID))
	}

	if q.Paginated() {
		scopes = append(scopes, paginate(q.Offset(), PageSize))
	}

	return scopes
}

func whereEquals(column string, value int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

func paginate(offset, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(limit)
	}
}
