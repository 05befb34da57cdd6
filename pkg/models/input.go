package models

import "encoding/json"

// Column names of the mutable movie attributes.
const (
	ColTitle       = "title"
	ColDescription = "description"
	ColTrailer     = "trailer"
	ColYear        = "year"
	ColRating      = "rating"
	ColGenreID     = "genre_id"
	ColDirectorID  = "director_id"
	ColName        = "name"
)

// MovieInput is the body of a movie create or full replace. Keys missing from
// the body decode to nil.
type MovieInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Trailer     *string  `json:"trailer"`
	Year        *int     `json:"year"`
	Rating      *float64 `json:"rating"`
	GenreID     *int64   `json:"genre_id"`
	DirectorID  *int64   `json:"director_id"`
}

func (in MovieInput) Movie() Movie {
	return Movie{
		Title:       in.Title,
		Description: in.Description,
		Trailer:     in.Trailer,
		Year:        in.Year,
		Rating:      in.Rating,
		GenreID:     in.GenreID,
		DirectorID:  in.DirectorID,
	}
}

// Columns returns every mutable column, nil where the body had no value.
func (in MovieInput) Columns() map[string]any {
	return map[string]any{
		ColTitle:       nullable(in.Title),
		ColDescription: nullable(in.Description),
		ColTrailer:     nullable(in.Trailer),
		ColYear:        nullable(in.Year),
		ColRating:      nullable(in.Rating),
		ColGenreID:     nullable(in.GenreID),
		ColDirectorID:  nullable(in.DirectorID),
	}
}

// MoviePatch is the body of a partial movie update. Only keys present in the
// body are written; an explicit null clears the column.
type MoviePatch struct {
	Title       Field[string]  `json:"title"`
	Description Field[string]  `json:"description"`
	Trailer     Field[string]  `json:"trailer"`
	Year        Field[int]     `json:"year"`
	Rating      Field[float64] `json:"rating"`
	GenreID     Field[int64]   `json:"genre_id"`
	DirectorID  Field[int64]   `json:"director_id"`
}

func (p MoviePatch) Columns() map[string]any {
	cols := map[string]any{}
	p.Title.put(cols, ColTitle)
	p.Description.put(cols, ColDescription)
	p.Trailer.put(cols, ColTrailer)
	p.Year.put(cols, ColYear)
	p.Rating.put(cols, ColRating)
	p.GenreID.put(cols, ColGenreID)
	p.DirectorID.put(cols, ColDirectorID)
	return cols
}

// NameInput is the body of a director or genre create and replace.
type NameInput struct {
	Name *string `json:"name"`
}

func (in NameInput) Columns() map[string]any {
	return map[string]any{ColName: nullable(in.Name)}
}

// Field holds a JSON value together with whether its key was present at all.
type Field[T any] struct {
	Value *T
	Set   bool
}

// UnmarshalJSON is only invoked for keys present in the object, null included.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

func (f Field[T]) put(cols map[string]any, name string) {
	if f.Set {
		cols[name] = nullable(f.Value)
	}
}

func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
