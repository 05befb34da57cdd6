package models

// Movie is a catalog entry. Every attribute except the id is nullable, so an
// attribute the caller never supplied is stored and rendered as null.
type Movie struct {
	ID          int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Trailer     *string  `json:"trailer"`
	Year        *int     `json:"year"`
	Rating      *float64 `json:"rating"`
	GenreID     *int64   `gorm:"index" json:"genre_id"`
	DirectorID  *int64   `gorm:"index" json:"director_id"`
}

type Director struct {
	ID   int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name *string `json:"name"`
}

type Genre struct {
	ID   int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name *string `json:"name"`
}

// All lists the models owned by the store, in migration order.
func All() []any {
	return []any{&Director{}, &Genre{}, &Movie{}}
}
