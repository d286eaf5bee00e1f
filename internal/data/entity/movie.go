package entity

import (
	"time"
)

// DefaultCategory is stored when a movie is created without a category.
const DefaultCategory = "No category"

type Movie struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Overview  string    `db:"overview"`
	Year      int       `db:"year"`
	Rating    float64   `db:"rating"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
