package request

type MovieCreateRequest struct {
	Title    string   `json:"title" validate:"required,min=2,max=60,nefield=Overview"`
	Overview string   `json:"overview" validate:"required,min=15"`
	Year     int      `json:"year" validate:"required,gt=1900"`
	Rating   *float64 `json:"rating,omitempty" validate:"omitempty,gt=0,lte=10"`
	Category *string  `json:"category,omitempty" validate:"omitempty,min=5,max=40"`
}

// MovieUpdateRequest carries a partial update. A nil field means "not
// provided" and keeps the stored value; only non-nil fields are applied.
type MovieUpdateRequest struct {
	Title    *string  `json:"title,omitempty" validate:"omitempty,min=2,max=60"`
	Overview *string  `json:"overview,omitempty" validate:"omitempty,min=15"`
	Year     *int     `json:"year,omitempty" validate:"omitempty,gt=1900"`
	Rating   *float64 `json:"rating,omitempty" validate:"omitempty,gt=0,lte=10"`
	Category *string  `json:"category,omitempty" validate:"omitempty,min=5,max=40"`
}
