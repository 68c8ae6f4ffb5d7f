package request

type MovieRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"required"`
	PosterURL   string   `json:"poster_url" validate:"required"`
	Genres      []string `json:"genres" validate:"required,min=1,dive,required"`
	Rate        *string  `json:"rate,omitempty"`
	Runtime     int      `json:"runtime" validate:"required,min=1,max=999"`
}

type MovieUpdateRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitnil,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitnil,min=1"`
	PosterURL   *string  `json:"poster_url,omitempty" validate:"omitnil,min=1"`
	Genres      []string `json:"genres,omitempty" validate:"omitempty,min=1,dive,required"`
	Rate        *string  `json:"rate,omitempty"`
	Runtime     *int     `json:"runtime,omitempty" validate:"omitnil,min=1,max=999"`
}
