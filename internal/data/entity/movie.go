package entity

type Genre string

const (
	GenreAction      Genre = "action"
	GenreAdventure   Genre = "adventure"
	GenreAnimation   Genre = "animation"
	GenreComedy      Genre = "comedy"
	GenreCrime       Genre = "crime"
	GenreDocumentary Genre = "documentary"
	GenreDrama       Genre = "drama"
	GenreFamily      Genre = "family"
	GenreFantasy     Genre = "fantasy"
	GenreHistory     Genre = "history"
	GenreHorror      Genre = "horror"
	GenreMusic       Genre = "music"
	GenreMystery     Genre = "mystery"
	GenreRomance     Genre = "romance"
	GenreSciFi       Genre = "science-fiction"
	GenreThriller    Genre = "thriller"
	GenreWar         Genre = "war"
	GenreWestern     Genre = "western"
)

var ValidGenres = []Genre{
	GenreAction, GenreAdventure, GenreAnimation, GenreComedy, GenreCrime,
	GenreDocumentary, GenreDrama, GenreFamily, GenreFantasy, GenreHistory,
	GenreHorror, GenreMusic, GenreMystery, GenreRomance, GenreSciFi,
	GenreThriller, GenreWar, GenreWestern,
}

func (g Genre) Valid() bool {
	for _, v := range ValidGenres {
		if g == v {
			return true
		}
	}
	return false
}

type Rate string

const (
	RateG    Rate = "G"
	RatePG   Rate = "PG"
	RatePG13 Rate = "PG-13"
	RateR    Rate = "R"
	RateNC17 Rate = "NC-17"
	RateTBA  Rate = "to-be-announced"
)

var ValidRates = []Rate{RateG, RatePG, RatePG13, RateR, RateNC17, RateTBA}

func (r Rate) Valid() bool {
	for _, v := range ValidRates {
		if r == v {
			return true
		}
	}
	return false
}

type Movie struct {
	Base
	Title       string  `db:"title"`
	Description string  `db:"description"`
	PosterURL   string  `db:"poster_url"`
	Genres      []Genre `db:"genres"`
	Rate        Rate    `db:"rate"`
	// IsAvailable doubles as the soft-delete flag: retiring a movie
	// flips it to false, the row is never removed.
	IsAvailable bool `db:"is_available"`
	// RuntimeMinutes must be known before any showtime referencing the
	// movie can be created, end-time derivation depends on it.
	RuntimeMinutes int `db:"runtime_minutes"`
}
