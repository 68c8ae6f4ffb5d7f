package entity

import (
	"time"

	"github.com/google/uuid"
)

const DefaultShowtimeCapacity = 100

type Showtime struct {
	Base
	StartTime time.Time `db:"start_time"`
	// EndTime is always derived as StartTime + movie runtime, never set
	// independently.
	EndTime  time.Time `db:"end_time"`
	Capacity int       `db:"capacity"`
	// IsAvailable doubles as the soft-delete flag. Once false the
	// showtime is retired and no lifecycle operation may touch it again.
	IsAvailable bool      `db:"is_available"`
	MovieID     uuid.UUID `db:"movie_id"`

	// Movie is populated on read-through joins only.
	Movie *Movie `db:"-"`
}
