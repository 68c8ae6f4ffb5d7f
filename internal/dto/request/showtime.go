package request

import "time"

type ShowtimeRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	Capacity  *int      `json:"capacity,omitempty" validate:"omitnil,gt=0"`
}

type ShowtimeUpdateRequest struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	Capacity  *int       `json:"capacity,omitempty" validate:"omitnil,gt=0"`
}
