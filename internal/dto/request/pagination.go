package request

import "time"

type PaginatedRequest struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage()
}

func (p PaginatedRequest) PerPage() int {
	if p.Limit < 1 {
		return 10
	}
	if p.Limit > 100 {
		return 100
	}
	return p.Limit
}

// DatePaginatedRequest adds an optional calendar-day filter to the
// pagination contract. A set StartDate widens to the full UTC day.
type DatePaginatedRequest struct {
	PaginatedRequest
	StartDate *time.Time `json:"start_date,omitempty"`
}
