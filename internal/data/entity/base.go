package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the surrogate key and audit columns shared by all
// entities. The *By fields are weak references to the acting user,
// kept for provenance only.
type Base struct {
	ID        uuid.UUID  `db:"id"`
	CreatedAt time.Time  `db:"created_at"`
	CreatedBy *uuid.UUID `db:"created_by"`
	UpdatedAt *time.Time `db:"updated_at"`
	UpdatedBy *uuid.UUID `db:"updated_by"`
	DeletedAt *time.Time `db:"deleted_at"`
	DeletedBy *uuid.UUID `db:"deleted_by"`
}
