package repository

import (
	"errors"
	"fmt"
	"strings"

	"theater-api/internal/apperr"
	"theater-api/internal/data/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the store surfaces as user-facing failures.
const (
	pgUniqueViolation  = "23505"
	pgInvalidTextValue = "22P02"
)

// translateDBErr classifies a persistence failure. A duplicate-key
// rejection becomes a Conflict carrying the constraint detail, an
// enum-domain violation becomes a ValidationError listing the valid
// values. Anything else stays as-is for the service layer to wrap as
// internal.
func translateDBErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		detail := pgErr.Detail
		if detail == "" {
			detail = "duplicate key value"
		}
		return apperr.Conflict("%s", detail)
	case pgInvalidTextValue:
		if msg := invalidEnumMessage(pgErr.Message); msg != "" {
			return apperr.Validation("%s", msg)
		}
	}

	return err
}

func invalidEnumMessage(msg string) string {
	if strings.Contains(msg, "genre") {
		return fmt.Sprintf("invalid genre, valid genres: %s", joinGenres(entity.ValidGenres))
	}
	if strings.Contains(msg, "rate") {
		return fmt.Sprintf("invalid rate, valid rates: %s", joinRates(entity.ValidRates))
	}
	return ""
}

func joinGenres(genres []entity.Genre) string {
	parts := make([]string, len(genres))
	for i, g := range genres {
		parts[i] = string(g)
	}
	return strings.Join(parts, ", ")
}

func joinRates(rates []entity.Rate) string {
	parts := make([]string, len(rates))
	for i, r := range rates {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
