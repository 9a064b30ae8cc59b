package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"wordnest/internal/model"
)

const pgUniqueViolation = "23505"

// translateError maps driver-level errors onto the model sentinels so that
// services never have to inspect Postgres error codes.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return model.ErrConflict
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.ErrConflict
	}
	return err
}
