// Package repository implements the store contracts of the services on gorm.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/RazanRezq/jadara-sub002/internal/apperr"
)

const uniqueViolation = "23505"

// translate maps gorm and postgres errors onto the apperr taxonomy.
func translate(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NewNotFound(resource)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.NewDuplicate(resource)
	}
	return err
}
