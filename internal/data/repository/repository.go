package repository

import (
	"errors"

	"brook-rent/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	House    HouseRepository
	Favorite FavoriteRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		House:    NewHouseRepository(db, log),
		Favorite: NewFavoriteRepository(db, log),
	}
}

// uniqueViolation is the Postgres error code for unique constraint
// violations. The store's unique constraints are the only backstop for
// duplicate-registration and duplicate-favorite races.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err came from a unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
