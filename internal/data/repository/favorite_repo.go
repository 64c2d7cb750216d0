package repository

import (
	"context"
	"fmt"

	"brook-rent/internal/data/entity"
	"brook-rent/pkg/database"

	"go.uber.org/zap"
)

type FavoriteRepository interface {
	Create(ctx context.Context, userID, houseID int64) error
	Delete(ctx context.Context, userID, houseID int64) error
	Exists(ctx context.Context, userID, houseID int64) (bool, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.FavoritedHouse, error)
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log,
	}
}

// Create inserts the (user, house) pair. The unique constraint settles
// concurrent duplicate favorites.
func (fr *favoriteRepository) Create(ctx context.Context, userID, houseID int64) error {
	query := `INSERT INTO favorites (user_id, house_id) VALUES ($1, $2)`

	_, err := fr.db.Exec(ctx, query, userID, houseID)
	if err != nil {
		if IsUniqueViolation(err) {
			fr.log.Warn("Duplicate favorite",
				zap.Int64("user_id", userID),
				zap.Int64("house_id", houseID),
			)
		} else {
			fr.log.Error("Failed to create favorite",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.Int64("house_id", houseID),
			)
		}
		return fmt.Errorf("create favorite user %d house %d: %w", userID, houseID, err)
	}

	return nil
}

// Delete is a no-op when the pair does not exist.
func (fr *favoriteRepository) Delete(ctx context.Context, userID, houseID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND house_id = $2`

	_, err := fr.db.Exec(ctx, query, userID, houseID)
	if err != nil {
		fr.log.Error("Failed to delete favorite",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("house_id", houseID),
		)
		return fmt.Errorf("delete favorite user %d house %d: %w", userID, houseID, err)
	}

	return nil
}

func (fr *favoriteRepository) Exists(ctx context.Context, userID, houseID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND house_id = $2)`

	var exists bool
	err := fr.db.QueryRow(ctx, query, userID, houseID).Scan(&exists)
	if err != nil {
		fr.log.Error("Failed to check favorite",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("house_id", houseID),
		)
		return false, fmt.Errorf("check favorite user %d house %d: %w", userID, houseID, err)
	}

	return exists, nil
}

func (fr *favoriteRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.FavoritedHouse, error) {
	query := `
		SELECT h.id, h.user_id, h.property_title, h.images, h.monthly_rent, h.address,
		       h.property_type, h.rooms, h.bathrooms, h.square_feet, h.description,
		       h.contact_name, h.contact_email, h.contact_phone, h.created_at,
		       f.created_at AS favorited_at
		FROM favorites f
		JOIN houses h ON f.house_id = h.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := fr.db.Query(ctx, query, userID)
	if err != nil {
		fr.log.Error("Failed to get favorites",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find favorites for user %d: %w", userID, err)
	}
	defer rows.Close()

	var favorites []*entity.FavoritedHouse
	for rows.Next() {
		var fav entity.FavoritedHouse
		err := rows.Scan(
			&fav.ID,
			&fav.UserID,
			&fav.PropertyTitle,
			&fav.Images,
			&fav.MonthlyRent,
			&fav.Address,
			&fav.PropertyType,
			&fav.Rooms,
			&fav.Bathrooms,
			&fav.SquareFeet,
			&fav.Description,
			&fav.ContactName,
			&fav.ContactEmail,
			&fav.ContactPhone,
			&fav.CreatedAt,
			&fav.FavoritedAt,
		)
		if err != nil {
			fr.log.Error("Failed to scan favorite row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		favorites = append(favorites, &fav)
	}

	if err := rows.Err(); err != nil {
		fr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate favorite rows: %w", err)
	}

	return favorites, nil
}
