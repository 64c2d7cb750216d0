package repository

import (
	"context"
	"fmt"

	"brook-rent/internal/data/entity"
	"brook-rent/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HouseRepository interface {
	Create(ctx context.Context, house *entity.House) error
	FindByID(ctx context.Context, id int64) (*entity.House, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.House, error)
	CountAll(ctx context.Context) (int64, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.House, error)
	Update(ctx context.Context, house *entity.House) error
	Delete(ctx context.Context, id int64) error
}

type houseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHouseRepository(db database.PgxIface, log *zap.Logger) HouseRepository {
	return &houseRepository{
		db:  db,
		log: log,
	}
}

const houseColumns = `id, user_id, property_title, images, monthly_rent, address,
	       property_type, rooms, bathrooms, square_feet, description,
	       contact_name, contact_email, contact_phone, created_at`

func (hr *houseRepository) Create(ctx context.Context, house *entity.House) error {
	query := `
		INSERT INTO houses (user_id, property_title, images, monthly_rent, address,
		                   property_type, rooms, bathrooms, square_feet, description,
		                   contact_name, contact_email, contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`

	err := hr.db.QueryRow(ctx, query,
		house.UserID,
		house.PropertyTitle,
		house.Images,
		house.MonthlyRent,
		house.Address,
		house.PropertyType,
		house.Rooms,
		house.Bathrooms,
		house.SquareFeet,
		house.Description,
		house.ContactName,
		house.ContactEmail,
		house.ContactPhone,
	).Scan(&house.ID, &house.CreatedAt)

	if err != nil {
		hr.log.Error("Failed to create house",
			zap.Error(err),
			zap.Int64("user_id", house.UserID),
			zap.String("title", house.PropertyTitle),
		)
		return fmt.Errorf("create house: %w", err)
	}

	return nil
}

func (hr *houseRepository) FindByID(ctx context.Context, id int64) (*entity.House, error) {
	query := `SELECT ` + houseColumns + ` FROM houses WHERE id = $1`

	var house entity.House
	err := hr.db.QueryRow(ctx, query, id).Scan(
		&house.ID,
		&house.UserID,
		&house.PropertyTitle,
		&house.Images,
		&house.MonthlyRent,
		&house.Address,
		&house.PropertyType,
		&house.Rooms,
		&house.Bathrooms,
		&house.SquareFeet,
		&house.Description,
		&house.ContactName,
		&house.ContactEmail,
		&house.ContactPhone,
		&house.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		hr.log.Error("Failed to find house by ID",
			zap.Error(err),
			zap.Int64("house_id", id),
		)
		return nil, fmt.Errorf("find house by ID %d: %w", id, err)
	}

	return &house, nil
}

func (hr *houseRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.House, error) {
	query := `SELECT ` + houseColumns + `
		FROM houses
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := hr.db.Query(ctx, query, limit, offset)
	if err != nil {
		hr.log.Error("Failed to get all houses",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all houses limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return hr.collectHouses(rows)
}

func (hr *houseRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM houses`

	var count int64
	err := hr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		hr.log.Error("Database error counting houses", zap.Error(err))
		return 0, fmt.Errorf("count all houses: %w", err)
	}

	return count, nil
}

func (hr *houseRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.House, error) {
	query := `SELECT ` + houseColumns + `
		FROM houses
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := hr.db.Query(ctx, query, userID)
	if err != nil {
		hr.log.Error("Failed to get houses by user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find houses by user %d: %w", userID, err)
	}
	defer rows.Close()

	return hr.collectHouses(rows)
}

// Update rewrites the listing fields. Owner and created_at are never
// touched here; the ownership check happens in the service before this
// call.
func (hr *houseRepository) Update(ctx context.Context, house *entity.House) error {
	query := `
		UPDATE houses
		SET property_title = $2, images = $3, monthly_rent = $4, address = $5,
		    property_type = $6, rooms = $7, bathrooms = $8, square_feet = $9,
		    description = $10, contact_name = $11, contact_email = $12,
		    contact_phone = $13
		WHERE id = $1
	`

	result, err := hr.db.Exec(ctx, query,
		house.ID,
		house.PropertyTitle,
		house.Images,
		house.MonthlyRent,
		house.Address,
		house.PropertyType,
		house.Rooms,
		house.Bathrooms,
		house.SquareFeet,
		house.Description,
		house.ContactName,
		house.ContactEmail,
		house.ContactPhone,
	)

	if err != nil {
		hr.log.Error("Failed to update house",
			zap.Error(err),
			zap.Int64("house_id", house.ID),
		)
		return fmt.Errorf("update house %d: %w", house.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("house %d not found", house.ID)
	}

	return nil
}

func (hr *houseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM houses WHERE id = $1`

	result, err := hr.db.Exec(ctx, query, id)
	if err != nil {
		hr.log.Error("Failed to delete house",
			zap.Error(err),
			zap.Int64("house_id", id),
		)
		return fmt.Errorf("delete house %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("house %d not found", id)
	}

	hr.log.Info("House deleted", zap.Int64("house_id", id))
	return nil
}

func (hr *houseRepository) collectHouses(rows pgx.Rows) ([]*entity.House, error) {
	var houses []*entity.House
	for rows.Next() {
		var house entity.House
		err := rows.Scan(
			&house.ID,
			&house.UserID,
			&house.PropertyTitle,
			&house.Images,
			&house.MonthlyRent,
			&house.Address,
			&house.PropertyType,
			&house.Rooms,
			&house.Bathrooms,
			&house.SquareFeet,
			&house.Description,
			&house.ContactName,
			&house.ContactEmail,
			&house.ContactPhone,
			&house.CreatedAt,
		)
		if err != nil {
			hr.log.Error("Failed to scan house row", zap.Error(err))
			return nil, fmt.Errorf("scan house row: %w", err)
		}
		houses = append(houses, &house)
	}

	if err := rows.Err(); err != nil {
		hr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate house rows: %w", err)
	}

	return houses, nil
}
