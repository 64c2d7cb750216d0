package repository

import (
	"context"
	"fmt"
	"time"

	"brook-rent/internal/data/entity"
	"brook-rent/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)
	SetRememberToken(ctx context.Context, id int64, token *string) error
	SetResetToken(ctx context.Context, id int64, token string, expiry time.Time) error
	UpdatePasswordAndClearReset(ctx context.Context, id int64, passwordHash string) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

const userColumns = `id, email, password, phone_number, user_type,
	       remember_token, reset_token, reset_token_expiry, created_at`

// Create inserts a new user and fills in the store-assigned id and
// created_at. A duplicate email surfaces as a unique violation.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, password, phone_number, user_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := ur.db.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			// Expected under concurrent registration, caller maps to conflict
			ur.log.Warn("Duplicate email on user create", zap.String("email", user.Email))
		} else {
			ur.log.Error("Failed to create user",
				zap.Error(err),
				zap.String("email", user.Email),
			)
		}
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, id))
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, email))
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

// FindByResetToken only matches tokens that have not expired. No match
// and expired match are indistinguishable to the caller.
func (ur *userRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE reset_token = $1 AND reset_token_expiry > NOW()`

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, token))
	if err != nil {
		ur.log.Error("Failed to find user by reset token", zap.Error(err))
		return nil, fmt.Errorf("find user by reset token: %w", err)
	}

	return user, nil
}

// SetRememberToken stores or clears (token == nil) the remember token.
func (ur *userRepository) SetRememberToken(ctx context.Context, id int64, token *string) error {
	query := `UPDATE users SET remember_token = $2 WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id, token)
	if err != nil {
		ur.log.Error("Failed to set remember token",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return fmt.Errorf("set remember token for user %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return nil
}

// SetResetToken writes the reset token and its expiry in one statement,
// overwriting any outstanding token. At most one live reset token per
// user.
func (ur *userRepository) SetResetToken(ctx context.Context, id int64, token string, expiry time.Time) error {
	query := `UPDATE users SET reset_token = $2, reset_token_expiry = $3 WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id, token, expiry)
	if err != nil {
		ur.log.Error("Failed to set reset token",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return fmt.Errorf("set reset token for user %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return nil
}

// UpdatePasswordAndClearReset stores the new hash and nulls both reset
// columns in the same statement so a consumed token can never be
// replayed.
func (ur *userRepository) UpdatePasswordAndClearReset(ctx context.Context, id int64, passwordHash string) error {
	query := `
		UPDATE users
		SET password = $2, reset_token = NULL, reset_token_expiry = NULL
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		ur.log.Error("Failed to update password",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return fmt.Errorf("update password for user %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return nil
}

// scanUser maps a single-row result; no rows yields (nil, nil).
func (ur *userRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&user.RememberToken,
		&user.ResetToken,
		&user.ResetTokenExpiry,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
