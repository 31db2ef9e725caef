package repository

import (
	"context"
	"database/sql"

	"calendar-sync-api/core/logger"
	"calendar-sync-api/modules/auth/entity"

	"github.com/google/uuid"
)

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	query := `
		SELECT id, email, password, name, timezone, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByEmail", "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	query := `
		SELECT id, email, password, name, timezone, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByID", "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, password, name, timezone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		user.Email, user.Password, user.Name, user.Timezone,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		logger.Error("AuthRepository:CreateUser", "error", err)
		return nil, err
	}
	return user, nil
}

func (r *AuthRepository) UpdateUserTimezone(ctx context.Context, id uuid.UUID, timezone string) error {
	query := `
		UPDATE users
		SET timezone = $1, updated_at = now()
		WHERE id = $2
	`
	if err := r.DB.ExecContext(ctx, query, timezone, id); err != nil {
		logger.Error("AuthRepository:UpdateUserTimezone", "error", err)
		return err
	}
	return nil
}
