package repository

import (
	"context"
	"database/sql"
	"time"

	"calendar-sync-api/core/logger"
	"calendar-sync-api/modules/auth/entity"
)

func (r *AuthRepository) SaveOAuthState(ctx context.Context, state string, expiresAt time.Time) error {
	query := `
		INSERT INTO oauth_states (state, expires_at)
		VALUES ($1, $2)
	`
	if err := r.DB.ExecContext(ctx, query, state, expiresAt); err != nil {
		logger.Error("AuthRepository:SaveOAuthState", "error", err)
		return err
	}
	return nil
}

func (r *AuthRepository) GetOAuthState(ctx context.Context, state string) (*entity.OAuthState, error) {
	var row entity.OAuthState
	query := `
		SELECT state, expires_at, created_at
		FROM oauth_states
		WHERE state = $1
	`
	err := r.DB.GetContext(ctx, &row, query, state)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetOAuthState", "error", err)
		return nil, err
	}
	return &row, nil
}

func (r *AuthRepository) DeleteOAuthState(ctx context.Context, state string) error {
	query := `
		DELETE FROM oauth_states
		WHERE state = $1
	`
	if err := r.DB.ExecContext(ctx, query, state); err != nil {
		logger.Error("AuthRepository:DeleteOAuthState", "error", err)
		return err
	}
	return nil
}

func (r *AuthRepository) CleanupExpiredOAuthStates(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM oauth_states
		WHERE expires_at < now()
	`
	result, err := r.DB.SQLx().ExecContext(ctx, query)
	if err != nil {
		logger.Error("AuthRepository:CleanupExpiredOAuthStates", "error", err)
		return 0, err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
