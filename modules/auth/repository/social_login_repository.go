package repository

import (
	"context"
	"database/sql"

	"calendar-sync-api/core/logger"
	"calendar-sync-api/modules/auth/entity"

	"github.com/google/uuid"
)

func (r *AuthRepository) GetSocialLogin(ctx context.Context, userID uuid.UUID, provider string) (*entity.SocialLogin, error) {
	var login entity.SocialLogin
	query := `
		SELECT id, user_id, provider, provider_email, access_token, refresh_token,
		       token_expires_at, is_active, created_at, updated_at
		FROM social_logins
		WHERE user_id = $1 AND provider = $2 AND is_active = true
	`
	err := r.DB.GetContext(ctx, &login, query, userID, provider)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetSocialLogin", "error", err)
		return nil, err
	}
	return &login, nil
}

func (r *AuthRepository) SaveOrUpdateSocialLogin(ctx context.Context, login *entity.SocialLogin) error {
	query := `
		INSERT INTO social_logins (user_id, provider, provider_email, access_token, refresh_token, token_expires_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, provider) DO UPDATE
		SET provider_email = EXCLUDED.provider_email,
		    access_token = EXCLUDED.access_token,
		    refresh_token = EXCLUDED.refresh_token,
		    token_expires_at = EXCLUDED.token_expires_at,
		    is_active = EXCLUDED.is_active,
		    updated_at = now()
	`
	err := r.DB.ExecContext(ctx, query,
		login.UserID, login.Provider, login.ProviderEmail,
		login.AccessToken, login.RefreshToken, login.TokenExpiresAt, login.IsActive,
	)
	if err != nil {
		logger.Error("AuthRepository:SaveOrUpdateSocialLogin", "error", err)
		return err
	}
	return nil
}
