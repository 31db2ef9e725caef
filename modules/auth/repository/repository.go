package repository

import (
	"context"
	"time"

	"calendar-sync-api/core/database"
	"calendar-sync-api/modules/auth/entity"

	"github.com/google/uuid"
)

// AuthRepository handles user, social-login and OAuth-state persistence.
type AuthRepository struct {
	DB database.Database
}

func NewAuthRepository(db database.Database) *AuthRepository {
	return &AuthRepository{DB: db}
}

type AuthRepositoryInterface interface {
	// Users
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateUserTimezone(ctx context.Context, id uuid.UUID, timezone string) error

	// OAuth state
	SaveOAuthState(ctx context.Context, state string, expiresAt time.Time) error
	GetOAuthState(ctx context.Context, state string) (*entity.OAuthState, error)
	DeleteOAuthState(ctx context.Context, state string) error
	CleanupExpiredOAuthStates(ctx context.Context) (int64, error)

	// Social logins
	GetSocialLogin(ctx context.Context, userID uuid.UUID, provider string) (*entity.SocialLogin, error)
	SaveOrUpdateSocialLogin(ctx context.Context, login *entity.SocialLogin) error
}
