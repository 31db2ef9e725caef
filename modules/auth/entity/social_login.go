package entity

import (
	"time"

	"calendar-sync-api/core/entity"

	"github.com/google/uuid"
)

// SocialLogin stores the OAuth grant obtained for a user at a provider.
// The access token is the credential used for calendar calls on the
// user's behalf.
type SocialLogin struct {
	entity.BaseEntity
	UserID         uuid.UUID  `db:"user_id" json:"user_id"`
	Provider       string     `db:"provider" json:"provider"`
	ProviderEmail  *string    `db:"provider_email" json:"provider_email,omitempty"`
	AccessToken    *string    `db:"access_token" json:"-"`
	RefreshToken   *string    `db:"refresh_token" json:"-"`
	TokenExpiresAt *time.Time `db:"token_expires_at" json:"token_expires_at,omitempty"`
	IsActive       bool       `db:"is_active" json:"is_active"`
}

func (SocialLogin) TableName() string {
	return "social_logins"
}
