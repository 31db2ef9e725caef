package entity

import "time"

// OAuthState is one pending OAuth round trip. Rows are deleted on callback
// and swept periodically once expired.
type OAuthState struct {
	State     string    `db:"state" json:"state"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (OAuthState) TableName() string {
	return "oauth_states"
}
